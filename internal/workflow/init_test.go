package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestWriteTemplate_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	fp, err := WriteTemplate(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(dir, ".panta", "workflows.yaml")
	if fp != expected {
		t.Errorf("expected path %s, got %s", expected, fp)
	}

	if _, err := os.Stat(fp); err != nil {
		t.Fatalf("template not written: %v", err)
	}
}

func TestWriteTemplate_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteTemplate(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteTemplate(dir); err == nil {
		t.Error("expected error when file already exists")
	}
}

func TestTemplate_ParsesAndValidates(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(Template), &cfg); err != nil {
		t.Fatalf("template is not valid YAML: %v", err)
	}
	if errs := Validate(Merge(&cfg, DefaultConfig())); len(errs) != 0 {
		t.Errorf("template has validation errors: %v", errs)
	}
}
