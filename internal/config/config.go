// Package config loads and saves the panta user configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/logger"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "PANTA_CONFIG"

// Routes holds the prefix allow-lists used by the mode resolver.
// An empty list means "use the built-in list".
type Routes struct {
	Chat     []string `json:"chat,omitempty"`
	Workflow []string `json:"workflow,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	UserName             string `json:"user_name,omitempty"`             // Shown on the profile button
	UserEmail            string `json:"user_email,omitempty"`            // Shown under the user name
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a workflow completes
	StartRoute           string `json:"start_route,omitempty"`           // Route opened on launch

	Routes Routes `json:"routes,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// DefaultStartRoute is used when the config has no start_route.
const DefaultStartRoute = "/dashboard"

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".panta"), nil
}

// Path returns the config file path, honoring PANTA_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, pantaerrors.ConfigLoadFailed("~/.panta/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields an empty config
// that will be written to path on Save.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, pantaerrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pantaerrors.ConfigLoadFailed(path, err)
	}

	// Must happen before Validate() since Validate() only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures slices are non-nil after unmarshaling.
// Not thread-safe; only called from Load before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Routes.Chat == nil {
		c.Routes.Chat = []string{}
	}
	if c.Routes.Workflow == nil {
		c.Routes.Workflow = []string{}
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.StartRoute != "" && !strings.HasPrefix(c.StartRoute, "/") {
		return pantaerrors.ConfigInvalid(fmt.Sprintf("start_route %q must start with /", c.StartRoute))
	}

	if err := validatePrefixes("routes.chat", c.Routes.Chat); err != nil {
		return err
	}
	if err := validatePrefixes("routes.workflow", c.Routes.Workflow); err != nil {
		return err
	}

	// A prefix in both lists is legal (chat wins) but almost always a mistake.
	chat := make(map[string]bool, len(c.Routes.Chat))
	for _, p := range c.Routes.Chat {
		chat[p] = true
	}
	for _, p := range c.Routes.Workflow {
		if chat[p] {
			logger.WithComponent("config").Warn("route listed as both chat and workflow; chat wins", "route", p)
		}
	}

	return nil
}

func validatePrefixes(field string, prefixes []string) error {
	seen := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		if !strings.HasPrefix(p, "/") {
			return pantaerrors.ConfigInvalid(fmt.Sprintf("%s: route %q must start with /", field, p))
		}
		if seen[p] {
			return pantaerrors.ConfigInvalid(fmt.Sprintf("%s: duplicate route %q", field, p))
		}
		seen[p] = true
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := Path()
		if err != nil {
			return pantaerrors.ConfigSaveFailed("~/.panta/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pantaerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pantaerrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return pantaerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns where Save will write.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetUser returns the profile name and email.
func (c *Config) GetUser() (name, email string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserName, c.UserEmail
}

// SetUser sets the profile name and email.
func (c *Config) SetUser(name, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserName = name
	c.UserEmail = email
}

// GetStartRoute returns the launch route, falling back to DefaultStartRoute.
func (c *Config) GetStartRoute() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.StartRoute == "" {
		return DefaultStartRoute
	}
	return c.StartRoute
}

// SetStartRoute sets the launch route.
func (c *Config) SetStartRoute(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StartRoute = route
}

// GetRoutes returns a copy of the configured route prefixes.
func (c *Config) GetRoutes() Routes {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Routes{
		Chat:     append([]string{}, c.Routes.Chat...),
		Workflow: append([]string{}, c.Routes.Workflow...),
	}
}

// SetRoutes replaces the configured route prefixes.
func (c *Config) SetRoutes(r Routes) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Routes = Routes{
		Chat:     append([]string{}, r.Chat...),
		Workflow: append([]string{}, r.Workflow...),
	}
}
