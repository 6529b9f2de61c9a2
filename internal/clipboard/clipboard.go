// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// writer is swapped in tests so they never touch the real clipboard.
var writer = func(text string) error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			initErr = pantaerrors.ClipboardUnavailable(err)
		}
	})
	if initErr != nil {
		return initErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteText copies text to the system clipboard. Init is attempted once;
// on headless systems every call returns the same ClipboardUnavailable error.
func WriteText(text string) error {
	err := writer(text)
	if err != nil {
		logger.WithComponent("clipboard").Warn("clipboard write failed", "error", err)
		return err
	}
	logger.WithComponent("clipboard").Debug("copied to clipboard", "bytes", len(text))
	return nil
}

// SetWriter replaces the backend. Tests only.
func SetWriter(fn func(text string) error) (restore func()) {
	prev := writer
	writer = fn
	return func() { writer = prev }
}
