// Package clipboard copies document text to and from the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/docdraft/docdraft/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is safe to call multiple times; the
// first result is remembered. Headless Linux sessions without X11 or
// Wayland fail here.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			logger.WithComponent("clipboard").Warn("clipboard unavailable", "error", err)
			return
		}
		logger.WithComponent("clipboard").Debug("clipboard initialized")
	})
	return initErr
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard yields "".
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
