// Package clipboard wraps the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/verte-zerg/wordlens/internal/analyzer"
)

// ErrEmpty is returned when there is no text to copy or paste.
var ErrEmpty = errors.New("clipboard text is empty")

// Clipboard reads and writes text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

// Available reports whether a clipboard utility is usable on this system.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// ReadAll returns the clipboard contents.
func (System) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

// WriteAll replaces the clipboard contents.
func (System) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Copy writes text to c, refusing blank text.
func Copy(c Clipboard, text string) error {
	if strings.TrimFunc(text, analyzer.IsSpace) == "" {
		return ErrEmpty
	}
	return c.WriteAll(text)
}

// Paste reads text from c, refusing a blank clipboard.
func Paste(c Clipboard) (string, error) {
	text, err := c.ReadAll()
	if err != nil {
		return "", err
	}
	if strings.TrimFunc(text, analyzer.IsSpace) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// Memory is an in-process clipboard used when no system clipboard exists.
type Memory struct {
	text string
}

// ReadAll returns the stored text.
func (m *Memory) ReadAll() (string, error) {
	return m.text, nil
}

// WriteAll stores text.
func (m *Memory) WriteAll(text string) error {
	m.text = text
	return nil
}

// Default returns the system clipboard, or an in-memory one when the system
// has none.
func Default() Clipboard {
	if (System{}).Available() {
		return System{}
	}
	return &Memory{}
}
