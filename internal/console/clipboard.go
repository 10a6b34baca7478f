package console

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard receives text copied on behalf of the user.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the OS clipboard. On Linux this needs xclip,
// xsel or wl-copy on the PATH.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unavailable: no clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
