// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// command returns the clipboard tool and its arguments for this platform,
// or nil when none is installed.
func command() []string {
	switch runtime.GOOS {
	case "darwin":
		return lookup([]string{"pbcopy"})
	case "windows":
		return []string{"cmd", "/c", "clip"}
	default:
		// xclip first, fall back to xsel, then wl-copy on Wayland
		return lookup(
			[]string{"xclip", "-selection", "clipboard"},
			[]string{"xsel", "--clipboard", "--input"},
			[]string{"wl-copy"},
		)
	}
}

func lookup(candidates ...[]string) []string {
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	args := command()
	if args == nil {
		return ErrUnavailable
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return command() != nil
}
