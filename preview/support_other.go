//go:build !linux

package preview

import "os"

// KittySupported guesses from the environment where the termios probe is unavailable
func KittySupported() bool {
	return os.Getenv("TERM") == "xterm-kitty" || os.Getenv("KITTY_WINDOW_ID") != ""
}
