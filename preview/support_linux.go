//go:build linux

package preview

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// KittySupported reports whether the terminal answers a Kitty graphics query.
//
// IMPORTANT: MUST BE CALLED BEFORE BUBBLETEA STARTS
func KittySupported() bool {
	//	Query support with a 1x1 RGB image without storing it:
	//	\x1b_Gi=31,s=1,v=1,a=q,t=d,f=24;AAAA\x1b\\
	//
	//	A supporting terminal responds with \x1b_Gi=31;OK\x1b\\
	//	Anything else answers nothing, so give up after 200ms

	stdinFd := int(os.Stdin.Fd())

	oldTermios, err := unix.IoctlGetTermios(stdinFd, unix.TCGETS)
	if err != nil {
		return false
	}

	raw := *oldTermios
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	raw.Iflag &^= unix.IXON | unix.ICRNL
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 2 // 200ms timeout
	if err := unix.IoctlSetTermios(stdinFd, unix.TCSETS, &raw); err != nil {
		return false
	}
	defer unix.IoctlSetTermios(stdinFd, unix.TCSETS, oldTermios)

	// Drain any pending input
	drain := make([]byte, 256)
	os.Stdin.Read(drain)

	fmt.Fprint(os.Stdout, "\x1b_Gi=31,s=1,v=1,a=q,t=d,f=24;AAAA\x1b\\")

	buf := make([]byte, 256)
	n, _ := os.Stdin.Read(buf)

	return n > 0 && strings.Contains(string(buf[:n]), "OK")
}
