package preview

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalSize returns terminal dimensions (cols, rows, widthPx, heightPx)
func TerminalSize() (cols, rows, widthPx, heightPx int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(ws.Col), int(ws.Row), int(ws.Xpixel), int(ws.Ypixel), nil
}

// CellSize returns the pixel size of one character cell.
// ok is false when the terminal does not report pixel dimensions.
func CellSize() (w, h int, ok bool) {
	cols, rows, termW, termH, err := TerminalSize()
	if err != nil || cols == 0 || rows == 0 || termW == 0 || termH == 0 {
		return 0, 0, false
	}
	return termW / cols, termH / rows, true
}

// CellsFor returns how many columns and rows an image of the given pixel
// size covers for the given cell size.
func CellsFor(widthPx, heightPx, cellW, cellH int) (cols, rows int) {
	if cellW <= 0 || cellH <= 0 {
		return 0, 0
	}
	cols = (widthPx + cellW - 1) / cellW
	rows = (heightPx + cellH - 1) / cellH
	return cols, rows
}
