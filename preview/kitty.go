package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// ThumbnailImageID is the Kitty image id used for the video card thumbnail
const ThumbnailImageID = 7

// max payload bytes per Kitty escape
const chunkSize = 4096

// Renderer draws thumbnails with Kitty's graphics protocol
type Renderer struct {
	mu sync.Mutex

	out     io.Writer
	imageID int
	shown   bool
}

// NewRenderer creates a Kitty renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		imageID: ThumbnailImageID,
	}
}

// Show places t with its top-left corner at the 1-indexed cell (row, col),
// replacing any thumbnail shown before.
func (r *Renderer) Show(t *Thumbnail, row, col int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf bytes.Buffer

	// Synchronized update so the old image never flashes
	buf.WriteString("\x1b[?2026h")
	buf.WriteString("\x1b7")

	if r.shown {
		fmt.Fprintf(&buf, "\x1b_Ga=d,d=i,i=%d,q=2\x1b\\", r.imageID)
	}

	fmt.Fprintf(&buf, "\x1b[%d;%dH", max(row, 1), max(col, 1))

	// a=T transmit and display, f=32 RGBA, q=2 no responses, C=1 keep cursor
	writeChunked(&buf, fmt.Sprintf("a=T,f=32,s=%d,v=%d,i=%d,q=2,C=1", t.Width, t.Height, r.imageID), t.RGBA)

	buf.WriteString("\x1b8")
	buf.WriteString("\x1b[?2026l")

	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return err
	}
	r.shown = true
	return nil
}

// Hide deletes the thumbnail if one is shown
func (r *Renderer) Hide() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.shown {
		return nil
	}
	r.shown = false
	_, err := fmt.Fprintf(r.out, "\x1b_Ga=d,d=i,i=%d,q=2\x1b\\", r.imageID)
	return err
}

// writeChunked base64-encodes data and splits it across escapes.
// The first escape carries the control keys, m=1 marks that more follow.
func writeChunked(buf *bytes.Buffer, control string, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	first := true

	for first || len(encoded) > 0 {
		chunk := encoded
		more := 0
		if len(chunk) > chunkSize {
			chunk = encoded[:chunkSize]
			more = 1
		}
		encoded = encoded[len(chunk):]

		if first {
			fmt.Fprintf(buf, "\x1b_G%s,m=%d;%s\x1b\\", control, more, chunk)
			first = false
		} else {
			fmt.Fprintf(buf, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
}
