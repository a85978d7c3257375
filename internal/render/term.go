package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rook-computer/neomatrix/internal/palette"
)

// TermSink draws frames on an ANSI truecolor terminal, two matrix rows per
// text line using upper half blocks.
type TermSink struct {
	width, height int
	out           io.Writer
}

func NewTermSink(out io.Writer, width, height int) *TermSink {
	return &TermSink{width: width, height: height, out: out}
}

func (s *TermSink) Len() int { return s.width * s.height }

func (s *TermSink) Write(frame []palette.RGB) error {
	if err := checkFrame(frame, s.width, s.height); err != nil {
		return err
	}
	img := MatrixImage(frame, s.width, s.height)
	w := bufio.NewWriter(s.out)
	w.WriteString("\x1b[H")
	for row := 0; row < s.height; row += 2 {
		for col := 0; col < s.width; col++ {
			top := img.RGBAAt(col, row)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
			if row+1 < s.height {
				bottom := img.RGBAAt(col, row+1)
				fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", bottom.R, bottom.G, bottom.B)
			} else {
				w.WriteString("\x1b[49m")
			}
			w.WriteString("▀")
		}
		w.WriteString("\x1b[0m\n")
	}
	return w.Flush()
}

// Clear erases the terminal and hides the cursor.
func (s *TermSink) Clear() error {
	_, err := io.WriteString(s.out, "\x1b[2J\x1b[?25l")
	return err
}

// Restore shows the cursor again.
func (s *TermSink) Restore() error {
	_, err := io.WriteString(s.out, "\x1b[0m\x1b[?25h\n")
	return err
}
