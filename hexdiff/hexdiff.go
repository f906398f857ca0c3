// Package hexdiff renders a human-readable byte-level diff of two
// binary buffers.  The buffers are compared over their hex encoding,
// so the text-diff machinery can resynchronize after insertions and
// deletions; offsets in the rendering are byte offsets into the
// respective buffer.
package hexdiff

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// maxShown caps the bytes rendered for one changed segment.
const maxShown = 32

// Write renders the differences between a and b to w and reports
// whether any were found.  Unchanged stretches collapse into a summary
// line; removals and insertions are colored when colorize is set.
func Write(w io.Writer, a, b []byte, colorize bool) (bool, error) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(hex.EncodeToString(a), hex.EncodeToString(b), false)

	red := fmt.Sprintf
	green := fmt.Sprintf
	if colorize {
		red = color.RedString
		green = color.GreenString
	}

	differs := false
	var aOff, bOff int // nibble cursors
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if _, err := fmt.Fprintf(w, "  %06x  %d bytes unchanged\n", aOff/2, n/2); err != nil {
				return differs, err
			}
			aOff += n
			bOff += n
		case diffmatchpatch.DiffDelete:
			differs = true
			line := red("- %06x  %s", aOff/2, groupHex(d.Text))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return differs, err
			}
			aOff += n
		case diffmatchpatch.DiffInsert:
			differs = true
			line := green("+ %06x  %s", bOff/2, groupHex(d.Text))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return differs, err
			}
			bOff += n
		}
	}
	return differs, nil
}

// groupHex spaces a hex string into byte pairs and truncates long
// segments with a remainder note.
func groupHex(s string) string {
	shown := len(s)
	if shown > 2*maxShown {
		shown = 2 * maxShown
	}
	out := make([]byte, 0, shown+shown/2+16)
	for i := 0; i < shown; i++ {
		if i > 0 && i%2 == 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	if rest := (len(s) - shown) / 2; rest > 0 {
		out = append(out, fmt.Sprintf(" ... +%d bytes", rest)...)
	}
	return string(out)
}
