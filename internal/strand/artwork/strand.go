package artwork

import (
	"fmt"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// NumStrands is fixed: three strands share one skeleton.
const NumStrands = 3

// Strand describes one curve role: its jitter label pair and how it
// renders. One table, iterated — the strands differ only in data.
type Strand struct {
	Name  string
	DX    prf.Label
	DY    prf.Label
	Color string
	Width int64
}

// Strands returns the fixed strand table, in render order.
func Strands() [NumStrands]Strand {
	return [NumStrands]Strand{
		{Name: "warp", DX: prf.LabelDX1, DY: prf.LabelDY1, Color: "#264653", Width: 4},
		{Name: "weft", DX: prf.LabelDX2, DY: prf.LabelDY2, Color: "#2a9d8f", Width: 3},
		{Name: "fray", DX: prf.LabelDX3, DY: prf.LabelDY3, Color: "#e76f51", Width: 2},
	}
}

// ParseMinted reads CLI-style minted flags, one 0/1 per strand in table
// order, e.g. "110" mints warp and weft only.
func ParseMinted(s string) ([NumStrands]bool, error) {
	var out [NumStrands]bool
	if len(s) != NumStrands {
		return out, fmt.Errorf("artwork: minted flags %q: want %d chars of 0/1", s, NumStrands)
	}
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			out[i] = true
		default:
			return out, fmt.Errorf("artwork: minted flags %q: want %d chars of 0/1", s, NumStrands)
		}
	}
	return out, nil
}
