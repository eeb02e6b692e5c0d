package artwork

import (
	"fmt"
	"strings"
)

// RenderSVG serializes the artwork. This is a straight template-fill over
// the curve segments: "M x,y" at the first on-path point, then one
// "C c1 c2 p2" per segment. Output is deterministic byte for byte; only
// minted strands are emitted.
func RenderSVG(a *Artwork) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		a.Config.CanvasWidth, a.Config.CanvasHeight, a.Config.CanvasWidth, a.Config.CanvasHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#faf6ef"/>`+"\n",
		a.Config.CanvasWidth, a.Config.CanvasHeight)

	for _, sr := range a.Strands {
		if !sr.Minted || len(sr.Curve) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round"/>`+"\n",
			pathData(sr), sr.Strand.Color, sr.Strand.Width)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func pathData(sr StrandResult) string {
	var d strings.Builder
	fmt.Fprintf(&d, "M %d,%d", sr.Curve[0].P1.X, sr.Curve[0].P1.Y)
	for _, seg := range sr.Curve {
		fmt.Fprintf(&d, " C %d,%d %d,%d %d,%d",
			seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.P2.X, seg.P2.Y)
	}
	return d.String()
}
