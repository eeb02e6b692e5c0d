package artwork

import "github.com/chenzhangda16/strandweave/internal/strand/prf"

// StrandMeta is the per-strand slice of the artifact metadata.
type StrandMeta struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Minted bool   `json:"minted"`
}

// Metadata is the JSON sidecar written next to every SVG and inserted into
// the ledger. Seed is a decimal string so arbitrarily large seeds survive
// JSON number precision.
type Metadata struct {
	Seed      string       `json:"seed"`
	Scope     string       `json:"scope"`
	Canvas    [2]int64     `json:"canvas"`
	StepCount int64        `json:"step_count"`
	Padding   int64        `json:"padding"`
	Sharpness int64        `json:"sharpness"`
	Strands   []StrandMeta `json:"strands"`
	SVGBytes  int          `json:"svg_bytes"`
}

// Metadata assembles the sidecar for an artwork; svgLen is the rendered
// SVG size in bytes.
func (a *Artwork) Metadata(svgLen int) Metadata {
	m := Metadata{
		Seed:      a.Seed.String(),
		Scope:     prf.ScopeTag,
		Canvas:    [2]int64{a.Config.CanvasWidth, a.Config.CanvasHeight},
		StepCount: a.StepCount,
		Padding:   a.Padding,
		Sharpness: a.Sharpness,
		SVGBytes:  svgLen,
	}
	for _, sr := range a.Strands {
		m.Strands = append(m.Strands, StrandMeta{
			Name:   sr.Strand.Name,
			Color:  sr.Strand.Color,
			Minted: sr.Minted,
		})
	}
	return m
}
