// Package gallery exports artifacts in bulk: generate, write SVG+JSON
// files, and optionally persist to the store, the ledger and kafka.
// Generations share no mutable state, so seeds run in parallel under one
// bounded errgroup.
package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chenzhangda16/strandweave/internal/strand/artwork"
	"github.com/chenzhangda16/strandweave/internal/strand/events"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
	"github.com/chenzhangda16/strandweave/internal/strand/retry"
	"github.com/chenzhangda16/strandweave/internal/strand/store"
	"github.com/chenzhangda16/strandweave/internal/strand/writer"
)

type Runner struct {
	Port    randomness.Port
	Cfg     artwork.Config
	Minted  [artwork.NumStrands]bool
	OutDir  string
	Workers int

	// Optional sinks; nil disables.
	Store  *store.ArtifactStore
	Ledger *writer.Ledger
	Sink   events.Sink
}

// emitPolicy bounds kafka publish retries. Randomness errors never reach
// this path; they abort the seed before anything is emitted.
var emitPolicy = retry.Policy{
	MaxAttempts: 5,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    5 * time.Second,
	Jitter:      100 * time.Millisecond,
	OnRetry: func(attempt int, wait time.Duration, err error) {
		log.Printf("emit retry attempt=%d wait=%s err=%v", attempt, wait, err)
	},
}

// Run exports every seed in [from, to). A failed seed fails the batch;
// partial artifacts are never written.
func (r *Runner) Run(ctx context.Context, from, to int64) error {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n := from; n < to; n++ {
		seed := big.NewInt(n)
		g.Go(func() error {
			return r.exportOne(ctx, seed)
		})
	}
	return g.Wait()
}

func (r *Runner) exportOne(ctx context.Context, seed *big.Int) error {
	// The local randomness path has no suspension point, so check for
	// cancellation here or a canceled batch would keep exporting.
	if err := ctx.Err(); err != nil {
		return err
	}

	art, err := artwork.Generate(ctx, r.Port, seed, r.Cfg, r.Minted)
	if err != nil {
		return err
	}

	svg := artwork.RenderSVG(art)
	meta := art.Metadata(len(svg))
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	base := filepath.Join(r.OutDir, seed.String())
	if err := os.WriteFile(base+".svg", svg, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(base+".json", metaJSON, 0o644); err != nil {
		return err
	}

	if r.Store != nil {
		if err := r.Store.Put(seed, svg, metaJSON); err != nil {
			return fmt.Errorf("store seed=%s: %w", seed, err)
		}
	}
	if r.Ledger != nil {
		if err := r.Ledger.InsertArtifact(ctx, meta); err != nil {
			return fmt.Errorf("ledger seed=%s: %w", seed, err)
		}
	}
	if r.Sink != nil {
		ev := mintedEvent(meta)
		err := retry.Do(ctx, emitPolicy, func(ctx context.Context) error {
			return r.Sink.Emit(ctx, events.TypeArtifactMinted, ev)
		})
		if err != nil {
			return fmt.Errorf("emit seed=%s: %w", seed, err)
		}
	}

	log.Printf("exported seed=%s steps=%d sharpness=%d svg=%dB",
		seed, art.StepCount, art.Sharpness, len(svg))
	return nil
}

func mintedEvent(m artwork.Metadata) events.ArtifactMinted {
	ev := events.ArtifactMinted{
		Seed:      m.Seed,
		Scope:     m.Scope,
		StepCount: m.StepCount,
		Padding:   m.Padding,
		Sharpness: m.Sharpness,
		SVGBytes:  m.SVGBytes,
	}
	for _, s := range m.Strands {
		ev.Minted = append(ev.Minted, s.Minted)
		ev.Colors = append(ev.Colors, s.Color)
	}
	return ev
}
