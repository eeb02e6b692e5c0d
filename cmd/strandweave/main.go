package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chenzhangda16/strandweave/internal/strand/artwork"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	var (
		seedStr = flag.String("seed", "1", "artifact seed (non-negative decimal, any width)")
		width   = flag.Int64("width", 1024, "canvas width")
		height  = flag.Int64("height", 1024, "canvas height")
		outDir  = flag.String("out", "./out", "output directory")
		remote  = flag.String("randsvc", "", "randomness service base url; empty computes locally")
		minted  = flag.String("minted", "111", "per-strand minted flags, e.g. 110")
	)
	flag.Parse()

	seed, ok := new(big.Int).SetString(*seedStr, 10)
	if !ok || seed.Sign() < 0 {
		log.Fatalf("bad -seed %q", *seedStr)
	}
	mintedFlags, err := artwork.ParseMinted(*minted)
	if err != nil {
		log.Fatal(err)
	}

	var port randomness.Port = randomness.NewLocal()
	if *remote != "" {
		port = randomness.NewRemote(*remote)
	}

	cfg := artwork.DefaultConfig()
	cfg.CanvasWidth = *width
	cfg.CanvasHeight = *height

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	art, err := artwork.Generate(ctx, port, seed, cfg, mintedFlags)
	if err != nil {
		log.Fatal(err)
	}

	svg := artwork.RenderSVG(art)
	meta, err := json.MarshalIndent(art.Metadata(len(svg)), "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	base := filepath.Join(*outDir, seed.String())
	if err := os.WriteFile(base+".svg", svg, 0o644); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		log.Fatal(err)
	}

	log.Printf("seed=%s steps=%d padding=%d sharpness=%d -> %s.svg (%dB)",
		seed, art.StepCount, art.Padding, art.Sharpness, base, len(svg))
}
