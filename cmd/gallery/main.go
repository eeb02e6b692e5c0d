package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chenzhangda16/strandweave/internal/strand/artwork"
	"github.com/chenzhangda16/strandweave/internal/strand/events"
	"github.com/chenzhangda16/strandweave/internal/strand/gallery"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
	"github.com/chenzhangda16/strandweave/internal/strand/store"
	"github.com/chenzhangda16/strandweave/internal/strand/writer"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	var (
		from    = flag.Int64("from", 1, "first seed (inclusive)")
		to      = flag.Int64("to", 101, "last seed (exclusive)")
		outDir  = flag.String("out", "./gallery", "output directory")
		workers = flag.Int("workers", 4, "parallel generations")
		remote  = flag.String("randsvc", "", "randomness service base url; empty computes locally")
		minted  = flag.String("minted", "111", "per-strand minted flags")

		// Optional persistence / events
		dbPath  = flag.String("db", "", "rocksdb artifact store path; empty disables")
		fetch   = flag.String("fetch", "", "read one stored artifact by seed and write it to -out (requires -db)")
		usePG   = flag.Bool("pg", false, "write the artifact ledger (reads PG_DSN)")
		brokers = flag.String("brokers", "", "kafka brokers, comma-separated; empty disables")
		topic   = flag.String("topic", "strandweave.artifacts", "kafka topic for mint events")
	)
	flag.Parse()

	mintedFlags, err := artwork.ParseMinted(*minted)
	if err != nil {
		log.Fatal(err)
	}

	var port randomness.Port = randomness.NewLocal()
	if *remote != "" {
		port = randomness.NewRemote(*remote)
	}

	r := &gallery.Runner{
		Port:    port,
		Cfg:     artwork.DefaultConfig(),
		Minted:  mintedFlags,
		OutDir:  *outDir,
		Workers: *workers,
	}

	if *dbPath != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()
		r.Store = st
	}

	// Fetch mode: serve one artifact back out of the store, no generation.
	if *fetch != "" {
		if r.Store == nil {
			log.Fatal("-fetch requires -db")
		}
		seed, ok := new(big.Int).SetString(*fetch, 10)
		if !ok || seed.Sign() < 0 {
			log.Fatalf("bad -fetch seed %q", *fetch)
		}
		svg, err := r.Store.GetSVG(seed)
		if err != nil {
			log.Fatal(err)
		}
		meta, err := r.Store.GetMeta(seed)
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
		log.Printf("fetched seed=%s -> %s.svg (%dB)", seed, base, len(svg))
		return
	}

	if *to <= *from {
		log.Fatalf("bad seed range [%d, %d)", *from, *to)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *usePG {
		led, err := writer.OpenLedger(os.Getenv("PG_DSN"))
		if err != nil {
			log.Fatal(err)
		}
		defer led.Close()
		if err := led.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		r.Ledger = led
	}

	if *brokers != "" {
		sink, err := events.NewKafkaSink(strings.Split(*brokers, ","), *topic, nil)
		if err != nil {
			log.Fatal(err)
		}
		defer sink.Close()
		r.Sink = sink
	}

	if err := r.Run(ctx, *from, *to); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("gallery done: %d artifacts -> %s", *to-*from, *outDir)
}
