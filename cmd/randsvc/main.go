package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chenzhangda16/strandweave/internal/randsvc"
	"github.com/chenzhangda16/strandweave/pkg/obs"
)

func main() {
	var (
		addr = flag.String("addr", ":8091", "listen addr")
	)
	flag.Parse()

	obs.Init("randsvc")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    *addr,
		Handler: randsvc.NewServer().Handler(),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	obs.P("randsvc listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
