package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-sim/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	sim, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, sim)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		finished  = make(chan struct{})
	)
	eg.Go(func() error {
		defer close(finished)
		return sim.Run(egCtx, config.Delay, config.Iterations)
	})
	eg.Go(func() error {
		reportStatus(egCtx, finished, sim, stats, config.ReportInterval)
		return nil
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		log.Fatalf("%+v", err)
	default:
		fmt.Printf("\n🏁 Finished %d generations\n", sim.Generation())
	}

	displaySummary(config, sim, stats)
}
