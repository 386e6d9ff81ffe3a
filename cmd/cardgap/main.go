// Command cardgap tracks sports-card sold prices: it scans eBay sold
// listings, extracts structured card fields from the free-text titles, and
// maintains the PSA10/raw price multiplier per card.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/guarzo/cardgap/internal/backfill"
	"github.com/guarzo/cardgap/internal/cache"
	"github.com/guarzo/cardgap/internal/config"
	"github.com/guarzo/cardgap/internal/ebay"
	"github.com/guarzo/cardgap/internal/model"
	"github.com/guarzo/cardgap/internal/report"
	"github.com/guarzo/cardgap/internal/sport"
	"github.com/guarzo/cardgap/internal/store"
	"github.com/guarzo/cardgap/internal/terms"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: cardgap <command> [flags]

commands:
  scan      search eBay sold listings for a term and store new cards
  backfill  re-run extraction over every stored card
  sports    detect sports for cards still marked Unknown
  prices    refresh sold-price averages and multipliers
  export    write the tracked table as CSV
  watch     run backfill, sports and prices on a schedule
`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("cardgap: %v", err)
	}
	defer app.store.Close()

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if ctx.Err() != nil {
			log.Println("cardgap: stopped")
			return
		}
		log.Fatalf("cardgap: %v", err)
	}
}

type app struct {
	cfg      config.Config
	store    *store.Store
	dicts    *terms.Dictionaries
	detector *sport.Detector
	ebay     *ebay.Client
}

func newApp(cfg config.Config) (*app, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	dicts := terms.New()
	overrides, err := terms.LoadOverrides(cfg.OverridesPath)
	if err != nil {
		log.Printf("warning: %v", err)
	} else if overrides != nil {
		dicts = dicts.WithOverrides(overrides)
	}

	sportCache := cache.New(cfg.CachePath)
	detector := sport.NewDetector(sport.NewClient(cfg.SportsAPIBase, cfg.SportsAPIKey), sportCache)

	return &app{
		cfg:      cfg,
		store:    st,
		dicts:    dicts,
		detector: detector,
		ebay:     ebay.New(cfg.EbayBaseURL),
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "scan":
		return a.scan(ctx, args)
	case "backfill":
		tally, err := backfill.ReExtract(ctx, a.store, a.dicts, true)
		log.Printf("backfill: %s", tally)
		return err
	case "sports":
		tally, err := backfill.DetectSports(ctx, a.store, a.detector, true)
		log.Printf("sports: %s", tally)
		return err
	case "prices":
		tally, err := backfill.RefreshPrices(ctx, a.store, a.ebay, true)
		log.Printf("prices: %s", tally)
		return err
	case "export":
		return a.export(ctx, args)
	case "watch":
		return a.watch(ctx)
	default:
		usage()
		return nil
	}
}

func (a *app) scan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	term := fs.String("q", "", "search term (required)")
	fs.Parse(args)
	if *term == "" {
		return fmt.Errorf("scan: -q is required")
	}

	dicts := backfill.LearnDictionaries(ctx, a.store, a.dicts)
	tally, err := backfill.Scan(ctx, a.store, a.ebay, a.detector, dicts, *term)
	log.Printf("scan %q: %s", *term, tally)
	return err
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	bySport := fs.String("sport", "", "only cards for this sport")
	fs.Parse(args)

	var cards []model.Card
	var err error
	if *bySport != "" {
		cards, err = a.store.BySport(ctx, *bySport)
	} else {
		cards, err = a.store.All(ctx)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}
	return report.WriteCSV(w, cards)
}

// watch runs the maintenance drivers on the configured cron schedule until
// interrupted.
func (a *app) watch(ctx context.Context) error {
	c := cron.New()

	_, err := c.AddFunc(a.cfg.Schedule, func() {
		if tally, err := backfill.ReExtract(ctx, a.store, a.dicts, false); err != nil {
			log.Printf("watch backfill: %v", err)
		} else {
			log.Printf("watch backfill: %s", tally)
		}
		if tally, err := backfill.DetectSports(ctx, a.store, a.detector, false); err != nil {
			log.Printf("watch sports: %v", err)
		} else {
			log.Printf("watch sports: %s", tally)
		}
		if tally, err := backfill.RefreshPrices(ctx, a.store, a.ebay, false); err != nil {
			log.Printf("watch prices: %v", err)
		} else {
			log.Printf("watch prices: %s", tally)
		}
	})
	if err != nil {
		return fmt.Errorf("bad schedule %q: %w", a.cfg.Schedule, err)
	}

	log.Printf("watching on schedule %q", a.cfg.Schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
