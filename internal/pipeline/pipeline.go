package pipeline

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/sbfarley/gauchowar/internal/config"
	"github.com/sbfarley/gauchowar/internal/logger"
	"github.com/sbfarley/gauchowar/internal/player"
	"github.com/sbfarley/gauchowar/internal/scraper"
	"github.com/sbfarley/gauchowar/internal/stats"
	"github.com/sbfarley/gauchowar/internal/war"
)

// Fetcher retrieves a page body. Failures mean "no data", never abort.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Pipeline coordinates fetching, extraction, enrichment, and WAR.
type Pipeline struct {
	cfg     *config.Config
	fetcher Fetcher
	log     *logger.Logger
	metrics *logger.Metrics
}

// New creates a Pipeline.
func New(cfg *config.Config, fetcher Fetcher, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		log:     log,
		metrics: logger.NewMetrics(),
	}
}

// Run processes every season in the configured range and returns all
// finalized player records. Years whose roster page cannot be fetched or
// parsed contribute nothing; the run itself only fails on cancellation.
func (p *Pipeline) Run(ctx context.Context) ([]*player.Record, error) {
	all := make([]*player.Record, 0)

	for year := p.cfg.Years.Start; year <= p.cfg.Years.End; year++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		records := p.processYear(ctx, year)
		p.log.Info("season processed", logger.Fields{
			"year":    year,
			"players": len(records),
		})
		all = append(all, records...)
	}

	p.log.Info("run complete", p.metrics.Snapshot())
	return all, nil
}

// processYear scrapes one season's stats page and enriches its players with
// a bounded worker pool. Records come back in roster order so downstream
// tie-breaking stays deterministic.
func (p *Pipeline) processYear(ctx context.Context, year int) []*player.Record {
	url := p.cfg.RosterURL(year)

	body := p.fetchPage(ctx, url, "roster")
	if body == nil {
		return nil
	}

	rows, err := scraper.ParseRoster(bytes.NewReader(body), p.cfg.Site.URL)
	if err != nil {
		p.log.Error("roster parse failed", logger.Fields{"year": year, "url": url}, err)
		return nil
	}

	records := make([]*player.Record, len(rows))
	sem := make(chan struct{}, p.cfg.Fetch.Workers)
	var wg sync.WaitGroup

	for i, row := range rows {
		wg.Add(1)
		go func(i int, row scraper.Row) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			records[i] = p.buildRecord(ctx, year, row)
		}(i, row)
	}
	wg.Wait()

	out := records[:0]
	for _, rec := range records {
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// buildRecord turns one roster row into a finalized record. A panic while
// processing a single player skips that player only.
func (p *Pipeline) buildRecord(ctx context.Context, year int, row scraper.Row) (rec *player.Record) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("player processing failed", logger.Fields{
				"year":   year,
				"player": row.Name,
				"panic":  r,
			}, nil)
			p.metrics.IncrCounter("players.skipped")
			rec = nil
		}
	}()

	rec = player.New(year, row.Name)
	rec.ID = row.ID
	rec.Jersey = row.Jersey
	rec.BioURL = row.BioURL
	rec.Stats = stats.Extract(row.Section, row.Cells)

	p.enrich(ctx, rec)
	war.Attach(rec)

	p.metrics.IncrCounter("players.processed")
	return rec
}

// enrich fills position and origin from the bio page. Any failure along the
// way falls back to the defaults: unknown hometown, California, in-state.
func (p *Pipeline) enrich(ctx context.Context, rec *player.Record) {
	if rec.BioURL == "" {
		rec.ApplyHometown("", "")
		return
	}

	body := p.fetchPage(ctx, rec.BioURL, "bio")
	if body == nil {
		rec.ApplyHometown("", "")
		return
	}

	bio, err := scraper.ParseBio(bytes.NewReader(body))
	if err != nil {
		p.log.Warn("bio parse failed", logger.Fields{"player": rec.Name, "url": rec.BioURL})
		rec.ApplyHometown("", "")
		return
	}

	if bio.RawPosition != "" {
		rec.SetPosition(bio.RawPosition)
	}
	rec.ApplyHometown(bio.Hometown, bio.State)
}

// fetchPage gets a URL, recording latency and failures. Returns nil on any
// error.
func (p *Pipeline) fetchPage(ctx context.Context, url, kind string) []byte {
	start := time.Now()
	body, err := p.fetcher.Get(ctx, url)
	p.metrics.RecordTiming("fetch."+kind, time.Since(start))

	if err != nil {
		p.metrics.IncrCounter("fetch." + kind + ".failures")
		p.log.Warn("page fetch failed", logger.Fields{"url": url, "kind": kind})
		return nil
	}
	return body
}
