package scheduler

import (
	"context"
	"time"

	"travelweather/internal/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Prefetcher periodically warms the forecast cache for a configured set of
// default locations so first page loads hit fresh entries.
type Prefetcher struct {
	fetcher   *services.Fetcher
	locations []string
	spec      string
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewPrefetcher(fetcher *services.Fetcher, locations []string, spec string, logger *zap.Logger) *Prefetcher {
	return &Prefetcher{
		fetcher:   fetcher,
		locations: locations,
		spec:      spec,
		cron:      cron.New(),
		logger:    logger,
	}
}

func (p *Prefetcher) Start() error {
	if len(p.locations) == 0 {
		p.logger.Info("No default locations configured, prefetcher idle")
		return nil
	}

	if _, err := p.cron.AddFunc(p.spec, p.run); err != nil {
		return err
	}
	p.cron.Start()

	p.logger.Info("Prefetcher started",
		zap.String("spec", p.spec),
		zap.Strings("locations", p.locations))

	// Warm the cache immediately on startup.
	go p.run()

	return nil
}

func (p *Prefetcher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	failures := 0

	for _, id := range p.locations {
		if _, err := p.fetcher.Fetch(ctx, id, id, services.PrimaryKeyPrefix, nil); err != nil {
			p.logger.Warn("Prefetch failed",
				zap.String("location_id", id),
				zap.Error(err))
			failures++
		}
	}

	p.logger.Info("Prefetch run completed",
		zap.Int("locations", len(p.locations)),
		zap.Int("failures", failures),
		zap.Duration("duration", time.Since(start)))
}

func (p *Prefetcher) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.logger.Info("Prefetcher stopped")
}
