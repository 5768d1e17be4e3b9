package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/metrics"
	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/status"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/worker"
)

// StatsRefresher recomputes the certifications_by_status gauge off the
// request path. Services call Refresh after each mutation; main calls it
// once at startup so the gauge is populated before the first write.
type StatsRefresher struct {
	r    repo.Certifications
	pool *worker.Pool
}

func NewStatsRefresher(r repo.Certifications, pool *worker.Pool) *StatsRefresher {
	return &StatsRefresher{r: r, pool: pool}
}

func (s *StatsRefresher) Refresh() {
	s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		certs, err := s.r.List(ctx)
		if err != nil {
			slog.Error("stats refresh", "err", err)
			return
		}
		metrics.SetStatusCounts(status.Count(certs, time.Now()))
	})
}
