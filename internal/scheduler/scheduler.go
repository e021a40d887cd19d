package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// TeamRefresher reloads one sport's team directory.
type TeamRefresher interface {
	RefreshTeams(ctx context.Context, sport string) (int, error)
}

// Sweeper drops expired cache entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

type Options struct {
	Location        *time.Location
	Sports          []string
	RefreshInterval time.Duration
	RefreshTimeout  time.Duration
	// SweepInterval is ignored when Sweeper is nil.
	SweepInterval time.Duration
	Sweeper       Sweeper
}

type Scheduler struct {
	s         gocron.Scheduler
	refresher TeamRefresher
	opts      Options
}

func NewScheduler(refresher TeamRefresher, opts Options) (*Scheduler, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RefreshTimeout == 0 {
		opts.RefreshTimeout = 30 * time.Second
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(opts.Location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		refresher: refresher,
		opts:      opts,
	}, nil
}

func (s *Scheduler) Start() error {
	for _, sport := range s.opts.Sports {
		// Team directory - loaded at startup, then every RefreshInterval
		_, err := s.s.NewJob(
			gocron.DurationJob(s.opts.RefreshInterval),
			gocron.NewTask(s.refreshTeams, sport),
			gocron.WithStartAt(gocron.WithStartImmediately()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithName("refresh-teams-"+sport),
		)
		if err != nil {
			return fmt.Errorf("failed to create team refresh job for %s: %w", sport, err)
		}
	}

	if s.opts.Sweeper != nil && s.opts.SweepInterval > 0 {
		_, err := s.s.NewJob(
			gocron.DurationJob(s.opts.SweepInterval),
			gocron.NewTask(s.sweepCache),
			gocron.WithName("sweep-cache"),
		)
		if err != nil {
			return fmt.Errorf("failed to create cache sweep job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// Jobs lists the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	var names []string
	for _, j := range s.s.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) refreshTeams(sport string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.RefreshTimeout)
	defer cancel()

	n, err := s.refresher.RefreshTeams(ctx, sport)
	if err != nil {
		slog.Error("Failed to refresh team directory", "sport", sport, "error", err)
		return
	}
	slog.Info("Refreshed team directory", "sport", sport, "teams", n)
}

func (s *Scheduler) sweepCache() {
	if removed := s.opts.Sweeper.Sweep(); removed > 0 {
		slog.Debug("Swept expired cache entries", "removed", removed)
	}
}
