// Package service composes storage and the matching engine into the
// operations exposed by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	"github.com/okian/volunteer-match/internal/domain/matching"
	"github.com/okian/volunteer-match/internal/domain/model"
	"github.com/okian/volunteer-match/internal/domain/scoring"
	"github.com/okian/volunteer-match/internal/domain/types"
	"github.com/okian/volunteer-match/internal/domain/urgency"
	"github.com/okian/volunteer-match/pkg/logger"
	"github.com/okian/volunteer-match/pkg/metrics"
)

// Service implements the API dependencies for volunteer matching.
// It holds no per-request state; every call reads fresh data from the store.
type Service struct {
	store    repository.Store
	scorer   *scoring.Scorer
	finder   *matching.Finder
	analyzer *urgency.Analyzer

	// Configuration
	weights            scoring.Weights
	defaultMaxDistance float64
	threshold          float64
	windowDays         int
	highDays           int
	fillThreshold      float64
	clock              clockwork.Clock
	seedFile           string

	logger logger.Logger
}

// New constructs a Service over store.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store:              store,
		weights:            scoring.DefaultWeights,
		defaultMaxDistance: 10,
		threshold:          matching.DefaultThreshold,
		windowDays:         7,
		highDays:           3,
		fillThreshold:      0.5,
		clock:              clockwork.NewRealClock(),
		logger:             logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.scorer = scoring.NewScorer(
		scoring.WithWeights(s.weights),
		scoring.WithDefaultMaxDistance(s.defaultMaxDistance),
	)
	s.finder = matching.NewFinder(s.scorer, matching.WithThreshold(s.threshold))
	s.analyzer = urgency.NewAnalyzer(
		urgency.WithClock(s.clock),
		urgency.WithWindowDays(s.windowDays),
		urgency.WithHighUrgencyDays(s.highDays),
		urgency.WithFillThreshold(s.fillThreshold),
	)
	return s
}

// Start loads the seed file, if one is configured.
func (s *Service) Start(ctx context.Context) error {
	if s.seedFile == "" {
		return nil
	}
	nv, ne, err := repository.LoadSeed(ctx, s.store, s.seedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	s.logger.Info(ctx, "seed data loaded",
		logger.String("file", s.seedFile),
		logger.Int("volunteers", nv),
		logger.Int("events", ne),
	)
	return nil
}

// MatchEventsForVolunteer ranks upcoming events for the volunteer with id.
func (s *Service) MatchEventsForVolunteer(ctx context.Context, volunteerID string, limit int) ([]types.EventMatch, error) {
	v, err := s.store.Volunteer(ctx, volunteerID)
	if err != nil {
		return nil, s.lookupFailed(ctx, "volunteer", volunteerID, err)
	}

	start := time.Now()
	events := s.store.UpcomingEvents(ctx)
	matches, err := s.finder.FindMatchingEvents(&v, events, limit)
	if err != nil {
		return nil, err
	}

	metrics.RecordMatchRequest(metrics.DirectionEvents, len(events), len(matches), sinceMs(start))
	s.logger.Debug(ctx, "matched events for volunteer",
		logger.String("volunteerID", volunteerID),
		logger.Int("candidates", len(events)),
		logger.Int("matches", len(matches)),
	)
	return matches, nil
}

// MatchVolunteersForEvent ranks active volunteers for the event with id.
func (s *Service) MatchVolunteersForEvent(ctx context.Context, eventID string, limit int) ([]types.VolunteerMatch, error) {
	e, err := s.store.Event(ctx, eventID)
	if err != nil {
		return nil, s.lookupFailed(ctx, "event", eventID, err)
	}

	start := time.Now()
	volunteers := s.store.ActiveVolunteers(ctx)
	matches, err := s.finder.FindMatchingVolunteers(&e, volunteers, limit)
	if err != nil {
		return nil, err
	}

	metrics.RecordMatchRequest(metrics.DirectionVolunteers, len(volunteers), len(matches), sinceMs(start))
	s.logger.Debug(ctx, "matched volunteers for event",
		logger.String("eventID", eventID),
		logger.Int("candidates", len(volunteers)),
		logger.Int("matches", len(matches)),
	)
	return matches, nil
}

// UrgentAlerts returns alerts for under-staffed upcoming events.
func (s *Service) UrgentAlerts(ctx context.Context) []types.Alert {
	alerts := s.analyzer.FindUrgentAlerts(s.store.UpcomingEvents(ctx))

	high := 0
	for _, a := range alerts {
		if a.Urgency == types.UrgencyHigh {
			high++
		}
	}
	metrics.UpdateUrgentAlerts(high, len(alerts)-high)
	s.logger.Debug(ctx, "urgent alerts computed",
		logger.Int("alerts", len(alerts)),
		logger.Int("high", high),
	)
	return alerts
}

// MatchingStats aggregates volunteer and event counters.
func (s *Service) MatchingStats(ctx context.Context) types.Stats {
	stats := s.analyzer.Stats(s.store.Volunteers(ctx), s.store.Events(ctx))
	metrics.UpdatePools(len(s.store.ActiveVolunteers(ctx)), len(s.store.UpcomingEvents(ctx)))
	return stats
}

// CalculateScore scores one volunteer against one event.
func (s *Service) CalculateScore(ctx context.Context, volunteerID, eventID string) (types.ScoreResult, error) {
	v, err := s.store.Volunteer(ctx, volunteerID)
	if err != nil {
		return types.ScoreResult{}, s.lookupFailed(ctx, "volunteer", volunteerID, err)
	}
	e, err := s.store.Event(ctx, eventID)
	if err != nil {
		return types.ScoreResult{}, s.lookupFailed(ctx, "event", eventID, err)
	}

	b := s.scorer.Breakdown(v, e)
	metrics.RecordScoreCalculated()
	s.logger.Debug(ctx, "score calculated",
		logger.String("volunteerID", volunteerID),
		logger.String("eventID", eventID),
		logger.Float64("skill", b.SkillMatch),
		logger.Bool("available", b.Available),
		logger.Float64("distanceScore", b.DistanceScore),
		logger.Bool("preferred", b.PreferenceMatch),
		logger.Float64("score", b.Score),
	)
	return types.ScoreResult{MatchScore: b.Score, Distance: b.Distance}, nil
}

// RegisterVolunteer takes one spot on the event for a known volunteer.
// The store only keeps a head count, so repeat registrations are not detected.
func (s *Service) RegisterVolunteer(ctx context.Context, eventID, volunteerID string) (model.Event, error) {
	if _, err := s.store.Volunteer(ctx, volunteerID); err != nil {
		return model.Event{}, s.lookupFailed(ctx, "volunteer", volunteerID, err)
	}

	e, err := s.store.RegisterVolunteer(ctx, eventID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		return model.Event{}, s.lookupFailed(ctx, "event", eventID, err)
	case errors.Is(err, repository.ErrEventFull):
		metrics.RecordRegistration(metrics.RegistrationFull)
		return model.Event{}, err
	case errors.Is(err, repository.ErrEventClosed):
		metrics.RecordRegistration(metrics.RegistrationClosed)
		return model.Event{}, err
	default:
		s.logger.Error(ctx, "registration failed", logger.String("eventID", eventID), logger.Error(err))
		return model.Event{}, fmt.Errorf("register for event %q: %w", eventID, err)
	}

	metrics.RecordRegistration(metrics.RegistrationAccepted)
	s.logger.Info(ctx, "volunteer registered",
		logger.String("eventID", eventID),
		logger.String("volunteerID", volunteerID),
		logger.Int("current", e.CurrentVolunteers),
		logger.Int("max", e.MaxVolunteers),
	)
	return e, nil
}

func (s *Service) lookupFailed(ctx context.Context, kind, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		metrics.RecordNotFound(kind)
		s.logger.Debug(ctx, kind+" not found", logger.String("id", id))
		return err
	}
	s.logger.Error(ctx, "lookup failed", logger.String("kind", kind), logger.String("id", id), logger.Error(err))
	return fmt.Errorf("load %s %q: %w", kind, id, err)
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
