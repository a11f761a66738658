package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	service "github.com/okian/volunteer-match/internal/app"
	"github.com/okian/volunteer-match/internal/domain/model"
	"github.com/okian/volunteer-match/internal/domain/scoring"
	"github.com/okian/volunteer-match/internal/domain/types"
	"github.com/okian/volunteer-match/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// now is Monday 2024-01-08 08:00 local time.
var now = time.Date(2024, time.January, 8, 8, 0, 0, 0, time.Local)

var nyc = &model.Coordinates{Lat: 40.7128, Lng: -74.0060}

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func seededStore(ctx context.Context) *repository.MemoryStore {
	store := repository.NewMemoryStore()
	_ = store.PutVolunteer(ctx, model.Volunteer{
		ID:           "vol-1",
		Skills:       []string{"gardening"},
		Availability: model.Availability{Weekdays: model.Slots{Morning: true}},
		Preferences:  model.Preferences{MaxDistanceMiles: 10, EventTypes: []string{"environmental"}},
		Location:     model.Location{Coordinates: nyc},
		Active:       true,
	})
	_ = store.PutVolunteer(ctx, model.Volunteer{ID: "vol-2", Skills: []string{"medical"}, Active: true})
	_ = store.PutVolunteer(ctx, model.Volunteer{ID: "vol-3", Active: false})

	// next Monday 09:00, lightly staffed
	_ = store.PutEvent(ctx, model.Event{
		ID:                "evt-1",
		RequiredSkills:    []string{"gardening"},
		StartDate:         now.Add(7*24*time.Hour + time.Hour),
		EventType:         "environmental",
		Location:          model.Location{Coordinates: nyc},
		MaxVolunteers:     10,
		CurrentVolunteers: 1,
		Status:            model.StatusUpcoming,
	})
	// tomorrow evening, nearly empty
	_ = store.PutEvent(ctx, model.Event{
		ID:             "evt-2",
		RequiredSkills: []string{"medical"},
		StartDate:      now.Add(34 * time.Hour),
		EventType:      "healthcare",
		MaxVolunteers:  4,
		Status:         model.StatusUpcoming,
	})
	_ = store.PutEvent(ctx, model.Event{
		ID:            "evt-3",
		StartDate:     now.Add(-48 * time.Hour),
		MaxVolunteers: 4,
		Status:        model.StatusCompleted,
	})
	return store
}

func newService(store repository.Store, opts ...service.Option) *service.Service {
	opts = append([]service.Option{
		service.WithLogger(logger.Get()),
		service.WithClock(clockwork.NewFakeClockAt(now)),
	}, opts...)
	return service.New(store, opts...)
}

func TestService_MatchEventsForVolunteer(t *testing.T) {
	Convey("Given a service over a seeded store", t, func() {
		ctx := context.Background()
		svc := newService(seededStore(ctx))

		Convey("When matching events for a known volunteer", func() {
			matches, err := svc.MatchEventsForVolunteer(ctx, "vol-1", 10)

			Convey("Then only upcoming events above the threshold should be returned", func() {
				So(err, ShouldBeNil)
				So(len(matches), ShouldEqual, 1)
				So(matches[0].Event.ID, ShouldEqual, "evt-1")
				So(matches[0].MatchScore, ShouldEqual, 1.0)
				So(*matches[0].Distance, ShouldEqual, 0)
			})
		})

		Convey("When the volunteer does not exist", func() {
			_, err := svc.MatchEventsForVolunteer(ctx, "ghost", 10)

			Convey("Then a not found error should be returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_MatchVolunteersForEvent(t *testing.T) {
	Convey("Given a service over a seeded store", t, func() {
		ctx := context.Background()
		svc := newService(seededStore(ctx))

		Convey("When matching volunteers for an event", func() {
			matches, err := svc.MatchVolunteersForEvent(ctx, "evt-2", 10)

			Convey("Then inactive volunteers should never be considered", func() {
				So(err, ShouldBeNil)
				for _, m := range matches {
					So(m.Volunteer.ID, ShouldNotEqual, "vol-3")
				}
			})

			Convey("And the skilled volunteer should rank first", func() {
				So(len(matches), ShouldBeGreaterThan, 0)
				So(matches[0].Volunteer.ID, ShouldEqual, "vol-2")
				So(matches[0].Distance, ShouldBeNil)
			})
		})

		Convey("When the event does not exist", func() {
			_, err := svc.MatchVolunteersForEvent(ctx, "ghost", 10)

			Convey("Then a not found error should be returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_UrgentAlertsAndStats(t *testing.T) {
	Convey("Given a service with a frozen clock", t, func() {
		ctx := context.Background()
		svc := newService(seededStore(ctx))

		Convey("When listing urgent alerts", func() {
			alerts := svc.UrgentAlerts(ctx)

			Convey("Then only the event within a week should be flagged", func() {
				So(len(alerts), ShouldEqual, 1)
				So(alerts[0].Event.ID, ShouldEqual, "evt-2")
				So(alerts[0].DaysUntilEvent, ShouldEqual, 2)
				So(alerts[0].Urgency, ShouldEqual, types.UrgencyHigh)
				So(alerts[0].AvailableSpots, ShouldEqual, 4)
			})
		})

		Convey("When computing stats", func() {
			stats := svc.MatchingStats(ctx)

			Convey("Then counts should cover active volunteers and upcoming events", func() {
				So(stats, ShouldResemble, types.Stats{
					TotalVolunteers: 2,
					TotalEvents:     2,
					UrgentEvents:    2,
					PendingMatches:  2,
				})
			})
		})
	})
}

func TestService_CalculateScore(t *testing.T) {
	Convey("Given a service over a seeded store", t, func() {
		ctx := context.Background()
		svc := newService(seededStore(ctx))

		Convey("When scoring a perfect pair", func() {
			res, err := svc.CalculateScore(ctx, "vol-1", "evt-1")

			Convey("Then the score and distance should be reported", func() {
				So(err, ShouldBeNil)
				So(res.MatchScore, ShouldEqual, 1.0)
				So(res.Distance, ShouldNotBeNil)
			})
		})

		Convey("When scoring a pair without coordinates", func() {
			res, err := svc.CalculateScore(ctx, "vol-2", "evt-2")

			Convey("Then distance should be omitted", func() {
				So(err, ShouldBeNil)
				So(res.Distance, ShouldBeNil)
				So(res.MatchScore, ShouldBeBetweenOrEqual, 0, 1)
			})
		})

		Convey("When either id is unknown", func() {
			_, verr := svc.CalculateScore(ctx, "ghost", "evt-1")
			_, eerr := svc.CalculateScore(ctx, "vol-1", "ghost")

			Convey("Then not found should be reported", func() {
				So(errors.Is(verr, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(eerr, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service with skill-only weights", t, func() {
		ctx := context.Background()
		svc := newService(seededStore(ctx), service.WithWeights(scoring.Weights{Skill: 1}))

		Convey("Then a skill mismatch should score zero", func() {
			res, err := svc.CalculateScore(ctx, "vol-1", "evt-2")
			So(err, ShouldBeNil)
			So(res.MatchScore, ShouldEqual, 0)
		})
	})
}

func TestService_RegisterVolunteer(t *testing.T) {
	Convey("Given a service over a seeded store", t, func() {
		ctx := context.Background()
		store := seededStore(ctx)
		svc := newService(store)

		Convey("When a known volunteer registers for an open event", func() {
			e, err := svc.RegisterVolunteer(ctx, "evt-2", "vol-2")

			Convey("Then one spot should be taken", func() {
				So(err, ShouldBeNil)
				So(e.CurrentVolunteers, ShouldEqual, 1)
				stored, _ := store.Event(ctx, "evt-2")
				So(stored.CurrentVolunteers, ShouldEqual, 1)
			})
		})

		Convey("When the event fills up", func() {
			for range 4 {
				_, err := svc.RegisterVolunteer(ctx, "evt-2", "vol-2")
				So(err, ShouldBeNil)
			}
			_, err := svc.RegisterVolunteer(ctx, "evt-2", "vol-1")

			Convey("Then further registrations should be refused", func() {
				So(errors.Is(err, repository.ErrEventFull), ShouldBeTrue)
			})

			Convey("And the event should drop out of the alerts", func() {
				for _, a := range svc.UrgentAlerts(ctx) {
					So(a.Event.ID, ShouldNotEqual, "evt-2")
				}
			})
		})

		Convey("When the event is completed", func() {
			_, err := svc.RegisterVolunteer(ctx, "evt-3", "vol-1")

			Convey("Then it should be closed", func() {
				So(errors.Is(err, repository.ErrEventClosed), ShouldBeTrue)
			})
		})

		Convey("When either id is unknown", func() {
			_, verr := svc.RegisterVolunteer(ctx, "evt-1", "ghost")
			_, eerr := svc.RegisterVolunteer(ctx, "ghost", "vol-1")

			Convey("Then not found should be reported", func() {
				So(errors.Is(verr, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(eerr, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a seed file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "seed.yaml")
		seed := "volunteers:\n  - id: v1\n    active: true\nevents:\n  - id: e1\n    max_volunteers: 3\n"
		So(os.WriteFile(path, []byte(seed), 0o600), ShouldBeNil)

		Convey("When starting the service", func() {
			store := repository.NewMemoryStore()
			svc := newService(store, service.WithSeedFile(path))
			err := svc.Start(ctx)

			Convey("Then the store should be populated", func() {
				So(err, ShouldBeNil)
				_, verr := store.Volunteer(ctx, "v1")
				e, eerr := store.Event(ctx, "e1")
				So(verr, ShouldBeNil)
				So(eerr, ShouldBeNil)
				So(e.Status, ShouldEqual, model.StatusUpcoming)
			})
		})

		Convey("When the seed file is missing", func() {
			svc := newService(repository.NewMemoryStore(), service.WithSeedFile("/non/existent.yaml"))

			Convey("Then start should fail", func() {
				So(svc.Start(ctx), ShouldNotBeNil)
			})
		})

		Convey("When no seed file is configured", func() {
			Convey("Then start should be a no-op", func() {
				So(newService(repository.NewMemoryStore()).Start(ctx), ShouldBeNil)
			})
		})
	})
}
