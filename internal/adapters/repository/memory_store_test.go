package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	"github.com/okian/volunteer-match/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		n := 0
		store := repository.NewMemoryStore(repository.WithIDGenerator(func() string {
			n++
			return "gen-" + string(rune('0'+n))
		}))

		Convey("When storing volunteers", func() {
			So(store.PutVolunteer(ctx, model.Volunteer{ID: "v1", Active: true, Skills: []string{"cooking"}}), ShouldBeNil)
			So(store.PutVolunteer(ctx, model.Volunteer{Name: "no id"}), ShouldBeNil)

			Convey("Then they should be retrievable by id", func() {
				v, err := store.Volunteer(ctx, "v1")
				So(err, ShouldBeNil)
				So(v.Skills, ShouldResemble, []string{"cooking"})
			})

			Convey("And missing ids should be generated", func() {
				v, err := store.Volunteer(ctx, "gen-1")
				So(err, ShouldBeNil)
				So(v.Name, ShouldEqual, "no id")
			})

			Convey("And only active volunteers should be candidates", func() {
				So(len(store.Volunteers(ctx)), ShouldEqual, 2)
				active := store.ActiveVolunteers(ctx)
				So(len(active), ShouldEqual, 1)
				So(active[0].ID, ShouldEqual, "v1")
			})

			Convey("And returned records should be copies", func() {
				v, _ := store.Volunteer(ctx, "v1")
				v.Skills[0] = "changed"
				again, _ := store.Volunteer(ctx, "v1")
				So(again.Skills[0], ShouldEqual, "cooking")
			})
		})

		Convey("When looking up unknown records", func() {
			_, verr := store.Volunteer(ctx, "nope")
			_, eerr := store.Event(ctx, "nope")

			Convey("Then ErrNotFound should be returned", func() {
				So(errors.Is(verr, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(eerr, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When storing events", func() {
			So(store.PutEvent(ctx, model.Event{ID: "e1", MaxVolunteers: 2}), ShouldBeNil)
			So(store.PutEvent(ctx, model.Event{ID: "e2", MaxVolunteers: 2, Status: model.StatusCompleted}), ShouldBeNil)

			Convey("Then an empty status should default to upcoming", func() {
				e, err := store.Event(ctx, "e1")
				So(err, ShouldBeNil)
				So(e.Status, ShouldEqual, model.StatusUpcoming)
			})

			Convey("And only upcoming events should be candidates", func() {
				up := store.UpcomingEvents(ctx)
				So(len(up), ShouldEqual, 1)
				So(up[0].ID, ShouldEqual, "e1")
				So(len(store.Events(ctx)), ShouldEqual, 2)
			})

			Convey("And over-filled events should be rejected", func() {
				err := store.PutEvent(ctx, model.Event{ID: "bad", MaxVolunteers: 1, CurrentVolunteers: 2})
				So(errors.Is(err, repository.ErrInvalidSeed), ShouldBeTrue)
			})
		})

		Convey("When registering volunteers concurrently", func() {
			So(store.PutEvent(ctx, model.Event{ID: "e1", MaxVolunteers: 5}), ShouldBeNil)

			var wg sync.WaitGroup
			var mu sync.Mutex
			full := 0
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := store.RegisterVolunteer(ctx, "e1"); errors.Is(err, repository.ErrEventFull) {
						mu.Lock()
						full++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			Convey("Then the count should never exceed capacity", func() {
				e, _ := store.Event(ctx, "e1")
				So(e.CurrentVolunteers, ShouldEqual, 5)
				So(full, ShouldEqual, 15)
			})

			Convey("And unknown events should not be found", func() {
				_, err := store.RegisterVolunteer(ctx, "missing")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When registering for an event that is no longer upcoming", func() {
			So(store.PutEvent(ctx, model.Event{ID: "done", MaxVolunteers: 5, Status: model.StatusCompleted}), ShouldBeNil)
			_, err := store.RegisterVolunteer(ctx, "done")

			Convey("Then it should be rejected as closed", func() {
				So(errors.Is(err, repository.ErrEventClosed), ShouldBeTrue)
				e, _ := store.Event(ctx, "done")
				So(e.CurrentVolunteers, ShouldEqual, 0)
			})
		})
	})
}

const seedYAML = `
volunteers:
  - id: vol-1
    name: Dana
    active: true
    skills: [gardening, cooking]
    availability:
      weekdays: {morning: true, afternoon: false, evening: false}
      weekends: {morning: false, afternoon: true, evening: false}
    preferences:
      max_distance_miles: 15
      event_types: [environmental]
    location:
      city: New York
      coordinates: {lat: 40.7128, lng: -74.0060}
events:
  - id: evt-1
    title: Park cleanup
    required_skills: [gardening]
    start_date: 2024-01-15T09:00:00Z
    event_type: environmental
    max_volunteers: 10
    current_volunteers: 2
    status: upcoming
`

func TestSeed(t *testing.T) {
	Convey("Given a YAML seed", t, func() {
		ctx := context.Background()

		Convey("When parsing it", func() {
			seed, err := repository.ParseSeed([]byte(seedYAML))

			Convey("Then every field should be decoded", func() {
				So(err, ShouldBeNil)
				So(len(seed.Volunteers), ShouldEqual, 1)
				v := seed.Volunteers[0]
				So(v.Active, ShouldBeTrue)
				So(v.Availability.Weekdays.Morning, ShouldBeTrue)
				So(v.Availability.Weekends.Afternoon, ShouldBeTrue)
				So(v.Preferences.MaxDistanceMiles, ShouldEqual, 15)
				So(v.Location.Coordinates, ShouldNotBeNil)
				So(v.Location.Coordinates.Lat, ShouldEqual, 40.7128)

				e := seed.Events[0]
				So(e.StartDate.Equal(time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)), ShouldBeTrue)
				So(e.Status, ShouldEqual, model.StatusUpcoming)
				So(e.CurrentVolunteers, ShouldEqual, 2)
			})
		})

		Convey("When loading it from a file", func() {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			So(os.WriteFile(path, []byte(seedYAML), 0o600), ShouldBeNil)
			store := repository.NewMemoryStore()

			nv, ne, err := repository.LoadSeed(ctx, store, path)

			Convey("Then the store should be populated", func() {
				So(err, ShouldBeNil)
				So(nv, ShouldEqual, 1)
				So(ne, ShouldEqual, 1)
				So(len(store.Volunteers(ctx)), ShouldEqual, 1)
				So(len(store.Events(ctx)), ShouldEqual, 1)
			})
		})

		Convey("When the file does not exist", func() {
			_, _, err := repository.LoadSeed(ctx, repository.NewMemoryStore(), "/non/existent/seed.yaml")

			Convey("Then an error should be returned", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the YAML is malformed", func() {
			_, err := repository.ParseSeed([]byte("volunteers: ["))

			Convey("Then ErrInvalidSeed should be returned", func() {
				So(errors.Is(err, repository.ErrInvalidSeed), ShouldBeTrue)
			})
		})

		Convey("When a volunteer omits the active key", func() {
			seed, err := repository.ParseSeed([]byte("volunteers:\n  - id: v1\n  - id: v2\n    active: false\n"))

			Convey("Then it should default to active", func() {
				So(err, ShouldBeNil)
				So(seed.Volunteers[0].Active, ShouldBeTrue)
				So(seed.Volunteers[1].Active, ShouldBeFalse)
			})
		})

		Convey("When records use tags outside the vocabularies", func() {
			cases := []struct {
				name string
				seed repository.Seed
			}{
				{"volunteer skill", repository.Seed{Volunteers: []model.Volunteer{{ID: "v", Skills: []string{"juggling"}}}}},
				{"preferred event type", repository.Seed{Volunteers: []model.Volunteer{{ID: "v", Preferences: model.Preferences{EventTypes: []string{"parties"}}}}}},
				{"event type", repository.Seed{Events: []model.Event{{ID: "e", MaxVolunteers: 1, EventType: "not-a-category"}}}},
				{"required skill", repository.Seed{Events: []model.Event{{ID: "e", MaxVolunteers: 1, RequiredSkills: []string{"juggling"}}}}},
			}
			for _, tc := range cases {
				Convey("Then an unknown "+tc.name+" should be rejected", func() {
					store := repository.NewMemoryStore()
					_, _, err := repository.Apply(ctx, store, tc.seed)
					So(errors.Is(err, repository.ErrInvalidSeed), ShouldBeTrue)
					So(store.Volunteers(ctx), ShouldBeEmpty)
					So(store.Events(ctx), ShouldBeEmpty)
				})
			}
		})

		Convey("When one event is invalid after valid volunteers", func() {
			store := repository.NewMemoryStore()
			seed := repository.Seed{
				Volunteers: []model.Volunteer{{ID: "v", Skills: []string{"cooking"}}},
				Events:     []model.Event{{ID: "e", MaxVolunteers: 1, EventType: "bogus"}},
			}
			_, _, err := repository.Apply(ctx, store, seed)

			Convey("Then nothing should be written", func() {
				So(errors.Is(err, repository.ErrInvalidSeed), ShouldBeTrue)
				So(store.Volunteers(ctx), ShouldBeEmpty)
			})
		})

		Convey("When an event has an unknown status", func() {
			seed := repository.Seed{Events: []model.Event{{ID: "x", MaxVolunteers: 1, Status: "paused"}}}
			_, _, err := repository.Apply(ctx, repository.NewMemoryStore(), seed)

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, repository.ErrInvalidSeed), ShouldBeTrue)
			})
		})
	})
}
