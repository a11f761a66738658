package seedgen

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	"github.com/okian/volunteer-match/internal/domain/model"
)

// Generation ranges.
const (
	milesPerDegreeLat = 69.0
	maxSkills         = 4
	maxPreferredTypes = 3
	minEventHour      = 7
	eventHourSpan     = 15 // 07:00 - 21:00
	minEventHours     = 2
	eventHoursSpan    = 4
	minCapacity       = 2
	capacitySpan      = 19
	geocodedShare     = 0.9
	activeShare       = 0.85
	preferenceShare   = 0.6
	slotShare         = 0.5
)

var travelRadii = []float64{5, 10, 15, 25}

type generator struct {
	cfg  Config
	rng  *rand.Rand
	src  *rand.ChaCha8
	seed repository.Seed
}

// Generate builds a random seed fixture from cfg.
func Generate(ctx context.Context, cfg Config) (repository.Seed, error) {
	if err := cfg.Validate(); err != nil {
		return repository.Seed{}, err
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	src := rand.NewChaCha8(seedBytes(cfg.RandSeed))
	g := &generator{
		cfg:  cfg,
		rng:  rand.New(src),
		src:  src,
		seed: repository.Seed{
			Volunteers: make([]model.Volunteer, 0, cfg.Volunteers),
			Events:     make([]model.Event, 0, cfg.Events),
		},
	}

	for i := range cfg.Volunteers {
		if err := ctx.Err(); err != nil {
			return repository.Seed{}, fmt.Errorf("context cancelled during volunteer generation: %w", err)
		}
		v, err := g.volunteer(i)
		if err != nil {
			return repository.Seed{}, err
		}
		g.seed.Volunteers = append(g.seed.Volunteers, v)
	}
	for i := range cfg.Events {
		if err := ctx.Err(); err != nil {
			return repository.Seed{}, fmt.Errorf("context cancelled during event generation: %w", err)
		}
		e, err := g.event(i)
		if err != nil {
			return repository.Seed{}, err
		}
		g.seed.Events = append(g.seed.Events, e)
	}
	return g.seed, nil
}

func (g *generator) volunteer(i int) (model.Volunteer, error) {
	id, err := g.id("vol-")
	if err != nil {
		return model.Volunteer{}, err
	}
	v := model.Volunteer{
		ID:     id,
		Name:   fmt.Sprintf("Volunteer %d", i+1),
		Email:  fmt.Sprintf("volunteer%d@example.org", i+1),
		Skills: g.pick(model.SkillTags, 1+g.rng.IntN(maxSkills)),
		Availability: model.Availability{
			Weekdays: g.slots(),
			Weekends: g.slots(),
		},
		Location: g.location(),
		Active:   g.rng.Float64() < activeShare,
	}
	if g.rng.Float64() < preferenceShare {
		v.Preferences = model.Preferences{
			MaxDistanceMiles: travelRadii[g.rng.IntN(len(travelRadii))],
			EventTypes:       g.pick(model.CategoryTags, 1+g.rng.IntN(maxPreferredTypes)),
		}
	}
	return v, nil
}

func (g *generator) event(i int) (model.Event, error) {
	id, err := g.id("evt-")
	if err != nil {
		return model.Event{}, err
	}
	day := g.cfg.Now.AddDate(0, 0, g.rng.IntN(g.cfg.HorizonDays)+1)
	start := time.Date(day.Year(), day.Month(), day.Day(), minEventHour+g.rng.IntN(eventHourSpan), 0, 0, 0, day.Location())
	capacity := minCapacity + g.rng.IntN(capacitySpan)
	eventType := model.CategoryTags[g.rng.IntN(len(model.CategoryTags))]

	return model.Event{
		ID:                id,
		Title:             fmt.Sprintf("%s event %d", eventType, i+1),
		RequiredSkills:    g.pick(model.SkillTags, 1+g.rng.IntN(maxSkills-1)),
		StartDate:         start,
		EndDate:           start.Add(time.Duration(minEventHours+g.rng.IntN(eventHoursSpan)) * time.Hour),
		EventType:         eventType,
		Location:          g.location(),
		MaxVolunteers:     capacity,
		CurrentVolunteers: g.rng.IntN(capacity + 1),
		Status:            model.StatusUpcoming,
	}, nil
}

// location scatters a point uniformly over the disc around the center.
// A share of records is left without coordinates, like ungeocoded addresses.
func (g *generator) location() model.Location {
	loc := model.Location{City: "Generated"}
	if g.rng.Float64() >= geocodedShare {
		return loc
	}
	d := g.cfg.RadiusMiles * math.Sqrt(g.rng.Float64())
	theta := 2 * math.Pi * g.rng.Float64()
	dLat := d * math.Cos(theta) / milesPerDegreeLat
	dLng := d * math.Sin(theta) / (milesPerDegreeLat * math.Cos(g.cfg.CenterLat*math.Pi/180))
	loc.Coordinates = &model.Coordinates{Lat: g.cfg.CenterLat + dLat, Lng: g.cfg.CenterLng + dLng}
	return loc
}

func (g *generator) slots() model.Slots {
	return model.Slots{
		Morning:   g.rng.Float64() < slotShare,
		Afternoon: g.rng.Float64() < slotShare,
		Evening:   g.rng.Float64() < slotShare,
	}
}

// pick returns n distinct tags from list.
func (g *generator) pick(list []string, n int) []string {
	n = min(n, len(list))
	perm := g.rng.Perm(len(list))
	out := make([]string, n)
	for i := range n {
		out[i] = list[perm[i]]
	}
	return out
}

func (g *generator) id(prefix string) (string, error) {
	u, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return prefix + u.String(), nil
}

func seedBytes(seed uint64) [32]byte {
	var b [32]byte
	if seed == 0 {
		_, _ = crand.Read(b[:])
		return b
	}
	binary.LittleEndian.PutUint64(b[:8], seed)
	return b
}
