// Package relay builds optimal relay lineups from a club's best recorded
// times.
package relay

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/metrics"
	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

var validate = validator.New()

// Leg stroke orders. Freestyle relays swim four freestyle legs; medley
// relays swim back, breast, fly, free.
var (
	freestyleLegStrokes = [4]sdif.Stroke{
		sdif.Freestyle, sdif.Freestyle, sdif.Freestyle, sdif.Freestyle,
	}
	medleyLegStrokes = [4]sdif.Stroke{
		sdif.Backstroke, sdif.Breaststroke, sdif.Butterfly, sdif.Freestyle,
	}
)

// Config holds relay generation settings.
type Config struct {
	RelayDate time.Time `validate:"required"`
	NumRelays int       `validate:"gt=0"`
	Sex       sdif.Sex
	Course    sdif.Course
	MinAge    int `validate:"gte=0"`
	MaxAge    int `validate:"gtefield=MinAge"`
}

// Generator builds relays for one club under fixed settings. Swimmers can
// be excluded between runs to model absences.
type Generator struct {
	club     *models.Club
	cfg      Config
	excluded map[*models.Swimmer]struct{}
	log      *logrus.Logger
}

// NewGenerator validates cfg and returns a generator for the club.
func NewGenerator(club *models.Club, cfg Config, log *logrus.Logger) (*Generator, error) {
	if club == nil {
		return nil, fmt.Errorf("%w: club is nil", models.ErrInvalidInput)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	return &Generator{
		club:     club,
		cfg:      cfg,
		excluded: make(map[*models.Swimmer]struct{}),
		log:      log,
	}, nil
}

// Config returns the generator's settings.
func (g *Generator) Config() Config {
	return g.cfg
}

// ExcludeSwimmer removes a swimmer from consideration. Excluding an already
// excluded swimmer does nothing.
func (g *Generator) ExcludeSwimmer(s *models.Swimmer) {
	g.excluded[s] = struct{}{}
}

// IncludeSwimmer restores a previously excluded swimmer. It is an error to
// include a swimmer who was not excluded.
func (g *Generator) IncludeSwimmer(s *models.Swimmer) error {
	if _, ok := g.excluded[s]; !ok {
		return fmt.Errorf("%w: swimmer %s is not excluded", models.ErrInvalidInput, s.FullName())
	}
	delete(g.excluded, s)
	return nil
}

// ExcludedSwimmers returns the currently excluded swimmers.
func (g *Generator) ExcludedSwimmers() []*models.Swimmer {
	out := make([]*models.Swimmer, 0, len(g.excluded))
	for s := range g.excluded {
		out = append(out, s)
	}
	return out
}

// LegEvents returns the four individual leg events of a relay event.
func LegEvents(relayEvent sdif.Event) ([4]sdif.Event, error) {
	var legs [4]sdif.Event
	var strokes [4]sdif.Stroke
	switch relayEvent.Stroke() {
	case sdif.FreestyleRelay:
		strokes = freestyleLegStrokes
	case sdif.MedleyRelay:
		strokes = medleyLegStrokes
	default:
		return legs, fmt.Errorf("%w: %v is not a relay event", models.ErrInvalidInput, relayEvent)
	}

	legDist := relayEvent.Distance() / 4
	for i, stroke := range strokes {
		leg, err := sdif.NewEvent(legDist, stroke, relayEvent.Course())
		if err != nil {
			return legs, err
		}
		legs[i] = leg
	}
	return legs, nil
}

// RelayTime sums the four swimmers' best leg times for the relay event.
func RelayTime(relay []*models.Swimmer, event sdif.Event) (swimtime.Time, error) {
	if len(relay) != 4 {
		return swimtime.Time{}, fmt.Errorf("%w: relay has %d swimmers", models.ErrInvalidInput, len(relay))
	}
	legs, err := LegEvents(event)
	if err != nil {
		return swimtime.Time{}, err
	}

	var total swimtime.Time
	for i, s := range relay {
		best := s.BestMeetResult(legs[i])
		if best == nil {
			return swimtime.Time{}, fmt.Errorf("%w: %s has no time for %v", models.ErrInvalidInput, s.FullName(), legs[i])
		}
		total, err = total.Add(best.FinalTime)
		if err != nil {
			return swimtime.Time{}, err
		}
	}
	return total, nil
}

// candidate pairs a swimmer with their best time for one leg.
type candidate struct {
	swimmer *models.Swimmer
	time    swimtime.Time
}

// GenerateRelays builds up to NumRelays lineups for the relay event,
// fastest first. Each returned relay lists its swimmers in leg order, and a
// swimmer appears in at most one relay. When the remaining pool cannot fill
// a relay the corresponding slot is an empty lineup.
func (g *Generator) GenerateRelays(event sdif.Event) ([][]*models.Swimmer, error) {
	start := time.Now()
	legs, err := LegEvents(event)
	if err != nil {
		return nil, err
	}
	metrics.RelayGenerationsTotal.Inc()
	defer func() {
		metrics.RelayGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	// Collect sorted candidate lists per leg.
	var pools [4][]candidate
	for _, swimmer := range g.club.Swimmers {
		if g.cfg.Sex != sdif.Mixed && swimmer.Sex != g.cfg.Sex {
			continue
		}
		if _, ok := g.excluded[swimmer]; ok {
			continue
		}
		minAge, maxAge := swimmer.AgeRange(g.cfg.RelayDate)
		if minAge > g.cfg.MaxAge || maxAge < g.cfg.MinAge {
			continue
		}
		for i, leg := range legs {
			if best := swimmer.BestMeetResult(leg); best != nil {
				pools[i] = append(pools[i], candidate{swimmer: swimmer, time: best.FinalTime})
			}
		}
	}
	for i := range pools {
		sort.SliceStable(pools[i], func(a, b int) bool {
			return pools[i][a].time.Less(pools[i][b].time)
		})
	}

	relays := make([][]*models.Swimmer, 0, g.cfg.NumRelays)
	for len(relays) < g.cfg.NumRelays {
		lineup := g.bestLineup(pools)
		if lineup == nil {
			relays = append(relays, []*models.Swimmer{})
			continue
		}

		// Each swimmer swims in one relay only.
		used := make(map[*models.Swimmer]struct{}, 4)
		for _, s := range lineup {
			used[s] = struct{}{}
		}
		for i := range pools {
			kept := pools[i][:0]
			for _, c := range pools[i] {
				if _, ok := used[c.swimmer]; !ok {
					kept = append(kept, c)
				}
			}
			pools[i] = kept
		}

		relays = append(relays, lineup)
	}

	g.log.WithFields(logrus.Fields{
		"event":  event.String(),
		"relays": len(relays),
	}).Debug("Generated relays")
	return relays, nil
}

// bestLineup searches the top candidates of each leg for the fastest
// combination of four distinct swimmers. Mixed relays must field exactly
// two male and two female swimmers.
func (g *Generator) bestLineup(pools [4][]candidate) []*models.Swimmer {
	var tops [4][]candidate
	for i := range pools {
		if len(pools[i]) == 0 {
			return nil
		}
		tops[i] = g.topCandidates(pools[i])
	}

	var best []*models.Swimmer
	bestTotal := 0
	for _, c1 := range tops[0] {
		for _, c2 := range tops[1] {
			for _, c3 := range tops[2] {
				for _, c4 := range tops[3] {
					combo := [4]candidate{c1, c2, c3, c4}
					if !distinctSwimmers(combo) {
						continue
					}
					if g.cfg.Sex == sdif.Mixed && !evenSexSplit(combo) {
						continue
					}
					total := 0
					for _, c := range combo {
						total += hundredths(c.time)
					}
					if best == nil || total < bestTotal {
						best = []*models.Swimmer{c1.swimmer, c2.swimmer, c3.swimmer, c4.swimmer}
						bestTotal = total
					}
				}
			}
		}
	}
	return best
}

// topCandidates takes the fastest four candidates of a leg. For mixed
// relays it takes the fastest two of each sex instead, so the product
// search always sees lineups that can satisfy the sex split.
func (g *Generator) topCandidates(pool []candidate) []candidate {
	if g.cfg.Sex != sdif.Mixed {
		if len(pool) > 4 {
			return pool[:4]
		}
		return pool
	}
	var top []candidate
	males, females := 0, 0
	for _, c := range pool {
		if len(top) == 4 {
			break
		}
		switch c.swimmer.Sex {
		case sdif.Male:
			if males < 2 {
				males++
				top = append(top, c)
			}
		case sdif.Female:
			if females < 2 {
				females++
				top = append(top, c)
			}
		}
	}
	return top
}

func distinctSwimmers(combo [4]candidate) bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if combo[i].swimmer == combo[j].swimmer {
				return false
			}
		}
	}
	return true
}

func evenSexSplit(combo [4]candidate) bool {
	males := 0
	for _, c := range combo {
		if c.swimmer.Sex == sdif.Male {
			males++
		}
	}
	return males == 2
}

func hundredths(t swimtime.Time) int {
	return (t.Minute()*60+t.Second())*100 + t.Hundredth()
}
