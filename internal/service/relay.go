package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/relay"
	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/standards"
	"github.com/yourusername/swimbase/internal/swimtime"
)

// relayEventTypes maps the accepted event-type selectors to the relay
// event they stand for. The course comes from the request.
var relayEventTypes = map[string]struct {
	distance int
	stroke   sdif.Stroke
}{
	"4x50_FREE":    {200, sdif.FreestyleRelay},
	"4x50_MEDLEY":  {200, sdif.MedleyRelay},
	"4x100_FREE":   {400, sdif.FreestyleRelay},
	"4x100_MEDLEY": {400, sdif.MedleyRelay},
	"4x200_FREE":   {800, sdif.FreestyleRelay},
}

// courseNames maps the course selectors of relay requests. Interchange
// single-letter codes are accepted as well.
var courseNames = map[string]sdif.Course{
	"SCY": sdif.SCY,
	"SCM": sdif.SCM,
	"LCM": sdif.LCM,
}

// RelayParams selects the club and event to build relays for.
// ExcludedIDs holds 14-character registration ids or 12-character short
// ids of swimmers to leave out.
type RelayParams struct {
	ClubCode    string
	EventType   string
	Sex         string
	Course      string
	RelayDate   time.Time
	NumRelays   int
	MinAge      int
	MaxAge      int
	ExcludedIDs []string
}

// Relay is one generated lineup in leg order, annotated with its
// projected total time and the standards that time qualifies for at the
// requested minimum age. Empty lineups carry no annotations.
type Relay struct {
	Swimmers  []*models.Swimmer
	TotalTime swimtime.Time
	Standards []standards.Standard
}

// RelayService generates relay lineups for a club.
type RelayService struct {
	store *Store
	log   *logrus.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(store *Store, log *logrus.Logger) *RelayService {
	return &RelayService{store: store, log: log}
}

// EventTypes returns the accepted event-type selectors, sorted.
func EventTypes() []string {
	types := make([]string, 0, len(relayEventTypes))
	for name := range relayEventTypes {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// GenerateRelays builds the requested relays and annotates each full
// lineup with its time and qualified standards.
func (s *RelayService) GenerateRelays(params RelayParams) ([]Relay, error) {
	db, err := s.store.Database()
	if err != nil {
		return nil, err
	}
	catalog, err := s.store.Standards()
	if err != nil {
		return nil, err
	}

	club := db.FindClub(strings.ToUpper(strings.TrimSpace(params.ClubCode)))
	if club == nil {
		return nil, fmt.Errorf("%w: club %q", models.ErrNotFound, params.ClubCode)
	}

	event, err := resolveRelayEvent(params.EventType, params.Course)
	if err != nil {
		return nil, err
	}
	sex, ok := sdif.ParseSex(params.Sex)
	if !ok {
		return nil, fmt.Errorf("%w: sex %q, want one of M, F, X", models.ErrInvalidInput, params.Sex)
	}

	cfg := relay.Config{
		RelayDate: params.RelayDate,
		NumRelays: params.NumRelays,
		Sex:       sex,
		Course:    event.Course(),
		MinAge:    params.MinAge,
		MaxAge:    params.MaxAge,
	}
	if cfg.RelayDate.IsZero() {
		cfg.RelayDate = time.Now()
	}
	if cfg.NumRelays <= 0 {
		cfg.NumRelays = s.store.cfg.Service.DefaultNumRelays
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 99
	}

	generator, err := relay.NewGenerator(club, cfg, s.log)
	if err != nil {
		return nil, err
	}

	excluded, err := resolveExcludedSwimmers(club, params.ExcludedIDs)
	if err != nil {
		return nil, err
	}
	for _, swimmer := range excluded {
		generator.ExcludeSwimmer(swimmer)
	}

	lineups, err := generator.GenerateRelays(event)
	if err != nil {
		return nil, err
	}

	relays := make([]Relay, 0, len(lineups))
	for _, lineup := range lineups {
		r := Relay{Swimmers: lineup}
		if len(lineup) == 4 {
			total, err := relay.RelayTime(lineup, event)
			if err != nil {
				return nil, err
			}
			r.TotalTime = total
			r.Standards = catalog.QualifiedStandards(total, event, cfg.MinAge, sex)
		}
		relays = append(relays, r)
	}
	return relays, nil
}

// resolveRelayEvent turns an event-type selector and course code into the
// relay event to generate for.
func resolveRelayEvent(eventType, courseCode string) (sdif.Event, error) {
	def, ok := relayEventTypes[strings.ToUpper(strings.TrimSpace(eventType))]
	if !ok {
		return 0, fmt.Errorf("%w: event type %q, want one of %s",
			models.ErrInvalidInput, eventType, strings.Join(EventTypes(), ", "))
	}
	code := strings.ToUpper(strings.TrimSpace(courseCode))
	course, ok := courseNames[code]
	if !ok {
		course, ok = sdif.ParseCourse(code)
	}
	if !ok {
		return 0, fmt.Errorf("%w: course %q, want one of SCY, SCM, LCM", models.ErrInvalidInput, courseCode)
	}

	event, err := sdif.NewEvent(def.distance, def.stroke, course)
	if err != nil {
		return 0, fmt.Errorf("%w: no %s event over %s", models.ErrInvalidInput, eventType, course)
	}
	return event, nil
}

// resolveExcludedSwimmers maps excluded ids to club swimmers. Long ids
// are tried first, then short ids. Any unresolved id fails the request.
func resolveExcludedSwimmers(club *models.Club, ids []string) ([]*models.Swimmer, error) {
	var swimmers []*models.Swimmer
	var invalid []string
	for _, id := range ids {
		var swimmer *models.Swimmer
		switch len(id) {
		case models.LongIDLength:
			swimmer = club.FindSwimmerWithLongID(id)
		case models.ShortIDLength:
			swimmer = club.FindSwimmerWithShortID(id)
		}
		if swimmer == nil {
			invalid = append(invalid, id)
			continue
		}
		swimmers = append(swimmers, swimmer)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: unknown swimmer ids: %s", models.ErrInvalidInput, strings.Join(invalid, ", "))
	}
	return swimmers, nil
}
