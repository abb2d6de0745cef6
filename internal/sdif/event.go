package sdif

import (
	"errors"
	"fmt"
)

// ErrInvalidEvent indicates a (distance, stroke, course) triple outside the
// event catalog.
var ErrInvalidEvent = errors.New("invalid event")

// Event identifies one entry of the fixed event catalog. The zero value is
// the first catalog entry; events are only obtained via NewEvent or the
// package-level Events slice. Ordering (Ordinal) is catalog declaration
// order, which governs default result sorting, not numeric distance order.
type Event int

type eventDef struct {
	distance int
	stroke   Stroke
	course   Course
}

// The catalog below reproduces the interchange event list exactly, in its
// canonical declaration order. Do not reorder.
var eventCatalog = []eventDef{
	// Individual events, SCY
	{25, Freestyle, SCY},
	{50, Freestyle, SCY},
	{100, Freestyle, SCY},
	{200, Freestyle, SCY},
	{400, Freestyle, SCY},
	{500, Freestyle, SCY},
	{800, Freestyle, SCY},
	{1000, Freestyle, SCY},
	{1650, Freestyle, SCY},
	{25, Backstroke, SCY},
	{50, Backstroke, SCY},
	{100, Backstroke, SCY},
	{200, Backstroke, SCY},
	{25, Breaststroke, SCY},
	{50, Breaststroke, SCY},
	{100, Breaststroke, SCY},
	{200, Breaststroke, SCY},
	{25, Butterfly, SCY},
	{50, Butterfly, SCY},
	{100, Butterfly, SCY},
	{200, Butterfly, SCY},
	{100, IndividualMedley, SCY},
	{200, IndividualMedley, SCY},
	{400, IndividualMedley, SCY},
	// Individual events, SCM
	{25, Freestyle, SCM},
	{50, Freestyle, SCM},
	{100, Freestyle, SCM},
	{200, Freestyle, SCM},
	{400, Freestyle, SCM},
	{800, Freestyle, SCM},
	{1500, Freestyle, SCM},
	{25, Backstroke, SCM},
	{50, Backstroke, SCM},
	{100, Backstroke, SCM},
	{200, Backstroke, SCM},
	{25, Breaststroke, SCM},
	{50, Breaststroke, SCM},
	{100, Breaststroke, SCM},
	{200, Breaststroke, SCM},
	{25, Butterfly, SCM},
	{50, Butterfly, SCM},
	{100, Butterfly, SCM},
	{200, Butterfly, SCM},
	{100, IndividualMedley, SCM},
	{200, IndividualMedley, SCM},
	{400, IndividualMedley, SCM},
	// Individual events, LCM
	{50, Freestyle, LCM},
	{100, Freestyle, LCM},
	{200, Freestyle, LCM},
	{400, Freestyle, LCM},
	{800, Freestyle, LCM},
	{1500, Freestyle, LCM},
	{50, Backstroke, LCM},
	{100, Backstroke, LCM},
	{200, Backstroke, LCM},
	{50, Breaststroke, LCM},
	{100, Breaststroke, LCM},
	{200, Breaststroke, LCM},
	{50, Butterfly, LCM},
	{100, Butterfly, LCM},
	{200, Butterfly, LCM},
	{200, IndividualMedley, LCM},
	{400, IndividualMedley, LCM},
	// Relay events
	{200, FreestyleRelay, SCY},
	{400, FreestyleRelay, SCY},
	{800, FreestyleRelay, SCY},
	{200, MedleyRelay, SCY},
	{400, MedleyRelay, SCY},
	{200, FreestyleRelay, SCM},
	{400, FreestyleRelay, SCM},
	{800, FreestyleRelay, SCM},
	{200, MedleyRelay, SCM},
	{400, MedleyRelay, SCM},
	{200, FreestyleRelay, LCM},
	{400, FreestyleRelay, LCM},
	{800, FreestyleRelay, LCM},
	{200, MedleyRelay, LCM},
	{400, MedleyRelay, LCM},
}

var eventIndex = func() map[eventDef]Event {
	idx := make(map[eventDef]Event, len(eventCatalog))
	for i, def := range eventCatalog {
		idx[def] = Event(i)
	}
	return idx
}()

// NewEvent returns the catalog event for the given triple, or ErrInvalidEvent
// if the combination is not part of the catalog.
func NewEvent(distance int, stroke Stroke, course Course) (Event, error) {
	ev, ok := eventIndex[eventDef{distance, stroke, course}]
	if !ok {
		return 0, fmt.Errorf("%w: %d %s %s", ErrInvalidEvent, distance, stroke, course)
	}
	return ev, nil
}

// Events returns all catalog events in declaration order.
func Events() []Event {
	evs := make([]Event, len(eventCatalog))
	for i := range eventCatalog {
		evs[i] = Event(i)
	}
	return evs
}

// Distance returns the event distance in the course's unit.
func (e Event) Distance() int { return eventCatalog[e].distance }

// Stroke returns the event stroke.
func (e Event) Stroke() Stroke { return eventCatalog[e].stroke }

// Course returns the event course.
func (e Event) Course() Course { return eventCatalog[e].course }

// Ordinal returns the event's position in the catalog declaration order.
func (e Event) Ordinal() int { return int(e) }

func (e Event) String() string {
	basic := fmt.Sprintf("%d %s", e.Distance(), e.Stroke())
	return fmt.Sprintf("%-10s  %s", basic, e.Course())
}
