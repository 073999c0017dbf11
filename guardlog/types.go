package guardlog

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

var (
	// ErrBadEvent indicates a log line that does not follow the grammar.
	ErrBadEvent = errors.New("guardlog: malformed log entry")

	// ErrUnknownGuard indicates a sleep or wake record before any shift start.
	ErrUnknownGuard = fmt.Errorf("guardlog: event before any shift start: %w", puzzle.ErrParse)

	// ErrUnpairedSleep indicates a guard's sleep and wake records do not alternate.
	ErrUnpairedSleep = fmt.Errorf("guardlog: sleep without matching wake: %w", puzzle.ErrParse)

	// ErrNoGuards indicates there are no guards to choose from.
	ErrNoGuards = fmt.Errorf("guardlog: no guards on record: %w", puzzle.ErrNotFound)
)

// TimeLayout is the timestamp layout inside the square brackets.
const TimeLayout = "2006-01-02 15:04"

// Kind classifies a log entry.
type Kind int

const (
	// StartShift marks a guard beginning a shift; the only kind naming a guard.
	StartShift Kind = iota
	// FallAsleep marks the on-duty guard falling asleep.
	FallAsleep
	// WakeUp marks the on-duty guard waking up.
	WakeUp
)

// String returns the phrase the log uses for k.
func (k Kind) String() string {
	switch k {
	case StartShift:
		return "begins shift"
	case FallAsleep:
		return "falls asleep"
	case WakeUp:
		return "wakes up"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one log entry. Guard is meaningful only when Known is true:
// always for StartShift, and for other kinds after Resolve.
type Event struct {
	Time  time.Time
	Kind  Kind
	Guard int
	Known bool
}

// String renders the event in canonical log form.
func (e Event) String() string {
	ts := "[" + e.Time.Format(TimeLayout) + "] "
	if e.Kind == StartShift {
		return ts + fmt.Sprintf("Guard #%d %s", e.Guard, e.Kind)
	}
	return ts + e.Kind.String()
}

// Binned maps a guard number to its events in chronological order.
type Binned map[int][]Event

// SleepStats summarises one guard's sleep.
type SleepStats struct {
	Guard   int
	Total   int     // minutes asleep over all shifts
	Minutes [60]int // Minutes[m]: how many times the guard was asleep during minute m
}

// Choice is a strategy result.
type Choice struct {
	Guard  int
	Minute int
	Count  int // times Guard was asleep during Minute
}

// Product is the puzzle answer for a choice: Guard × Minute.
func (c Choice) Product() int { return c.Guard * c.Minute }
