package guardlog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// ParseEvent parses one log line. A malformed timestamp, an unknown event
// text, or a shift start without a guard number yields a *puzzle.ParseError
// wrapping ErrBadEvent.
func ParseEvent(line string) (Event, error) {
	sc := puzzle.NewScanner(line)
	ts, err := scanTimestamp(sc)
	if err != nil {
		return Event{}, puzzle.Errorf(line, "%w: %w", ErrBadEvent, err)
	}
	text := sc.Rest()

	var e Event
	e.Time = ts
	switch {
	case strings.Contains(text, "wakes up"):
		e.Kind = WakeUp
	case strings.Contains(text, "falls asleep"):
		e.Kind = FallAsleep
	case strings.Contains(text, "begins shift"):
		e.Kind = StartShift
		if e.Guard, err = guardNumber(text); err != nil {
			return Event{}, puzzle.Errorf(line, "%w: %w", ErrBadEvent, err)
		}
		e.Known = true
	default:
		return Event{}, puzzle.Errorf(line, "%w: unknown event %q", ErrBadEvent, text)
	}

	return e, nil
}

// scanTimestamp consumes "[YYYY-MM-DD HH:MM] " and validates the calendar
// fields.
func scanTimestamp(sc *puzzle.Scanner) (time.Time, error) {
	var f [5]int
	var err error
	steps := []struct {
		width int
		after byte
	}{{4, '-'}, {2, '-'}, {2, ' '}, {2, ':'}, {2, ']'}}

	if err = sc.Byte('['); err != nil {
		return time.Time{}, err
	}
	for i, st := range steps {
		if f[i], err = sc.Fixed(st.width); err != nil {
			return time.Time{}, err
		}
		if err = sc.Byte(st.after); err != nil {
			return time.Time{}, err
		}
	}
	if err = sc.Spaces(1); err != nil {
		return time.Time{}, err
	}

	year, month, day, hour, minute := f[0], f[1], f[2], f[3], f[4]
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: no such time %04d-%02d-%02d %02d:%02d",
			puzzle.ErrSyntax, year, month, day, hour, minute)
	}

	return t, nil
}

// guardNumber extracts N from "... #N ..." in a shift-start text.
func guardNumber(text string) (int, error) {
	i := strings.IndexByte(text, '#')
	if i < 0 {
		return 0, errors.New("shift start without guard number")
	}
	sc := puzzle.NewScanner(text[i+1:])
	n, err := sc.Uint()
	if err != nil {
		return 0, err
	}
	if err := sc.Spaces(1); err != nil {
		return 0, err
	}

	return n, nil
}

// ParseEvents parses one event per line, failing on the first bad line.
func ParseEvents(text string) ([]Event, error) {
	return puzzle.ParseLines(text, ParseEvent)
}
