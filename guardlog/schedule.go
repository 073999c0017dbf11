package guardlog

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// Resolve returns a chronologically sorted copy of events in which every
// event carries its guard number. Events with equal timestamps keep their
// input order. The input slice is not modified.
func Resolve(events []Event) ([]Event, error) {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	guard, known := 0, false
	for i := range out {
		if out[i].Kind == StartShift {
			guard, known = out[i].Guard, true
			continue
		}
		if !known {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGuard, out[i])
		}
		out[i].Guard, out[i].Known = guard, true
	}

	return out, nil
}

// Bin groups resolved events by guard, preserving their order.
func Bin(resolved []Event) Binned {
	b := make(Binned)
	for _, e := range resolved {
		b[e.Guard] = append(b[e.Guard], e)
	}

	return b
}

// Guards returns the guard numbers of b in ascending order.
func (b Binned) Guards() []int {
	guards := make([]int, 0, len(b))
	for g := range b {
		guards = append(guards, g)
	}
	sort.Ints(guards)

	return guards
}

// Aggregate computes per-guard sleep statistics. Within each guard's list a
// FallAsleep at index i must be followed by a WakeUp at i+1; the nap lasts
// the whole minutes between them and marks minutes [sleep, sleep+d) of the
// hour, wrapping past 59.
func Aggregate(b Binned) (map[int]*SleepStats, error) {
	stats := make(map[int]*SleepStats, len(b))
	for _, guard := range b.Guards() {
		events := b[guard]
		st := &SleepStats{Guard: guard}
		for i, e := range events {
			switch e.Kind {
			case FallAsleep:
				if i+1 >= len(events) || events[i+1].Kind != WakeUp {
					return nil, fmt.Errorf("%w: guard #%d at %s", ErrUnpairedSleep, guard, e.Time.Format(TimeLayout))
				}
				st.add(e.Time, events[i+1].Time)
			case WakeUp:
				if i == 0 || events[i-1].Kind != FallAsleep {
					return nil, fmt.Errorf("%w: guard #%d woke at %s without sleeping", ErrUnpairedSleep, guard, e.Time.Format(TimeLayout))
				}
			}
		}
		stats[guard] = st
	}

	return stats, nil
}

func (st *SleepStats) add(sleep, wake time.Time) {
	d := int(wake.Sub(sleep) / time.Minute)
	st.Total += d
	start := sleep.Minute()
	for k := 0; k < d; k++ {
		st.Minutes[(start+k)%60]++
	}
}

// Busiest returns the minute the guard was most often asleep and how often.
// Ties resolve to the earliest minute.
func (st *SleepStats) Busiest() (minute, count int) {
	minute, _ = puzzle.ArgMax(st.Minutes[:], func(c int) int { return c })
	return minute, st.Minutes[minute]
}

// sortedStats returns stats ordered by guard number.
func sortedStats(stats map[int]*SleepStats) []*SleepStats {
	out := make([]*SleepStats, 0, len(stats))
	for _, st := range stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Guard < out[j].Guard })

	return out
}

func choose(stats map[int]*SleepStats, key func(*SleepStats) int) (Choice, error) {
	ordered := sortedStats(stats)
	idx, ok := puzzle.ArgMax(ordered, key)
	if !ok {
		return Choice{}, ErrNoGuards
	}
	st := ordered[idx]
	minute, count := st.Busiest()

	return Choice{Guard: st.Guard, Minute: minute, Count: count}, nil
}

// Strategy1 picks the guard with the most total minutes asleep, then that
// guard's busiest minute.
func Strategy1(stats map[int]*SleepStats) (Choice, error) {
	return choose(stats, func(st *SleepStats) int { return st.Total })
}

// Strategy2 picks the guard whose busiest minute was slept most often.
func Strategy2(stats map[int]*SleepStats) (Choice, error) {
	return choose(stats, func(st *SleepStats) int {
		_, count := st.Busiest()
		return count
	})
}

// Analyze runs the whole pipeline from log text to statistics.
func Analyze(text string) (map[int]*SleepStats, error) {
	events, err := ParseEvents(text)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(events)
	if err != nil {
		return nil, err
	}

	return Aggregate(Bin(resolved))
}
