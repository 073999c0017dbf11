// Package guardlog solves the guard-duty puzzle: an unordered log of
// timestamped shift, sleep and wake records is sorted, attributed to
// guards, and aggregated into per-guard sleep statistics, from which two
// strategies pick a (guard, minute) pair.
//
// What:
//
//   - ParseEvent reads "[YYYY-MM-DD HH:MM] <text>". The kind is found by
//     substring, checked in the order "wakes up", "falls asleep",
//     "begins shift". Only shift-start lines carry a guard number ("#N").
//   - Resolve sorts events by time (stable) and stamps every sleep/wake
//     event with the guard of the most recent shift start.
//   - Bin groups resolved events by guard, keeping chronological order.
//   - Aggregate walks each guard's (FallAsleep, WakeUp) pairs and counts
//     total minutes asleep plus a minute-of-hour histogram.
//   - Strategy1 picks the guard with most total sleep and that guard's
//     busiest minute; Strategy2 picks the guard whose busiest minute is the
//     most frequent overall.
//
// Tie-break: whenever several guards share the maximum, the lowest guard
// number wins; whenever several minutes share the maximum, the earliest
// minute wins.
//
// Complexity:
//
//   - Resolve:   O(n log n)
//   - Aggregate: O(n + total minutes asleep)
//   - Strategy1, Strategy2: O(g·60), g = number of guards
//
// Errors:
//
//   - ErrBadEvent:      malformed line or timestamp (parse class).
//   - ErrUnknownGuard:  a sleep/wake record precedes every shift start (parse class).
//   - ErrUnpairedSleep: sleep and wake records do not alternate (parse class).
//   - ErrNoGuards:      nothing to choose from (wraps puzzle.ErrNotFound).
package guardlog
