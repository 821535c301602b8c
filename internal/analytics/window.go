// Package analytics turns snapshots of tracked PRs and commits into the
// dashboard views. Every function here is pure.
package analytics

import "time"

const (
	// DateLayout renders calendar days the way the dashboard charts key them (en-US).
	DateLayout = "1/2/2006"

	DefaultWindowDays = 7
	MaxWindowDays     = 365

	// CommitWindowDays is the fixed trailing window of the commit counter.
	CommitWindowDays = 7
)

// WindowStart returns local midnight days calendar days before now, in
// now's location. Both the store filter and the day walk use this value.
func WindowStart(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-days, 0, 0, 0, 0, now.Location())
}
