package spillman

import (
	"strconv"
	"time"

	"github.com/sccity/dispatch-etl/constants"
)

// Window is one bounded query interval. Start and End are already formatted
// in the remote system's native representation (date, datetime or numeric id)
// and are issued as greater_than/less_than filter bounds.
type Window struct {
	Start string
	End   string
}

// WindowFunc produces the query windows for one civil date.
type WindowFunc func(d time.Time) []Window

// QuarterDayWindows splits civil date d into four roughly 6-hour query
// windows covering [D-1 23:59:59, D 23:59:59]. Adjacent windows overlap by
// exactly one second so a record landing on a boundary instant can never be
// missed by the remote's comparison semantics; the duplicate-key handling in
// the loader absorbs the double-query.
func QuarterDayWindows(d time.Time) []Window {
	prev := d.AddDate(0, 0, -1)
	f := func(t time.Time, hour, min, sec int) string {
		return time.Date(t.Year(), t.Month(), t.Day(), hour, min, sec, 0, t.Location()).
			Format(constants.TimeFormatRemoteDateTime)
	}
	return []Window{
		{Start: f(prev, 23, 59, 59), End: f(d, 6, 0, 0)},
		{Start: f(d, 5, 59, 59), End: f(d, 12, 0, 0)},
		{Start: f(d, 11, 59, 59), End: f(d, 18, 0, 0)},
		{Start: f(d, 17, 59, 59), End: f(d, 23, 59, 59)},
	}
}

// DayWindow is the single wide window used by CAD, incident and citation
// extracts: date-only bounds one day either side of d.
func DayWindow(d time.Time) []Window {
	return []Window{{
		Start: d.AddDate(0, 0, -1).Format(constants.TimeFormatRemoteDate),
		End:   d.AddDate(0, 0, 1).Format(constants.TimeFormatRemoteDate),
	}}
}

// DayTimeWindow is the single datetime window [D-1 23:59:59, D+1 00:00:00]
// used by the radio-log and system-log extracts.
func DayTimeWindow(d time.Time) []Window {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).Add(-time.Second)
	end := d.AddDate(0, 0, 1)
	endMidnight := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, d.Location())
	return []Window{{
		Start: start.Format(constants.TimeFormatRemoteDateTime),
		End:   endMidnight.Format(constants.TimeFormatRemoteDateTime),
	}}
}

// IDWindows buckets the geobase numeric id space into fixed-size ranges
// overlapping by one id, [0,50000], [49999,100000], ... up to maxID.
// The overlap guards the remote's exclusive range comparisons the same way
// the one-second window overlap does for dates.
func IDWindows(maxID int) []Window {
	if maxID <= 0 {
		maxID = constants.GeobaseDefaultMaxID
	}
	var windows []Window
	lo := 0
	hi := constants.GeobaseBucketSize
	for {
		windows = append(windows, Window{Start: strconv.Itoa(lo), End: strconv.Itoa(hi)})
		if hi >= maxID {
			break
		}
		lo = hi - 1
		hi += constants.GeobaseBucketSize
	}
	return windows
}
