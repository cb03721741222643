// Package tzfmt pre-formats timestamps into the named presentation time
// zones used by ticket name/description templates. Volunteers are spread
// across regions, so every event/shift time is offered in each zone plus
// date-only and time-only variants, e.g. {{starts_at.cdt}} or
// {{starts_at.time.est}}.
package tzfmt

import (
	"sync"
	"time"
	_ "time/tzdata" // embedded zone database so rendering works in minimal containers
)

const (
	fullLayout = "Mon Jan 2, 2006 3:04 PM MST"
	dateLayout = "Jan 2, 2006"
	timeLayout = "3:04 PM MST"
)

// zone keys in template-visible order.
var zoneNames = []struct {
	key string
	tz  string
}{
	{"utc", "UTC"},
	{"est", "America/New_York"},
	{"cdt", "America/Chicago"},
	{"mst", "America/Denver"},
	{"pdt", "America/Los_Angeles"},
	{"cet", "Europe/Berlin"},
}

var (
	locations map[string]*time.Location
	loadOnce  sync.Once
)

func load() {
	locations = make(map[string]*time.Location, len(zoneNames))
	for _, z := range zoneNames {
		loc, err := time.LoadLocation(z.tz)
		if err != nil {
			loc = time.UTC
		}
		locations[z.key] = loc
	}
}

// Keys returns the zone keys templates may reference.
func Keys() []string {
	keys := make([]string, 0, len(zoneNames))
	for _, z := range zoneNames {
		keys = append(keys, z.key)
	}
	return keys
}

// Expand formats t into every presentation zone. The result maps zone key to
// the full datetime string, plus "date" and "time" sub-maps with the
// date-only and time-only variants per zone.
func Expand(t time.Time) map[string]any {
	loadOnce.Do(load)

	out := make(map[string]any, len(zoneNames)+2)
	dates := make(map[string]any, len(zoneNames))
	times := make(map[string]any, len(zoneNames))

	for _, z := range zoneNames {
		lt := t.In(locations[z.key])
		out[z.key] = lt.Format(fullLayout)
		dates[z.key] = lt.Format(dateLayout)
		times[z.key] = lt.Format(timeLayout)
	}

	out["date"] = dates
	out["time"] = times
	return out
}
