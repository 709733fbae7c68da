package trip

import (
	"math"
	"time"
)

// TripDuration returns the number of days from start to end, both
// inclusive. Unparseable or inverted dates yield 0.
func TripDuration(start, end string) int {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(e.Sub(s).Hours()/24)) + 1
	if days <= 0 {
		return 0
	}
	return days
}
