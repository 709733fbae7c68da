package timeline

// Recalculate returns a new copy of activities with start times derived by
// walking a clock cursor through the day.
//
// The cursor starts at the first activity's own time. Each non-flight
// activity is stamped with the cursor, which then advances by the
// activity's duration plus BufferAfter its type. A flight is emitted as is
// and moves the cursor to its arrival time plus ArrivalBuffer.
//
// The cursor is never wrapped; only the rendered time wraps at midnight.
// The input slice and its elements are left untouched.
func Recalculate(activities []Activity) []Activity {
	out := make([]Activity, 0, len(activities))
	if len(activities) == 0 {
		return out
	}

	cursor := ParseTime(activities[0].Time)

	for _, a := range activities {
		next := a.Clone()
		if a.IsFlight() {
			cursor = ParseTime(a.FlightDetails.ArrivalTime) + ArrivalBuffer
			out = append(out, next)
			continue
		}

		next.Time = FormatMinutes(cursor)
		cursor += a.DurationMinutes + BufferAfter(a.Type)
		out = append(out, next)
	}
	return out
}

// EndOf returns the minute offset at which a non-flight activity starting at
// its Time finishes, ignoring buffers. For flights it is the arrival time.
func EndOf(a Activity) int {
	if a.IsFlight() {
		return ParseTime(a.FlightDetails.ArrivalTime)
	}
	return ParseTime(a.Time) + a.DurationMinutes
}
