package timeline

const (
	// TransitionBuffer is the travel gap after sights, meals and other items.
	TransitionBuffer = 15
	// ArrivalBuffer covers immigration and baggage reclaim after a flight lands.
	ArrivalBuffer = 60
)

// BufferAfter returns the gap inserted after an activity of type t before
// the next one starts. Transport flows straight into the next item.
//
// Scheduled flights never reach this policy; the recalculator resets the
// cursor from the arrival time instead. A flight without its schedule is
// placed like any other item and gets the transition buffer.
func BufferAfter(t Type) int {
	switch t {
	case Transport:
		return 0
	case Sight, Food, Other:
		return TransitionBuffer
	case Flight:
		return TransitionBuffer
	}
	// unrecognized tags behave like Other
	return TransitionBuffer
}
