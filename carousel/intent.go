package carousel

// IntentKind enumerates what a navigation input asks for.
type IntentKind int

const (
	IntentNext IntentKind = iota
	IntentPrev
	IntentGoTo
	IntentToggleAutoplay
)

func (k IntentKind) String() string {
	switch k {
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	case IntentGoTo:
		return "goTo"
	case IntentToggleAutoplay:
		return "toggleAutoplay"
	default:
		return "unknown"
	}
}

// Intent is a device-independent navigation request. Index is only read for
// IntentGoTo.
type Intent struct {
	Kind  IntentKind
	Index int
}

// Next asks for the following slide.
func Next() Intent { return Intent{Kind: IntentNext} }

// Prev asks for the preceding slide.
func Prev() Intent { return Intent{Kind: IntentPrev} }

// GoTo asks for slide i.
func GoTo(i int) Intent { return Intent{Kind: IntentGoTo, Index: i} }

// ToggleAutoplay flips the autoplay timer.
func ToggleAutoplay() Intent { return Intent{Kind: IntentToggleAutoplay} }
