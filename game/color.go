package game

// BoardSpots is the index of the last spot on the board (zero indexed),
// so the track has 16 spots in total.
const BoardSpots = 15

// NumCamels is the number of camels in the race, one per color.
const NumCamels = 5

// Color identifies one of the five racing camels.
type Color int

const (
	Blue Color = iota
	Green
	Orange
	Yellow
	White
)

// Colors returns every camel color in its fixed iteration order. This order
// has no ranking semantics; it only makes loops and tie-breaks deterministic.
func Colors() []Color {
	return []Color{Blue, Green, Orange, Yellow, White}
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	case Orange:
		return "Orange"
	case Yellow:
		return "Yellow"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}
