package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Label is the binary occupancy target.
type Label int

const (
	// Unoccupied marks a reading taken while the room was empty.
	Unoccupied Label = 0
	// Occupied marks a reading taken while someone was in the room.
	Occupied Label = 1
)

// Labels lists every label in ascending order.
var Labels = []Label{Unoccupied, Occupied}

// Valid reports whether l is one of the two known labels.
func (l Label) Valid() bool { return l == Unoccupied || l == Occupied }

func (l Label) String() string {
	switch l {
	case Unoccupied:
		return "unoccupied"
	case Occupied:
		return "occupied"
	default:
		return "label(" + strconv.Itoa(int(l)) + ")"
	}
}

// Float returns the numeric value of the label (0 or 1).
func (l Label) Float() float64 { return float64(l) }

// ParseLabel parses the textual label used by the sensor files. Any float
// equal to 0 or 1 is accepted ("0", "1", "1.0").
func ParseLabel(s string) (Label, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("dataset: invalid label %q: %w", s, err)
	}
	switch v {
	case 0:
		return Unoccupied, nil
	case 1:
		return Occupied, nil
	}
	return 0, fmt.Errorf("dataset: label %q not in {0,1}: %w", s, ErrInvalidArgument)
}
