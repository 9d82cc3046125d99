package piece

import "fmt"

// Kind is the shape category of a piece.
type Kind string

const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindT Kind = "T"
	KindL Kind = "L"
)

// DefaultKinds is the alphabet used when none is configured.
var DefaultKinds = []Kind{KindI, KindO, KindT, KindL}

// Piece is an immutable game piece. IDs are unique for the lifetime of the
// Generator that created the piece.
type Piece struct {
	Kind Kind
	ID   int64
}

// String renders the piece as "[K id]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}

// ParseKinds converts configured kind names into Kinds, keeping their order.
func ParseKinds(names []string) []Kind {
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		kinds = append(kinds, Kind(n))
	}
	return kinds
}
