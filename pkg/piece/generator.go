package piece

// IDSource hands out unique, strictly increasing ids.
type IDSource interface {
	Generate() int64
}

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// Generator creates pieces with a random kind and the next id from its IDSource.
// All state lives in the Generator and its dependencies; nothing is global.
type Generator struct {
	kinds  []Kind
	ids    IDSource
	picker Picker
}

// NewGenerator builds a Generator over the given alphabet.
// An empty alphabet falls back to DefaultKinds.
func NewGenerator(kinds []Kind, ids IDSource, picker Picker) *Generator {
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	return &Generator{
		kinds:  append([]Kind(nil), kinds...),
		ids:    ids,
		picker: picker,
	}
}

// Next returns a freshly generated piece.
func (g *Generator) Next() Piece {
	idx := g.picker.Intn(len(g.kinds))
	if idx < 0 || idx >= len(g.kinds) {
		idx = 0
	}
	return Piece{
		Kind: g.kinds[idx],
		ID:   g.ids.Generate(),
	}
}

// Kinds returns a copy of the generator's alphabet.
func (g *Generator) Kinds() []Kind {
	return append([]Kind(nil), g.kinds...)
}
