package mandala

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Generator is a linear-congruential pseudo-random generator. A single
// instance drives exactly one composition pass; the draw order of its
// consumers is the determinism contract, so a Generator must never be shared
// between concurrent compositions. It is not safe for concurrent use.
type Generator struct {
	state uint64
}

// NewGenerator creates a generator whose entire sequence is determined by seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{state: uint64(seed)}
}

// Next advances the recurrence and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / lcgModulus
}
