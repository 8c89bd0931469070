// Package weather supplies the week of temperatures a game is played on.
package weather

// Source returns six temperatures for the week, sorted ascending.
type Source interface {
	Week() ([]float64, error)
}

// DefaultBase is the midpoint of the stub week.
const DefaultBase = 22

// stubOffsets spread the stub week around its base.
var stubOffsets = [6]float64{-10, -6, -2, 2, 6, 10}

// Stub is a fixed, offline weather source.
type Stub struct {
	Base float64
}

// NewStub creates a stub source centered on base.
func NewStub(base float64) *Stub {
	return &Stub{Base: base}
}

// Week returns base-10, base-6, base-2, base+2, base+6, base+10.
func (s *Stub) Week() ([]float64, error) {
	week := make([]float64, len(stubOffsets))
	for i, off := range stubOffsets {
		week[i] = s.Base + off
	}
	return week, nil
}

// Func adapts a function to the Source interface.
type Func func() ([]float64, error)

// Week calls f.
func (f Func) Week() ([]float64, error) {
	return f()
}
