package signal

import "github.com/quantbt/enginecore/pkg/types"

// Persistence debounces advice: a value must hold for level+1 consecutive
// updates before it is emitted. ReturnPrevious chooses whether to echo the
// last confirmed advice or emit None while debouncing.
type Persistence struct {
	level          int
	returnPrevious bool

	current types.Advice
	count   int
	last    types.Advice
}

func NewPersistence(level int, returnPrevious bool) *Persistence {
	return &Persistence{level: level, returnPrevious: returnPrevious}
}

// Maturity equals level; Persistence(0, _) requires no warm-up (identity).
func (p *Persistence) Maturity() int { return p.level }

func (p *Persistence) Update(v types.Advice) types.Advice {
	if v == p.current {
		p.count++
	} else {
		p.current = v
		p.count = 1
	}

	if p.count > p.level {
		p.last = p.current
		return p.current
	}

	if p.returnPrevious {
		return p.last
	}
	return types.None
}
