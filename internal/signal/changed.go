package signal

import "github.com/quantbt/enginecore/pkg/types"

// Changed emits the new value only when it differs from the previously
// emitted value; otherwise it emits None.
type Changed struct {
	enabled bool
	last    types.Advice
	have    bool
}

func NewChanged(enabled bool) *Changed {
	return &Changed{enabled: enabled}
}

func (c *Changed) Update(v types.Advice) types.Advice {
	if !c.enabled {
		return v
	}
	if c.have && v == c.last {
		return types.None
	}
	c.have = true
	c.last = v
	return v
}
