package optimization

import "math/rand"

// Mutation re-randomizes genes of an individual in place.
type Mutation interface {
	Mutate(rng *rand.Rand, params *TradingParams)
}

// UniformMutation re-randomizes each gene independently with probability P.
type UniformMutation struct {
	P float64
}

func (m UniformMutation) Mutate(rng *rand.Rand, params *TradingParams) {
	n := params.Len()
	for i := 0; i < n; i++ {
		if rng.Float64() < m.P {
			params.Mutate(rng, i)
		}
	}
}
