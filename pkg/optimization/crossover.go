package optimization

import "math/rand"

// Crossover produces two children from two parents. newParams builds a
// fresh, zero-valued TradingParams of the configured strategy type for the
// children to be copied into.
type Crossover interface {
	Cross(rng *rand.Rand, newParams func() *TradingParams, parent1, parent2 *TradingParams) (child1, child2 *TradingParams)
}

// UniformCrossover swaps each gene independently with probability P
// between the two parents, producing two complementary children: where
// child1 takes parent2's gene, child2 takes parent1's, and vice versa.
type UniformCrossover struct {
	P float64
}

func (c UniformCrossover) Cross(rng *rand.Rand, newParams func() *TradingParams, parent1, parent2 *TradingParams) (*TradingParams, *TradingParams) {
	child1 := newParams()
	child2 := newParams()
	child1.CopyFrom(parent1)
	child2.CopyFrom(parent2)

	n := child1.Len()
	for i := 0; i < n; i++ {
		if rng.Float64() < c.P {
			child1.Cross(parent2, i)
			child2.Cross(parent1, i)
		}
	}
	return child1, child2
}
