package chromosome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stopLossGenes is a minimal chromosome exercising the Genes[T] table.
type stopLossGenes struct {
	threshold float64
}

func (s *stopLossGenes) genes() Genes[float64] {
	return Genes[float64]{
		{Name: "threshold", Generate: GenStopLoss, Get: func() float64 { return s.threshold }, Set: func(v float64) { s.threshold = v }},
	}
}

func (s *stopLossGenes) Len() int                       { return s.genes().Len() }
func (s *stopLossGenes) Generate(rng *rand.Rand)         { s.genes().Generate(rng) }
func (s *stopLossGenes) Mutate(rng *rand.Rand, i int)    { s.genes().Mutate(rng, i) }
func (s *stopLossGenes) Cross(parent Chromosome, i int) {
	p := parent.(*stopLossGenes)
	s.genes().Set(i, p.genes().Get(i))
}

func TestGenesTable_LenAndCross(t *testing.T) {
	a := &stopLossGenes{threshold: 0.1}
	b := &stopLossGenes{threshold: 0.2}
	assert.Equal(t, 1, a.Len())
	a.Cross(b, 0)
	assert.Equal(t, 0.2, a.threshold)
}

func TestGenesTable_MutateRerandomizesGene(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := &stopLossGenes{threshold: 0.5}
	a.Mutate(rng, 0)
	assert.NotEqual(t, 0.0, a.threshold) // re-randomized, not zeroed silently
}

func TestComposite_LenIsSumOfSubs(t *testing.T) {
	sub1 := &stopLossGenes{}
	sub2 := &stopLossGenes{}
	c := Composite{Subs: []Chromosome{sub1, sub2}}
	assert.Equal(t, sub1.Len()+sub2.Len(), c.Len())
}

func TestComposite_Dispatch(t *testing.T) {
	sub1 := &stopLossGenes{}
	sub2 := &stopLossGenes{}
	c := Composite{Subs: []Chromosome{sub1, sub2}}
	sub, idx := c.Dispatch(0)
	assert.Same(t, sub1, sub)
	assert.Equal(t, 0, idx)
	sub, idx = c.Dispatch(1)
	assert.Same(t, sub2, sub)
	assert.Equal(t, 0, idx)
}
