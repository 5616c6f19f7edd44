// Package chromosome implements the gene-indexed parameter vector contract
// the genetic optimizer operates on. The original implementation derives
// this contract via code generation over record fields; here it is a
// registration table (field name -> generator/getter/setter), built in
// declaration order, which is the invariant the rest of the framework
// depends on.
package chromosome

import "math/rand"

// Chromosome is the contract every trader/strategy/risk parameter set
// satisfies: enumerate gene count, generate fresh random genes, copy a gene
// from a parent (crossover), and re-randomize a gene (mutation).
type Chromosome interface {
	Len() int
	Generate(rng *rand.Rand)
	Cross(parent Chromosome, i int)
	Mutate(rng *rand.Rand, i int)
}

// GeneSpec is one entry in a chromosome's registration table: a pure
// generator function paired with getter/setter closures over the owning
// struct's field. Declaration order of the []GeneSpec slice IS gene order.
type GeneSpec[T any] struct {
	Name      string
	Generate  func(rng *rand.Rand) T
	Get       func() T
	Set       func(T)
}

// Genes is a declared, ordered table of local (non-nested) genes for a
// chromosome. It supplies Len/Generate/Mutate for those local genes, and
// Get/Set for the owning chromosome's Cross; composite chromosomes
// additionally dispatch into nested sub-chromosomes (see Composite).
type Genes[T any] []GeneSpec[T]

func (g Genes[T]) Len() int { return len(g) }

func (g Genes[T]) Generate(rng *rand.Rand) {
	for _, spec := range g {
		spec.Set(spec.Generate(rng))
	}
}

// mutate re-assigns gene i from its generator. Genes[T] has no Cross of its
// own: it is type-specific, so the owning chromosome copies a parent's gene
// through Get and Set.
func (g Genes[T]) mutate(rng *rand.Rand, i int) {
	spec := g[i]
	spec.Set(spec.Generate(rng))
}

// Mutate re-randomizes local gene i using its declared generator.
func (g Genes[T]) Mutate(rng *rand.Rand, i int) { g.mutate(rng, i) }

// Get returns the current value of local gene i (used by Cross).
func (g Genes[T]) Get(i int) T { return g[i].Get() }

// Set assigns gene i's value (used by Cross).
func (g Genes[T]) Set(i int, v T) { g[i].Set(v) }

// Composite is a helper base for chromosomes built from nested
// sub-chromosomes plus n local genes, implementing the spec's composition
// rule: len = sum(len(sub)) + n, and index dispatch by subtracting each
// sub's length in declaration order.
type Composite struct {
	Subs []Chromosome
}

func (c Composite) subLen() int {
	n := 0
	for _, s := range c.Subs {
		n += s.Len()
	}
	return n
}

// Dispatch resolves gene index i against the Subs in declaration order,
// returning the owning sub-chromosome and its local index, or (nil, i-subLen)
// if i falls past all subs into the caller's own local genes.
func (c Composite) Dispatch(i int) (sub Chromosome, localIndex int) {
	for _, s := range c.Subs {
		if i < s.Len() {
			return s, i
		}
		i -= s.Len()
	}
	return nil, i
}

// Len returns the total gene count of all nested sub-chromosomes. Callers
// embedding Composite add their own local gene count on top.
func (c Composite) Len() int { return c.subLen() }
