package optimization

import (
	"math"
	"math/rand"
)

// Selection picks n parents from a fitness-ranked population (descending
// fitness, index 0 best).
type Selection interface {
	Select(rng *rand.Rand, ranked []*Individual, n int) []*Individual
}

// EliteSelection picks the n best individuals, optionally shuffling the
// result so crossover doesn't always pair the same ranks together.
type EliteSelection struct {
	Shuffle bool
}

func (s EliteSelection) Select(rng *rand.Rand, ranked []*Individual, n int) []*Individual {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]*Individual, n)
	copy(out, ranked[:n])
	if s.Shuffle {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// TournamentSelection repeatedly draws K random individuals and keeps the
// fittest, n times.
type TournamentSelection struct {
	K int
}

func (s TournamentSelection) Select(rng *rand.Rand, ranked []*Individual, n int) []*Individual {
	k := s.K
	if k < 1 {
		k = 1
	}
	out := make([]*Individual, n)
	for i := 0; i < n; i++ {
		best := ranked[rng.Intn(len(ranked))]
		for j := 1; j < k; j++ {
			candidate := ranked[rng.Intn(len(ranked))]
			if candidate.Fitness > best.Fitness {
				best = candidate
			}
		}
		out[i] = best
	}
	return out
}

// GenerateRandomSelection ignores fitness and returns n freshly generated
// individuals — a random-search baseline to compare the GA against.
type GenerateRandomSelection struct {
	NewParams func() *TradingParams
}

func (s GenerateRandomSelection) Select(rng *rand.Rand, ranked []*Individual, n int) []*Individual {
	out := make([]*Individual, n)
	for i := range out {
		p := s.NewParams()
		p.Generate(rng)
		out[i] = &Individual{Params: p, Fitness: math.NaN()}
	}
	return out
}
