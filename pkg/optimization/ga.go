// Package optimization implements the genetic algorithm that searches
// TradingParams chromosomes: evaluate against training symbols, rank,
// select, crossover, mutate, and reinsert, generation after generation,
// tracking a hall of fame of the best individuals seen.
package optimization

import (
	"context"
	cryptorand "crypto/rand"
	"math"
	"math/rand"
	"sort"

	"github.com/quantbt/enginecore/internal/boterrors"
	"github.com/quantbt/enginecore/internal/stats"
)

// HallOfFameEntry is one ranked individual's chromosome, fitness, and
// per-symbol statistics breakdown, as recorded for a generation.
type HallOfFameEntry struct {
	Chromosome *TradingParams    `json:"chromosome"`
	Fitness    float64           `json:"fitness"`
	SymbolStats []stats.Statistics `json:"symbol_stats"`
}

// Generation is one generation's hall-of-fame snapshot.
type Generation struct {
	Nr         int                `json:"nr"`
	HallOfFame []HallOfFameEntry  `json:"hall_of_fame"`
}

// Evolution is the full result of one Evolve call. Generations whose
// hall-of-fame did not strictly improve any rank over the previous
// recorded generation are elided from the slice.
type Evolution struct {
	Seed        uint64       `json:"seed"`
	Generations []Generation `json:"generations"`
}

// EvolveConfig parameterizes one Evolve run.
type EvolveConfig struct {
	PopulationSize int
	Generations    int
	HallOfFameSize int
	Seed           *uint64

	NewParams func() *TradingParams
	NewSignal NewSignal

	Symbols          []SymbolData
	Interval         int64
	Quote            float64
	MarginMultiplier float64

	Statistic   stats.EvaluationStatistic
	Aggregation stats.EvaluationAggregation

	Selection   Selection
	Crossover   Crossover
	Mutation    Mutation
	Reinsertion Reinsertion

	Workers int

	// OnGeneration, if set, is called once per generation (including
	// elided ones) with the just-ranked population, for progress
	// reporting.
	OnGeneration func(nr int, ranked []*Individual)
}

// Evolve runs the genetic algorithm to EvolveConfig.Generations, returning
// the seed used (drawn from entropy if not supplied, so the run can be
// reproduced) and the elided sequence of hall-of-fame snapshots.
func Evolve(ctx context.Context, cfg EvolveConfig) (*Evolution, error) {
	if cfg.PopulationSize%2 != 0 {
		return nil, boterrors.New(boterrors.InvalidParams, "optimization", "evolve", "population size must be even")
	}

	seed := cfg.Seed
	var seedValue uint64
	if seed != nil {
		seedValue = *seed
	} else {
		seedValue = randomSeed()
	}
	rng := rand.New(rand.NewSource(int64(seedValue)))

	population := make([]*Individual, cfg.PopulationSize)
	for i := range population {
		p := cfg.NewParams()
		p.Generate(rng)
		population[i] = &Individual{Params: p, Fitness: math.NaN()}
	}

	evCfg := evalConfig{
		Symbols:          cfg.Symbols,
		Interval:         cfg.Interval,
		Quote:            cfg.Quote,
		MarginMultiplier: cfg.MarginMultiplier,
		NewSignal:        cfg.NewSignal,
		Statistic:        cfg.Statistic,
		Aggregation:      cfg.Aggregation,
		Workers:          cfg.Workers,
	}

	evolution := &Evolution{Seed: seedValue}
	var lastRecorded []HallOfFameEntry
	var hallOfFame []*Individual

	for gen := 0; gen < cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		evaluatePopulation(ctx, evCfg, population)
		ranked := rankByFitness(population)

		// The hall of fame keeps the best individuals of every generation so
		// far; an individual carried over by reinsertion is listed once.
		inHallOfFame := make(map[*Individual]bool, len(hallOfFame))
		for _, ind := range hallOfFame {
			inHallOfFame[ind] = true
		}
		for _, ind := range ranked {
			if !inHallOfFame[ind] {
				hallOfFame = append(hallOfFame, ind)
			}
		}
		hallOfFame = rankByFitness(hallOfFame)
		if len(hallOfFame) > cfg.HallOfFameSize {
			hallOfFame = hallOfFame[:cfg.HallOfFameSize]
		}
		entries := buildHallOfFame(ctx, evCfg, hallOfFame)

		if cfg.OnGeneration != nil {
			cfg.OnGeneration(gen, ranked)
		}

		if strictlyImproves(entries, lastRecorded) {
			evolution.Generations = append(evolution.Generations, Generation{Nr: gen, HallOfFame: entries})
			lastRecorded = entries
		}

		if gen == cfg.Generations-1 {
			break
		}
		population = nextGeneration(rng, cfg, ranked)
	}

	return evolution, nil
}

func rankByFitness(population []*Individual) []*Individual {
	ranked := make([]*Individual, len(population))
	copy(ranked, population)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Fitness > ranked[j].Fitness })
	return ranked
}

func buildHallOfFame(ctx context.Context, evCfg evalConfig, top []*Individual) []HallOfFameEntry {
	entries := make([]HallOfFameEntry, len(top))
	for i, ind := range top {
		_, symbolStats := evaluateWithStats(ctx, evCfg, ind.Params)
		entries[i] = HallOfFameEntry{Chromosome: ind.Params, Fitness: ind.Fitness, SymbolStats: symbolStats}
	}
	return entries
}

// strictlyImproves reports whether any rank in next has strictly higher
// fitness than the corresponding rank in prev (or prev is empty/shorter).
func strictlyImproves(next, prev []HallOfFameEntry) bool {
	if len(prev) == 0 {
		return len(next) > 0
	}
	for i, e := range next {
		if i >= len(prev) || e.Fitness > prev[i].Fitness {
			return true
		}
	}
	return false
}

func nextGeneration(rng *rand.Rand, cfg EvolveConfig, ranked []*Individual) []*Individual {
	parents := cfg.Selection.Select(rng, ranked, cfg.PopulationSize)

	offspring := make([]*Individual, 0, len(parents))
	for i := 0; i+1 < len(parents); i += 2 {
		child1, child2 := cfg.Crossover.Cross(rng, cfg.NewParams, parents[i].Params, parents[i+1].Params)
		cfg.Mutation.Mutate(rng, child1)
		cfg.Mutation.Mutate(rng, child2)
		offspring = append(offspring, &Individual{Params: child1, Fitness: math.NaN()}, &Individual{Params: child2, Fitness: math.NaN()})
	}

	return cfg.Reinsertion.Reinsert(ranked, offspring, cfg.PopulationSize)
}

// randomSeed draws a seed from entropy for reproduction (the caller
// records it in Evolution.Seed). This is the one place the package
// touches a source of non-determinism outside the seeded RNG.
func randomSeed() uint64 {
	var b [8]byte
	_, _ = cryptorand.Read(b[:])
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
