package optimization

// Reinsertion decides the next generation's population from the previous
// (fitness-ranked, descending) generation and its offspring.
type Reinsertion interface {
	Reinsert(ranked, offspring []*Individual, populationSize int) []*Individual
}

// EliteReinsertion keeps the top EliteRate fraction of the previous
// generation and fills the remainder from OffspringRate of the offspring
// (in the order they were produced), padding with more offspring if the two fractions don't
// cover the full population.
type EliteReinsertion struct {
	EliteRate    float64
	OffspringRate float64
}

func (r EliteReinsertion) Reinsert(ranked, offspring []*Individual, populationSize int) []*Individual {
	eliteN := int(float64(populationSize) * r.EliteRate)
	if eliteN > len(ranked) {
		eliteN = len(ranked)
	}
	offspringN := int(float64(populationSize) * r.OffspringRate)
	if offspringN > len(offspring) {
		offspringN = len(offspring)
	}

	next := make([]*Individual, 0, populationSize)
	next = append(next, ranked[:eliteN]...)
	next = append(next, offspring[:offspringN]...)

	// Fill any shortfall from the remaining offspring, then the remaining
	// ranked individuals, in that order.
	for i := offspringN; len(next) < populationSize && i < len(offspring); i++ {
		next = append(next, offspring[i])
	}
	for i := eliteN; len(next) < populationSize && i < len(ranked); i++ {
		next = append(next, ranked[i])
	}
	if len(next) > populationSize {
		next = next[:populationSize]
	}
	return next
}

// PureReinsertion replaces the population entirely with the offspring.
type PureReinsertion struct{}

func (PureReinsertion) Reinsert(ranked, offspring []*Individual, populationSize int) []*Individual {
	if len(offspring) > populationSize {
		return offspring[:populationSize]
	}
	return offspring
}
