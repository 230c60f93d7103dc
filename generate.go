package peoplegen

import (
	"fmt"
	"math/rand"
	"time"
)

// GenConfig holds the knobs for one synthesis run.
type GenConfig struct {
	Total         uint64  // how many people to generate
	FemalePercent uint32  // percentage of female people; must sum to 100 with MalePercent
	MalePercent   uint32  // percentage of male people
	YearMin       int     // earliest birth year, inclusive
	YearMax       int     // latest birth year, inclusive
	SalaryMean    float64 // mean of the salary distribution
	SalarySigma   float64 // standard deviation of the salary distribution
}

// Generator synthesizes a random population. The zero value of the
// optional fields gives production behavior: a time-seeded random
// source, a cycling [SSNGenerator] over the default fake-SSN space, and
// discarded advisories. Tests inject Rand and SSNs to make runs
// reproducible.
type Generator struct {
	Config GenConfig

	// Rand is the random source for name, birth-date, and salary draws
	// and for the final shuffle. Nil means time-seeded.
	Rand *rand.Rand

	// SSNs supplies Social Security numbers, one per person. Nil means
	// a fresh cycling generator over the default space.
	SSNs SSNSource

	// Warn, when non-nil, receives a non-fatal advisory when the
	// requested total exceeds the number of unique SSNs available, in
	// which case some SSNs will repeat.
	Warn func(ssnTotal, requested uint64)
}

// Generate synthesizes a population from the three name lists. The
// gender split is exact: the integer percentages are applied with any
// rounding remainder going to the gender with the larger percentage
// (to the female count on an even split). Birth dates fall uniformly in
// [Jan 1 YearMin, Dec 31 YearMax] UTC. Salaries are drawn from
// Normal(SalaryMean, SalarySigma); a negative draw aborts the run with
// [ErrNegativeSalary] rather than clamping, which would skew the
// distribution. The returned slice is shuffled so record order carries
// no gender signal.
func (g *Generator) Generate(maleFirstNames, femaleFirstNames, lastNames []string) (People, error) {
	cfg := g.Config
	if cfg.FemalePercent+cfg.MalePercent != 100 {
		return nil, fmt.Errorf("%w: female (%d%%) and male (%d%%) percentages must add up to 100",
			ErrConfig, cfg.FemalePercent, cfg.MalePercent)
	}
	if cfg.YearMin > cfg.YearMax {
		return nil, fmt.Errorf("%w: minimum year %d exceeds maximum year %d",
			ErrConfig, cfg.YearMin, cfg.YearMax)
	}
	if cfg.SalarySigma < 0 {
		return nil, fmt.Errorf("%w: negative salary standard deviation %g",
			ErrConfig, cfg.SalarySigma)
	}

	totalFemales := cfg.Total * uint64(cfg.FemalePercent) / 100
	totalMales := cfg.Total * uint64(cfg.MalePercent) / 100
	if rem := cfg.Total - totalFemales - totalMales; rem > 0 {
		if cfg.MalePercent > cfg.FemalePercent {
			totalMales += rem
		} else {
			totalFemales += rem
		}
	}

	if totalMales > 0 && len(maleFirstNames) == 0 {
		return nil, fmt.Errorf("%w: male first names", ErrEmptyNames)
	}
	if totalFemales > 0 && len(femaleFirstNames) == 0 {
		return nil, fmt.Errorf("%w: female first names", ErrEmptyNames)
	}
	if cfg.Total > 0 && len(lastNames) == 0 {
		return nil, fmt.Errorf("%w: last names", ErrEmptyNames)
	}

	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ssns := g.SSNs
	if ssns == nil {
		ssns = NewCyclingSSNGenerator()
	}
	if g.Warn != nil && cfg.Total > ssns.Total() {
		g.Warn(ssns.Total(), cfg.Total)
	}

	epochStart := time.Date(cfg.YearMin, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	epochEnd := time.Date(cfg.YearMax, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()

	people := make(People, 0, cfg.Total)
	for i := uint64(0); i < totalMales; i++ {
		p, err := makePerson(rng, ssns, maleFirstNames, lastNames, Male, epochStart, epochEnd, cfg)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	for i := uint64(0); i < totalFemales; i++ {
		p, err := makePerson(rng, ssns, femaleFirstNames, lastNames, Female, epochStart, epochEnd, cfg)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	rng.Shuffle(len(people), func(i, j int) {
		people[i], people[j] = people[j], people[i]
	})
	return people, nil
}

// makePerson draws one person. The draw order (first, middle, last,
// birth epoch, salary, SSN) is fixed so a seeded random source
// reproduces output exactly.
func makePerson(rng *rand.Rand, ssns SSNSource, firstNames, lastNames []string,
	gender Gender, epochStart, epochEnd int64, cfg GenConfig) (Person, error) {

	first := firstNames[rng.Intn(len(firstNames))]
	middle := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	epochBirth := epochStart + rng.Int63n(epochEnd-epochStart+1)
	salary := rng.NormFloat64()*cfg.SalarySigma + cfg.SalaryMean
	if salary < 0 {
		return Person{}, fmt.Errorf("%w: generated %.2f", ErrNegativeSalary, salary)
	}
	ssn, ok := ssns.Next()
	if !ok {
		return Person{}, fmt.Errorf("%w: %d unique SSNs available", ErrSSNExhausted, ssns.Total())
	}

	birth := time.Unix(epochBirth, 0).UTC()
	return Person{
		FirstName:  first,
		MiddleName: middle,
		LastName:   last,
		Gender:     gender,
		BirthDate:  time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC),
		SSN:        ssn,
		Salary:     uint32(salary),
	}, nil
}
