package generator

import (
	"math/rand"
	"time"
)

// Faker wraps a seedable random source with the draws the generator needs.
type Faker struct {
	rand *rand.Rand
}

func NewFaker(rng *rand.Rand) *Faker {
	return &Faker{rand: rng}
}

// NewSeededFaker builds a Faker from a seed. A zero seed means time based.
func NewSeededFaker(seed int64) *Faker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewFaker(rand.New(rand.NewSource(seed)))
}

// Float returns a uniform draw in [0, 1).
func (f *Faker) Float() float64 {
	return f.rand.Float64()
}

// Uniform returns a uniform draw in [min, max).
func (f *Faker) Uniform(min, max float64) float64 {
	return min + f.rand.Float64()*(max-min)
}

// IntBetween returns a uniform integer in the inclusive range [min, max].
func (f *Faker) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rand.Intn(max-min+1)
}

// DateBetween returns a day in the inclusive range [start, end].
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, f.IntBetween(0, days))
}

// Pick returns a uniformly chosen element of items.
func (f *Faker) Pick(items []string) string {
	return items[f.rand.Intn(len(items))]
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.rand.Float64() < p
}
