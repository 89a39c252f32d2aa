package generator

import "github.com/learningpython92/FinalDashboard/internal/profile"

// UnknownSource is returned when a channel mix is empty.
const UnknownSource = "Unknown"

// Weighted draws one channel from mix with probability proportional to its
// weight. Weights are taken as already summing to about 1.
func (f *Faker) Weighted(mix []profile.Channel) string {
	return pickWeighted(f.Float(), mix)
}

// pickWeighted walks the cumulative weights and returns the first channel
// whose running total reaches r. A draw past the total returns the last
// channel.
func pickWeighted(r float64, mix []profile.Channel) string {
	if len(mix) == 0 {
		return UnknownSource
	}

	cumulative := 0.0
	for _, ch := range mix {
		cumulative += ch.Weight
		if r <= cumulative {
			return ch.Name
		}
	}
	return mix[len(mix)-1].Name
}
