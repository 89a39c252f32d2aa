// Package profile holds the configuration tables the generator reads:
// businesses and their headcount, function weights, KPI ranges, source
// channel mixes, role titles and per-business personality probabilities.
//
// A Profile is read-only once loaded. Lookups never fail; a missing entry
// falls back to a default one.
package profile

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the wildcard business or function key used for fallbacks.
const DefaultKey = "default"

// FallbackTitle is used when a function has no title pool.
const FallbackTitle = "General Staff"

const dateLayout = "2006-01-02"

// weightEpsilon absorbs float error in weights written as decimals.
const weightEpsilon = 1e-9

//go:embed default.yaml
var defaultProfile []byte

type Profile struct {
	Window        Window        `yaml:"window"`
	HireRate      FloatRange    `yaml:"hire_rate"`
	Availability  FloatRange    `yaml:"availability"`
	Businesses    []Business    `yaml:"businesses"`
	Functions     []Function    `yaml:"functions"`
	KPIRanges     []KPIRange    `yaml:"kpi_ranges"`
	SourceMixes   []SourceMix   `yaml:"source_mixes"`
	RoleTitles    []TitlePool   `yaml:"role_titles"`
	Personalities []Personality `yaml:"personalities"`
	Trend         Trend         `yaml:"trend"`
	Outlier       Outlier       `yaml:"outlier"`

	start, end    time.Time
	kpis          map[pairKey]KPIRange
	mixes         map[pairKey][]Channel
	titles        map[string][]string
	personalities map[string]Personality
}

type Window struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

type Business struct {
	Name      string `yaml:"name"`
	Headcount int    `yaml:"headcount"`
}

type Function struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type KPIRange struct {
	Business    string   `yaml:"business"`
	Function    string   `yaml:"function"`
	TimeToFill  IntRange `yaml:"time_to_fill"`
	CostPerHire IntRange `yaml:"cost_per_hire"`
}

type Channel struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type SourceMix struct {
	Business string    `yaml:"business"`
	Function string    `yaml:"function"`
	Channels []Channel `yaml:"channels"`
}

type TitlePool struct {
	Function string   `yaml:"function"`
	Titles   []string `yaml:"titles"`
}

// Personality holds the Bernoulli probabilities for the three boolean
// attributes of a hire.
type Personality struct {
	Business  string  `yaml:"business"`
	IJP       float64 `yaml:"ijp"`
	Build     float64 `yaml:"build"`
	Diversity float64 `yaml:"diversity"`
}

type Trend struct {
	Business string  `yaml:"business"`
	Factor   float64 `yaml:"factor"`
}

type Outlier struct {
	Business   string `yaml:"business"`
	Function   string `yaml:"function"`
	Multiplier int    `yaml:"multiplier"`
}

type pairKey struct {
	business string
	function string
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}

// MustDefault is Default for callers that cannot recover from a broken build.
func MustDefault() *Profile {
	p, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
}

// Load reads a profile from path, or returns the embedded one when path is empty.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.index()
	return &p, nil
}

func (p *Profile) Validate() error {
	start, err := time.Parse(dateLayout, p.Window.Start)
	if err != nil {
		return fmt.Errorf("invalid window start %q: %w", p.Window.Start, err)
	}
	end, err := time.Parse(dateLayout, p.Window.End)
	if err != nil {
		return fmt.Errorf("invalid window end %q: %w", p.Window.End, err)
	}
	if end.Before(start) {
		return fmt.Errorf("window end %s is before start %s", p.Window.End, p.Window.Start)
	}
	p.start, p.end = start, end

	if p.HireRate.Min > p.HireRate.Max || p.HireRate.Min < 0 {
		return fmt.Errorf("invalid hire_rate range [%v, %v]", p.HireRate.Min, p.HireRate.Max)
	}
	if p.Availability.Min > p.Availability.Max || p.Availability.Min < 0 || p.Availability.Max > 1 {
		return fmt.Errorf("invalid availability range [%v, %v]", p.Availability.Min, p.Availability.Max)
	}

	if len(p.Businesses) == 0 {
		return fmt.Errorf("profile declares no businesses")
	}
	for _, b := range p.Businesses {
		if b.Name == "" {
			return fmt.Errorf("business with empty name")
		}
		if b.Headcount <= 0 {
			return fmt.Errorf("business %s: headcount must be positive, got %d", b.Name, b.Headcount)
		}
	}

	if len(p.Functions) == 0 {
		return fmt.Errorf("profile declares no functions")
	}
	weightSum := 0.0
	for _, f := range p.Functions {
		if f.Name == "" {
			return fmt.Errorf("function with empty name")
		}
		if f.Weight < 0 || f.Weight > 1 {
			return fmt.Errorf("function %s: weight %v outside [0, 1]", f.Name, f.Weight)
		}
		weightSum += f.Weight
	}
	// The last function takes whatever the others leave, so the others
	// must not claim more than the whole.
	if weightSum > 1+weightEpsilon {
		return fmt.Errorf("function weights sum to %v, more than 1", weightSum)
	}

	hasGlobalKPI := false
	for _, k := range p.KPIRanges {
		if k.TimeToFill.Min > k.TimeToFill.Max || k.CostPerHire.Min > k.CostPerHire.Max {
			return fmt.Errorf("kpi range %s/%s: min greater than max", k.Business, k.Function)
		}
		if k.Business == DefaultKey && k.Function == DefaultKey {
			hasGlobalKPI = true
		}
	}
	if !hasGlobalKPI {
		return fmt.Errorf("kpi_ranges needs a %s/%s entry", DefaultKey, DefaultKey)
	}

	for _, pers := range p.Personalities {
		for _, prob := range []float64{pers.IJP, pers.Build, pers.Diversity} {
			if prob < 0 || prob > 1 {
				return fmt.Errorf("personality %s: probability %v outside [0, 1]", pers.Business, prob)
			}
		}
	}

	if p.Outlier.Business != "" && p.Outlier.Multiplier < 1 {
		return fmt.Errorf("outlier multiplier must be at least 1, got %d", p.Outlier.Multiplier)
	}

	return nil
}

func (p *Profile) index() {
	p.kpis = make(map[pairKey]KPIRange, len(p.KPIRanges))
	for _, k := range p.KPIRanges {
		p.kpis[pairKey{k.Business, k.Function}] = k
	}

	p.mixes = make(map[pairKey][]Channel, len(p.SourceMixes))
	for _, m := range p.SourceMixes {
		p.mixes[pairKey{m.Business, m.Function}] = m.Channels
	}

	p.titles = make(map[string][]string, len(p.RoleTitles))
	for _, t := range p.RoleTitles {
		p.titles[t.Function] = t.Titles
	}

	p.personalities = make(map[string]Personality, len(p.Personalities))
	for _, pers := range p.Personalities {
		p.personalities[pers.Business] = pers
	}
}

// WindowBounds returns the inclusive hire-date window in UTC.
func (p *Profile) WindowBounds() (time.Time, time.Time) {
	return p.start, p.end
}

// WindowDays is the number of days between the window bounds.
func (p *Profile) WindowDays() int {
	return int(p.end.Sub(p.start).Hours() / 24)
}

// KPI returns the range for (business, function), falling back to
// (business, default) and then to (default, default).
func (p *Profile) KPI(business, function string) KPIRange {
	if k, ok := p.kpis[pairKey{business, function}]; ok {
		return k
	}
	if k, ok := p.kpis[pairKey{business, DefaultKey}]; ok {
		return k
	}
	return p.kpis[pairKey{DefaultKey, DefaultKey}]
}

// SourceMix returns the channel mix for (business, function). Lookup order:
// (business, function), (business, default), (default, function),
// (default, default).
func (p *Profile) SourceMix(business, function string) []Channel {
	for _, key := range []pairKey{
		{business, function},
		{business, DefaultKey},
		{DefaultKey, function},
		{DefaultKey, DefaultKey},
	} {
		if mix, ok := p.mixes[key]; ok {
			return mix
		}
	}
	return nil
}

// Personality returns the business personality or the first declared one.
func (p *Profile) Personality(business string) Personality {
	if pers, ok := p.personalities[business]; ok {
		return pers
	}
	if len(p.Personalities) > 0 {
		return p.Personalities[0]
	}
	return Personality{Business: DefaultKey}
}

// Titles returns the role-title pool for a function.
func (p *Profile) Titles(function string) []string {
	if titles := p.titles[function]; len(titles) > 0 {
		return titles
	}
	return []string{FallbackTitle}
}

// IsOutlier reports whether (business, function) is the outlier target.
func (p *Profile) IsOutlier(business, function string) bool {
	return p.Outlier.Business != "" && p.Outlier.Business == business && p.Outlier.Function == function
}
