package generator

import (
	"math/rand"
	"testing"

	"github.com/learningpython92/FinalDashboard/internal/profile"
	"github.com/learningpython92/FinalDashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, seed int64) (*Generator, *profile.Profile) {
	t.Helper()
	p, err := profile.Default()
	require.NoError(t, err)
	return New(p, NewFaker(rand.New(rand.NewSource(seed)))), p
}

func mustGenerate(t *testing.T, g *Generator) *Dataset {
	t.Helper()
	data, err := g.Generate()
	require.NoError(t, err)
	return data
}

func TestGenerateIsDeterministic(t *testing.T) {
	g1, _ := newTestGenerator(t, 7)
	g2, _ := newTestGenerator(t, 7)

	a := mustGenerate(t, g1)
	b := mustGenerate(t, g2)

	assert.Equal(t, a.Summaries, b.Summaries)
	require.Equal(t, len(a.Hirings), len(b.Hirings))
	assert.Equal(t, a.Hirings[0], b.Hirings[0])
	assert.Equal(t, a.Hirings[len(a.Hirings)-1], b.Hirings[len(b.Hirings)-1])
}

func TestSummariesAddUp(t *testing.T) {
	g, p := newTestGenerator(t, 11)
	data := mustGenerate(t, g)

	require.Len(t, data.Summaries, len(p.Businesses)*(len(p.Functions)+1))

	overall := map[string]types.HeadcountSummary{}
	sums := map[string]*types.HeadcountSummary{}
	for _, s := range data.Summaries {
		assert.Equal(t, s.TotalHeadcount-s.AvailableHeadcount, s.Gap, "%s/%s", s.BusinessGroup, s.Function)

		if s.IsOverall() {
			_, dup := overall[s.BusinessGroup]
			assert.False(t, dup, "duplicate Overall row for %s", s.BusinessGroup)
			overall[s.BusinessGroup] = s
			continue
		}
		acc, ok := sums[s.BusinessGroup]
		if !ok {
			acc = &types.HeadcountSummary{}
			sums[s.BusinessGroup] = acc
		}
		acc.TotalHeadcount += s.TotalHeadcount
		acc.AvailableHeadcount += s.AvailableHeadcount
		acc.Gap += s.Gap
	}

	for _, b := range p.Businesses {
		o, ok := overall[b.Name]
		require.True(t, ok, "missing Overall row for %s", b.Name)
		assert.Equal(t, b.Headcount, o.TotalHeadcount)
		assert.GreaterOrEqual(t, o.AvailableHeadcount, int(float64(b.Headcount)*p.Availability.Min))
		assert.LessOrEqual(t, o.AvailableHeadcount, int(float64(b.Headcount)*p.Availability.Max))

		acc := sums[b.Name]
		assert.Equal(t, o.TotalHeadcount, acc.TotalHeadcount, b.Name)
		assert.Equal(t, o.AvailableHeadcount, acc.AvailableHeadcount, b.Name)
		assert.Equal(t, o.Gap, acc.Gap, b.Name)
	}
}

func TestHiringCountsFollowPlan(t *testing.T) {
	g, p := newTestGenerator(t, 23)
	data := mustGenerate(t, g)

	perBusiness := map[string]int{}
	perPair := map[[2]string]int{}
	for _, h := range data.Hirings {
		perBusiness[h.BusinessGroup]++
		perPair[[2]string{h.BusinessGroup, h.Function}]++
	}

	require.Len(t, data.Plans, len(p.Businesses))
	for i, plan := range data.Plans {
		b := p.Businesses[i]
		assert.Equal(t, b.Name, plan.Business)
		assert.GreaterOrEqual(t, plan.TotalHires, int(float64(b.Headcount)*p.HireRate.Min))
		assert.LessOrEqual(t, plan.TotalHires, int(float64(b.Headcount)*p.HireRate.Max))

		expected := 0
		for _, fn := range p.Functions {
			n := HireCount(plan.TotalHires, fn.Weight)
			assert.Equal(t, n, perPair[[2]string{b.Name, fn.Name}], "%s/%s", b.Name, fn.Name)
			expected += n
		}
		assert.Equal(t, expected, plan.Records)
		assert.Equal(t, expected, perBusiness[b.Name])
	}
}

func TestHiringRecordsStayInRange(t *testing.T) {
	g, p := newTestGenerator(t, 5)
	data := mustGenerate(t, g)
	start, end := p.WindowBounds()

	outliers := 0
	for _, h := range data.Hirings {
		kpi := p.KPI(h.BusinessGroup, h.Function)

		assert.False(t, h.HireDate.Before(start), "hire date %s before window", h.HireDate)
		assert.False(t, h.HireDate.After(end), "hire date %s after window", h.HireDate)

		if !kpi.CostPerHire.Contains(h.CostPerHire) {
			outliers++
			assert.True(t, p.IsOutlier(h.BusinessGroup, h.Function))
			assert.Zero(t, h.CostPerHire%p.Outlier.Multiplier)
			assert.True(t, kpi.CostPerHire.Contains(h.CostPerHire/p.Outlier.Multiplier))
		}

		if h.BusinessGroup == p.Trend.Business {
			maxTTF := int(float64(kpi.TimeToFill.Max) * (1 + p.Trend.Factor))
			assert.GreaterOrEqual(t, h.TimeToFill, kpi.TimeToFill.Min)
			assert.LessOrEqual(t, h.TimeToFill, maxTTF)
		} else {
			assert.True(t, kpi.TimeToFill.Contains(h.TimeToFill), "%s/%s ttf %d", h.BusinessGroup, h.Function, h.TimeToFill)
		}

		assert.Contains(t, p.Titles(h.Function), h.RoleTitle)
		assert.Contains(t, []types.BuildBuy{types.Build, types.Buy}, h.BuildBuy)
		assert.Contains(t, channelNames(p.SourceMix(h.BusinessGroup, h.Function)), h.Source)
	}

	assert.Equal(t, 1, outliers)
}

func TestOutlierIsFirstRecordOfPair(t *testing.T) {
	g, p := newTestGenerator(t, 99)

	for run := 0; run < 2; run++ {
		data := mustGenerate(t, g)

		var pair []types.HiringRecord
		for _, h := range data.Hirings {
			if p.IsOutlier(h.BusinessGroup, h.Function) {
				pair = append(pair, h)
			}
		}
		require.NotEmpty(t, pair)

		kpi := p.KPI(p.Outlier.Business, p.Outlier.Function)
		assert.False(t, kpi.CostPerHire.Contains(pair[0].CostPerHire), "run %d", run)
		for _, h := range pair[1:] {
			assert.True(t, kpi.CostPerHire.Contains(h.CostPerHire), "run %d", run)
		}
	}
}

func TestNoOutlierConfigured(t *testing.T) {
	p, err := profile.Parse([]byte(`
window: {start: "2025-01-01", end: "2025-12-31"}
hire_rate: {min: 0.1, max: 0.1}
availability: {min: 0.9, max: 0.9}
businesses:
  - {name: Energy, headcount: 1000}
functions:
  - {name: Legal, weight: 1}
kpi_ranges:
  - business: default
    function: default
    time_to_fill: {min: 10, max: 20}
    cost_per_hire: {min: 100, max: 200}
`))
	require.NoError(t, err)

	data := mustGenerate(t, New(p, NewSeededFaker(3)))

	require.Len(t, data.Hirings, 100)
	for _, h := range data.Hirings {
		assert.True(t, p.KPI(h.BusinessGroup, h.Function).CostPerHire.Contains(h.CostPerHire))
		assert.Equal(t, profile.FallbackTitle, h.RoleTitle)
		assert.Equal(t, UnknownSource, h.Source)
	}
}

func TestWorkedExample(t *testing.T) {
	p, err := profile.Parse([]byte(`
window: {start: "2025-01-01", end: "2025-12-31"}
hire_rate: {min: 0.1, max: 0.1}
availability: {min: 0.9, max: 0.9}
businesses:
  - {name: Energy, headcount: 30000}
functions:
  - {name: Sales, weight: 0.30}
  - {name: Others, weight: 0.70}
kpi_ranges:
  - business: default
    function: default
    time_to_fill: {min: 70, max: 130}
    cost_per_hire: {min: 30000, max: 70000}
`))
	require.NoError(t, err)

	data := mustGenerate(t, New(p, NewSeededFaker(1)))

	require.Len(t, data.Plans, 1)
	assert.Equal(t, 3000, data.Plans[0].TotalHires)

	sales := 0
	for _, h := range data.Hirings {
		assert.Equal(t, "Energy", h.BusinessGroup)
		if h.Function == "Sales" {
			sales++
		}
	}
	assert.Equal(t, 900, sales)
}

func TestApplyTrend(t *testing.T) {
	assert.Equal(t, 100, applyTrend(100, 0, 364, 0.5))
	assert.Equal(t, 125, applyTrend(100, 182, 364, 0.5))
	assert.Equal(t, 150, applyTrend(100, 364, 364, 0.5))
	assert.Equal(t, 100, applyTrend(100, 10, 0, 0.5))
}

func channelNames(mix []profile.Channel) []string {
	names := make([]string, 0, len(mix))
	for _, ch := range mix {
		names = append(names, ch.Name)
	}
	return names
}

func TestNegativeShareIsAnError(t *testing.T) {
	// 9 of 10 available: A and B each get total 3 but available 2, which
	// leaves C with more available than total.
	p, err := profile.Parse([]byte(`
window: {start: "2025-01-01", end: "2025-12-31"}
availability: {min: 0.9, max: 0.9}
businesses:
  - {name: Energy, headcount: 10}
functions:
  - {name: A, weight: 0.3}
  - {name: B, weight: 0.3}
  - {name: C, weight: 0.4}
kpi_ranges:
  - business: default
    function: default
    time_to_fill: {min: 10, max: 20}
    cost_per_hire: {min: 100, max: 200}
`))
	require.NoError(t, err)

	data, err := New(p, NewSeededFaker(1)).Generate()
	assert.Nil(t, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function C gets a negative share")
}
