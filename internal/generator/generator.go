// Package generator produces the synthetic hiring dataset: one Overall
// headcount summary plus one summary per function for every business, and
// the hiring records allocated to each (business, function) pair.
//
// Businesses and functions are walked in the order the profile declares
// them. Within a record the draws happen in a fixed order (date, cost,
// time-to-fill, title, ijp, build, diversity, source), so a seed fully
// determines the output.
package generator

import (
	"fmt"

	"github.com/learningpython92/FinalDashboard/internal/profile"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

type Generator struct {
	profile *profile.Profile
	faker   *Faker
}

// BusinessPlan records the per-business draws of a run.
type BusinessPlan struct {
	Business   string
	Headcount  int
	Available  int
	Gap        int
	TotalHires int
	Records    int
}

type Dataset struct {
	Summaries []types.HeadcountSummary
	Hirings   []types.HiringRecord
	Plans     []BusinessPlan
}

func New(p *profile.Profile, faker *Faker) *Generator {
	return &Generator{profile: p, faker: faker}
}

// run is the working state of a single Generate call.
type run struct {
	data *Dataset
	// outlierPending is consumed by the first record of the outlier pair.
	outlierPending bool
}

// Generate draws a full dataset. It fails when rounding leaves a function
// with a negative headcount share, which only very small businesses hit.
func (g *Generator) Generate() (*Dataset, error) {
	r := &run{
		data:           &Dataset{},
		outlierPending: g.profile.Outlier.Business != "",
	}

	for _, business := range g.profile.Businesses {
		if err := g.generateBusiness(r, business); err != nil {
			return nil, err
		}
	}

	return r.data, nil
}

func (g *Generator) generateBusiness(r *run, business profile.Business) error {
	p := g.profile

	total := business.Headcount
	available := int(float64(total) * g.faker.Uniform(p.Availability.Min, p.Availability.Max))
	gap := total - available

	r.data.Summaries = append(r.data.Summaries, types.HeadcountSummary{
		BusinessGroup:      business.Name,
		Function:           types.OverallFunction,
		TotalHeadcount:     total,
		AvailableHeadcount: available,
		Gap:                gap,
	})

	totalHires := int(float64(business.Headcount) * g.faker.Uniform(p.HireRate.Min, p.HireRate.Max))
	plan := BusinessPlan{
		Business:   business.Name,
		Headcount:  total,
		Available:  available,
		Gap:        gap,
		TotalHires: totalHires,
	}

	shares := Split(total, available, gap, p.Functions)
	for i, fn := range p.Functions {
		share := shares[i]
		if share.Total < 0 || share.Available < 0 || share.Gap < 0 {
			return fmt.Errorf("business %s: function %s gets a negative share (total %d, available %d, gap %d)",
				business.Name, fn.Name, share.Total, share.Available, share.Gap)
		}
		r.data.Summaries = append(r.data.Summaries, types.HeadcountSummary{
			BusinessGroup:      business.Name,
			Function:           fn.Name,
			TotalHeadcount:     share.Total,
			AvailableHeadcount: share.Available,
			Gap:                share.Gap,
		})

		hires := HireCount(totalHires, fn.Weight)
		for n := 0; n < hires; n++ {
			r.data.Hirings = append(r.data.Hirings, g.hire(r, business.Name, fn.Name))
		}
		plan.Records += hires
	}

	r.data.Plans = append(r.data.Plans, plan)
	return nil
}

func (g *Generator) hire(r *run, business, function string) types.HiringRecord {
	p := g.profile
	start, end := p.WindowBounds()

	hireDate := g.faker.DateBetween(start, end)
	kpi := p.KPI(business, function)
	cost := g.faker.IntBetween(kpi.CostPerHire.Min, kpi.CostPerHire.Max)
	ttf := g.faker.IntBetween(kpi.TimeToFill.Min, kpi.TimeToFill.Max)

	if business == p.Trend.Business {
		ttf = applyTrend(ttf, hireDate.Sub(start).Hours()/24, p.WindowDays(), p.Trend.Factor)
	}

	if r.outlierPending && p.IsOutlier(business, function) {
		cost *= p.Outlier.Multiplier
		r.outlierPending = false
	}

	title := g.faker.Pick(p.Titles(function))

	pers := p.Personality(business)
	ijp := g.faker.Chance(pers.IJP)
	buildBuy := types.Buy
	if g.faker.Chance(pers.Build) {
		buildBuy = types.Build
	}
	diversity := g.faker.Chance(pers.Diversity)

	return types.HiringRecord{
		BusinessGroup: business,
		Function:      function,
		RoleTitle:     title,
		HireDate:      hireDate,
		CostPerHire:   cost,
		TimeToFill:    ttf,
		IJPAdherence:  ijp,
		BuildBuy:      buildBuy,
		Diversity:     diversity,
		Source:        g.faker.Weighted(p.SourceMix(business, function)),
	}
}

// applyTrend stretches ttf linearly with how far into the window the hire
// falls: factor 1 on the first day, 1+slope on the last.
func applyTrend(ttf int, elapsedDays float64, windowDays int, slope float64) int {
	if windowDays <= 0 {
		return ttf
	}
	factor := 1 + (elapsedDays/float64(windowDays))*slope
	return int(float64(ttf) * factor)
}
