package generator

import "github.com/learningpython92/FinalDashboard/internal/profile"

// Share is one function's slice of a business's headcount.
type Share struct {
	Function  string
	Total     int
	Available int
	Gap       int
}

// Split divides total, available and gap across functions by weight. Every
// function but the last gets the truncated product; the last one absorbs the
// remainder so the shares always sum to the inputs exactly. A share's gap is
// always its total minus its available headcount, not a truncated gap*weight
// of its own, so the last share's gap can differ from its weighted portion.
func Split(total, available, gap int, functions []profile.Function) []Share {
	shares := make([]Share, 0, len(functions))
	var runTotal, runAvailable, runGap int

	for i, fn := range functions {
		var s Share
		if i < len(functions)-1 {
			s = Share{
				Function:  fn.Name,
				Total:     int(float64(total) * fn.Weight),
				Available: int(float64(available) * fn.Weight),
			}
			s.Gap = s.Total - s.Available
		} else {
			s = Share{
				Function:  fn.Name,
				Total:     total - runTotal,
				Available: available - runAvailable,
				Gap:       gap - runGap,
			}
		}

		runTotal += s.Total
		runAvailable += s.Available
		runGap += s.Gap
		shares = append(shares, s)
	}

	return shares
}

// HireCount is the number of hires a function gets out of totalHires.
func HireCount(totalHires int, weight float64) int {
	return int(float64(totalHires) * weight)
}
