package types

import (
	"time"
)

// Table names match the schema the dashboard backend reads.
const (
	HiringTable  = "hiring_data"
	SummaryTable = "business_summary"
	AlertTable   = "alerts_log"
)

// OverallFunction marks the business-wide row in business_summary.
const OverallFunction = "Overall"

type BuildBuy string

const (
	Build BuildBuy = "Build"
	Buy   BuildBuy = "Buy"
)

// HiringRecord is one synthetic hire.
type HiringRecord struct {
	BusinessGroup string
	Function      string
	RoleTitle     string
	HireDate      time.Time
	CostPerHire   int
	TimeToFill    int
	IJPAdherence  bool
	BuildBuy      BuildBuy
	Diversity     bool
	Source        string
}

// HeadcountSummary is a headcount fact for a business, either for a single
// function or for the whole business (Function == OverallFunction).
type HeadcountSummary struct {
	BusinessGroup      string
	Function           string
	TotalHeadcount     int
	AvailableHeadcount int
	Gap                int
}

func (s HeadcountSummary) IsOverall() bool {
	return s.Function == OverallFunction
}

// BusinessStats is the read-back view used by the stats command.
type BusinessStats struct {
	BusinessGroup      string
	TotalHeadcount     int
	AvailableHeadcount int
	Gap                int
	Hires              int64
	AvgCostPerHire     float64
	AvgTimeToFill      float64
}

type SchemaTable struct {
	Name    string
	Columns []SchemaColumn
	Indexes []SchemaIndex
}

type SchemaColumn struct {
	Name            string
	Type            string
	Nullable        bool
	IsPrimary       bool
	IsAutoIncrement bool
}

type SchemaIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}
