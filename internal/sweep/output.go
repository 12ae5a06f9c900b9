package sweep

import (
	"io"

	"github.com/gocarina/gocsv"
)

// OutcomeRow holds outcome chances for one parameter value.
type OutcomeRow struct {
	Param         string  `csv:"param"`
	Value         float64 `csv:"value"`
	Trials        int     `csv:"trials"`
	Extinct       float64 `csv:"both_extinct"`
	FishSaturated float64 `csv:"sharks_extinct"`
	Ongoing       float64 `csv:"neither_extinct"`
}

// RatioRow holds the averaged ratio estimates for one parameter value.
// NaN means no trial produced an estimate.
type RatioRow struct {
	Param  string  `csv:"param"`
	Value  float64 `csv:"value"`
	Trials int     `csv:"trials"`
	AB     float64 `csv:"a_over_b"`
	DC     float64 `csv:"d_over_c"`
}

// WriteCSV writes rows (a slice of OutcomeRow or RatioRow) with a header.
func WriteCSV(w io.Writer, rows any) error {
	return gocsv.Marshal(rows, w)
}
