// Package progression simulates per-LP compounding price growth.
//
// The engine walks every LP unit rather than evaluating a closed-form
// geometric sum: intermediate step prices must be observable so the
// presentation layer can sample them into a table.
package progression

import (
	"github.com/shopspring/decimal"
)

// SampleEvery is the sampling interval for progression rows
const SampleEvery = 10

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Row is a sampled point on the price progression
type Row struct {
	// Step is the 1-indexed LP step
	Step int `json:"step"`

	// StepPrice is the price of this single LP, rounded to 4 places
	StepPrice decimal.Decimal `json:"step_price"`

	// Cumulative is the running total through this step, rounded to 2 places
	Cumulative decimal.Decimal `json:"cumulative"`
}

// Result is the outcome of a progression run
type Result struct {
	// TotalPrice is the unrounded sum over all steps
	TotalPrice decimal.Decimal `json:"total_price"`

	// FinalStepPrice is the unrounded price of the last step, or the base
	// price when no steps ran
	FinalStepPrice decimal.Decimal `json:"final_step_price"`

	// Rows holds every SampleEvery-th step plus the final step
	Rows []Row `json:"rows,omitempty"`
}

// growthFactor converts a percentage rate to a per-step multiplier
func growthFactor(ratePercent decimal.Decimal) decimal.Decimal {
	return one.Add(ratePercent.Div(hundred))
}

// Run simulates steps LP units of compound growth starting from base.
// Each step multiplies the running step price by (1 + ratePercent/100) and
// adds it to the total. Rounding is applied only to sampled row snapshots,
// never to the running accumulator.
//
// steps <= 0 yields a zero total, FinalStepPrice = base, and no rows.
func Run(base decimal.Decimal, steps int, ratePercent decimal.Decimal) Result {
	if steps <= 0 {
		return Result{TotalPrice: decimal.Zero, FinalStepPrice: base}
	}

	growth := growthFactor(ratePercent)
	stepPrice := base
	total := decimal.Zero
	rows := make([]Row, 0, steps/SampleEvery+1)

	for step := 1; step <= steps; step++ {
		stepPrice = stepPrice.Mul(growth)
		total = total.Add(stepPrice)
		if step%SampleEvery == 0 || step == steps {
			rows = append(rows, Row{
				Step:       step,
				StepPrice:  stepPrice.Round(4),
				Cumulative: total.Round(2),
			})
		}
	}

	return Result{TotalPrice: total, FinalStepPrice: stepPrice, Rows: rows}
}

// NextStepPrice returns the price of exactly one more LP unit beyond
// currentLP: base * (1 + ratePercent/100)^(currentLP+1). Closed form,
// valid for a single future step only; it matches the final step price of
// Run(base, currentLP+1, ratePercent).
func NextStepPrice(base decimal.Decimal, currentLP int, ratePercent decimal.Decimal) decimal.Decimal {
	if currentLP < 0 {
		currentLP = 0
	}
	growth := growthFactor(ratePercent)
	return base.Mul(growth.Pow(decimal.NewFromInt(int64(currentLP) + 1)))
}
