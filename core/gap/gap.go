// Package gap computes the LP distance between two ladder states.
package gap

import (
	"github.com/shopspring/decimal"

	"lpboost/core/ladder"
)

// Result is the LP distance between two ladder states.
// The zero Result signals a non-forward request: the target does not lie
// strictly ahead of the current state. That is a normal negative outcome,
// not an error; callers must check Forward() before pricing the gap.
type Result struct {
	// TotalLP is the LP that must be gained, zero when non-forward
	TotalLP decimal.Decimal `json:"total_lp"`

	// Divisions is the number of division boundaries spanned
	Divisions int `json:"divisions"`

	// Ranks is the number of rank boundaries spanned
	Ranks int `json:"ranks"`
}

// Forward reports whether the request asked for forward progress
func (r Result) Forward() bool {
	return r.TotalLP.IsPositive()
}

// Steps returns the number of whole LP units to simulate. Fractional gaps
// round up: a partial LP still costs a full pricing step.
func (r Result) Steps() int {
	return int(r.TotalLP.Ceil().IntPart())
}

var lpPerDivision = decimal.NewFromInt(ladder.LPPerDivision)

// Calculate returns the LP gap from current to target.
// Unknown rank or division names fail fast; a target at or behind the
// current state yields the zero Result.
func Calculate(current, target ladder.State) (Result, error) {
	currPos, err := current.Position()
	if err != nil {
		return Result{}, err
	}
	targetPos, err := target.Position()
	if err != nil {
		return Result{}, err
	}

	if targetPos < currPos || (targetPos == currPos && target.LP.LessThanOrEqual(current.LP)) {
		return Result{TotalLP: decimal.Zero}, nil
	}

	var total decimal.Decimal
	if currPos == targetPos {
		total = target.LP.Sub(current.LP)
	} else {
		// Clear the current division, cross the whole divisions between,
		// then climb into the target division.
		total = lpPerDivision.Sub(current.LP)
		between := int64(targetPos - currPos - 1)
		total = total.Add(lpPerDivision.Mul(decimal.NewFromInt(between)))
		total = total.Add(target.LP)
	}

	currRank, err := ladder.RankOrdinal(current.Rank)
	if err != nil {
		return Result{}, err
	}
	targetRank, err := ladder.RankOrdinal(target.Rank)
	if err != nil {
		return Result{}, err
	}

	return Result{
		TotalLP:   total,
		Divisions: targetPos - currPos,
		Ranks:     targetRank - currRank,
	}, nil
}
