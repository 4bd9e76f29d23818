// Package ladder defines the fixed rank ladder and position arithmetic.
package ladder

import (
	"strings"

	"github.com/shopspring/decimal"

	"lpboost/internal/errors"
)

// Rank is a major tier on the ladder
type Rank string

const (
	RankIron     Rank = "Iron"
	RankBronze   Rank = "Bronze"
	RankSilver   Rank = "Silver"
	RankGold     Rank = "Gold"
	RankPlatinum Rank = "Platinum"
	RankEmerald  Rank = "Emerald"
	RankDiamond  Rank = "Diamond"
)

// Division is a sub-tier within a rank, IV lowest, I highest
type Division string

const (
	DivisionIV  Division = "IV"
	DivisionIII Division = "III"
	DivisionII  Division = "II"
	DivisionI   Division = "I"
)

// LPPerDivision is the LP span of a single division
const LPPerDivision = 100

// Ranks lists all ranks in ascending ladder order
var Ranks = []Rank{RankIron, RankBronze, RankSilver, RankGold, RankPlatinum, RankEmerald, RankDiamond}

// Divisions lists all divisions in ascending order within a rank
var Divisions = []Division{DivisionIV, DivisionIII, DivisionII, DivisionI}

var rankOrdinals = map[Rank]int{}
var divisionOrdinals = map[Division]int{}

func init() {
	for i, r := range Ranks {
		rankOrdinals[r] = i
	}
	for i, d := range Divisions {
		divisionOrdinals[d] = i
	}
}

// ParseRank resolves a rank name, case-insensitively
func ParseRank(s string) (Rank, error) {
	name := strings.TrimSpace(s)
	for _, r := range Ranks {
		if strings.EqualFold(name, string(r)) {
			return r, nil
		}
	}
	return "", errors.Newf(errors.TypeInput, "unknown rank: %q", s)
}

// ParseDivision resolves a division name, case-insensitively
func ParseDivision(s string) (Division, error) {
	name := strings.TrimSpace(s)
	for _, d := range Divisions {
		if strings.EqualFold(name, string(d)) {
			return d, nil
		}
	}
	return "", errors.Newf(errors.TypeInput, "unknown division: %q", s)
}

// RankOrdinal returns the 0-based position of a rank on the ladder
func RankOrdinal(r Rank) (int, error) {
	ord, ok := rankOrdinals[r]
	if !ok {
		return 0, errors.Newf(errors.TypeInput, "unknown rank: %q", r)
	}
	return ord, nil
}

// Position maps a rank and division to a linear ladder index.
// Positions are strictly increasing with rank, then with division:
// Iron IV is 0, Diamond I is 27.
func Position(r Rank, d Division) (int, error) {
	rankOrd, err := RankOrdinal(r)
	if err != nil {
		return 0, err
	}
	divOrd, ok := divisionOrdinals[d]
	if !ok {
		return 0, errors.Newf(errors.TypeInput, "unknown division: %q", d)
	}
	return rankOrd*len(Divisions) + divOrd, nil
}

// State is a point on the ladder: rank, division, and LP within the division.
type State struct {
	Rank     Rank            `json:"rank"`
	Division Division        `json:"division"`
	LP       decimal.Decimal `json:"lp"`
}

// NewState builds a validated State. LP must be in [0, 100); fractional LP
// is allowed.
func NewState(r Rank, d Division, lp decimal.Decimal) (State, error) {
	if _, err := Position(r, d); err != nil {
		return State{}, err
	}
	if lp.IsNegative() || lp.GreaterThanOrEqual(decimal.NewFromInt(LPPerDivision)) {
		return State{}, errors.Newf(errors.TypeInput, "lp out of range [0,%d): %s", LPPerDivision, lp)
	}
	return State{Rank: r, Division: d, LP: lp}, nil
}

// ParseState builds a State from raw rank and division names
func ParseState(rank, division string, lp decimal.Decimal) (State, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return State{}, err
	}
	d, err := ParseDivision(division)
	if err != nil {
		return State{}, err
	}
	return NewState(r, d, lp)
}

// Position returns the linear index of the state's rank/division
func (s State) Position() (int, error) {
	return Position(s.Rank, s.Division)
}

// String formats the state as "Gold II (45 LP)"
func (s State) String() string {
	return string(s.Rank) + " " + string(s.Division) + " (" + s.LP.String() + " LP)"
}

// Floor returns the lowest position on the ladder, Iron IV at 0 LP.
// It anchors the reference path for adjusted-base pricing.
func Floor() State {
	return State{Rank: RankIron, Division: DivisionIV, LP: decimal.Zero}
}
