package ledger

import (
	"fmt"
	"math"
	"strconv"
)

// Hbar is an amount of hbar held as whole tinybars so that balance
// arithmetic is exact. 1 hbar = 100_000_000 tinybar.
type Hbar int64

const TinybarPerHbar = 100_000_000

// HbarFromFloat converts a float hbar amount (the schema boundary
// representation) to tinybars, rounding to the nearest tinybar.
func HbarFromFloat(v float64) (Hbar, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid hbar amount")
	}
	tiny := math.Round(v * TinybarPerHbar)
	if tiny > math.MaxInt64 || tiny < math.MinInt64 {
		return 0, fmt.Errorf("hbar amount %g out of range", v)
	}
	return Hbar(tiny), nil
}

// Float returns the amount in hbar for display and catalog output.
func (h Hbar) Float() float64 {
	return float64(h) / TinybarPerHbar
}

func (h Hbar) Tinybar() int64 {
	return int64(h)
}

func (h Hbar) String() string {
	return strconv.FormatFloat(h.Float(), 'f', -1, 64) + " HBAR"
}
