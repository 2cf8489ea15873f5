// Package flow implements node-capacity bookkeeping, flow placement, the
// max-flow solver, flow summaries, and capacity sensitivity analysis on top
// of a core.Graph and the predecessor DAGs produced by package spf.
//
// Entry points return a rich result plus an error and are configured via
// functional options; the exact placement and solver algorithms follow
// calc_cap.py, place_flow.py and max_flow.py.
package flow

import (
	"errors"
	"math"
)

// MinFlow is the smallest flow magnitude treated as non-zero; placement or
// removal deltas at or below this threshold collapse to exactly 0, keeping
// floating-point dust from violating the Σ flows == flow invariant.
const MinFlow = 1e-9

// roundDigits is the fixed-point precision flow deltas are rounded to.
const roundDigits = 12

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph was passed to a flow operation.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrUnknownPlacement indicates an unrecognized FlowPlacement discipline.
	ErrUnknownPlacement = errors.New("flow: unknown flow placement discipline")
)

// FlowPlacement selects how residual capacity along a PathBundle's DAG is
// divided among its parallel branches when placing a flow.
type FlowPlacement int

const (
	// Proportional divides capacity in proportion to each branch's residual
	// capacity (IP UCMP / unequal-cost load balancing).
	Proportional FlowPlacement = iota

	// EqualBalanced divides capacity equally across branches regardless of
	// their individual residual capacity (IP ECMP semantics).
	EqualBalanced
)

// MaxFlowTriple is the three scalar max-flow readings CalcCapacity produces
// for a node: Total (sum of parallel residuals), Single (the largest
// individual residual), and Balanced (the residual achievable if every
// parallel branch carries an equal share).
type MaxFlowTriple struct {
	Total    float64
	Single   float64
	Balanced float64
}

// round12 rounds v to roundDigits fractional digits, collapsing anything
// within MinFlow of zero to exactly 0.
func round12(v float64) float64 {
	if v > -MinFlow && v < MinFlow {
		return 0
	}
	scale := math.Pow10(roundDigits)
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}

	return math.Round(scaled) / scale
}
