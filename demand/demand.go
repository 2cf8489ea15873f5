// Package demand implements Demand: a priority-ordered volume of traffic
// between two nodes, realized on a graph through a single FlowPolicy.
//
// Grounded on the reference implementation's Demand dataclass
// (ngraph/demand/__init__.py): class-ascending priority ordering, the
// clamp-then-delegate shape of place(), and the per-instance unique flow
// class that keeps concurrently-placed demands from colliding inside one
// FlowPolicy's flow bookkeeping.
package demand

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/policy"
)

// Sentinel errors.
var (
	// ErrNoFlowPolicy indicates Place was called on a Demand with no Policy set.
	ErrNoFlowPolicy = errors.New("demand: no flow policy set")

	// ErrInvalidMaxFraction indicates maxFraction fell outside [0, 1].
	ErrInvalidMaxFraction = errors.New("demand: max fraction must be in [0, 1]")
)

// Demand is a volume of traffic to place between Src and Dst, at Class
// priority (lower sorts first), realized through Policy.
type Demand struct {
	Src    core.NodeID
	Dst    core.NodeID
	Volume float64
	Class  int64
	Policy *policy.FlowPolicy

	Placed float64
}

// New builds a Demand. Volume may be math.Inf(1) for a best-effort, fill-
// whatever-capacity-remains demand.
func New(src, dst core.NodeID, volume float64, class int64, p *policy.FlowPolicy) *Demand {
	return &Demand{Src: src, Dst: dst, Volume: volume, Class: class, Policy: p}
}

// Less reports whether d should be placed before other: lower Class sorts
// first, i.e. higher priority.
func (d *Demand) Less(other *Demand) bool { return d.Class < other.Class }

// String returns a concise human-readable summary.
func (d *Demand) String() string {
	return fmt.Sprintf("Demand(src=%v, dst=%v, volume=%v, class=%d, placed=%v)",
		d.Src, d.Dst, d.Volume, d.Class, d.Placed)
}

// flowClass uniquely identifies this Demand's contribution within its
// FlowPolicy, so two Demands sharing the same Class never collide: Go
// structs compare by value, and the embedded pointer gives every Demand
// instance a distinct identity the way Python's id(self) does.
type flowClass struct {
	Class int64
	Src   core.NodeID
	Dst   core.NodeID
	Self  *Demand
}

// Place delegates up to one placement pass' worth of Volume onto flowGraph
// via Policy, honoring maxFraction (a cap on the fraction of the total
// Volume that may be requested this call) and an optional absolute cap
// maxPlacement (nil means no cap). Returns the volume placed in this call
// and the part of this call's clamped request that was left unplaced (not
// Volume minus Placed).
func (d *Demand) Place(flowGraph *core.Graph, maxFraction float64, maxPlacement *float64) (placedNow float64, remaining float64, err error) {
	if d.Policy == nil {
		return 0, 0, ErrNoFlowPolicy
	}
	if maxFraction < 0 || maxFraction > 1 {
		return 0, 0, ErrInvalidMaxFraction
	}

	toPlace := d.Volume - d.Placed
	if maxPlacement != nil {
		toPlace = math.Min(toPlace, *maxPlacement)
	}

	if maxFraction > 0 {
		toPlace = math.Min(toPlace, d.Volume*maxFraction)
	} else if math.IsInf(d.Volume, 1) {
		toPlace = d.Volume
	} else {
		toPlace = 0
	}

	if toPlace > 0 && toPlace < flow.MinFlow {
		toPlace = math.Min(d.Volume-d.Placed, flow.MinFlow)
	}

	class := flowClass{Class: d.Class, Src: d.Src, Dst: d.Dst, Self: d}
	before := d.Policy.PlacedDemand()
	if _, _, err := d.Policy.PlaceDemand(flowGraph, d.Src, d.Dst, class, toPlace, 0, 0); err != nil {
		return 0, 0, err
	}

	placedNow = d.Policy.PlacedDemand() - before
	d.Placed = round12(d.Policy.PlacedDemand())
	remaining = toPlace - placedNow

	return round12(placedNow), round12(remaining), nil
}

// round12 rounds v to 12 fractional digits, collapsing anything within
// flow.MinFlow of zero to exactly 0. Infinities pass through unchanged.
func round12(v float64) float64 {
	if !math.IsInf(v, 0) && v > -flow.MinFlow && v < flow.MinFlow {
		return 0
	}
	if math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow10(12)
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}

	return math.Round(scaled) / scale
}
