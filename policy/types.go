// Package policy implements FlowPolicy and Flow: the placement orchestrator
// that realizes a demand across one or more equal-or-best-effort paths,
// creating, reoptimizing, and tearing down Flows to keep placed volume close
// to a target.
//
// The state machine (create -> place_demand loop -> reoptimize or rebalance
// -> remove) follows FlowPolicy/Flow in ngraph/flow.py, configured through
// the same functional-option idiom used throughout this module (see
// edgeselect.Option).
package policy

import (
	"errors"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/pathbundle"
)

// maxIterations bounds the place_demand round-robin loop; exceeding it
// indicates a configuration that never converges (e.g. a reoptimization
// cycle that keeps finding equally-bad paths).
const maxIterations = 10000

// Sentinel errors.
var (
	// ErrNonConvergent indicates place_demand exceeded maxIterations.
	ErrNonConvergent = errors.New("policy: demand placement did not converge")

	// ErrMaxFlowCountMismatch indicates a static-path set whose length
	// disagrees with an explicitly configured MaxFlowCount.
	ErrMaxFlowCountMismatch = errors.New("policy: max flow count must equal the number of static paths")

	// ErrMaxFlowCountRequired indicates EqualBalanced placement was
	// configured without a bounded MaxFlowCount.
	ErrMaxFlowCountRequired = errors.New("policy: max flow count is required for equal-balanced placement")

	// ErrStaticPathEndpointMismatch indicates a static path's (src, dst)
	// does not match the demand being placed.
	ErrStaticPathEndpointMismatch = errors.New("policy: static path endpoints do not match demand")

	// ErrUnknownFlow indicates an operation referenced a FlowIndex the
	// policy has no record of.
	ErrUnknownFlow = errors.New("policy: unknown flow index")
)

// Config holds a FlowPolicy's immutable placement configuration.
type Config struct {
	EdgeSelectPolicy  edgeselect.Policy
	FlowPlacement     flow.FlowPlacement
	Multipath         bool
	MinFlowCount      int
	MaxFlowCount      int // 0 means unbounded
	Filter            string
	FilterValue       interface{}
	MaxPathCost       int64   // 0 means unset
	MaxPathCostFactor float64 // 0 means unset
	StaticPaths       []*pathbundle.PathBundle
	Accessor          core.Accessor
}

// Option configures a Config.
type Option func(*Config)

// WithEdgeSelect sets the edge-selection policy path search uses.
func WithEdgeSelect(p edgeselect.Policy) Option { return func(c *Config) { c.EdgeSelectPolicy = p } }

// WithFlowPlacement sets the discipline Flow.PlaceFlow uses to divide
// capacity across a path bundle's parallel branches.
func WithFlowPlacement(p flow.FlowPlacement) Option { return func(c *Config) { c.FlowPlacement = p } }

// WithMultipath enables merging equal-cost predecessors into one path bundle.
func WithMultipath(v bool) Option { return func(c *Config) { c.Multipath = v } }

// WithMinFlowCount sets how many flows are created up front (default 1).
func WithMinFlowCount(n int) Option { return func(c *Config) { c.MinFlowCount = n } }

// WithMaxFlowCount caps how many concurrent flows a policy may hold.
func WithMaxFlowCount(n int) Option { return func(c *Config) { c.MaxFlowCount = n } }

// WithEdgeFilter restricts path search to edges whose Attrs[attr] == value.
func WithEdgeFilter(attr string, value interface{}) Option {
	return func(c *Config) { c.Filter, c.FilterValue = attr, value }
}

// WithMaxPathCost sets an absolute cap on admissible path cost.
func WithMaxPathCost(cost int64) Option { return func(c *Config) { c.MaxPathCost = cost } }

// WithMaxPathCostFactor sets a cap relative to the best cost ever observed.
func WithMaxPathCostFactor(factor float64) Option {
	return func(c *Config) { c.MaxPathCostFactor = factor }
}

// WithStaticPaths pins the policy to an exact, fixed set of path bundles
// rather than searching for new ones; MaxFlowCount becomes len(paths).
func WithStaticPaths(paths []*pathbundle.PathBundle) Option {
	return func(c *Config) { c.StaticPaths = paths }
}

// WithPolicyAccessor overrides the capacity/flow attribute accessor used for
// every path search and placement this policy performs.
func WithPolicyAccessor(a core.Accessor) Option { return func(c *Config) { c.Accessor = a } }
