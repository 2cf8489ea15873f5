// Package netgraph is a deterministic, in-memory network-flow analysis
// engine: a directed multigraph with capacity and cost on every edge, a
// shortest-path kernel with pluggable multipath selection, and a flow
// placement/max-flow/policy stack built on top of it.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/       — StrictMultiDiGraph: nodes, capacitated cost-weighted edges,
//	              thread-safe mutation and cloning
//	edgeselect/ — pluggable edge-selection policies consumed by the SPF kernel
//	pathbundle/ — compact predecessor-DAG representation of one or more
//	              equal- or near-equal-cost paths, with deterministic
//	              path enumeration
//	spf/        — Dijkstra-based shortest-path-first kernel producing
//	              PathBundles under a given EdgeSelector
//	flow/       — node-capacity bookkeeping, flow placement, max-flow solving,
//	              flow summaries, and sensitivity analysis
//	policy/     — FlowPolicy state machine: create/place/reoptimize/remove
//	              named flows under a placement discipline, with presets
//	demand/     — Demand: a volume-tracked request delegating to a FlowPolicy
//
// Every public type here favors explicit error returns, sentinel errors
// checked via errors.Is, and deterministic (sorted) output ordering so that
// two runs over the same graph and the same requests always agree.
package netgraph
