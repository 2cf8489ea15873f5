// File: accessor.go
// Role: Indirection for custom-named capacity/flow/flows attributes, so the
//       SPF fast path and the flow package never hardcode "capacity"/"flow".
package core

// Accessor resolves capacity/flow/flows reads and writes through configured
// attribute names. The zero value behaves like DefaultAccessor: an empty
// attribute name falls back to the typed Edge field.
//
// When an attribute name equals its default ("capacity"/"flow"/"flows"),
// Accessor reads/writes the typed Edge fields directly (the fast path).
// A non-default name instead reads/writes Edge.Attrs under that key, which
// lets a caller exercise an entirely custom attribute name end-to-end while
// keeping the common case allocation-free.
type Accessor struct {
	CapacityAttr string
	FlowAttr     string
	FlowsAttr    string
}

// DefaultAccessor resolves the canonical "capacity"/"flow"/"flows" names.
func DefaultAccessor() Accessor {
	return Accessor{CapacityAttr: "capacity", FlowAttr: "flow", FlowsAttr: "flows"}
}

// NewAccessor builds an Accessor for the given attribute names, falling back
// to the defaults for any name left empty.
func NewAccessor(capacityAttr, flowAttr, flowsAttr string) Accessor {
	a := DefaultAccessor()
	if capacityAttr != "" {
		a.CapacityAttr = capacityAttr
	}
	if flowAttr != "" {
		a.FlowAttr = flowAttr
	}
	if flowsAttr != "" {
		a.FlowsAttr = flowsAttr
	}

	return a
}

// Capacity reads the edge's capacity through the configured attribute name.
func (a Accessor) Capacity(e *Edge) float64 {
	if a.CapacityAttr == "" || a.CapacityAttr == "capacity" {
		return e.Capacity
	}
	if v, ok := e.Attrs[a.CapacityAttr].(float64); ok {
		return v
	}

	return 0
}

// Flow reads the edge's placed flow through the configured attribute name.
func (a Accessor) Flow(e *Edge) float64 {
	if a.FlowAttr == "" || a.FlowAttr == "flow" {
		return e.Flow
	}
	if v, ok := e.Attrs[a.FlowAttr].(float64); ok {
		return v
	}

	return 0
}

// SetCapacity overwrites the edge's capacity through the configured
// attribute name.
func (a Accessor) SetCapacity(e *Edge, v float64) {
	if a.CapacityAttr == "" || a.CapacityAttr == "capacity" {
		e.Capacity = v
		return
	}
	e.Attrs[a.CapacityAttr] = v
}

// Residual returns Capacity(e) - Flow(e).
func (a Accessor) Residual(e *Edge) float64 {
	return a.Capacity(e) - a.Flow(e)
}

// SetFlow overwrites the edge's placed flow through the configured attribute name.
func (a Accessor) SetFlow(e *Edge, v float64) {
	if a.FlowAttr == "" || a.FlowAttr == "flow" {
		e.Flow = v
		return
	}
	e.Attrs[a.FlowAttr] = v
}

// AddFlow adds delta to the edge's placed flow.
func (a Accessor) AddFlow(e *Edge, delta float64) {
	a.SetFlow(e, a.Flow(e)+delta)
}

// Flows reads the per-flow contribution map through the configured attribute name.
func (a Accessor) Flows(e *Edge) map[FlowIndex]float64 {
	if a.FlowsAttr == "" || a.FlowsAttr == "flows" {
		if e.Flows == nil {
			e.Flows = make(map[FlowIndex]float64)
		}
		return e.Flows
	}
	m, ok := e.Attrs[a.FlowsAttr].(map[FlowIndex]float64)
	if !ok {
		m = make(map[FlowIndex]float64)
		e.Attrs[a.FlowsAttr] = m
	}

	return m
}

// AddFlowContribution adds delta to e.Flows[idx] (creating the entry on
// first write) and mirrors the same delta into the total via AddFlow.
func (a Accessor) AddFlowContribution(e *Edge, idx FlowIndex, delta float64) {
	if delta == 0 {
		return
	}
	m := a.Flows(e)
	m[idx] += delta
	a.AddFlow(e, delta)
}

// ClearFlowContribution removes idx from e.Flows entirely, subtracting its
// last known value from the total. Returns the removed value.
func (a Accessor) ClearFlowContribution(e *Edge, idx FlowIndex) float64 {
	m := a.Flows(e)
	v, ok := m[idx]
	if !ok {
		return 0
	}
	delete(m, idx)
	a.AddFlow(e, -v)

	return v
}
