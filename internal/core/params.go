package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current settings of a grid.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Parameters reports the grid configuration and brush state.
func (g *Grid) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Canvas",
			Params: []Parameter{
				intParam("w", "Width", g.cfg.Width),
				intParam("h", "Height", g.cfg.Height),
				{Key: "policy", Label: "Policy", Type: ParamTypeString, Value: g.cfg.Policy.String()},
				intParam("store_capacity", "Store capacity", g.cfg.StoreCapacity),
			},
		},
		{
			Name: "Brush",
			Params: []Parameter{
				intParam("brush", "Brush size", g.brush),
			},
		},
	}}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
