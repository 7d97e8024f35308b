package core

import (
	"fmt"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value of a generator.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines formats the snapshot as "Group: key=value ..." lines.
func (s ParameterSnapshot) Lines() []string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
		}
		lines = append(lines, g.Name+": "+strings.Join(parts, " "))
	}
	return lines
}

// ParameterControl describes how a panel may adjust a parameter.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of panel-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter applies integer parameter changes. It reports whether
// the key was accepted.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter applies floating-point parameter changes.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
