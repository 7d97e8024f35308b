package ui

import (
	"image"
	"math"
	"strconv"

	"mad-caves/pkg/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refreshControls copies current values from snap into states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	params := map[string]core.Parameter{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			params[p.Key] = p
		}
	}
	for i := range states {
		st := &states[i]
		st.hasValue = false
		st.value = "--"
		p, ok := params[st.control.Key]
		if !ok {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				continue
			}
			st.intValue = v
			st.floatValue = float64(v)
			st.value = strconv.Itoa(v)
			st.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				continue
			}
			st.floatValue = v
			st.value = formatFloat(st.control, v)
			st.hasValue = true
		}
	}
}

// intTarget returns the value one step in direction, clamped to the
// control's range, and whether it differs from the current value.
func intTarget(st *controlState, direction int) (int, bool) {
	step := int(math.Round(st.control.Step))
	if step <= 0 {
		step = 1
	}
	target := st.intValue + direction*step
	if st.control.HasMin {
		if lo := int(math.Round(st.control.Min)); target < lo {
			target = lo
		}
	}
	if st.control.HasMax {
		if hi := int(math.Round(st.control.Max)); target > hi {
			target = hi
		}
	}
	return target, target != st.intValue
}

func floatTarget(st *controlState, direction int) (float64, bool) {
	step := st.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := st.floatValue + float64(direction)*step
	if st.control.HasMin && target < st.control.Min {
		target = st.control.Min
	}
	if st.control.HasMax && target > st.control.Max {
		target = st.control.Max
	}
	// Snap to multiples of step.
	target = math.Round(target/step) * step
	return target, math.Abs(target-st.floatValue) >= 1e-9
}

// adjust applies one step through whichever setter fits the control type.
func adjust(st *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !st.hasValue || direction == 0 {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		target, ok := intTarget(st, direction)
		if !ok || ints == nil || !ints.SetIntParameter(st.control.Key, target) {
			return false
		}
		st.intValue = target
		st.floatValue = float64(target)
		st.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target, ok := floatTarget(st, direction)
		if !ok || floats == nil || !floats.SetFloatParameter(st.control.Key, target) {
			return false
		}
		st.floatValue = target
		st.value = formatFloat(st.control, target)
		return true
	}
	return false
}

func canAdjust(st *controlState, direction int) bool {
	if !st.hasValue || direction == 0 {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		_, ok := intTarget(st, direction)
		return ok
	case core.ParamTypeFloat:
		_, ok := floatTarget(st, direction)
		return ok
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// layoutControls places one row per control with the buttons flush right.
func layoutControls(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// hitControl returns the control index and direction under (x, y), or
// ok=false.
func hitControl(states []controlState, x, y int) (idx, direction int, ok bool) {
	pt := image.Pt(x, y)
	for i := range states {
		if pt.In(states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}
