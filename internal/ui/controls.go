package ui

import (
	"image"
	"math"
	"strconv"

	"sandfall/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// refresh copies the matching snapshot value into the control state.
func (s *hudControlState) refresh(snap core.ParameterSnapshot) {
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		s.clear()
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.clear()
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.clear()
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	default:
		s.clear()
	}
}

func (s *hudControlState) clear() {
	s.hasValue = false
	s.value = "--"
}

// adjusted returns the value one step in direction, clamped to the control
// bounds. ok is false when the step would not change the value.
func adjusted(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return current, false
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
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

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// readoutLines flattens a snapshot into "label: value" rows grouped under
// their headings, skipping keys listed in hide.
func readoutLines(snap core.ParameterSnapshot, hide map[string]bool) []string {
	var lines []string
	for _, g := range snap.Groups {
		var rows []string
		for _, p := range g.Params {
			if hide[p.Key] {
				continue
			}
			rows = append(rows, p.Label+": "+p.Value)
		}
		if len(rows) == 0 {
			continue
		}
		lines = append(lines, g.Name)
		for _, r := range rows {
			lines = append(lines, "  "+r)
		}
	}
	return lines
}

// layoutControls stacks the controls from top with right-aligned -/+ buttons.
func layoutControls(controls []hudControlState, width, top int) {
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

const (
	panelPadding   = 12
	lineHeight     = 30
	readoutHeight  = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 14
)
