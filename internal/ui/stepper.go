package ui

import (
	"image"
	"strconv"

	"biomemap/internal/core"
)

const (
	panelPadding   = 12
	rowHeight      = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	lineSpacing    = 16
	stepperTop     = panelPadding + headerBaseline + 10
	minPanelHeight = 240
)

// stepper is one labelled value with -/+ buttons on the HUD panel.
type stepper struct {
	ctrl        core.ParameterControl
	top         int
	minus, plus image.Rectangle
}

// layoutSteppers stacks one row per control, buttons flush right.
func layoutSteppers(ctrls []core.ParameterControl, width int) []stepper {
	out := make([]stepper, len(ctrls))
	for i, c := range ctrls {
		top := stepperTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		out[i] = stepper{ctrl: c, top: top, minus: minus, plus: plus}
	}
	return out
}

// hit returns -1 or +1 when p lies on a button, 0 otherwise.
func (s stepper) hit(p image.Point) int {
	switch {
	case p.In(s.minus):
		return -1
	case p.In(s.plus):
		return 1
	}
	return 0
}

// stepInt moves cur by dir steps within the control bounds. It reports false
// when the value would not change.
func (s stepper) stepInt(cur, dir int) (int, bool) {
	step := int(s.ctrl.Step)
	if step <= 0 {
		step = 1
	}
	next := cur + dir*step
	if s.ctrl.HasMin && next < int(s.ctrl.Min) {
		next = int(s.ctrl.Min)
	}
	if s.ctrl.HasMax && next > int(s.ctrl.Max) {
		next = int(s.ctrl.Max)
	}
	return next, next != cur
}

// stepFloat is the float counterpart of stepInt.
func (s stepper) stepFloat(cur float64, dir int) (float64, bool) {
	step := s.ctrl.Step
	if step <= 0 {
		step = 0.1
	}
	next := cur + float64(dir)*step
	if s.ctrl.HasMin && next < s.ctrl.Min {
		next = s.ctrl.Min
	}
	if s.ctrl.HasMax && next > s.ctrl.Max {
		next = s.ctrl.Max
	}
	return next, next != cur
}

// format renders a raw parameter value for the control's row.
func (s stepper) format(raw string) string {
	if s.ctrl.Type != core.ParamTypeFloat {
		return raw
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
