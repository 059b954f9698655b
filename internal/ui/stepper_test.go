package ui

import (
	"image"
	"testing"

	"biomemap/internal/core"
)

var (
	seedCtrl   = core.ParameterControl{Key: "seed", Type: core.ParamTypeInt, Step: 1}
	jitterCtrl = core.ParameterControl{Key: "jitter", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true, Max: 16, HasMax: true}
)

func TestLayoutSteppers(t *testing.T) {
	rows := layoutSteppers([]core.ParameterControl{seedCtrl, jitterCtrl}, 220)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].top-rows[0].top != rowHeight {
		t.Fatalf("rows not stacked: tops %d and %d", rows[0].top, rows[1].top)
	}
	r := rows[0]
	if r.plus.Max.X != 220-panelPadding || r.minus.Max.X > r.plus.Min.X {
		t.Fatalf("buttons misplaced: minus %v plus %v", r.minus, r.plus)
	}
	if got := r.hit(r.minus.Min); got != -1 {
		t.Fatalf("hit(minus) = %d", got)
	}
	if got := r.hit(r.plus.Max.Sub(image.Pt(1, 1))); got != 1 {
		t.Fatalf("hit(plus) = %d", got)
	}
	if got := r.hit(image.Pt(0, r.top)); got != 0 {
		t.Fatalf("hit(label) = %d", got)
	}
}

func TestStepperBounds(t *testing.T) {
	seed := stepper{ctrl: seedCtrl}
	if v, ok := seed.stepInt(0, -1); !ok || v != -1 {
		t.Fatalf("seed has no lower bound, got %d %v", v, ok)
	}
	jitter := stepper{ctrl: jitterCtrl}
	if v, ok := jitter.stepFloat(0, -1); ok || v != 0 {
		t.Fatalf("jitter must stop at 0, got %v %v", v, ok)
	}
	if v, ok := jitter.stepFloat(15.75, 1); !ok || v != 16 {
		t.Fatalf("jitter must clamp to 16, got %v %v", v, ok)
	}
	if v, ok := jitter.stepFloat(2, 1); !ok || v != 2.5 {
		t.Fatalf("jitter step = %v %v", v, ok)
	}
}

func TestStepperFormat(t *testing.T) {
	if got := (stepper{ctrl: jitterCtrl}).format("2.25"); got != "2.2" && got != "2.3" {
		t.Fatalf("float format = %q", got)
	}
	if got := (stepper{ctrl: jitterCtrl}).format("4"); got != "4.0" {
		t.Fatalf("float format = %q", got)
	}
	if got := (stepper{ctrl: seedCtrl}).format("123456789012"); got != "123456789012" {
		t.Fatalf("int format = %q", got)
	}
}
