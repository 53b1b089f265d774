package wave

import (
	"math"
	"testing"
)

const eps = 1e-9

func almost(a, b float64) bool { return math.Abs(a-b) < eps }

func TestOpacityKeyMoments(t *testing.T) {
	tl := Ellipsis()
	cases := []struct {
		t    float64
		want [3]float64
	}{
		{0.00, [3]float64{1.0, 1.0, 1.0}},
		{0.25, [3]float64{0.5, 1.0, 1.0}},
		{0.50, [3]float64{0.5, 0.5, 1.0}},
		{0.75, [3]float64{0.5, 0.5, 0.5}},
		{1.00, [3]float64{1.0, 0.5, 0.5}},
		{1.25, [3]float64{1.0, 1.0, 0.5}},
		{1.45, [3]float64{1.0, 1.0, 1.0}},
	}
	for _, c := range cases {
		for dot, want := range c.want {
			got := tl.OpacityAt(dot, c.t)
			if !almost(got, want) {
				t.Errorf("OpacityAt(%d, %.2f) = %.3f, want %.3f", dot, c.t, got, want)
			}
		}
	}
}

func TestTransitionIsLinear(t *testing.T) {
	tl := Ellipsis()
	// dot 0 fades over [0.0..0.1]: halfway through it should sit at 0.75
	if got := tl.OpacityAt(0, 0.05); !almost(got, 0.75) {
		t.Errorf("mid-fade opacity = %.3f, want 0.75", got)
	}
	// dot 0 brightens over [0.75..0.85]
	if got := tl.OpacityAt(0, 0.80); !almost(got, 0.75) {
		t.Errorf("mid-brighten opacity = %.3f, want 0.75", got)
	}
}

func TestLoopIsSeamless(t *testing.T) {
	tl := Ellipsis()
	for dot := 0; dot < tl.Dots(); dot++ {
		start := tl.OpacityAt(dot, 0)
		end := tl.OpacityAt(dot, tl.Cycle-1e-6)
		if !almost(start, end) {
			t.Errorf("dot %d: opacity at cycle start %.3f != at cycle end %.3f", dot, start, end)
		}
	}
}

func TestFrameCountAndTime(t *testing.T) {
	tl := Ellipsis()
	if got := tl.Frames(30); got != 45 {
		t.Fatalf("Frames(30) = %d, want 45", got)
	}
	if got := tl.FrameTime(0, 30); !almost(got, 0) {
		t.Errorf("FrameTime(0) = %g, want 0", got)
	}
	if got := tl.FrameTime(15, 30); !almost(got, 0.5) {
		t.Errorf("FrameTime(15) = %g, want 0.5", got)
	}
	// frame index past the cycle wraps around
	if got := tl.FrameTime(45, 30); !almost(got, 0) {
		t.Errorf("FrameTime(45) = %g, want 0 (wrap)", got)
	}
}

func TestKeyMomentsCoverTurningPoints(t *testing.T) {
	tl := Ellipsis()
	ms := tl.KeyMoments()
	if len(ms) != 7 {
		t.Fatalf("len(KeyMoments) = %d, want 7", len(ms))
	}
	if !almost(ms[0].T, 0) || !almost(ms[len(ms)-1].T, tl.Cycle) {
		t.Errorf("moments should span [0..%g], got [%g..%g]", tl.Cycle, ms[0].T, ms[len(ms)-1].T)
	}
	// the middle moment is the all-dim trough
	for dot, v := range ms[3].Levels {
		if !almost(v, tl.Min) {
			t.Errorf("trough: dot %d = %.3f, want %.3f", dot, v, tl.Min)
		}
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := Layout{Dot: 30, Spacing: 26, Padding: 2, Count: 3}
	if w, h := l.Width(), l.Height(); w != 146 || h != 34 {
		t.Fatalf("layout = %dx%d, want 146x34", w, h)
	}
	wantX := []int{2, 58, 114}
	for i, x := range wantX {
		r := l.DotRect(i)
		if r.Min.X != x || r.Min.Y != 2 || r.Dx() != 30 || r.Dy() != 30 {
			t.Errorf("DotRect(%d) = %v, want 30x30 at (%d,2)", i, r, x)
		}
	}
}
