package wave

import "math"

// Timeline describes the ellipsis wave: each dot holds at Max, ramps down to
// Min at its fade start, holds, then ramps back up at its brighten start.
// All times are seconds from the start of the cycle; the schedule is built so
// that opacity at t=0 equals opacity at t=Cycle, so the animation loops
// seamlessly.
type Timeline struct {
	FadeStart     []float64 // per dot, when the fade ramp begins
	BrightenStart []float64 // per dot, when the brighten ramp begins
	Transition    float64   // ramp length (short, reads as "instant")
	Cycle         float64   // full cycle length
	Min, Max      float64   // opacity levels
}

// Ellipsis is the canonical three-dot wave: dots fade left to right over the
// first half of the cycle, then brighten left to right over the second half.
func Ellipsis() Timeline {
	return Timeline{
		FadeStart:     []float64{0.0, 0.25, 0.5},
		BrightenStart: []float64{0.75, 1.0, 1.25},
		Transition:    0.1,
		Cycle:         1.5,
		Min:           0.5,
		Max:           1.0,
	}
}

// Dots returns the number of dots in the schedule.
func (tl Timeline) Dots() int { return len(tl.FadeStart) }

// OpacityAt evaluates the piecewise-linear waveform for one dot at time t
// (t is expected to already be wrapped into [0..Cycle)).
func (tl Timeline) OpacityAt(dot int, t float64) float64 {
	fade := tl.FadeStart[dot]
	brighten := tl.BrightenStart[dot]
	span := tl.Max - tl.Min

	switch {
	case t < fade:
		return tl.Max
	case t < fade+tl.Transition:
		return tl.Max - span*(t-fade)/tl.Transition
	case t < brighten:
		return tl.Min
	case t < brighten+tl.Transition:
		return tl.Min + span*(t-brighten)/tl.Transition
	default:
		return tl.Max
	}
}

// At samples every dot at time t.
func (tl Timeline) At(t float64) []float64 {
	out := make([]float64, tl.Dots())
	for i := range out {
		out[i] = tl.OpacityAt(i, t)
	}
	return out
}

// Frames returns the frame count for one cycle at the given rate.
func (tl Timeline) Frames(fps float64) int {
	n := int(tl.Cycle * fps)
	if n < 1 {
		n = 1
	}
	return n
}

// FrameTime maps a frame index to its moment within the cycle.
func (tl Timeline) FrameTime(i int, fps float64) float64 {
	return math.Mod(float64(i)/fps, tl.Cycle)
}

// Moment is a sample of the whole rig at one point in time.
type Moment struct {
	T      float64
	Levels []float64
}

// KeyMoments samples the schedule at its turning points: cycle start, each
// fade start, each brighten start, and the cycle end. Useful for logging and
// for eyeballing the wave without decoding the output.
func (tl Timeline) KeyMoments() []Moment {
	times := []float64{0}
	times = append(times, tl.FadeStart[1:]...)
	times = append(times, tl.BrightenStart...)
	times = append(times, tl.Cycle)

	out := make([]Moment, 0, len(times))
	for _, t := range times {
		out = append(out, Moment{T: t, Levels: tl.At(math.Mod(t, tl.Cycle))})
	}
	return out
}
