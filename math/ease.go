package math

import (
	"math"
)

// Lerp interpolates linearly between a and b, t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where v lies between a and b, 0 for an empty range.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	return Lerp(outMin, outMax, InverseLerp(inMin, inMax, v))
}

// SmoothStep is the cubic Hermite step between edge0 and edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	t := Saturate(InverseLerp(edge0, edge1, x))
	return t * t * (3 - 2*t)
}

// Damp moves current towards target, independent of the frame rate.
// lambda is the rate per second, dt the elapsed seconds.
func Damp(current, target, lambda, dt float64) float64 {
	if lambda <= 0 || dt <= 0 {
		return current
	}
	return Lerp(current, target, 1-math.Exp(-lambda*dt))
}

// easing functions take t in [0, 1], values outside are saturated

func EaseLinear(t float64) float64 {
	return Saturate(t)
}

func EaseInQuad(t float64) float64 {
	t = Saturate(t)
	return t * t
}

func EaseOutQuad(t float64) float64 {
	t = Saturate(t)
	return t * (2 - t)
}

func EaseInOutQuad(t float64) float64 {
	t = Saturate(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseInCubic(t float64) float64 {
	t = Saturate(t)
	return t * t * t
}

func EaseOutCubic(t float64) float64 {
	t = Saturate(t) - 1
	return t*t*t + 1
}

func EaseInOutCubic(t float64) float64 {
	t = Saturate(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = 2*t - 2
	return 0.5*t*t*t + 1
}

func EaseInOutSine(t float64) float64 {
	t = Saturate(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Easing is one of the Ease* functions.
type Easing func(t float64) float64

var easings = map[string]Easing{
	"linear":     EaseLinear,
	"inQuad":     EaseInQuad,
	"outQuad":    EaseOutQuad,
	"inOutQuad":  EaseInOutQuad,
	"inCubic":    EaseInCubic,
	"outCubic":   EaseOutCubic,
	"inOutCubic": EaseInOutCubic,
	"inOutSine":  EaseInOutSine,
}

// EasingByName looks up an easing function by its configuration name.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
