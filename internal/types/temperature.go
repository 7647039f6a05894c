package types

import "math"

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	var fahrenheit = celsius*9/5 + 32
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

// RoundedCelsius returns the Celsius value rounded half up
func (t Temperature) RoundedCelsius() int {
	return RoundHalfUp(t.Celsius)
}

// RoundedFahrenheit returns the Fahrenheit value rounded half up.
// It is derived from the unrounded Celsius value.
func (t Temperature) RoundedFahrenheit() int {
	return RoundHalfUp(t.Fahrenheit)
}

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so 2.5 becomes 3 and -2.5 becomes -2.
func RoundHalfUp(v float64) int {
	// v+0.5 can round up in float64 before Floor sees it, so compare the fraction instead
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return int(f)
}
