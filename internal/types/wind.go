package types

const MpsToKph = 3.6

type Wind struct {
	SpeedInMps        float64
	SpeedInKph        float64
	DirectionDegrees  float64
	DirectionCardinal string
}

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

func NewWindFromMetersPerSecond(speedInMps, directionDegrees float64) Wind {
	direction := (directionDegrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}

	return Wind{
		SpeedInMps:        speedInMps,
		SpeedInKph:        speedInMps * MpsToKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinalDirections[index],
	}
}

// RoundedKph returns the speed in km/h rounded half up
func (w Wind) RoundedKph() int {
	return RoundHalfUp(w.SpeedInKph)
}
