package solar

import "math"

// Cardinal reference gains in kWh/m²/year for a building facing each
// direction head-on.
const (
	NorthGain = 110.0
	EastGain  = 320.0
	SouthGain = 450.0
	WestGain  = 380.0
)

// Direction is a cardinal facing.
type Direction string

const (
	North Direction = "North"
	East  Direction = "East"
	South Direction = "South"
	West  Direction = "West"
)

// Reference pairs a cardinal direction with its heading and reference gain.
type Reference struct {
	Direction Direction `json:"direction"`
	Angle     float64   `json:"angle"`
	Gain      float64   `json:"gain"`
}

// References lists the cardinal reference values in heading order.
func References() []Reference {
	return []Reference{
		{Direction: North, Angle: 0, Gain: NorthGain},
		{Direction: East, Angle: 90, Gain: EastGain},
		{Direction: South, Angle: 180, Gain: SouthGain},
		{Direction: West, Angle: 270, Gain: WestGain},
	}
}

// trigEpsilon absorbs floating-point residue such as cos(π/2) ≈ 6e-17 so
// that the two directions behind the facing contribute exactly zero.
const trigEpsilon = 1e-12

// Gain returns the passive solar gain in kWh/m²/year for a building facing
// orientation degrees. The four cardinal references are blended with
// clamped sine and cosine weights and the sum rounded to the nearest integer.
func Gain(orientation float64) int {
	return int(roundHalfUp(RawGain(orientation)))
}

// RawGain is Gain before rounding.
func RawGain(orientation float64) float64 {
	rad := orientation * math.Pi / 180
	cos := snap(math.Cos(rad))
	sin := snap(math.Sin(rad))

	north := NorthGain * math.Max(0, cos)
	east := EastGain * math.Max(0, sin)
	south := SouthGain * math.Max(0, -cos)
	west := WestGain * math.Max(0, -sin)

	return north + east + south + west
}

// Label names the cardinal sector an orientation falls in.
func Label(orientation float64) Direction {
	switch {
	case orientation >= 45 && orientation < 135:
		return East
	case orientation >= 135 && orientation < 225:
		return South
	case orientation >= 225 && orientation < 315:
		return West
	default:
		return North
	}
}

// Indicator reports one cardinal reference and whether the current facing
// is within 45° of it.
type Indicator struct {
	Reference
	Active bool `json:"active"`
}

// Indicators returns the four cardinal indicators for an orientation.
func Indicators(orientation float64) []Indicator {
	refs := References()
	out := make([]Indicator, len(refs))
	for i, ref := range refs {
		diff := math.Abs(orientation - ref.Angle)
		out[i] = Indicator{
			Reference: ref,
			Active:    diff < 45 || diff > 315,
		}
	}
	return out
}

func snap(v float64) float64 {
	if math.Abs(v) < trigEpsilon {
		return 0
	}
	if math.Abs(v-1) < trigEpsilon {
		return 1
	}
	if math.Abs(v+1) < trigEpsilon {
		return -1
	}
	return v
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
