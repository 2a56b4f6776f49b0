package stream

// A HueStop pins a hue (degrees) to a position along [0, 1].
type HueStop struct {
	Pos float64
	Hue float64
}

// A HueRamp is a look-up table of hues interpolated by position.
type HueRamp []HueStop

// defaultRamp sweeps the full colour wheel with perceptually even spacing.
var defaultRamp = HueRamp{
	{0.0, 0.0},
	{0.04, 6.0},    // Pink
	{0.14, 87.0},   // Red
	{0.28, 88.0},   // Orange
	{0.42, 98.0},   // Yellow
	{0.56, 180.0},  // Green
	{0.70, 190.0},  // Turquoise
	{0.84, 320.0},  // Blue
	{0.91, 328.0},  // Violet
	{1.0, 360.0},   // Pink wrap
}

// At returns the hue at the specified point on the look-up table.
func (ramp HueRamp) At(t float64) float64 {
	for i := 0; i < len(ramp)-1; i++ {
		s1 := ramp[i]
		s2 := ramp[i+1]
		if s1.Pos <= t && t <= s2.Pos {
			return (((t - s1.Pos) / (s2.Pos - s1.Pos)) * (s2.Hue - s1.Hue)) + s1.Hue
		}
	}

	// At (or past) the last stop.
	return ramp[len(ramp)-1].Hue
}
