package domain

// Unit is one slot of the countdown display.
type Unit string

const (
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
)

// Parts is a decomposition of a duration in whole seconds. Coarser units are
// absent when the decomposition stopped before reaching them.
type Parts map[Unit]int64

// Get returns the value of a unit and whether it is present.
func (p Parts) Get(u Unit) (int64, bool) {
	v, ok := p[u]
	return v, ok
}

// decomposition order: finest unit first. A zero modulus means "takes the rest".
var partSteps = []struct {
	unit    Unit
	modulus int64
}{
	{UnitSecond, 60},
	{UnitMinute, 60},
	{UnitHour, 24},
	{UnitDay, 0},
}

// RemainingParts decomposes diff seconds into seconds, minutes, hours and days.
// The first unit whose modulus is zero or larger than the remaining value
// absorbs all of it and decomposition stops there.
func RemainingParts(diff int64) Parts {
	parts := make(Parts, len(partSteps))
	current := diff
	for _, step := range partSteps {
		if step.modulus == 0 || current < step.modulus {
			parts[step.unit] = current
			break
		}
		parts[step.unit] = current % step.modulus
		current = current / step.modulus
	}
	return parts
}
