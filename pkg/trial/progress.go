package trial

import (
	"Distillery-Tracker/domain"
)

// Progress reports how far fermentation has moved the current specific
// gravity from the initial value toward the target, as a percentage
// clamped to [0,100]. An equal initial and target gravity is a
// configuration error; it reports 0% alongside ErrFlatGravityRange
// rather than dividing by zero.
func Progress(initialSG, currentSG, targetSG float64) (float64, error) {
	if initialSG == targetSG {
		return 0, domain.ErrFlatGravityRange
	}

	pct := (initialSG - currentSG) / (initialSG - targetSG) * 100
	if pct < 0 {
		return 0, nil
	}
	if pct > 100 {
		return 100, nil
	}
	return pct, nil
}
