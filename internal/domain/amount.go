package domain

// MinorUnitThreshold is the raw value above which an amount is assumed to be expressed in
// minor currency units (pence) rather than pounds.
//
// The heuristic misreads a genuine pounds figure above the threshold and a small pence figure
// below it. It is kept as the data files expect it.
const MinorUnitThreshold = 1_000_000

// NormalizeMinorUnits converts a raw amount into major currency units.
func NormalizeMinorUnits(v float64) float64 {
	if v > MinorUnitThreshold {
		return v / 100
	}
	return v
}
