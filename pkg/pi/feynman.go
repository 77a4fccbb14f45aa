package pi

// The Feynman point is the run of six consecutive 9s beginning at the
// 762nd decimal digit of pi (zero-based index 761).
const (
	// FeynmanStart is the zero-based index of the first 9 in the run.
	FeynmanStart = 761

	// FeynmanLen is the length of the run.
	FeynmanLen = 6
)

// IsFeynmanIndex reports whether the digit at the given zero-based index
// falls inside the Feynman point.
func IsFeynmanIndex(index int) bool {
	return index >= FeynmanStart && index < FeynmanStart+FeynmanLen
}
