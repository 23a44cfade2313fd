package img2ascii

import "math"

// English is the default character set: the 52 Latin letters in
// alternating upper and lower case.
const English = "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"

// CharacterSet is an ordered sequence of characters indexed by code
// point. Index 0 is picked for the darkest blocks and the last index for
// the brightest.
type CharacterSet []rune

// NewCharacterSet splits s into its characters. Multi-byte characters
// occupy a single position.
func NewCharacterSet(s string) (CharacterSet, error) {
	if s == "" {
		return nil, ErrEmptyCharset
	}
	return CharacterSet(s), nil
}

// String returns the characters of the set as a string.
func (cs CharacterSet) String() string {
	return string(cs)
}

// At returns the character for a mean brightness in [0, 255].
// The set must not be empty.
func (cs CharacterSet) At(mean float64) rune {
	return cs[CharIndex(len(cs), mean)]
}

// CharIndex maps a brightness in [0, 255] onto one of setLength equal
// width buckets. The index is rounded rather than truncated and clamped
// to [0, setLength-1], so a mean of 255 lands on the last character
// instead of one past it. setLength must be at least 1.
func CharIndex(setLength int, mean float64) int {
	if math.IsNaN(mean) || mean <= 0 {
		return 0
	}
	i := math.Round(mean / 255.0 * float64(setLength))
	if i > float64(setLength-1) {
		return setLength - 1
	}
	return int(i)
}
