package align

// Score is a signed 64-bit alignment score. Negative values represent
// penalties.
type Score int64

// Scoring holds the three weights combined additively along an
// alignment path. Despite the conventional name "penalty", every
// weight may carry any sign; it is simply added.
type Scoring struct {
	Match    Score
	Mismatch Score
	Gap      Score
}

// DefaultScoring returns the conventional +1/-1/-2 weights.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, Gap: -2}
}

// BLASTLike returns weights close to the BLASTN defaults under a
// linear gap model.
func BLASTLike() Scoring {
	return Scoring{Match: 1, Mismatch: -3, Gap: -2}
}

// Weight scores one aligned symbol pair: the match weight when the
// symbols are exactly equal, the mismatch weight otherwise.
func (s Scoring) Weight(a, b Symbol) Score {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}
