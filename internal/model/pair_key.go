package model

// PairKey is the canonical, order-independent identity of a bigram pair.
// A is always the lexicographically smaller bigram, so the same two bigrams
// yield the same key regardless of which one was presented as chosen.
type PairKey struct {
	A string `json:"bigramA"`
	B string `json:"bigramB"`
}

func NewPairKey(x, y string) PairKey {
	if y < x {
		x, y = y, x
	}
	return PairKey{A: x, B: y}
}

// Other returns the member of the pair that is not bigram.
func (p PairKey) Other(bigram string) string {
	if bigram == p.A {
		return p.B
	}
	return p.A
}

func (p PairKey) String() string {
	return p.A + "," + p.B
}

// Less provides the stable output ordering between pair keys.
func (p PairKey) Less(q PairKey) bool {
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}
