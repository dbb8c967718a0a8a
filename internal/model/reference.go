package model

// EasyChoicePair asserts an asymmetric plausibility relation between two
// bigrams: choosing Plausible over Implausible is the expected, easy choice.
// The relation is directional, so lookups are on ordered (chosen, unchosen)
// tuples rather than on PairKey.
type EasyChoicePair struct {
	Plausible   string `json:"plausible"`
	Implausible string `json:"implausible"`
}
