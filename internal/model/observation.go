package model

import (
	"gopkg.in/guregu/null.v3"
)

// Observation is one raw trial row as exported by the experiment app.
// Numeric and boolean fields may be blank in the export; they are carried
// as null values and skipped by downstream aggregations.
type Observation struct {
	GroupID  string `json:"groupId"`
	UserID   string `json:"userId"`
	Filename string `json:"filename"`
	TrialID  string `json:"trialId"`

	ChosenBigram   string `json:"chosenBigram"`
	UnchosenBigram string `json:"unchosenBigram"`

	ChosenBigramTime      null.Float `json:"chosenBigramTime"`
	UnchosenBigramTime    null.Float `json:"unchosenBigramTime"`
	ChosenBigramCorrect   null.Bool  `json:"chosenBigramCorrect"`
	UnchosenBigramCorrect null.Bool  `json:"unchosenBigramCorrect"`

	// SliderValue is in [-100, 100]; the sign encodes which side of the
	// slider the participant favored.
	SliderValue null.Float `json:"sliderValue"`

	Text string `json:"text"`
}

// PairKey canonicalizes the observation's two bigrams.
func (o *Observation) PairKey() PairKey {
	return NewPairKey(o.ChosenBigram, o.UnchosenBigram)
}
