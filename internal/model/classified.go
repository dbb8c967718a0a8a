package model

import (
	"gopkg.in/guregu/null.v3"
)

// ClassifiedObservation is an Observation augmented with its canonical pair
// key, reference-pair plausibility flags and its (user, pair) group context.
type ClassifiedObservation struct {
	GroupID string  `json:"groupId"`
	UserID  string  `json:"userId"`
	TrialID string  `json:"trialId"`
	Pair    PairKey `json:"pair"`

	// Bigram1Time and Bigram2Time are the typing times reattributed to the
	// canonical (Pair.A, Pair.B) sides, independent of which side was chosen
	// on this particular trial.
	Bigram1Time null.Float `json:"bigram1Time"`
	Bigram2Time null.Float `json:"bigram2Time"`

	ChosenBigram   string `json:"chosenBigram"`
	UnchosenBigram string `json:"unchosenBigram"`

	ChosenBigramTime      null.Float `json:"chosenBigramTime"`
	UnchosenBigramTime    null.Float `json:"unchosenBigramTime"`
	ChosenBigramCorrect   null.Bool  `json:"chosenBigramCorrect"`
	UnchosenBigramCorrect null.Bool  `json:"unchosenBigramCorrect"`

	SliderValue    null.Float `json:"sliderValue"`
	AbsSliderValue null.Float `json:"absSliderValue"`

	Text string `json:"text"`

	// IsConsistent is null when the (user, pair) group has a single repeat;
	// consistency needs at least two repeats to be meaningful.
	IsConsistent null.Bool `json:"isConsistent"`
	IsProbable   bool      `json:"isProbable"`
	IsImprobable bool      `json:"isImprobable"`
	GroupSize    int       `json:"groupSize"`
}
