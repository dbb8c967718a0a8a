package model

import (
	"gopkg.in/guregu/null.v3"
)

// UserScore collapses all repeats of one (user, pair) group into a single
// signed-strength preference: which bigram the user effectively preferred
// and how strongly, normalized to [0, 1].
type UserScore struct {
	UserID string  `json:"userId"`
	Pair   PairKey `json:"pair"`

	WinnerBigram string `json:"winnerBigram"`
	LoserBigram  string `json:"loserBigram"`

	// Score is null when the group has no usable slider measurement.
	Score null.Float `json:"score"`

	ChosenTimeMedian     null.Float `json:"chosenTimeMedian"`
	UnchosenTimeMedian   null.Float `json:"unchosenTimeMedian"`
	ChosenCorrectTotal   int        `json:"chosenCorrectTotal"`
	UnchosenCorrectTotal int        `json:"unchosenCorrectTotal"`

	Text string `json:"text"`

	IsConsistent bool `json:"isConsistent"`
	IsProbable   bool `json:"isProbable"`
	IsImprobable bool `json:"isImprobable"`
	GroupSize    int  `json:"groupSize"`
}
