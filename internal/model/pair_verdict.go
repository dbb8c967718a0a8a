package model

import (
	"gopkg.in/guregu/null.v3"
)

// PairVerdict is the dataset-wide outcome for one bigram pair: the winning
// bigram across all contributing users, with a central-tendency score and a
// dispersion estimate over the per-user scores.
type PairVerdict struct {
	Pair PairKey `json:"pair"`

	WinnerBigram string `json:"winnerBigram"`
	LoserBigram  string `json:"loserBigram"`

	MedianScore null.Float `json:"medianScore"`
	MADScore    null.Float `json:"madScore"`

	// Time medians and correctness totals attributed to the winning side:
	// aggregated only over the user scores whose winner is the verdict winner.
	ChosenTimeMedian     null.Float `json:"chosenTimeMedian"`
	UnchosenTimeMedian   null.Float `json:"unchosenTimeMedian"`
	ChosenCorrectTotal   int        `json:"chosenCorrectTotal"`
	UnchosenCorrectTotal int        `json:"unchosenCorrectTotal"`

	Text string `json:"text"`

	IsConsistent bool `json:"isConsistent"`
	IsProbable   bool `json:"isProbable"`
	IsImprobable bool `json:"isImprobable"`

	// GroupSize is the sum of the contributing per-user repeat counts.
	GroupSize int `json:"groupSize"`
}
