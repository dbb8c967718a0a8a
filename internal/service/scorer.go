package service

import (
	"math"
	"sort"
	"strings"

	"github.com/ahmetb/go-linq/v3"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/pkg/stats"
)

// maxSliderMagnitude is the fixed maximum of the preference slider; scores
// are normalized by it into [0, 1].
const maxSliderMagnitude = 100

// Scorer collapses each (user, pair) group's repeated slider measurements
// into one signed preference strength and a declared local winner.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreChoices resolves one UserScore per (user, pair) group, sorted by
// (user id, pair key).
func (s *Scorer) ScoreChoices(rows []*model.ClassifiedObservation) []*model.UserScore {
	var groups []linq.Group
	linq.From(rows).GroupByT(
		func(row *model.ClassifiedObservation) userPair {
			return userPair{UserID: row.UserID, Pair: row.Pair}
		},
		func(row *model.ClassifiedObservation) *model.ClassifiedObservation {
			return row
		},
	).ToSlice(&groups)

	scores := make([]*model.UserScore, 0, len(groups))
	for _, g := range groups {
		key := g.Key.(userPair)
		group := make([]*model.ClassifiedObservation, 0, len(g.Group))
		for _, item := range g.Group {
			group = append(group, item.(*model.ClassifiedObservation))
		}
		scores = append(scores, resolveScore(key, group))
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].UserID != scores[j].UserID {
			return scores[i].UserID < scores[j].UserID
		}
		return scores[i].Pair.Less(scores[j].Pair)
	})

	log.Info().Int("rows", len(rows)).Int("scores", len(scores)).Msg("scored user choices")
	return scores
}

// resolveScore implements the per-group collapse. Unanimous groups take the
// median absolute slider value; split groups take the magnitude-weighted
// vote difference normalized by repeat count. Both are divided by the
// maximum slider magnitude, so the result is non-negative and bounded by 1.
func resolveScore(key userPair, group []*model.ClassifiedObservation) *model.UserScore {
	pair := key.Pair
	chosenSet := lo.Uniq(lo.Map(group, func(row *model.ClassifiedObservation, _ int) string {
		return row.ChosenBigram
	}))

	var winner string
	var strength null.Float
	if len(chosenSet) == 1 {
		winner = chosenSet[0]
		strength = stats.MedianFloats(absSliders(group, winner, true))
	} else {
		sumA := sumFloats(absSliders(group, pair.A, false))
		sumB := sumFloats(absSliders(group, pair.B, false))
		if sumA >= sumB {
			winner = pair.A
		} else {
			winner = pair.B
		}
		strength = null.FloatFrom(math.Abs(sumA-sumB) / float64(len(group)))
	}

	score := strength
	if score.Valid {
		score = null.FloatFrom(score.Float64 / maxSliderMagnitude)
	}

	return &model.UserScore{
		UserID:       key.UserID,
		Pair:         pair,
		WinnerBigram: winner,
		LoserBigram:  pair.Other(winner),
		Score:        score,
		ChosenTimeMedian: stats.Median(lo.Map(group, func(row *model.ClassifiedObservation, _ int) null.Float {
			return row.ChosenBigramTime
		})),
		UnchosenTimeMedian: stats.Median(lo.Map(group, func(row *model.ClassifiedObservation, _ int) null.Float {
			return row.UnchosenBigramTime
		})),
		ChosenCorrectTotal: lo.CountBy(group, func(row *model.ClassifiedObservation) bool {
			return row.ChosenBigramCorrect.ValueOrZero()
		}),
		UnchosenCorrectTotal: lo.CountBy(group, func(row *model.ClassifiedObservation) bool {
			return row.UnchosenBigramCorrect.ValueOrZero()
		}),
		Text:         joinTexts(lo.Map(group, func(row *model.ClassifiedObservation, _ int) string { return row.Text })),
		IsConsistent: len(chosenSet) == 1,
		IsProbable:   group[0].IsProbable,
		IsImprobable: group[0].IsImprobable,
		GroupSize:    len(group),
	}
}

// absSliders collects |sliderValue| over non-missing values; when all is
// false only rows whose chosen bigram equals the given side contribute.
func absSliders(group []*model.ClassifiedObservation, bigram string, all bool) []float64 {
	out := make([]float64, 0, len(group))
	for _, row := range group {
		if !row.SliderValue.Valid {
			continue
		}
		if !all && row.ChosenBigram != bigram {
			continue
		}
		out = append(out, math.Abs(row.SliderValue.Float64))
	}
	return out
}

func sumFloats(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum
}

func joinTexts(texts []string) string {
	return strings.Join(lo.Uniq(lo.Filter(texts, func(t string, _ int) bool { return t != "" })), "; ")
}
