package service

import (
	"math"
	"sort"

	"github.com/ahmetb/go-linq/v3"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/pkg/stats"
)

// Verdicts merges the per-user scores of each bigram pair into one
// dataset-wide winner with a central-tendency score and a dispersion
// estimate.
type Verdicts struct{}

func NewVerdicts() *Verdicts {
	return &Verdicts{}
}

// ChooseWinners resolves one PairVerdict per pair key, sorted by pair key.
func (s *Verdicts) ChooseWinners(scores []*model.UserScore) []*model.PairVerdict {
	var groups []linq.Group
	linq.From(scores).GroupByT(
		func(score *model.UserScore) model.PairKey { return score.Pair },
		func(score *model.UserScore) *model.UserScore { return score },
	).ToSlice(&groups)

	verdicts := make([]*model.PairVerdict, 0, len(groups))
	for _, g := range groups {
		pair := g.Key.(model.PairKey)
		group := make([]*model.UserScore, 0, len(g.Group))
		for _, item := range g.Group {
			group = append(group, item.(*model.UserScore))
		}
		verdicts = append(verdicts, resolveVerdict(pair, group))
	}

	sort.Slice(verdicts, func(i, j int) bool {
		return verdicts[i].Pair.Less(verdicts[j].Pair)
	})

	log.Info().Int("scores", len(scores)).Int("verdicts", len(verdicts)).Msg("chose pair winners")
	return verdicts
}

// resolveVerdict mirrors the per-user collapse one level up. In the split
// case the dispersion is computed over a signed list: scores backing the
// canonical A side stay positive, scores backing B are negated, so the MAD
// also carries the magnitude of directional disagreement.
func resolveVerdict(pair model.PairKey, group []*model.UserScore) *model.PairVerdict {
	winners := lo.Uniq(lo.Map(group, func(score *model.UserScore, _ int) string {
		return score.WinnerBigram
	}))

	var winner string
	var medianScore, madScore null.Float
	if len(winners) == 1 {
		winner = winners[0]
		absScores := absScoresFor(group, winner, true)
		medianScore = stats.MedianFloats(absScores)
		madScore = stats.MAD(absScores)
	} else {
		sumA := sumFloats(absScoresFor(group, pair.A, false))
		sumB := sumFloats(absScoresFor(group, pair.B, false))
		if sumA >= sumB {
			winner = pair.A
		} else {
			winner = pair.B
		}
		medianScore = null.FloatFrom(math.Abs(sumA-sumB) / float64(len(group)))

		signed := make([]float64, 0, len(group))
		for _, score := range group {
			if !score.Score.Valid {
				continue
			}
			switch score.WinnerBigram {
			case pair.A:
				signed = append(signed, math.Abs(score.Score.Float64))
			case pair.B:
				signed = append(signed, -math.Abs(score.Score.Float64))
			}
		}
		madScore = stats.MAD(signed)
	}

	winnerSide := lo.Filter(group, func(score *model.UserScore, _ int) bool {
		return score.WinnerBigram == winner
	})

	return &model.PairVerdict{
		Pair:         pair,
		WinnerBigram: winner,
		LoserBigram:  pair.Other(winner),
		MedianScore:  medianScore,
		MADScore:     madScore,
		ChosenTimeMedian: stats.Median(lo.Map(winnerSide, func(score *model.UserScore, _ int) null.Float {
			return score.ChosenTimeMedian
		})),
		UnchosenTimeMedian: stats.Median(lo.Map(winnerSide, func(score *model.UserScore, _ int) null.Float {
			return score.UnchosenTimeMedian
		})),
		ChosenCorrectTotal: lo.SumBy(winnerSide, func(score *model.UserScore) int {
			return score.ChosenCorrectTotal
		}),
		UnchosenCorrectTotal: lo.SumBy(winnerSide, func(score *model.UserScore) int {
			return score.UnchosenCorrectTotal
		}),
		Text: joinTexts(lo.Map(group, func(score *model.UserScore, _ int) string { return score.Text })),
		IsConsistent: lo.EveryBy(group, func(score *model.UserScore) bool {
			return score.IsConsistent
		}),
		IsProbable:   group[0].IsProbable,
		IsImprobable: group[0].IsImprobable,
		GroupSize: lo.SumBy(group, func(score *model.UserScore) int {
			return score.GroupSize
		}),
	}
}

// absScoresFor collects |score| over non-missing scores; when all is false
// only rows whose winner equals the given side contribute.
func absScoresFor(group []*model.UserScore, bigram string, all bool) []float64 {
	out := make([]float64, 0, len(group))
	for _, score := range group {
		if !score.Score.Valid {
			continue
		}
		if !all && score.WinnerBigram != bigram {
			continue
		}
		out = append(out, math.Abs(score.Score.Float64))
	}
	return out
}
