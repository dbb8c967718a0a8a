package service

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/model"
)

// Processor turns raw observations into the classified, grouped dataset:
// canonical pair keys, plausibility flags, per-(user, pair) repeat counts and
// consistency flags, plus the row subsets used for reliability accounting.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Dataset is the per-row output of processing. The subset slices share the
// row pointers of Rows.
type Dataset struct {
	Rows []*model.ClassifiedObservation

	Consistent   []*model.ClassifiedObservation
	Inconsistent []*model.ClassifiedObservation
	Probable     []*model.ClassifiedObservation
	Improbable   []*model.ClassifiedObservation
}

type userPair struct {
	UserID string
	Pair   model.PairKey
}

// Process classifies, groups and sorts the observations. Pairs listed in
// removePairs are dropped before grouping.
func (s *Processor) Process(observations []*model.Observation, index *ReferenceIndex, removePairs []model.PairKey) *Dataset {
	removed := make(map[model.PairKey]struct{}, len(removePairs))
	for _, key := range removePairs {
		removed[key] = struct{}{}
	}

	groups := make(map[userPair][]*model.Observation)
	var order []userPair
	for _, obs := range observations {
		pair := obs.PairKey()
		if _, drop := removed[pair]; drop {
			continue
		}
		key := userPair{UserID: obs.UserID, Pair: pair}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], obs)
	}

	rows := make([]*model.ClassifiedObservation, 0, len(observations))
	for _, key := range order {
		rows = append(rows, classifyGroup(key, groups[key], index)...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UserID != rows[j].UserID {
			return rows[i].UserID < rows[j].UserID
		}
		if rows[i].TrialID != rows[j].TrialID {
			return rows[i].TrialID < rows[j].TrialID
		}
		return rows[i].Pair.Less(rows[j].Pair)
	})

	d := &Dataset{
		Rows: rows,
		Consistent: lo.Filter(rows, func(row *model.ClassifiedObservation, _ int) bool {
			return row.GroupSize > 1 && row.IsConsistent.ValueOrZero()
		}),
		Inconsistent: lo.Filter(rows, func(row *model.ClassifiedObservation, _ int) bool {
			return row.GroupSize > 1 && row.IsConsistent.Valid && !row.IsConsistent.Bool
		}),
		Probable: lo.Filter(rows, func(row *model.ClassifiedObservation, _ int) bool {
			return row.IsProbable
		}),
		Improbable: lo.Filter(rows, func(row *model.ClassifiedObservation, _ int) bool {
			return row.IsImprobable
		}),
	}

	log.Info().
		Int("rows", len(d.Rows)).
		Int("consistent", len(d.Consistent)).
		Int("inconsistent", len(d.Inconsistent)).
		Int("probable", len(d.Probable)).
		Int("improbable", len(d.Improbable)).
		Msg("processed observations")

	return d
}

func classifyGroup(key userPair, group []*model.Observation, index *ReferenceIndex) []*model.ClassifiedObservation {
	// Consistency is undefined for singleton groups.
	var isConsistent null.Bool
	if len(group) > 1 {
		isConsistent = null.BoolFrom(distinctChosen(group) == 1)
	}

	rows := make([]*model.ClassifiedObservation, 0, len(group))
	for _, obs := range group {
		isProbable, isImprobable := index.Flags(obs.ChosenBigram, obs.UnchosenBigram)

		bigram1Time, bigram2Time := obs.ChosenBigramTime, obs.UnchosenBigramTime
		if obs.ChosenBigram != key.Pair.A {
			bigram1Time, bigram2Time = bigram2Time, bigram1Time
		}

		rows = append(rows, &model.ClassifiedObservation{
			GroupID:               obs.GroupID,
			UserID:                obs.UserID,
			TrialID:               obs.TrialID,
			Pair:                  key.Pair,
			Bigram1Time:           bigram1Time,
			Bigram2Time:           bigram2Time,
			ChosenBigram:          obs.ChosenBigram,
			UnchosenBigram:        obs.UnchosenBigram,
			ChosenBigramTime:      obs.ChosenBigramTime,
			UnchosenBigramTime:    obs.UnchosenBigramTime,
			ChosenBigramCorrect:   obs.ChosenBigramCorrect,
			UnchosenBigramCorrect: obs.UnchosenBigramCorrect,
			SliderValue:           obs.SliderValue,
			AbsSliderValue:        absFloat(obs.SliderValue),
			Text:                  obs.Text,
			IsConsistent:          isConsistent,
			IsProbable:            isProbable,
			IsImprobable:          isImprobable,
			GroupSize:             len(group),
		})
	}
	return rows
}

func distinctChosen(group []*model.Observation) int {
	seen := make(map[string]struct{}, 2)
	for _, obs := range group {
		seen[obs.ChosenBigram] = struct{}{}
	}
	return len(seen)
}

func absFloat(v null.Float) null.Float {
	if !v.Valid {
		return v
	}
	return null.FloatFrom(math.Abs(v.Float64))
}
