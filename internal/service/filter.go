package service

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/typinglab/bigram-backend/internal/model"
)

// Filter applies the participant exclusion policy: users exceeding the
// improbable or inconsistent choice thresholds are dropped from every
// downstream table.
type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// Thresholds are maxima, inclusive. A negative value disables that bound.
type Thresholds struct {
	MaxImprobable   int
	MaxInconsistent int
}

func (t Thresholds) admits(st *model.UserReliability) bool {
	if t.MaxImprobable >= 0 && st.ImprobableChoices > t.MaxImprobable {
		return false
	}
	if t.MaxInconsistent >= 0 && st.InconsistentChoices > t.MaxInconsistent {
		return false
	}
	return true
}

// FilterUsers returns the dataset and reliability table restricted to users
// within the thresholds.
func (s *Filter) FilterUsers(d *Dataset, stats []*model.UserReliability, t Thresholds) (*Dataset, []*model.UserReliability) {
	admitted := make(map[string]struct{}, len(stats))
	for _, st := range stats {
		if t.admits(st) {
			admitted[st.UserID] = struct{}{}
		}
	}

	keepRow := func(row *model.ClassifiedObservation, _ int) bool {
		_, ok := admitted[row.UserID]
		return ok
	}
	filtered := &Dataset{
		Rows:         lo.Filter(d.Rows, keepRow),
		Consistent:   lo.Filter(d.Consistent, keepRow),
		Inconsistent: lo.Filter(d.Inconsistent, keepRow),
		Probable:     lo.Filter(d.Probable, keepRow),
		Improbable:   lo.Filter(d.Improbable, keepRow),
	}
	filteredStats := lo.Filter(stats, func(st *model.UserReliability, _ int) bool {
		_, ok := admitted[st.UserID]
		return ok
	})

	log.Info().
		Int("usersBefore", len(stats)).
		Int("usersAfter", len(filteredStats)).
		Int("maxImprobable", t.MaxImprobable).
		Int("maxInconsistent", t.MaxInconsistent).
		Msg("filtered users")

	return filtered, filteredStats
}
