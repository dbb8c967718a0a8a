package service

import (
	"sort"

	"github.com/typinglab/bigram-backend/internal/model"
)

// Reliability rolls the classified dataset up into one counter record per
// participant, the basis for the exclusion policy in Filter.
type Reliability struct{}

func NewReliability() *Reliability {
	return &Reliability{}
}

// UserStats aggregates per-user counters over the dataset. Every user
// appearing in the input gets a record; categories without rows count 0.
// Output is sorted by user id.
func (s *Reliability) UserStats(d *Dataset, numEasyChoicePairs int) []*model.UserReliability {
	byUser := make(map[string]*model.UserReliability)
	stats := func(userID string) *model.UserReliability {
		if st, ok := byUser[userID]; ok {
			return st
		}
		st := &model.UserReliability{
			UserID:             userID,
			NumEasyChoicePairs: numEasyChoicePairs,
		}
		byUser[userID] = st
		return st
	}

	for _, row := range d.Rows {
		st := stats(row.UserID)
		st.TotalChoices++
		if row.GroupSize > 1 {
			st.TotalConsistencyChoices++
		}
	}
	for _, row := range d.Consistent {
		stats(row.UserID).ConsistentChoices++
	}
	for _, row := range d.Inconsistent {
		stats(row.UserID).InconsistentChoices++
	}
	for _, row := range d.Probable {
		stats(row.UserID).ProbableChoices++
	}
	for _, row := range d.Improbable {
		stats(row.UserID).ImprobableChoices++
	}

	out := make([]*model.UserReliability, 0, len(byUser))
	for _, st := range byUser {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID < out[j].UserID
	})
	return out
}
