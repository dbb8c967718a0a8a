package service

import (
	"context"

	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/repo"
)

// Classifier tags observations against the easy-choice reference set: a
// choice is probable when the chosen bigram is the plausible member of a
// reference pair, improbable when it is the implausible member.
type Classifier struct {
	ReferenceRepo *repo.Reference
}

func NewClassifier(referenceRepo *repo.Reference) *Classifier {
	return &Classifier{
		ReferenceRepo: referenceRepo,
	}
}

type orderedPair struct {
	Chosen   string
	Unchosen string
}

// ReferenceIndex is the immutable lookup built once per run. Lookups are on
// ordered (chosen, unchosen) tuples since the plausibility relation is
// directional.
type ReferenceIndex struct {
	probable   map[orderedPair]bool
	improbable map[orderedPair]bool
	size       int
}

// Index loads the reference pairs and builds the lookup tables.
func (s *Classifier) Index(ctx context.Context) (*ReferenceIndex, error) {
	pairs, err := s.ReferenceRepo.LoadEasyChoicePairs(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReferenceIndex(pairs), nil
}

// BuildReferenceIndex constructs the lookup tables from a reference list.
// Duplicate or contradictory entries follow last-write-wins.
func BuildReferenceIndex(pairs []model.EasyChoicePair) *ReferenceIndex {
	ix := &ReferenceIndex{
		probable:   make(map[orderedPair]bool, len(pairs)),
		improbable: make(map[orderedPair]bool, len(pairs)),
		size:       len(pairs),
	}
	for _, pair := range pairs {
		ix.probable[orderedPair{Chosen: pair.Plausible, Unchosen: pair.Implausible}] = true
		ix.improbable[orderedPair{Chosen: pair.Implausible, Unchosen: pair.Plausible}] = true
	}
	return ix
}

// Size is the number of reference pairs the index was built from.
func (ix *ReferenceIndex) Size() int {
	return ix.size
}

// Flags returns (isProbable, isImprobable) for an ordered choice. Both are
// false when the combination matches no reference pair.
func (ix *ReferenceIndex) Flags(chosen, unchosen string) (bool, bool) {
	key := orderedPair{Chosen: chosen, Unchosen: unchosen}
	return ix.probable[key], ix.improbable[key]
}
