package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/model"
)

func obs(user, trial, chosen, unchosen string, slider float64) *model.Observation {
	return &model.Observation{
		UserID:         user,
		TrialID:        trial,
		ChosenBigram:   chosen,
		UnchosenBigram: unchosen,
		SliderValue:    null.FloatFrom(slider),
	}
}

func TestProcessGroupsAcrossPresentationOrder(t *testing.T) {
	p := NewProcessor()
	// Same two bigrams, flipped chosen/unchosen roles across repeats.
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", -40),
		obs("u1", "t2", "he", "th", 20),
	}, BuildReferenceIndex(nil), nil)

	require.Len(t, d.Rows, 2)
	key := model.NewPairKey("th", "he")
	for _, row := range d.Rows {
		assert.Equal(t, key, row.Pair)
		assert.Equal(t, 2, row.GroupSize)
	}
	// Different bigrams were chosen, so the group is inconsistent.
	require.True(t, d.Rows[0].IsConsistent.Valid)
	assert.False(t, d.Rows[0].IsConsistent.Bool)
	assert.Len(t, d.Inconsistent, 2)
	assert.Empty(t, d.Consistent)
}

func TestProcessSingletonConsistencyUndefined(t *testing.T) {
	p := NewProcessor()
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", 10),
	}, BuildReferenceIndex(nil), nil)

	require.Len(t, d.Rows, 1)
	assert.Equal(t, 1, d.Rows[0].GroupSize)
	assert.False(t, d.Rows[0].IsConsistent.Valid)
	// Singletons never appear in the consistency subsets.
	assert.Empty(t, d.Consistent)
	assert.Empty(t, d.Inconsistent)
}

func TestProcessConsistentGroup(t *testing.T) {
	p := NewProcessor()
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", -40),
		obs("u1", "t2", "th", "he", -60),
	}, BuildReferenceIndex(nil), nil)

	require.Len(t, d.Rows, 2)
	require.True(t, d.Rows[0].IsConsistent.Valid)
	assert.True(t, d.Rows[0].IsConsistent.Bool)
	assert.Len(t, d.Consistent, 2)
	assert.Empty(t, d.Inconsistent)
}

func TestProcessPlausibilityFlags(t *testing.T) {
	p := NewProcessor()
	ix := BuildReferenceIndex([]model.EasyChoicePair{{Plausible: "fr", Implausible: "vr"}})
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "fr", "vr", 90),
		obs("u1", "t2", "vr", "fr", 5),
		obs("u1", "t3", "th", "he", 10),
	}, ix, nil)

	require.Len(t, d.Rows, 3)
	assert.Len(t, d.Probable, 1)
	assert.Len(t, d.Improbable, 1)
	for _, row := range d.Rows {
		assert.False(t, row.IsProbable && row.IsImprobable)
	}
}

func TestProcessCanonicalSideTimes(t *testing.T) {
	p := NewProcessor()
	o := obs("u1", "t1", "th", "he", 10)
	o.ChosenBigramTime = null.FloatFrom(120)
	o.UnchosenBigramTime = null.FloatFrom(150)
	d := p.Process([]*model.Observation{o}, BuildReferenceIndex(nil), nil)

	require.Len(t, d.Rows, 1)
	row := d.Rows[0]
	// Canonical pair is (he, th): side 1 is "he", which was the unchosen
	// bigram on this trial.
	assert.Equal(t, model.PairKey{A: "he", B: "th"}, row.Pair)
	assert.Equal(t, 150.0, row.Bigram1Time.Float64)
	assert.Equal(t, 120.0, row.Bigram2Time.Float64)
	assert.Equal(t, 10.0, row.AbsSliderValue.Float64)
}

func TestProcessRemovePairs(t *testing.T) {
	p := NewProcessor()
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", 10),
		obs("u1", "t2", "fr", "vr", 20),
	}, BuildReferenceIndex(nil), []model.PairKey{model.NewPairKey("he", "th")})

	require.Len(t, d.Rows, 1)
	assert.Equal(t, model.NewPairKey("fr", "vr"), d.Rows[0].Pair)
}

func TestProcessDeterministicOrder(t *testing.T) {
	in := []*model.Observation{
		obs("u2", "t1", "th", "he", 10),
		obs("u1", "t2", "ab", "cd", 20),
		obs("u1", "t1", "th", "he", 30),
	}
	reversed := []*model.Observation{in[2], in[1], in[0]}

	p := NewProcessor()
	a := p.Process(in, BuildReferenceIndex(nil), nil)
	b := p.Process(reversed, BuildReferenceIndex(nil), nil)

	require.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].UserID, b.Rows[i].UserID)
		assert.Equal(t, a.Rows[i].TrialID, b.Rows[i].TrialID)
		assert.Equal(t, a.Rows[i].Pair, b.Rows[i].Pair)
	}
	assert.Equal(t, "u1", a.Rows[0].UserID)
}
