package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typinglab/bigram-backend/internal/model"
)

func TestUserStatsCounters(t *testing.T) {
	p := NewProcessor()
	ix := BuildReferenceIndex([]model.EasyChoicePair{{Plausible: "fr", Implausible: "vr"}})
	d := p.Process([]*model.Observation{
		// u1: one consistent pair (2 repeats), one improbable singleton.
		obs("u1", "t1", "th", "he", -40),
		obs("u1", "t2", "th", "he", -60),
		obs("u1", "t3", "vr", "fr", 5),
		// u2: one inconsistent pair (2 repeats).
		obs("u2", "t1", "ab", "cd", 10),
		obs("u2", "t2", "cd", "ab", 10),
	}, ix, nil)

	stats := NewReliability().UserStats(d, ix.Size())
	require.Len(t, stats, 2)

	u1 := stats[0]
	assert.Equal(t, "u1", u1.UserID)
	assert.Equal(t, 3, u1.TotalChoices)
	assert.Equal(t, 2, u1.ConsistentChoices)
	assert.Equal(t, 0, u1.InconsistentChoices)
	assert.Equal(t, 0, u1.ProbableChoices)
	assert.Equal(t, 1, u1.ImprobableChoices)
	assert.Equal(t, 2, u1.TotalConsistencyChoices)
	assert.Equal(t, 1, u1.NumEasyChoicePairs)

	u2 := stats[1]
	assert.Equal(t, "u2", u2.UserID)
	assert.Equal(t, 2, u2.TotalChoices)
	assert.Equal(t, 0, u2.ConsistentChoices)
	assert.Equal(t, 2, u2.InconsistentChoices)
	assert.Equal(t, 2, u2.TotalConsistencyChoices)
}

func TestUserStatsCounterBounds(t *testing.T) {
	p := NewProcessor()
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", -40),
		obs("u1", "t2", "th", "he", -60),
		obs("u1", "t3", "ab", "cd", 10),
		obs("u1", "t4", "cd", "ab", 10),
		obs("u1", "t5", "ef", "gh", 10),
	}, BuildReferenceIndex(nil), nil)

	stats := NewReliability().UserStats(d, 0)
	require.Len(t, stats, 1)
	st := stats[0]

	assert.LessOrEqual(t, st.ConsistentChoices+st.InconsistentChoices, st.TotalConsistencyChoices)
	assert.LessOrEqual(t, st.TotalConsistencyChoices, st.TotalChoices)
	assert.Equal(t, 5, st.TotalChoices)
	assert.Equal(t, 4, st.TotalConsistencyChoices)
}

func TestUserStatsZeroFill(t *testing.T) {
	p := NewProcessor()
	d := p.Process([]*model.Observation{
		obs("u1", "t1", "th", "he", 10),
	}, BuildReferenceIndex(nil), nil)

	stats := NewReliability().UserStats(d, 0)
	require.Len(t, stats, 1)
	// A user with only a singleton group reports explicit zeroes, not
	// missing values.
	assert.Equal(t, 0, stats[0].ConsistentChoices)
	assert.Equal(t, 0, stats[0].InconsistentChoices)
	assert.Equal(t, 0, stats[0].ProbableChoices)
	assert.Equal(t, 0, stats[0].ImprobableChoices)
	assert.Equal(t, 0, stats[0].TotalConsistencyChoices)
}
