package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/repo"
)

func exportService(t *testing.T) (*Export, string) {
	t.Helper()
	dir := t.TempDir()
	tableRepo := repo.NewTable(&appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			OutputTablesFolder: dir,
			OutputPlotsFolder:  filepath.Join(dir, "plots"),
		},
	})
	return NewExport(tableRepo), dir
}

func TestExportUserScoresNullScoreIsBlank(t *testing.T) {
	export, dir := exportService(t)

	pair := model.NewPairKey("th", "he")
	missing := &model.UserScore{
		UserID:       "u1",
		Pair:         pair,
		WinnerBigram: "th",
		LoserBigram:  "he",
		Score:        null.NewFloat(0, false),
	}
	present := &model.UserScore{
		UserID:       "u2",
		Pair:         pair,
		WinnerBigram: "he",
		LoserBigram:  "th",
		Score:        null.FloatFrom(0.5),
	}
	require.NoError(t, export.UserScores([]*model.UserScore{missing, present}))

	b, err := os.ReadFile(filepath.Join(dir, "scored_bigram_data.csv"))
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, "u1,\"he,th\",he,th,th,he,,,0,0,,")
	assert.Contains(t, content, "0.5")
}

func TestExportPairVerdictsWritesSummary(t *testing.T) {
	export, dir := exportService(t)

	verdicts := []*model.PairVerdict{
		{
			Pair:         model.NewPairKey("th", "he"),
			WinnerBigram: "th",
			LoserBigram:  "he",
			MedianScore:  null.FloatFrom(0.3),
			MADScore:     null.FloatFrom(0.1),
			GroupSize:    6,
		},
	}
	require.NoError(t, export.PairVerdicts(verdicts))

	for _, name := range []string{"bigram_winner_data.csv", "bigram_winner_summary.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportDatasetWritesAllTables(t *testing.T) {
	export, dir := exportService(t)

	d := NewProcessor().Process([]*model.Observation{
		obs("u1", "t1", "th", "he", -40),
		obs("u1", "t2", "th", "he", -60),
	}, BuildReferenceIndex(nil), nil)
	require.NoError(t, export.Dataset("processed_", d))

	for _, name := range []string{
		"processed_bigram_data.csv",
		"processed_consistent_choices.csv",
		"processed_inconsistent_choices.csv",
		"processed_probable_choices.csv",
		"processed_improbable_choices.csv",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestFmtHelpers(t *testing.T) {
	assert.Equal(t, "", fmtFloat(null.NewFloat(0, false)))
	assert.Equal(t, "0.5", fmtFloat(null.FloatFrom(0.5)))
	assert.Equal(t, "", fmtBool(null.NewBool(false, false)))
	assert.Equal(t, "true", fmtBool(null.BoolFrom(true)))
	assert.Equal(t, "false", fmtBool(null.BoolFrom(false)))
}
