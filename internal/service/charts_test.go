package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/repo"
)

func TestChartsUserChoices(t *testing.T) {
	dir := t.TempDir()
	plots := filepath.Join(dir, "plots")
	charts := NewCharts(repo.NewTable(&appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			OutputTablesFolder: filepath.Join(dir, "tables"),
			OutputPlotsFolder:  plots,
		},
	}))

	err := charts.UserChoices("processed_", []*model.UserReliability{
		{UserID: "u1", ConsistentChoices: 5, InconsistentChoices: 1, ProbableChoices: 2},
		{UserID: "u2", ConsistentChoices: 8, ImprobableChoices: 1},
	})
	require.NoError(t, err)

	for _, name := range []string{
		"processed_consistent_vs_inconsistent_choices.html",
		"processed_probable_vs_improbable_choices.html",
	} {
		b, err := os.ReadFile(filepath.Join(plots, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}
}
