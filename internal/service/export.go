package service

import (
	"strconv"

	"gopkg.in/guregu/null.v3"

	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/pkg/stats"
	"github.com/typinglab/bigram-backend/internal/repo"
)

// Export writes the pipeline's tables. Column layouts follow the classified
// dataset's field order; null numerics serialize as empty cells so the
// consumers' skip-missing semantics survive the round trip.
type Export struct {
	TableRepo *repo.Table
}

func NewExport(tableRepo *repo.Table) *Export {
	return &Export{
		TableRepo: tableRepo,
	}
}

var datasetHeader = []string{
	"group_id", "user_id", "trial_id", "bigram_pair", "bigram1", "bigram2",
	"bigram1_time", "bigram2_time",
	"chosen_bigram", "unchosen_bigram",
	"chosen_bigram_time", "unchosen_bigram_time",
	"chosen_bigram_correct", "unchosen_bigram_correct",
	"slider_value", "abs_slider_value", "text",
	"is_consistent", "is_probable", "is_improbable", "group_size",
}

// Dataset writes the classified rows plus the four reliability subsets,
// each table name prefixed (processed_ or filtered_).
func (s *Export) Dataset(prefix string, d *Dataset) error {
	tables := []struct {
		name string
		rows []*model.ClassifiedObservation
	}{
		{prefix + "bigram_data.csv", d.Rows},
		{prefix + "consistent_choices.csv", d.Consistent},
		{prefix + "inconsistent_choices.csv", d.Inconsistent},
		{prefix + "probable_choices.csv", d.Probable},
		{prefix + "improbable_choices.csv", d.Improbable},
	}
	for _, table := range tables {
		records := make([][]string, 0, len(table.rows))
		for _, row := range table.rows {
			records = append(records, []string{
				row.GroupID, row.UserID, row.TrialID, row.Pair.String(), row.Pair.A, row.Pair.B,
				fmtFloat(row.Bigram1Time), fmtFloat(row.Bigram2Time),
				row.ChosenBigram, row.UnchosenBigram,
				fmtFloat(row.ChosenBigramTime), fmtFloat(row.UnchosenBigramTime),
				fmtBool(row.ChosenBigramCorrect), fmtBool(row.UnchosenBigramCorrect),
				fmtFloat(row.SliderValue), fmtFloat(row.AbsSliderValue), row.Text,
				fmtBool(row.IsConsistent), strconv.FormatBool(row.IsProbable), strconv.FormatBool(row.IsImprobable),
				strconv.Itoa(row.GroupSize),
			})
		}
		if err := s.TableRepo.WriteCSV(table.name, datasetHeader, records); err != nil {
			return err
		}
	}
	return nil
}

// UserStats writes the per-user reliability counters.
func (s *Export) UserStats(prefix string, userStats []*model.UserReliability) error {
	header := []string{
		"user_id", "total_choices", "consistent_choices", "inconsistent_choices",
		"probable_choices", "improbable_choices", "total_consistency_choices",
		"num_easy_choice_pairs",
	}
	records := make([][]string, 0, len(userStats))
	for _, st := range userStats {
		records = append(records, []string{
			st.UserID,
			strconv.Itoa(st.TotalChoices),
			strconv.Itoa(st.ConsistentChoices),
			strconv.Itoa(st.InconsistentChoices),
			strconv.Itoa(st.ProbableChoices),
			strconv.Itoa(st.ImprobableChoices),
			strconv.Itoa(st.TotalConsistencyChoices),
			strconv.Itoa(st.NumEasyChoicePairs),
		})
	}
	return s.TableRepo.WriteCSV(prefix+"user_statistics.csv", header, records)
}

// UserScores writes the per-(user, pair) scored table.
func (s *Export) UserScores(scores []*model.UserScore) error {
	header := []string{
		"user_id", "bigram_pair", "bigram1", "bigram2",
		"chosen_bigram_winner", "unchosen_bigram_winner",
		"chosen_bigram_time_median", "unchosen_bigram_time_median",
		"chosen_bigram_correct_total", "unchosen_bigram_correct_total",
		"score", "text", "is_consistent", "is_probable", "is_improbable", "group_size",
	}
	records := make([][]string, 0, len(scores))
	for _, score := range scores {
		records = append(records, []string{
			score.UserID, score.Pair.String(), score.Pair.A, score.Pair.B,
			score.WinnerBigram, score.LoserBigram,
			fmtFloat(score.ChosenTimeMedian), fmtFloat(score.UnchosenTimeMedian),
			strconv.Itoa(score.ChosenCorrectTotal), strconv.Itoa(score.UnchosenCorrectTotal),
			fmtFloat(score.Score), score.Text,
			strconv.FormatBool(score.IsConsistent),
			strconv.FormatBool(score.IsProbable), strconv.FormatBool(score.IsImprobable),
			strconv.Itoa(score.GroupSize),
		})
	}
	return s.TableRepo.WriteCSV("scored_bigram_data.csv", header, records)
}

// verdictSummary is the compact JSON companion of the winner table.
type verdictSummary struct {
	Pairs             int                  `json:"pairs"`
	ScoreDistribution stats.Summary        `json:"scoreDistribution"`
	Verdicts          []*model.PairVerdict `json:"verdicts"`
}

// PairVerdicts writes the per-pair winner table and its JSON summary.
func (s *Export) PairVerdicts(verdicts []*model.PairVerdict) error {
	header := []string{
		"bigram_pair", "winner_bigram", "loser_bigram", "median_score", "mad_score",
		"chosen_bigram_time_median", "unchosen_bigram_time_median",
		"chosen_bigram_correct_total", "unchosen_bigram_correct_total",
		"is_consistent", "is_probable", "is_improbable", "group_size", "text",
	}
	records := make([][]string, 0, len(verdicts))
	medianScores := make([]float64, 0, len(verdicts))
	for _, verdict := range verdicts {
		records = append(records, []string{
			verdict.Pair.String(), verdict.WinnerBigram, verdict.LoserBigram,
			fmtFloat(verdict.MedianScore), fmtFloat(verdict.MADScore),
			fmtFloat(verdict.ChosenTimeMedian), fmtFloat(verdict.UnchosenTimeMedian),
			strconv.Itoa(verdict.ChosenCorrectTotal), strconv.Itoa(verdict.UnchosenCorrectTotal),
			strconv.FormatBool(verdict.IsConsistent),
			strconv.FormatBool(verdict.IsProbable), strconv.FormatBool(verdict.IsImprobable),
			strconv.Itoa(verdict.GroupSize), verdict.Text,
		})
		if verdict.MedianScore.Valid {
			medianScores = append(medianScores, verdict.MedianScore.Float64)
		}
	}
	if err := s.TableRepo.WriteCSV("bigram_winner_data.csv", header, records); err != nil {
		return err
	}

	return s.TableRepo.WriteJSON("bigram_winner_summary.json", verdictSummary{
		Pairs:             len(verdicts),
		ScoreDistribution: stats.Describe(medianScores),
		Verdicts:          verdicts,
	})
}

func fmtFloat(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

func fmtBool(v null.Bool) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatBool(v.Bool)
}
