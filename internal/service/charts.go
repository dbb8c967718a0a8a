package service

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/typinglab/bigram-backend/internal/model"
	"github.com/typinglab/bigram-backend/internal/repo"
)

// Charts renders per-user choice breakdowns as horizontal stacked bar
// charts, one HTML file per figure.
type Charts struct {
	TableRepo *repo.Table
}

func NewCharts(tableRepo *repo.Table) *Charts {
	return &Charts{
		TableRepo: tableRepo,
	}
}

// UserChoices renders the consistent-vs-inconsistent and the
// probable-vs-improbable figures, users ordered by consistent choices
// descending.
func (s *Charts) UserChoices(prefix string, userStats []*model.UserReliability) error {
	ordered := make([]*model.UserReliability, len(userStats))
	copy(ordered, userStats)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ConsistentChoices > ordered[j].ConsistentChoices
	})

	users := lo.Map(ordered, func(st *model.UserReliability, _ int) string {
		return st.UserID
	})

	err := s.renderStackedBars(
		prefix+"consistent_vs_inconsistent_choices.html",
		"Consistent vs. Inconsistent Choices per User",
		users,
		[]series{
			{name: "Consistent Choices", values: lo.Map(ordered, func(st *model.UserReliability, _ int) int { return st.ConsistentChoices })},
			{name: "Inconsistent Choices", values: lo.Map(ordered, func(st *model.UserReliability, _ int) int { return st.InconsistentChoices })},
		},
	)
	if err != nil {
		return err
	}

	return s.renderStackedBars(
		prefix+"probable_vs_improbable_choices.html",
		"Probable vs. Improbable Choices per User",
		users,
		[]series{
			{name: "Probable Choices", values: lo.Map(ordered, func(st *model.UserReliability, _ int) int { return st.ProbableChoices })},
			{name: "Improbable Choices", values: lo.Map(ordered, func(st *model.UserReliability, _ int) int { return st.ImprobableChoices })},
		},
	)
}

type series struct {
	name   string
	values []int
}

func (s *Charts) renderStackedBars(filename, title string, users []string, set []series) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(users)
	for _, sr := range set {
		data := lo.Map(sr.values, func(v int, _ int) opts.BarData {
			return opts.BarData{Value: v}
		})
		bar.AddSeries(sr.name, data, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}
	// Horizontal bars: user ids on the value axis's flank.
	bar.XYReversal()

	w, err := s.TableRepo.CreatePlot(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := bar.Render(w); err != nil {
		return errors.Wrapf(err, "failed to render %s", filename)
	}
	log.Info().Str("chart", filename).Int("users", len(users)).Msg("rendered chart")
	return nil
}
