package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewFilter,
		NewScorer,
		NewExport,
		NewCharts,
		NewVerdicts,
		NewPipeline,
		NewProcessor,
		NewClassifier,
		NewReliability,
	))
}
