package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/repo"
)

// Pipeline runs the whole analysis batch: ingest, classify and group,
// aggregate reliability, filter participants, score choices, choose winners,
// export tables and optionally render charts.
type Pipeline struct {
	Config          *appconfig.Config
	ObservationRepo *repo.Observation
	Classifier      *Classifier
	Processor       *Processor
	Reliability     *Reliability
	Filter          *Filter
	Scorer          *Scorer
	Verdicts        *Verdicts
	Export          *Export
	Charts          *Charts
	ReferenceRepo   *repo.Reference
}

func NewPipeline(
	config *appconfig.Config,
	observationRepo *repo.Observation,
	referenceRepo *repo.Reference,
	classifier *Classifier,
	processor *Processor,
	reliability *Reliability,
	filter *Filter,
	scorer *Scorer,
	verdicts *Verdicts,
	export *Export,
	charts *Charts,
) *Pipeline {
	return &Pipeline{
		Config:          config,
		ObservationRepo: observationRepo,
		ReferenceRepo:   referenceRepo,
		Classifier:      classifier,
		Processor:       processor,
		Reliability:     reliability,
		Filter:          filter,
		Scorer:          scorer,
		Verdicts:        verdicts,
		Export:          export,
		Charts:          charts,
	}
}

func (s *Pipeline) Run(ctx context.Context) error {
	observations, err := s.ObservationRepo.Load(ctx)
	if err != nil {
		return err
	}

	index, err := s.Classifier.Index(ctx)
	if err != nil {
		return err
	}

	removePairs, err := s.ReferenceRepo.LoadRemovePairs(ctx)
	if err != nil {
		return err
	}

	dataset := s.Processor.Process(observations, index, removePairs)
	userStats := s.Reliability.UserStats(dataset, index.Size())

	if err := s.Export.Dataset("processed_", dataset); err != nil {
		return err
	}
	if err := s.Export.UserStats("processed_", userStats); err != nil {
		return err
	}

	filtered, filteredStats := s.Filter.FilterUsers(dataset, userStats, Thresholds{
		MaxImprobable:   s.Config.MaxImprobableChoices,
		MaxInconsistent: s.Config.MaxInconsistentChoices,
	})
	if err := s.Export.Dataset("filtered_", filtered); err != nil {
		return err
	}
	if err := s.Export.UserStats("filtered_", filteredStats); err != nil {
		return err
	}

	scores := s.Scorer.ScoreChoices(filtered.Rows)
	if err := s.Export.UserScores(scores); err != nil {
		return err
	}

	verdicts := s.Verdicts.ChooseWinners(scores)
	if err := s.Export.PairVerdicts(verdicts); err != nil {
		return err
	}

	if s.Config.EmitCharts {
		// Charts are a secondary artifact; a rendering failure must not void
		// the exported tables.
		if err := s.Charts.UserChoices("processed_", userStats); err != nil {
			log.Error().Err(err).Msg("failed to render processed user charts")
		}
		if err := s.Charts.UserChoices("filtered_", filteredStats); err != nil {
			log.Error().Err(err).Msg("failed to render filtered user charts")
		}
	}

	log.Info().
		Int("observations", len(observations)).
		Int("users", len(userStats)).
		Int("usersKept", len(filteredStats)).
		Int("scores", len(scores)).
		Int("verdicts", len(verdicts)).
		Msg("analysis pipeline finished")

	return nil
}
