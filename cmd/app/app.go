package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/typinglab/bigram-backend/cmd/app/analyze"
	"github.com/typinglab/bigram-backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "bigram-backend",
		Description: "Aggregation backend for two-alternative forced-choice bigram typing experiments. Turns repeated per-user pairwise comparisons into per-pair consensus verdicts, with participant reliability accounting.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			analyze.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
