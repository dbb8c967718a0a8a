package analyze

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	log.Info().Msg("running analysis pipeline")

	if err := deps.Pipeline.Run(ctx.Context); err != nil {
		return errors.Wrap(err, "failed to run analysis pipeline")
	}

	log.Info().Msg("analysis pipeline done")
	return nil
}
