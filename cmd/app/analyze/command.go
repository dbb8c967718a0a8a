package analyze

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/typinglab/bigram-backend/cmd/app/cli"
	"github.com/typinglab/bigram-backend/internal/service"
)

type CommandDeps struct {
	fx.In

	Pipeline *service.Pipeline
}

func depsFn() func() CommandDeps {
	return func() CommandDeps {
		var deps CommandDeps
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	fn := depsFn()
	return &cli.Command{
		Name:        "analyze",
		Usage:       "run the full analysis pipeline over the configured input folder",
		Description: "Ingests trial CSVs, classifies and groups them, aggregates participant reliability, filters participants, scores choices and chooses per-pair winners, then exports the result tables.",
		Action: func(ctx *cli.Context) error {
			return run(ctx, fn())
		},
	}
}
