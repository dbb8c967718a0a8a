package app

import (
	"go.uber.org/fx"

	"github.com/typinglab/bigram-backend/internal/app/appconfig"
	"github.com/typinglab/bigram-backend/internal/app/appcontext"
	"github.com/typinglab/bigram-backend/internal/pkg/logger"
	"github.com/typinglab/bigram-backend/internal/repo"
	"github.com/typinglab/bigram-backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx
	// graph because other packages need them before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		fx.WithLogger(logger.Fx),

		fx.Supply(conf),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
