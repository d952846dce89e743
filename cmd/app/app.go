package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"striderun.dev/backend/cmd/app/server"
	"striderun.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "stridebackend",
		Description: "The Stride training backend. Syncs workouts from the vendor platform and serves training aggregates. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
