package client

import (
	"go.uber.org/fx"

	"striderun.dev/backend/internal/client/garmin"
)

func Module() fx.Option {
	return fx.Module("client", fx.Provide(garmin.NewFactory))
}
