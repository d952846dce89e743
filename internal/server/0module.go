package server

import (
	"go.uber.org/fx"

	"striderun.dev/backend/internal/server/httpserver"
	"striderun.dev/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateVersioningEndpoints))
}
