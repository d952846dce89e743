package controller

import (
	"go.uber.org/fx"

	controllermeta "striderun.dev/backend/internal/controller/meta"
	controllerv1 "striderun.dev/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerv1.Module(),
		controllermeta.Module(),
	)
}
