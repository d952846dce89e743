package appconfig

import (
	"striderun.dev/backend/internal/app/appcontext"
)

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
