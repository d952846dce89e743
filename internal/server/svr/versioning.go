package svr

import (
	"github.com/gofiber/fiber/v2"
)

type V1 struct {
	fiber.Router
}

// Meta carries the unversioned endpoints (health, build info).
type Meta struct {
	fiber.Router
}

func CreateVersioningEndpoints(app *fiber.App) (*V1, *Meta) {
	v1 := app.Group("/api/v1")
	meta := app.Group("/")

	return &V1{Router: v1}, &Meta{Router: meta}
}
