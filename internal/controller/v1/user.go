package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"striderun.dev/backend/internal/constant"
	"striderun.dev/backend/internal/pkg/apperr"
)

// requestUserID extracts the authenticated user from the gateway-injected
// identity header. Authentication itself lives in front of this service.
func requestUserID(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Get(constant.UserIDHeader)
	if raw == "" {
		return 0, apperr.ErrInvalidReq.Msg("missing %s header", constant.UserIDHeader)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidReq.Msg("invalid %s header", constant.UserIDHeader)
	}
	return id, nil
}
