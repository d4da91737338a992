package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// RequireCapability rejects callers whose actor lacks the capability, e.g.
// RequireCapability(domain.Actor.CanChangeStatus, "...").
func RequireCapability(check func(domain.Actor) bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !check(principal.Actor) {
			return apperrors.NewForbidden(message)
		}
		return c.Next()
	}
}

// RequireAnyRole ensures caller is authenticated as client or staff.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
