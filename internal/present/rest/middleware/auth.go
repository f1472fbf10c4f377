package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/social360/social360/internal/domain"
)

var tracer = otel.Tracer("auth")

// IdentityMiddleware lifts the caller identity supplied by the host's
// authentication layer into the request context. The identity is opaque and
// already authenticated; the core never verifies it.
type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

func (m *IdentityMiddleware) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyRequester")
		defer span.End()

		requester := c.Request().Header.Get(domain.RequesterIdHeader)
		if requester != "" {
			ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, requester)
			span.SetAttributes(attribute.String("RequesterId", requester))
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
