// Package handler is the thin admin-facing surface: every handler reads
// validated input from Locals, delegates to a resource service, and maps
// tagged upstream errors to HTTP answers. No handler talks to the wire
// directly.
package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/client"
	"metroll_cms/helper"
)

// sessionContext builds the outbound-call context, carrying the login
// session so the client wrapper can inject the upstream bearer token.
func sessionContext(c *fiber.Ctx) context.Context {
	ctx := c.Context()
	if sess := helper.SessionFromLocals(c); sess != nil {
		return client.WithSession(ctx, sess)
	}
	return ctx
}
