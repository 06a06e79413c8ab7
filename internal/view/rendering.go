package view

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// RenderComponent writes component as the HTML response body with status.
func RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status).Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Context(), c)
}
