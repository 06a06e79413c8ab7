package view

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"htmxtodo/internal/constants"
)

// Layout wraps page content in a full document.
type Layout func(title string, body templ.Component) templ.Component

// PageRenderer installs layout on every request it sees. Mount it ahead of the page routes.
func PageRenderer(layout Layout) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(constants.LayoutContextKey, layout)
		return c.Next()
	}
}

// Render writes content wrapped in the layout installed by PageRenderer.
// Without a layout, content is written as a bare fragment.
func Render(c *fiber.Ctx, status int, title string, content templ.Component) error {
	if layout, ok := c.Locals(constants.LayoutContextKey).(Layout); ok {
		content = layout(title, content)
	}
	return RenderComponent(c, status, content)
}
