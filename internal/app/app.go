package app

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"htmxtodo/gen/htmxtodo/public/model"
	"htmxtodo/internal/config"
	"htmxtodo/internal/logger"
	"htmxtodo/internal/repo"
	"htmxtodo/internal/view"
	"htmxtodo/views/layouts"
	todoviews "htmxtodo/views/todos"
	"htmxtodo/web"
)

// Config is the global config for the app router.
type Config struct {
	Env              string
	Repo             repo.Repository
	Logger           *logger.Logger
	EnableStackTrace bool
	StaticFS         http.FileSystem
	// NewID generates identifiers for created todos.
	NewID func() uuid.UUID
}

func NewConfig(cfg *config.Config, r repo.Repository, log *logger.Logger) Config {
	return Config{
		Env:              cfg.Env,
		Repo:             r,
		Logger:           log,
		EnableStackTrace: cfg.IsDevelopment(),
		StaticFS:         web.Static(),
		NewID:            uuid.New,
	}
}

func New(config *Config) *fiber.App {
	config.Logger.Debug("building app", "env", config.Env, "dev_assets", web.Dev)

	app := fiber.New(fiber.Config{
		AppName:               "HtmxTodo 0.1.0",
		ErrorHandler:          newErrorHandler(config.Logger),
		DisableStartupMessage: true,
	})

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:        "${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		DisableColors: true,
		Output:        config.Logger.Writer(),
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.EnableStackTrace,
	}))
	app.Use(compress.New())
	// htmx and hyperscript load from a CDN without CORP headers.
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(favicon.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: config.StaticFS,
	}))

	todos := TodoHandlers{
		repo:  config.Repo,
		newID: config.NewID,
	}

	// Must stay ahead of the page routes so they render inside the layout.
	app.Get("/*", view.PageRenderer(layouts.Page))

	app.Get("/", todos.Index)
	app.Post("/todo", todos.Create)
	app.Delete("/todo/:id", todos.Delete)

	return app
}

type TodoHandlers struct {
	repo  repo.Repository
	newID func() uuid.UUID
}

func (h *TodoHandlers) Index(c *fiber.Ctx) error {
	results, err := h.repo.FilterTodos(c.Context())
	if err != nil {
		return err
	}

	return view.Render(c, fiber.StatusOK, "Create todos", todoviews.Index(todoviews.NewItemProps(results)))
}

type CreateTodoRequest struct {
	Title string `json:"title" form:"title"`
}

func (h *TodoHandlers) Create(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	result, err := h.repo.CreateTodo(c.Context(), model.Todo{
		ID:    h.newID(),
		Title: req.Title,
	})
	if err != nil {
		return err
	}

	return view.RenderComponent(c, fiber.StatusOK, todoviews.Item(todoviews.ItemProps{Todo: result}))
}

// Delete removes the todo if it exists. Unknown ids are answered the same way as a
// successful delete.
func (h *TodoHandlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// malformed ids cannot match a row
		return c.Status(fiber.StatusOK).Send(nil)
	}

	if err := h.repo.DeleteTodoById(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).Send(nil)
}
