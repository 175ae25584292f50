package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, controller *session.Controller) {
	v1 := app.Group("/api/v1")

	v1.Get("/suggestions", func(c *fiber.Ctx) error {
		q := suggestionQuery{Partial: c.Query("q")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		candidates := controller.Suggest(c.UserContext(), q.Partial)
		return c.JSON(fiber.Map{
			"suggestions": session.RenderSuggestions(candidates),
		})
	})

	v1.Post("/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if _, err := controller.Submit(c.UserContext(), req.Query); err != nil {
			return fiber.NewError(statusFor(err), weather.UserMessage(err))
		}
		return c.JSON(controller.View())
	})

	v1.Get("/state", func(c *fiber.Ctx) error {
		raw := c.Query("unit")
		if raw == "" {
			return c.JSON(controller.View())
		}

		unit, err := weather.ParseUnit(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(controller.ViewIn(unit))
	})

	v1.Get("/history", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"history": controller.Snapshot().History,
		})
	})

	v1.Put("/unit", func(c *fiber.Ctx) error {
		var req unitRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		unit, err := weather.ParseUnit(req.Unit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		controller.SetUnit(unit)
		return c.JSON(controller.View())
	})

	v1.Post("/unit/toggle", func(c *fiber.Ctx) error {
		controller.ToggleUnit()
		return c.JSON(controller.View())
	})
}

// suggestionQuery holds the typeahead input.
type suggestionQuery struct {
	Partial string `validate:"max=200"`
}

type searchRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

type unitRequest struct {
	Unit string `json:"unit" validate:"required"`
}

// statusFor maps lookup failures onto HTTP status codes.
func statusFor(err error) int {
	var (
		notFound *weather.NotFoundError
		invalid  *weather.InvalidCoordinatesError
		upstream *weather.UpstreamError
	)
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &upstream), errors.Is(err, weather.ErrMalformedForecast):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
