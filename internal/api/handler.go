package api

import (
	"errors"
	"time"

	"travelweather/internal/models"
	"travelweather/internal/services"
	"travelweather/pkg/client"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	fetcher *services.Fetcher
	compare *services.CompareCoordinator
	backend *client.ForecastClient
	logger  *zap.Logger
}

func NewHandler(fetcher *services.Fetcher, compare *services.CompareCoordinator, backend *client.ForecastClient, logger *zap.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		compare: compare,
		backend: backend,
		logger:  logger,
	}
}

// GetForecast handles GET /api/v1/weather/forecast
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	locationID := c.Query("locationId")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "locationId parameter is required",
		})
	}
	locationName := c.Query("name", locationID)

	requestedDate, err := parseDateParam(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date parameter must be YYYY-MM-DD",
		})
	}

	h.logger.Info("Fetching forecast",
		zap.String("location_id", locationID),
		zap.String("date", c.Query("date")))

	bundle, err := h.fetcher.Fetch(c.Context(), locationID, locationName, services.PrimaryKeyPrefix, requestedDate)
	if err != nil {
		h.logger.Error("Failed to get forecast",
			zap.String("location_id", locationID),
			zap.Error(err))

		status := fiber.StatusBadGateway
		if errors.Is(err, services.ErrDateNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(bundle)
}

// GetCompare handles GET /api/v1/weather/compare
//
// An empty locationId clears the comparison selection. A failed comparison
// fetch still answers 200 with cleared state so the primary view is never
// blocked by it.
func (h *Handler) GetCompare(c *fiber.Ctx) error {
	requestedDate, err := parseDateParam(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date parameter must be YYYY-MM-DD",
		})
	}

	locationID := c.Query("locationId")
	if locationID == "" {
		h.compare.SetLocation(c.Context(), nil, nil)
		return c.JSON(h.compare.State())
	}

	loc := &models.Location{
		ID:   locationID,
		Name: c.Query("name", locationID),
	}
	h.compare.SetLocation(c.Context(), loc, requestedDate)

	return c.JSON(h.compare.State())
}

// GetLocations handles GET /api/v1/locations
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.backend.Locations(c.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch locations",
		})
	}

	return c.JSON(fiber.Map{
		"locations": locations,
	})
}

// GetLocationDetails handles GET /api/v1/locations/:id
func (h *Handler) GetLocationDetails(c *fiber.Ctx) error {
	details, err := h.backend.LocationDetails(c.Context(), c.Params("id"))
	if err != nil {
		h.logger.Error("Failed to get location details",
			zap.String("id", c.Params("id")),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch location details",
		})
	}

	return c.JSON(details)
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

var startTime = time.Now()
