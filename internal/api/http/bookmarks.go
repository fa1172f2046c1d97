package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nettikantis/TravelCompanionApp/internal/store"
)

// bookmarkRequest is the create payload. Name and both coordinates are
// required; coordinate ranges are deliberately not validated.
type bookmarkRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Note      *string  `json:"note"`
}

func registerBookmarkRoutes(api fiber.Router, bookmarks store.BookmarkStore) {
	api.Get("/bookmarks", func(c *fiber.Ctx) error {
		items, err := bookmarks.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list bookmarks")
		}
		return c.JSON(fiber.Map{"results": items})
	})

	api.Post("/bookmarks", func(c *fiber.Ctx) error {
		var req bookmarkRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "name, latitude, longitude are required")
		}

		created, err := bookmarks.Create(c.Context(), store.Bookmark{
			Name:      req.Name,
			Address:   req.Address,
			City:      req.City,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Note:      req.Note,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	api.Delete("/bookmarks/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
		}

		if err := bookmarks.Delete(c.Context(), int64(id)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "bookmark not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete bookmark")
		}
		return c.JSON(fiber.Map{"status": "deleted", "id": id})
	})
}
