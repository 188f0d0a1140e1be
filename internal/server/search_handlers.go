package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brainvault/internal/middleware"
	"brainvault/internal/models"
)

// SearchContent ranks the authenticated user's embedded items against a
// free-text query and returns the best semantic matches.
func (s *Server) SearchContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	query := c.Query("q")

	results, err := s.contentService.Search(c.UserContext(), userID, query)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "VALIDATION_ERROR":
				return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
			case "PROVIDER_ERROR":
				middleware.Logger.ErrorContext(c.UserContext(), "Embedding provider failed during search", "error", err)
				return models.RespondWithError(c, fiber.StatusInternalServerError, appErr)
			}
		}
		middleware.Logger.ErrorContext(c.UserContext(), "Search failed", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": results,
	})
}
