package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brainvault/internal/middleware"
	"brainvault/internal/models"
)

// ShareRequest toggles public sharing of the caller's vault
type ShareRequest struct {
	Share bool `json:"share"`
}

// ToggleShare enables or disables the public share link for the caller's
// vault. Enabling is idempotent: repeated calls return the same hash.
func (s *Server) ToggleShare(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !req.Share {
		if err := s.shareService.Disable(c.UserContext(), userID); err != nil {
			middleware.Logger.ErrorContext(c.UserContext(), "Failed to disable share link", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Removed share link",
		})
	}

	hash, err := s.shareService.Enable(c.UserContext(), userID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to enable share link", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"hash": hash,
	})
}

// GetSharedBrain serves the public read-only view of a shared vault. An
// unknown hash, or a hash whose owner no longer exists, yields 411 to match
// the web client's contract.
func (s *Server) GetSharedBrain(c *fiber.Ctx) error {
	hash := c.Params("shareLink")

	view, err := s.shareService.Resolve(c.UserContext(), hash)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return c.Status(fiber.StatusLengthRequired).JSON(fiber.Map{
				"message": "Share link not found",
			})
		}
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to resolve share link", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"username": view.Username,
		"content":  view.Content,
	})
}
