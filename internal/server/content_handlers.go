package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"brainvault/internal/middleware"
	"brainvault/internal/models"
	"brainvault/internal/service"
)

// CreateContentRequest represents the save-content request payload
type CreateContentRequest struct {
	Link  string `json:"link"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// DeleteContentRequest identifies the item to remove
type DeleteContentRequest struct {
	ContentID uint `json:"content_id"`
}

// CreateContent saves a new item into the authenticated user's vault
func (s *Server) CreateContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.contentService.Create(c.UserContext(), service.CreateInput{
		UserID: userID,
		Link:   req.Link,
		Type:   req.Type,
		Title:  req.Title,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to save content", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content added",
		"content": item,
	})
}

// GetContent lists the authenticated user's items, newest first
func (s *Server) GetContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	items, err := s.contentService.List(c.UserContext(), userID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to list content", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"content": items,
	})
}

// DeleteContent removes an item owned by the authenticated user. Deleting an
// item that does not exist, or that belongs to someone else, is a no-op.
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req DeleteContentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.contentService.Delete(c.UserContext(), userID, req.ContentID); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to delete content", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Deleted",
	})
}
