package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/filter"
	"docdash/internal/service"
)

// ListDocuments returns the documents whose name or tags contain ?q=.
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} service.DocumentListResult
// @Router /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), filter.DocumentCriteria{Query: c.Query("q")})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns one document.
//
// @Summary Get document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document.
//
// @Summary Delete document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadDocument records a download request. No file content is served.
//
// @Summary Request download
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 202 {object} model.Document
// @Router /documents/{id}/download [post]
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(doc)
	}
}

type commentRequest struct {
	Content string `json:"content"`
}

// ListComments returns a document's comment thread.
//
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} model.Comment
// @Router /documents/{id}/comments [get]
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items, "total": len(items)})
	}
}

// AddComment appends a comment signed by the configured current user.
//
// @Summary Add comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param body body commentRequest true "Comment"
// @Success 201 {object} model.Comment
// @Failure 422 {object} errorPayload
// @Router /documents/{id}/comments [post]
func AddComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req commentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cm, err := svc.Add(c.UserContext(), c.Params("id"), req.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cm)
	}
}
