package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/service"
	"docdash/internal/upload"
)

// SubmitUpload accepts multipart/form-data with a file field plus optional tags and description.
// The file bytes are discarded; only the normalized submission is recorded.
//
// @Summary Submit upload
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "File"
// @Param tags formData string false "Comma separated tags"
// @Param description formData string false "Description"
// @Success 202 {object} upload.Submission
// @Failure 400 {object} errorPayload
// @Router /uploads [post]
func SubmitUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		var form upload.Form
		form.Browse(&upload.FileHandle{Name: fh.Filename, Size: fh.Size, ContentType: ct})
		form.SetTags(c.FormValue("tags"))
		form.SetDescription(c.FormValue("description"))

		sub, _ := form.Submit()
		if err := svc.Submit(c.UserContext(), sub); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(sub)
	}
}
