package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
	"docdash/internal/http/middleware"
	"docdash/internal/preview"
	"docdash/internal/upload"
)

type viewRequest struct {
	View string `json:"view"`
}

type documentRequest struct {
	ID string `json:"id"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type uploadRequest struct {
	// Event is one of browse, drag_over, drag_leave, drop, remove_file.
	Event       string             `json:"event"`
	File        *upload.FileHandle `json:"file"`
	Tags        *string            `json:"tags"`
	Description *string            `json:"description"`
}

type previewRequest struct {
	Tab     *string `json:"tab"`
	Comment *string `json:"comment"`
	Submit  bool    `json:"submit"`
}

// dashboardAction runs fn against the session controller and answers with a fresh snapshot.
func dashboardAction(fn func(c *fiber.Ctx, ctrl *dashboard.Controller) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctrl := middleware.Controller(c)
		if ctrl == nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if fn != nil {
			if err := fn(c, ctrl); err != nil {
				if fe, ok := err.(*fiber.Error); ok {
					return writeError(c, fe.Code, "BAD_REQUEST", fe.Message)
				}
				return writeServiceError(c, err)
			}
		}
		snap, err := ctrl.Snapshot(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(snap)
	}
}

// GetDashboard returns the session's snapshot.
//
// @Summary Dashboard snapshot
// @Tags dashboard
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard [get]
func GetDashboard() fiber.Handler {
	return dashboardAction(nil)
}

// SwitchView activates {"view": ...}.
//
// @Summary Switch view
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body viewRequest true "View"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/view [post]
func SwitchView() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req viewRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		v, err := dashboard.ParseView(req.View)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		ctrl.SwitchView(v)
		return nil
	})
}

// SelectDocument records {"id": ...} as the selection.
//
// @Summary Select document
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body documentRequest true "Document"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/select [post]
func SelectDocument() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		return ctrl.Select(c.UserContext(), req.ID)
	})
}

// OpenPreview opens the preview dialog of {"id": ...}.
//
// @Summary Open preview
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body documentRequest true "Document"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/preview [post]
func OpenPreview() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		return ctrl.OpenPreview(c.UserContext(), req.ID)
	})
}

// UpdatePreview changes the open preview: {"tab": ..., "comment": ..., "submit": true}.
// Submitting whitespace only leaves the thread untouched.
//
// @Summary Update preview
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body previewRequest true "Preview changes"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/preview [patch]
func UpdatePreview() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req previewRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if req.Tab != nil {
			tab, err := preview.ParseTab(*req.Tab)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			ctrl.SetPreviewTab(tab)
		}
		if req.Comment != nil {
			ctrl.EditComment(*req.Comment)
		}
		if req.Submit {
			_, err := ctrl.SubmitComment(c.UserContext())
			return err
		}
		return nil
	})
}

// ClosePreview closes the preview dialog.
//
// @Summary Close preview
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/preview [delete]
func ClosePreview() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		ctrl.ClosePreview()
		return nil
	})
}

// OpenUpload opens the upload dialog.
//
// @Summary Open upload dialog
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/upload [post]
func OpenUpload() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		ctrl.OpenUpload()
		return nil
	})
}

// CloseUpload closes the upload dialog.
//
// @Summary Close upload dialog
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/upload [delete]
func CloseUpload() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		ctrl.CloseUpload()
		return nil
	})
}

// UpdateUpload feeds a drop zone event and field edits to the upload dialog.
//
// @Summary Edit upload dialog
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body uploadRequest true "Upload changes"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/upload [patch]
func UpdateUpload() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req uploadRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		var apply func(f *upload.Form)
		switch req.Event {
		case "":
			apply = func(*upload.Form) {}
		case "browse":
			apply = func(f *upload.Form) { f.Browse(req.File) }
		case "drag_over":
			apply = func(f *upload.Form) { f.DragOver() }
		case "drag_leave":
			apply = func(f *upload.Form) { f.DragLeave() }
		case "drop":
			apply = func(f *upload.Form) { f.Drop(req.File) }
		case "remove_file":
			apply = func(f *upload.Form) { f.RemoveFile() }
		default:
			return fiber.NewError(fiber.StatusBadRequest, "unknown upload event")
		}
		ctrl.EditUpload(func(f *upload.Form) {
			apply(f)
			if req.Tags != nil {
				f.SetTags(*req.Tags)
			}
			if req.Description != nil {
				f.SetDescription(*req.Description)
			}
		})
		return nil
	})
}

// SubmitDashboardUpload submits the upload dialog. Without a file nothing changes.
//
// @Summary Submit upload dialog
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/upload/submit [post]
func SubmitDashboardUpload() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		_, err := ctrl.SubmitUpload(c.UserContext())
		return err
	})
}

// DeleteFromDashboard removes a document and drops it from the selection.
//
// @Summary Delete document from the dashboard
// @Tags dashboard
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/documents/{id} [delete]
func DeleteFromDashboard() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		return ctrl.RequestDelete(c.UserContext(), c.Params("id"))
	})
}

// Search sets the document list query {"query": ...}.
//
// @Summary Search documents
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body searchRequest true "Query"
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/search [post]
func Search() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		ctrl.Search(req.Query)
		return nil
	})
}

// ToggleSidebar flips the collapsed sidebar.
//
// @Summary Toggle sidebar
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard/sidebar/toggle [post]
func ToggleSidebar() fiber.Handler {
	return dashboardAction(func(c *fiber.Ctx, ctrl *dashboard.Controller) error {
		ctrl.ToggleSidebar()
		return nil
	})
}

// Logout is recorded and otherwise ignored.
//
// @Summary Logout
// @Tags dashboard
// @Success 204
// @Router /dashboard/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ctrl := middleware.Controller(c); ctrl != nil {
			ctrl.Logout()
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
