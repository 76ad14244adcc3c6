package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docdash/internal/http/middleware"
	"docdash/internal/service"
	"docdash/internal/session"
)

// Deps are the collaborators the routes are served by.
type Deps struct {
	// DB is pinged by /health. Leave nil for the in-memory store.
	DB         Pinger
	Documents  service.DocumentService
	Comments   service.CommentService
	Activity   service.ActivityService
	Monitoring service.MonitoringService
	Uploads    service.UploadService
	Sessions   *session.Store
	Location   *time.Location
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(d.Documents))
	docs.Get("/:id", GetDocument(d.Documents))
	docs.Delete("/:id", DeleteDocument(d.Documents))
	docs.Post("/:id/download", DownloadDocument(d.Documents))
	docs.Get("/:id/comments", ListComments(d.Comments))
	docs.Post("/:id/comments", AddComment(d.Comments))

	app.Get("/activity", ListActivity(d.Activity, loc))
	app.Get("/monitoring", GetMonitoring(d.Monitoring))
	app.Get("/monitoring/system-logs", ListSystemLogs(d.Monitoring))
	app.Post("/uploads", SubmitUpload(d.Uploads))

	if d.Sessions == nil {
		return
	}
	dash := app.Group("/dashboard", middleware.Session(d.Sessions))
	dash.Get("/", GetDashboard())
	dash.Post("/view", SwitchView())
	dash.Post("/select", SelectDocument())
	dash.Post("/preview", OpenPreview())
	dash.Patch("/preview", UpdatePreview())
	dash.Delete("/preview", ClosePreview())
	dash.Post("/upload", OpenUpload())
	dash.Patch("/upload", UpdateUpload())
	dash.Delete("/upload", CloseUpload())
	dash.Post("/upload/submit", SubmitDashboardUpload())
	dash.Delete("/documents/:id", DeleteFromDashboard())
	dash.Post("/search", Search())
	dash.Post("/sidebar/toggle", ToggleSidebar())
	dash.Post("/logout", Logout())
}
