package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/service"
)

const dateLayout = "2006-01-02"

// ListActivity filters the activity log by ?q=, ?action= and ?date=YYYY-MM-DD (read in loc).
//
// @Summary List activity
// @Tags activity
// @Produce json
// @Param q query string false "Document or user name"
// @Param action query string false "upload, download, delete, view, comment or all"
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {object} service.ActivityListResult
// @Router /activity [get]
func ListActivity(svc service.ActivityService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit := filter.ActivityCriteria{Query: c.Query("q"), Action: c.Query("action", filter.All)}
		if crit.Action != filter.All && !model.ActivityAction(crit.Action).Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ACTION", "unknown action")
		}
		if raw := c.Query("date"); raw != "" {
			d, err := time.ParseInLocation(dateLayout, raw, loc)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			}
			crit.Date = &d
		}

		res, err := svc.List(c.UserContext(), crit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetMonitoring returns the monitoring dashboard for ?range= (24h, 7d, 30d, 90d).
//
// @Summary Monitoring overview
// @Tags monitoring
// @Produce json
// @Param range query string false "Time range" default(7d)
// @Success 200 {object} service.Overview
// @Router /monitoring [get]
func GetMonitoring(svc service.MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := service.ParseTimeRange(c.Query("range"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_RANGE", "range must be one of 24h, 7d, 30d, 90d")
		}
		o, err := svc.Overview(c.UserContext(), r)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(o)
	}
}

// ListSystemLogs filters the system log by ?level= and ?q=.
//
// @Summary List system logs
// @Tags monitoring
// @Produce json
// @Param level query string false "info, warning, error or all"
// @Param q query string false "Message text"
// @Success 200 {object} service.SystemLogListResult
// @Router /monitoring/system-logs [get]
func ListSystemLogs(svc service.MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit := filter.SystemLogCriteria{Query: c.Query("q"), Level: c.Query("level", filter.All)}
		if crit.Level != filter.All && !model.LogLevel(crit.Level).Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LEVEL", "unknown level")
		}
		res, err := svc.SystemLogs(c.UserContext(), crit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
