package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/api"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidSchedule):
		status = http.StatusBadRequest
		code = api.BADSCHEDULE
		msg = err.Error()
	case errors.Is(err, entities.ErrWorkspaceNotFound), errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrWorkspaceExists):
		status = http.StatusConflict
		code = api.WORKSPACEEXISTS
		msg = "slack_team_id already registered"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = api.MEMBEREXISTS
		msg = "slack_user_id already enrolled"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

// requireAdmin guards admin routes with the X-Admin-Token header.
func (h *Handler) requireAdmin(c *fiber.Ctx) error {
	if h.slack.AdminToken == "" || c.Get("X-Admin-Token") != h.slack.AdminToken {
		return c.Status(http.StatusUnauthorized).
			JSON(errorResponse(api.INVALIDARGUMENT, "invalid or missing admin token"))
	}
	return c.Next()
}
