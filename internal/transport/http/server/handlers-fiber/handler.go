// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/config"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP surface using service layer interfaces.
type Handler struct {
	log   *zap.SugaredLogger
	uc    usecase.InterfaceUsecase
	slack config.SlackConfig
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, slack config.SlackConfig) *Handler {
	return &Handler{
		log:   log,
		uc:    uc,
		slack: slack,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	admin := app.Group("/admin", h.requireAdmin)
	admin.Post("/workspaces", h.CreateWorkspace)
	admin.Get("/workspaces", h.ListWorkspaces)
	admin.Get("/workspaces/:id", h.GetWorkspace)
	admin.Patch("/workspaces/:id", h.UpdateWorkspaceSettings)
	admin.Delete("/workspaces/:id", h.DeleteWorkspace)
	admin.Get("/workspaces/:id/members", h.ListMembers)
	admin.Post("/members", h.CreateMember)
	admin.Get("/members/:id", h.GetMember)
	admin.Patch("/members/:id", h.UpdateMember)
	admin.Delete("/members/:id", h.DeleteMember)

	app.Post("/slack/events", h.SlackEvents)
	app.Get("/slack/oauth/callback", h.SlackOAuthCallback)
}
