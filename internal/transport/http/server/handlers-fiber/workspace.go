package handlers_fiber

import (
	"net/http"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/api"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateWorkspace registers a workspace manually.
func (h *Handler) CreateWorkspace(c *fiber.Ctx) error {
	var body api.CreateWorkspaceRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	ws, err := h.uc.CreateWorkspace(c.Context(), body.SlackTeamID, body.ReportChannelID, "", "")
	if err != nil {
		h.log.Errorw("failed to create workspace", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIWorkspace(*ws))
}

// ListWorkspaces returns all workspaces.
func (h *Handler) ListWorkspaces(c *fiber.Ctx) error {
	list, err := h.uc.Workspaces(c.Context())
	if err != nil {
		h.log.Errorw("failed to list workspaces", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIWorkspaceList(list))
}

// GetWorkspace returns a workspace by id.
func (h *Handler) GetWorkspace(c *fiber.Ctx) error {
	ws, err := h.uc.Workspace(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get workspace", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIWorkspace(*ws))
}

// UpdateWorkspaceSettings patches dispatch settings and reschedules the trigger.
func (h *Handler) UpdateWorkspaceSettings(c *fiber.Ctx) error {
	var body api.UpdateWorkspaceSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	ws, err := h.uc.UpdateWorkspaceSettings(c.Context(), c.Params("id"), mapper.FromAPISettings(body))
	if err != nil {
		h.log.Errorw("failed to update workspace settings", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIWorkspace(*ws))
}

// DeleteWorkspace removes a workspace and its schedule.
func (h *Handler) DeleteWorkspace(c *fiber.Ctx) error {
	if err := h.uc.DeleteWorkspace(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete workspace", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
