package handlers_fiber

import (
	"net/http"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/api"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateMember enrolls a member into a workspace.
func (h *Handler) CreateMember(c *fiber.Ctx) error {
	var body api.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	m, err := h.uc.CreateMember(c.Context(), body.WorkspaceID, body.SlackUserID, body.DisplayName, body.Email)
	if err != nil {
		h.log.Errorw("failed to create member", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIMember(*m))
}

// ListMembers returns the active members of a workspace.
func (h *Handler) ListMembers(c *fiber.Ctx) error {
	members, err := h.uc.Members(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to list members", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMemberList(members))
}

// GetMember returns a member by id.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	m, err := h.uc.Member(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get member", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*m))
}

// UpdateMember patches member fields; deactivation abandons any open conversation.
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	var body api.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	m, err := h.uc.UpdateMember(c.Context(), c.Params("id"), mapper.FromAPIMemberUpdate(body))
	if err != nil {
		h.log.Errorw("failed to update member", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*m))
}

// DeleteMember removes a member.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	if err := h.uc.DeleteMember(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete member", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
