package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/api"
	transportslack "github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/transport/slack"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// SlackEvents receives the Slack Events API callback: the url_verification
// challenge on subscription setup, and message events afterwards. Message
// events are acknowledged immediately and handled asynchronously; Slack
// retries on slow responses, and the per-member lock in the usecase absorbs
// any resulting concurrency.
func (h *Handler) SlackEvents(c *fiber.Ctx) error {
	body := c.Body()

	if h.slack.SigningSecret != "" {
		if err := h.verifySignature(c, body); err != nil {
			h.log.Warnw("slack signature verification failed", "error", err.Error())
			return c.SendStatus(http.StatusUnauthorized)
		}
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Errorw("failed to parse slack event", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid event payload"))
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid challenge payload"))
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
		return c.Status(http.StatusOK).SendString(challenge.Challenge)

	case slackevents.CallbackEvent:
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.handleMessage(msg)
		}
		return c.SendStatus(http.StatusOK)

	default:
		return c.SendStatus(http.StatusOK)
	}
}

func (h *Handler) handleMessage(msg *slackevents.MessageEvent) {
	// Only direct human messages carry answers; bot echoes and channel
	// chatter are dropped here instead of polluting the state machine.
	if msg.BotID != "" || msg.SubType != "" || msg.ChannelType != "im" || msg.User == "" {
		return
	}

	user, text := msg.User, msg.Text
	go func() {
		if err := h.uc.HandleAnswer(context.Background(), user, text); err != nil {
			h.log.Errorw("failed to handle answer", "error", err.Error(), "slack_user_id", user)
		}
	}()
}

func (h *Handler) verifySignature(c *fiber.Ctx, body []byte) error {
	header := http.Header{}
	header.Set("X-Slack-Signature", c.Get("X-Slack-Signature"))
	header.Set("X-Slack-Request-Timestamp", c.Get("X-Slack-Request-Timestamp"))

	verifier, err := slack.NewSecretsVerifier(header, h.slack.SigningSecret)
	if err != nil {
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}

// SlackOAuthCallback finishes the app install flow: it exchanges the
// authorization code, records the workspace and installs its trigger.
func (h *Handler) SlackOAuthCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "code is required"))
	}

	inst, err := transportslack.ExchangeOAuthCode(c.Context(), h.slack.ClientID, h.slack.ClientSecret, code)
	if err != nil {
		h.log.Errorw("slack oauth exchange failed", "error", err.Error())
		return c.Status(http.StatusBadGateway).JSON(errorResponse(api.INTERNAL, "oauth exchange failed"))
	}

	ws, err := h.uc.CreateWorkspace(c.Context(), inst.SlackTeamID, "", inst.BotToken, inst.BotUserID)
	if err != nil {
		h.log.Errorw("failed to install workspace", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Status      string `json:"status"`
		WorkspaceID string `json:"workspace_id"`
	}{Status: "installed", WorkspaceID: ws.ID}
	return c.Status(http.StatusOK).JSON(resp)
}
