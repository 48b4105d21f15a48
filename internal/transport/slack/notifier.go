// Package slack implements the outbound message transport over the Slack Web API.
package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Notifier sends plain-text direct messages to Slack users.
type Notifier struct {
	log    *zap.SugaredLogger
	client *slack.Client
}

// NewNotifier constructs a Notifier with a bot token.
func NewNotifier(log *zap.SugaredLogger, botToken string) *Notifier {
	return &Notifier{
		log:    log.Named("slack"),
		client: slack.New(botToken),
	}
}

// Send opens a DM conversation with the user and posts text into it.
func (n *Notifier) Send(ctx context.Context, slackUserID, text string) error {
	channel, _, _, err := n.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{slackUserID},
	})
	if err != nil {
		n.log.Errorw("failed to open dm", "error", err, "slack_user_id", slackUserID)
		return fmt.Errorf("%w: open dm for %s: %v", entities.ErrDeliveryFailed, slackUserID, err)
	}

	if _, _, err := n.client.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(text, false)); err != nil {
		n.log.Errorw("failed to post message", "error", err, "slack_user_id", slackUserID)
		return fmt.Errorf("%w: post to %s: %v", entities.ErrDeliveryFailed, slackUserID, err)
	}

	return nil
}

// Installation is the subset of the OAuth response the service stores.
type Installation struct {
	SlackTeamID string
	BotToken    string
	BotUserID   string
}

// ExchangeOAuthCode trades an OAuth v2 authorization code for workspace credentials.
func ExchangeOAuthCode(ctx context.Context, clientID, clientSecret, code string) (*Installation, error) {
	resp, err := slack.GetOAuthV2ResponseContext(ctx, http.DefaultClient, clientID, clientSecret, code, "")
	if err != nil {
		return nil, fmt.Errorf("oauth exchange: %w", err)
	}

	return &Installation{
		SlackTeamID: resp.Team.ID,
		BotToken:    resp.AccessToken,
		BotUserID:   resp.BotUserID,
	}, nil
}
