// Package domain contains application Usecases orchestrating domain logic by conversation.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"
)

const skipKeyword = "skip"

// HandleAnswer advances one member's conversation with an inbound reply.
// Transitions for the same member are serialized by a per-member lock;
// answers from members without an active conversation are discarded as
// logged no-ops, never surfaced as errors.
func (u *Usecase) HandleAnswer(ctx context.Context, slackUserID, text string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slackUserID == "" {
		return fmt.Errorf("%w: slack_user_id is required", entities.ErrInvalidArgument)
	}

	unlock := u.locks.lock(slackUserID)
	defer unlock()

	member, err := u.repo.GetMemberBySlackUserID(ctx, slackUserID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			u.log.Debugw("answer from unknown user discarded", "slack_user_id", slackUserID)
			return nil
		}
		return err
	}

	conv, err := u.repo.GetConversation(ctx, member.ID)
	if err != nil {
		return err
	}
	if conv == nil {
		u.log.Infow("stray answer discarded", "member_id", member.ID)
		return nil
	}

	answer := strings.TrimSpace(text)
	if strings.EqualFold(answer, skipKeyword) {
		return u.skipConversation(ctx, member, conv)
	}

	if conv.QuestionIndex < 0 || conv.QuestionIndex >= len(entities.Questions) {
		u.log.Errorw("conversation index outside question catalog",
			"member_id", member.ID, "question_index", conv.QuestionIndex)
		return fmt.Errorf("%w: index %d", entities.ErrOutOfSequence, conv.QuestionIndex)
	}

	question := entities.Questions[conv.QuestionIndex]
	if err := u.repo.SaveReportAnswer(ctx, member.ID, conv.PendingDate, question.Field, answer); err != nil {
		return err
	}

	if conv.QuestionIndex == len(entities.Questions)-1 {
		return u.finishConversation(ctx, member, conv)
	}

	next := conv.QuestionIndex + 1
	if err := u.repo.UpsertConversation(ctx, member.ID, conv.PendingDate, next); err != nil {
		return err
	}

	return u.notifier.Send(ctx, member.SlackUserID, entities.Questions[next].Prompt)
}

// finishConversation enters the terminal state: completion timestamp set,
// state row removed, closing acknowledgment sent.
func (u *Usecase) finishConversation(ctx context.Context, member *entities.Member, conv *entities.Conversation) error {
	if err := u.repo.CompleteReport(ctx, member.ID, conv.PendingDate, u.now().UTC()); err != nil {
		return err
	}
	if err := u.repo.DeleteConversation(ctx, member.ID); err != nil {
		return err
	}

	u.log.Infow("standup completed", "member_id", member.ID, "date", conv.PendingDate.Format("2006-01-02"))
	return u.notifier.Send(ctx, member.SlackUserID, entities.ClosingMessage)
}

// skipConversation marks the pending day skipped and abandons the state row.
func (u *Usecase) skipConversation(ctx context.Context, member *entities.Member, conv *entities.Conversation) error {
	if err := u.repo.MarkReportSkipped(ctx, member.ID, conv.PendingDate); err != nil {
		return err
	}
	if err := u.repo.DeleteConversation(ctx, member.ID); err != nil {
		return err
	}

	u.log.Infow("standup skipped", "member_id", member.ID, "date", conv.PendingDate.Format("2006-01-02"))
	return u.notifier.Send(ctx, member.SlackUserID, entities.SkippedMessage)
}
