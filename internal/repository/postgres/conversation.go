package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectConversationQuery = `
SELECT id, member_id, pending_date, question_index, created_at, updated_at
FROM conversations WHERE member_id = $1`
	upsertConversationQuery = `
INSERT INTO conversations(member_id, pending_date, question_index)
VALUES ($1, $2, $3)
ON CONFLICT (member_id) DO UPDATE
SET pending_date = EXCLUDED.pending_date, question_index = EXCLUDED.question_index, updated_at = NOW()`
	deleteConversationQuery = `DELETE FROM conversations WHERE member_id = $1`
)

// GetConversation fetches the active conversation for a member, nil when none exists.
func (p *Postgres) GetConversation(ctx context.Context, memberID string) (*entities.Conversation, error) {
	var c entities.Conversation
	err := p.db.QueryRow(ctx, selectConversationQuery, memberID).
		Scan(&c.ID, &c.MemberID, &c.PendingDate, &c.QuestionIndex, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// UpsertConversation creates or resets a member's conversation row. The unique
// member_id index keeps at most one active conversation per member.
func (p *Postgres) UpsertConversation(ctx context.Context, memberID string, pendingDate time.Time, questionIndex int) error {
	if _, err := p.db.Exec(ctx, upsertConversationQuery, memberID, entities.DateOnly(pendingDate), questionIndex); err != nil {
		return fmt.Errorf("upsert conversation: %w", err)
	}

	p.log.Debugw("conversation upserted", "member_id", memberID, "question_index", questionIndex)
	return nil
}

// DeleteConversation removes a member's conversation row. Deleting an absent
// row is not an error: the terminal state is simply "no row".
func (p *Postgres) DeleteConversation(ctx context.Context, memberID string) error {
	if _, err := p.db.Exec(ctx, deleteConversationQuery, memberID); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}

	p.log.Debugw("conversation deleted", "member_id", memberID)
	return nil
}
