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
	selectReportQuery = `
SELECT id, member_id, report_date, feeling, yesterday, today, blockers, skipped, completed_at, created_at, updated_at
FROM reports WHERE member_id = $1 AND report_date = $2`
	// The answer column is interpolated from the whitelist below, never from input.
	upsertAnswerQueryFmt = `
INSERT INTO reports(member_id, report_date, %[1]s)
VALUES ($1, $2, $3)
ON CONFLICT (member_id, report_date) DO UPDATE SET %[1]s = EXCLUDED.%[1]s, updated_at = NOW()`
	markSkippedQuery = `
INSERT INTO reports(member_id, report_date, skipped)
VALUES ($1, $2, true)
ON CONFLICT (member_id, report_date) DO UPDATE SET skipped = true, updated_at = NOW()`
	completeReportQuery = `
UPDATE reports SET completed_at = $3, updated_at = NOW()
WHERE member_id = $1 AND report_date = $2`
)

// GetReport fetches the report for (member, date).
func (p *Postgres) GetReport(ctx context.Context, memberID string, date time.Time) (*entities.Report, error) {
	var r entities.Report
	err := p.db.QueryRow(ctx, selectReportQuery, memberID, entities.DateOnly(date)).
		Scan(&r.ID, &r.MemberID, &r.ReportDate, &r.Feeling, &r.Yesterday, &r.Today,
			&r.Blockers, &r.Skipped, &r.CompletedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &r, nil
}

// SaveReportAnswer writes one answer into its report field, creating the
// report row if absent. The unique (member_id, report_date) index keeps this
// an update on repeat writes, never a second row.
func (p *Postgres) SaveReportAnswer(ctx context.Context, memberID string, date time.Time, field entities.ReportField, answer string) error {
	column, err := answerColumn(field)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(upsertAnswerQueryFmt, column)
	if _, err := p.db.Exec(ctx, query, memberID, entities.DateOnly(date), answer); err != nil {
		return fmt.Errorf("save report answer: %w", err)
	}

	p.log.Debugw("report answer saved", "member_id", memberID, "field", field)
	return nil
}

// MarkReportSkipped flags the report for (member, date) as skipped, creating it if absent.
func (p *Postgres) MarkReportSkipped(ctx context.Context, memberID string, date time.Time) error {
	if _, err := p.db.Exec(ctx, markSkippedQuery, memberID, entities.DateOnly(date)); err != nil {
		return fmt.Errorf("mark report skipped: %w", err)
	}

	p.log.Infow("report skipped", "member_id", memberID)
	return nil
}

// CompleteReport sets the completion timestamp for (member, date).
func (p *Postgres) CompleteReport(ctx context.Context, memberID string, date time.Time, completedAt time.Time) error {
	tag, err := p.db.Exec(ctx, completeReportQuery, memberID, entities.DateOnly(date), completedAt)
	if err != nil {
		return fmt.Errorf("complete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: member %s on %s", entities.ErrReportNotFound,
			memberID, entities.DateOnly(date).Format("2006-01-02"))
	}

	p.log.Infow("report completed", "member_id", memberID)
	return nil
}

func answerColumn(field entities.ReportField) (string, error) {
	switch field {
	case entities.FieldFeeling, entities.FieldYesterday, entities.FieldToday, entities.FieldBlockers:
		return string(field), nil
	default:
		return "", fmt.Errorf("%w: unknown report field %q", entities.ErrInvalidArgument, field)
	}
}
