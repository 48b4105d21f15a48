package usecase

import (
	"context"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/repository"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	WorkspaceUsecaseInterface
	MemberUsecaseInterface
	StandupUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier domain.Notifier,
	schedules domain.Schedules,
	defaults domain.Defaults,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, notifier, schedules, defaults, timeout)
}
