package domain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleAnswerFullTraversal(t *testing.T) {
	repo := &repoMock{}
	notifier := &notifierMock{}
	uc := newTestUsecase(repo, notifier, &schedulesMock{})

	member := &entities.Member{ID: "m1", SlackUserID: "U1", IsActive: true}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	answers := []string{"great", "shipped the exporter", "reviews and planning", "none"}

	repo.On("GetMemberBySlackUserID", mock.Anything, "U1").Return(member, nil)
	for i := range entities.Questions {
		repo.On("GetConversation", mock.Anything, "m1").
			Return(&entities.Conversation{MemberID: "m1", PendingDate: date, QuestionIndex: i}, nil).Once()
		repo.On("SaveReportAnswer", mock.Anything, "m1", date, entities.Questions[i].Field, answers[i]).
			Return(nil).Once()
	}
	for i := 1; i < len(entities.Questions); i++ {
		repo.On("UpsertConversation", mock.Anything, "m1", date, i).Return(nil).Once()
		notifier.On("Send", mock.Anything, "U1", entities.Questions[i].Prompt).Return(nil).Once()
	}
	repo.On("CompleteReport", mock.Anything, "m1", date, mock.Anything).Return(nil).Once()
	repo.On("DeleteConversation", mock.Anything, "m1").Return(nil).Once()
	notifier.On("Send", mock.Anything, "U1", entities.ClosingMessage).Return(nil).Once()

	for _, answer := range answers {
		require.NoError(t, uc.HandleAnswer(context.Background(), "U1", answer))
	}

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestHandleAnswerStrayAnswerIsNoop(t *testing.T) {
	repo := &repoMock{}
	notifier := &notifierMock{}
	uc := newTestUsecase(repo, notifier, &schedulesMock{})

	member := &entities.Member{ID: "m1", SlackUserID: "U1", IsActive: true}
	repo.On("GetMemberBySlackUserID", mock.Anything, "U1").Return(member, nil)
	repo.On("GetConversation", mock.Anything, "m1").Return(nil, nil)

	require.NoError(t, uc.HandleAnswer(context.Background(), "U1", "too late"))

	repo.AssertNotCalled(t, "SaveReportAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CompleteReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleAnswerSkipAbandonsConversation(t *testing.T) {
	repo := &repoMock{}
	notifier := &notifierMock{}
	uc := newTestUsecase(repo, notifier, &schedulesMock{})

	member := &entities.Member{ID: "m1", SlackUserID: "U1", IsActive: true}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	repo.On("GetMemberBySlackUserID", mock.Anything, "U1").Return(member, nil)
	repo.On("GetConversation", mock.Anything, "m1").
		Return(&entities.Conversation{MemberID: "m1", PendingDate: date, QuestionIndex: 1}, nil)
	repo.On("MarkReportSkipped", mock.Anything, "m1", date).Return(nil)
	repo.On("DeleteConversation", mock.Anything, "m1").Return(nil)
	notifier.On("Send", mock.Anything, "U1", entities.SkippedMessage).Return(nil)

	require.NoError(t, uc.HandleAnswer(context.Background(), "U1", "  SKIP "))

	repo.AssertNotCalled(t, "SaveReportAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestHandleAnswerTrimsWhitespace(t *testing.T) {
	repo := &repoMock{}
	notifier := &notifierMock{}
	uc := newTestUsecase(repo, notifier, &schedulesMock{})

	member := &entities.Member{ID: "m1", SlackUserID: "U1", IsActive: true}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	repo.On("GetMemberBySlackUserID", mock.Anything, "U1").Return(member, nil)
	repo.On("GetConversation", mock.Anything, "m1").
		Return(&entities.Conversation{MemberID: "m1", PendingDate: date, QuestionIndex: 0}, nil)
	repo.On("SaveReportAnswer", mock.Anything, "m1", date, entities.FieldFeeling, "pretty good").Return(nil)
	repo.On("UpsertConversation", mock.Anything, "m1", date, 1).Return(nil)
	notifier.On("Send", mock.Anything, "U1", entities.Questions[1].Prompt).Return(nil)

	require.NoError(t, uc.HandleAnswer(context.Background(), "U1", "  pretty good \n"))
	repo.AssertExpectations(t)
}

func TestHandleAnswerSerializesPerMember(t *testing.T) {
	repo := &repoMock{}
	notifier := &notifierMock{}
	uc := newTestUsecase(repo, notifier, &schedulesMock{})

	member := &entities.Member{ID: "m1", SlackUserID: "U1", IsActive: true}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	repo.On("GetMemberBySlackUserID", mock.Anything, "U1").Return(member, nil)
	// Sequential Once expectations only hold when the two concurrent calls
	// are serialized by the per-member lock; interleaving would consume the
	// index-0 conversation twice and misfile the second answer.
	repo.On("GetConversation", mock.Anything, "m1").
		Return(&entities.Conversation{MemberID: "m1", PendingDate: date, QuestionIndex: 0}, nil).Once()
	repo.On("GetConversation", mock.Anything, "m1").
		Return(&entities.Conversation{MemberID: "m1", PendingDate: date, QuestionIndex: 1}, nil).Once()
	repo.On("SaveReportAnswer", mock.Anything, "m1", date, entities.FieldFeeling, "first").Return(nil).Once()
	repo.On("SaveReportAnswer", mock.Anything, "m1", date, entities.FieldYesterday, "second").Return(nil).Once()
	repo.On("UpsertConversation", mock.Anything, "m1", date, 1).Return(nil).Once()
	repo.On("UpsertConversation", mock.Anything, "m1", date, 2).Return(nil).Once()
	notifier.On("Send", mock.Anything, "U1", mock.Anything).Return(nil).
		After(5 * time.Millisecond)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = uc.HandleAnswer(context.Background(), "U1", "first")
	}()
	// The second answer races the first; the lock must order it behind.
	time.Sleep(time.Millisecond)
	require.NoError(t, uc.HandleAnswer(context.Background(), "U1", "second"))
	wg.Wait()
	require.NoError(t, firstErr)

	repo.AssertExpectations(t)
}
