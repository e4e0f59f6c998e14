package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens-backend/internal/channelio"
	"github.com/chatlens/chatlens-backend/internal/cleaner"
	"github.com/chatlens/chatlens-backend/internal/config"
)

// fakePlatform serves queued chat pages per state and canned message pages
// per chat id.
type fakePlatform struct {
	pages     map[string][]*channelio.ChatPage
	pageErr   error
	pageCalls int
	messages  map[string]*channelio.MessagePage
	msgErr    error
	msgCalls  int
}

func (f *fakePlatform) FetchChatPage(_ context.Context, state, _ string, _ int, _ string) (*channelio.ChatPage, error) {
	f.pageCalls++
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	queue := f.pages[state]
	if len(queue) == 0 {
		return &channelio.ChatPage{}, nil
	}
	page := queue[0]
	f.pages[state] = queue[1:]
	return page, nil
}

func (f *fakePlatform) FetchMessages(_ context.Context, chatID string, _ int) (*channelio.MessagePage, error) {
	f.msgCalls++
	if f.msgErr != nil {
		return nil, f.msgErr
	}
	if page, ok := f.messages[chatID]; ok {
		return page, nil
	}
	return &channelio.MessagePage{}, nil
}

func newTestService(platform ChatPlatform) *ReportService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	textCleaner := cleaner.New([]string{"Back to menu"})
	return NewReportService(platform, textCleaner, logger, config.ReportConfig{
		PageSize:     25,
		MessageLimit: 100,
	})
}

func makeChats(prefix string, n int, managerIDs ...string) []channelio.UserChat {
	chats := make([]channelio.UserChat, n)
	for i := range chats {
		chats[i] = channelio.UserChat{
			ID:         prefix + string(rune('a'+i%26)) + string(rune('0'+i/26)),
			State:      channelio.StateOpened,
			UserID:     "user-" + prefix,
			Name:       "User " + prefix,
			ManagerIDs: managerIDs,
			CreatedAt:  1700000000000,
		}
	}
	return chats
}

func TestPaginate_FollowsCursorUntilTargetMet(t *testing.T) {
	platform := &fakePlatform{
		pages: map[string][]*channelio.ChatPage{
			channelio.StateOpened: {
				{UserChats: makeChats("p1", 25), Next: "cursor-2"},
				{UserChats: makeChats("p2", 10)},
			},
		},
	}
	svc := newTestService(platform)

	chats := svc.newRun().paginate(context.Background(), channelio.StateOpened, SortDesc, 30)

	assert.Equal(t, 2, platform.pageCalls)
	assert.Len(t, chats, 35)
}

func TestPaginate_StopsWhenTargetExhausted(t *testing.T) {
	platform := &fakePlatform{
		pages: map[string][]*channelio.ChatPage{
			channelio.StateOpened: {
				{UserChats: makeChats("p1", 25), Next: "cursor-2"},
				{UserChats: makeChats("p2", 25), Next: "cursor-3"},
			},
		},
	}
	svc := newTestService(platform)

	chats := svc.newRun().paginate(context.Background(), channelio.StateOpened, SortDesc, 25)

	// Target met by the first page even though a cursor was offered.
	assert.Equal(t, 1, platform.pageCalls)
	assert.Len(t, chats, 25)
}

func TestPaginate_StopsWhenCursorAbsent(t *testing.T) {
	platform := &fakePlatform{
		pages: map[string][]*channelio.ChatPage{
			channelio.StateOpened: {
				{UserChats: makeChats("p1", 25)},
			},
		},
	}
	svc := newTestService(platform)

	chats := svc.newRun().paginate(context.Background(), channelio.StateOpened, SortDesc, 100)

	assert.Equal(t, 1, platform.pageCalls)
	assert.Len(t, chats, 25)
}

func TestPaginate_FetchFailureKeepsAccumulated(t *testing.T) {
	platform := &fakePlatform{
		pageErr: errors.New("upstream 503"),
	}
	svc := newTestService(platform)

	chats := svc.newRun().paginate(context.Background(), channelio.StateOpened, SortDesc, 50)

	// Failure ends the loop without an error; nothing was accumulated.
	assert.Empty(t, chats)
	assert.Equal(t, 1, platform.pageCalls)
}

func TestMergeParticipants_FirstSeenWins(t *testing.T) {
	svc := newTestService(&fakePlatform{})
	run := svc.newRun()

	run.mergeParticipants(&channelio.ChatPage{
		UserChats: []channelio.UserChat{
			{ID: "c1", UserID: "u1", Name: "Alice", ManagerIDs: []string{"m1"}},
		},
		Managers: []channelio.Manager{{ID: "m1", Name: "Original"}},
	})
	run.mergeParticipants(&channelio.ChatPage{
		UserChats: []channelio.UserChat{
			{ID: "c2", UserID: "u1", Name: "Alice Renamed", ManagerIDs: []string{"m1"}},
		},
		Managers: []channelio.Manager{{ID: "m1", Name: "Renamed"}},
	})

	require.Len(t, run.directory, 2)
	assert.Equal(t, "Alice", run.directory["u1"].Name)
	assert.Equal(t, "Original", run.directory["m1"].Name)
}

func TestMergeParticipants_UnresolvedManagerSkipped(t *testing.T) {
	svc := newTestService(&fakePlatform{})
	run := svc.newRun()

	run.mergeParticipants(&channelio.ChatPage{
		UserChats: []channelio.UserChat{
			{ID: "c1", UserID: "u1", Name: "Alice", ManagerIDs: []string{"ghost"}},
		},
	})

	require.Len(t, run.directory, 1)
	_, ok := run.directory["ghost"]
	assert.False(t, ok)
}
