package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/chatlens/chatlens-backend/internal/channelio"
	"github.com/chatlens/chatlens-backend/internal/models"
)

// aggregationRun holds the accumulators for one report request. A fresh run
// is created per call so concurrent requests never share state.
type aggregationRun struct {
	svc       *ReportService
	directory map[string]models.Participant
}

func (s *ReportService) newRun() *aggregationRun {
	return &aggregationRun{
		svc:       s,
		directory: make(map[string]models.Participant),
	}
}

// paginate fetches chat-summary pages for one lifecycle state until at least
// minCount items have been requested or the platform signals no further page.
// A fetch failure or non-success status ends the loop silently; the caller
// gets whatever accumulated so far. Participants seen along the way are
// merged into the run's directory.
func (r *aggregationRun) paginate(ctx context.Context, state, sortOrder string, minCount int) []channelio.UserChat {
	var chats []channelio.UserChat
	remaining := minCount
	cursor := ""

	for {
		page, err := r.svc.platform.FetchChatPage(ctx, state, sortOrder, r.svc.pageSize, cursor)
		if err != nil {
			r.svc.logger.WithError(err).WithFields(logrus.Fields{
				"state":       state,
				"accumulated": len(chats),
			}).Warn("chat page fetch failed, stopping pagination")
			return chats
		}

		r.mergeParticipants(page)
		chats = append(chats, page.UserChats...)

		// Countdown is by nominal page size, not by delivered batch size.
		remaining -= r.svc.pageSize
		if remaining <= 0 || page.Next == "" {
			return chats
		}
		cursor = page.Next
	}
}

// mergeParticipants derives a user participant from each chat summary and a
// manager participant from each assignment id that resolves against the
// page's roster. First-seen wins: an id already in the directory is never
// overwritten.
func (r *aggregationRun) mergeParticipants(page *channelio.ChatPage) {
	roster := make(map[string]channelio.Manager, len(page.Managers))
	for _, m := range page.Managers {
		roster[m.ID] = m
	}

	for _, chat := range page.UserChats {
		r.addParticipant(models.Participant{
			ID:   chat.UserID,
			Name: chat.Name,
			Role: models.RoleUser,
		})
		for _, managerID := range chat.ManagerIDs {
			m, ok := roster[managerID]
			if !ok {
				continue
			}
			r.addParticipant(models.Participant{
				ID:   m.ID,
				Name: m.Name,
				Role: models.RoleManager,
			})
		}
	}
}

func (r *aggregationRun) addParticipant(p models.Participant) {
	if p.ID == "" {
		return
	}
	if _, exists := r.directory[p.ID]; exists {
		return
	}
	r.directory[p.ID] = p
}
