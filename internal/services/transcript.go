package services

import (
	"context"
	"time"

	"github.com/chatlens/chatlens-backend/internal/channelio"
	"github.com/chatlens/chatlens-backend/internal/models"
)

// Report timestamps are rendered in the support desk's timezone.
var reportLocation = time.FixedZone("UTC+9", 9*60*60)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"

	managerLinePrefix = ">> "
)

// assemble fetches a matched chat's message history and builds its record:
// an ordered transcript, a compact dialogue rendering, and the participants
// who authored a retained message. Returns false when no message survives
// cleaning; such chats are excluded from the report.
//
// Messages are processed in delivery order and dropped when they are
// bot-authored, their author is not in the directory, they carry no plain
// text, or their text cleans to empty. When a date filter is set, the first
// message outside that calendar day ends the chat's processing entirely: the
// history is assumed date-monotonic, so a mismatch means the target day has
// been passed. A skip-and-continue variant would behave differently on
// interleaved dates; the break is kept deliberately.
func (r *aggregationRun) assemble(ctx context.Context, mc matchedChat, dateFilter string) (models.ChatRecord, bool) {
	page, err := r.svc.platform.FetchMessages(ctx, mc.chatID, r.svc.messageLimit)
	if err != nil {
		r.svc.logger.WithError(err).WithField("chat_id", mc.chatID).Warn("message fetch failed, dropping chat")
		return models.ChatRecord{}, false
	}

	var (
		transcript []models.TranscriptMessage
		dialogue   []string
		authors    []models.Participant
	)
	authorSeen := make(map[string]struct{})
	prevRole := ""

	for _, msg := range page.Messages {
		at := time.UnixMilli(msg.CreatedAt).In(reportLocation)
		if dateFilter != "" && at.Format(dateLayout) != dateFilter {
			break
		}
		if msg.PersonType == channelio.PersonTypeBot {
			continue
		}
		author, ok := r.directory[msg.PersonID]
		if !ok {
			// No display name to render; drop silently.
			continue
		}
		raw, ok := msg.PlainText()
		if !ok {
			continue
		}
		text := r.svc.cleaner.Clean(raw)
		if text == "" {
			continue
		}

		transcript = append(transcript, models.TranscriptMessage{
			Timestamp:  at.Format(timestampLayout),
			AuthorID:   author.ID,
			AuthorName: author.Name,
			Text:       text,
		})
		dialogue = appendDialogueLine(dialogue, prevRole, author.Role, text)
		prevRole = author.Role

		if _, dup := authorSeen[author.ID]; !dup {
			authorSeen[author.ID] = struct{}{}
			authors = append(authors, author)
		}
	}

	if len(transcript) == 0 {
		return models.ChatRecord{}, false
	}

	return models.ChatRecord{
		ChatID:         mc.chatID,
		State:          mc.state,
		Tags:           mc.tags,
		ManagerID:      mc.managerID,
		FirstMessageAt: transcript[0].Timestamp,
		LastMessageAt:  transcript[len(transcript)-1].Timestamp,
		Messages:       transcript,
		Dialogue:       dialogue,
		Participants:   authors,
	}, true
}

// appendDialogueLine renders one message into the compact dialogue form.
// Manager lines are prefixed with ">> ", and a blank line separates every
// speaker-role transition.
func appendDialogueLine(dialogue []string, prevRole, role, text string) []string {
	switch {
	case role == models.RoleManager && prevRole != models.RoleManager && len(dialogue) > 0:
		dialogue = append(dialogue, "")
	case role != models.RoleManager && prevRole == models.RoleManager:
		dialogue = append(dialogue, "")
	}
	if role == models.RoleManager {
		return append(dialogue, managerLinePrefix+text)
	}
	return append(dialogue, text)
}
