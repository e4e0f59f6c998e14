package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chatlens/chatlens-backend/internal/cleaner"
	"github.com/chatlens/chatlens-backend/internal/config"
	"github.com/chatlens/chatlens-backend/internal/models"
)

// Lifecycle state and sort order tokens accepted by the report engine.
const (
	StateOpened  = "opened"
	StateClosed  = "closed"
	StateSnoozed = "snoozed"
	StateAll     = "all"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// lifecycleStates is the fixed scan order used when state is "all".
var lifecycleStates = []string{StateOpened, StateClosed, StateSnoozed}

// ReportService builds per-manager conversation reports by aggregating the
// remote platform's chat listing and message histories. It never returns an
// error to its caller: collaborator failures degrade to a partial or empty
// report.
type ReportService struct {
	platform     ChatPlatform
	cleaner      *cleaner.Cleaner
	logger       *logrus.Logger
	pageSize     int
	messageLimit int
}

// NewReportService creates a new report service
func NewReportService(platform ChatPlatform, textCleaner *cleaner.Cleaner, logger *logrus.Logger, cfg config.ReportConfig) *ReportService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}
	messageLimit := cfg.MessageLimit
	if messageLimit <= 0 {
		messageLimit = 100
	}
	return &ReportService{
		platform:     platform,
		cleaner:      textCleaner,
		logger:       logger,
		pageSize:     pageSize,
		messageLimit: messageLimit,
	}
}

// NormalizeState maps an unrecognized lifecycle state token to "all".
func NormalizeState(state string) string {
	switch state {
	case StateOpened, StateClosed, StateSnoozed, StateAll:
		return state
	}
	return StateAll
}

// NormalizeSortOrder maps an unrecognized sort order token to "desc".
func NormalizeSortOrder(sortOrder string) string {
	switch sortOrder {
	case SortAsc, SortDesc:
		return sortOrder
	}
	return SortDesc
}

// matchedChat is the internal key for a chat that passed the manager filter.
// Unique by chat id within one report.
type matchedChat struct {
	chatID    string
	tags      []string
	state     string
	createdAt int64
	managerID string
}

// GetChatsByManagerID aggregates every chat the manager participated in into
// a report. state may be a concrete lifecycle state or "all"; minCount is the
// minimum number of chat summaries to page in per state; date, when non-empty
// ("2006-01-02"), restricts transcripts to that calendar day.
//
// All accumulators are constructed fresh per call, so concurrent invocations
// are independent.
func (s *ReportService) GetChatsByManagerID(ctx context.Context, managerID, state string, minCount int, sortOrder, date string) *models.Report {
	state = NormalizeState(state)
	sortOrder = NormalizeSortOrder(sortOrder)
	if minCount < 0 {
		minCount = 0
	}

	run := s.newRun()

	matched := s.filterByManager(ctx, run, managerID, state, sortOrder, minCount)

	records := make([]models.ChatRecord, 0, len(matched))
	for _, mc := range matched {
		record, ok := run.assemble(ctx, mc, date)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return buildReport(managerID, date, records)
}

// filterByManager pages in chat summaries for the requested state (or all
// three lifecycle states in fixed order) and keeps the chats whose assignment
// list contains managerID, deduplicated by chat id.
func (s *ReportService) filterByManager(ctx context.Context, run *aggregationRun, managerID, state, sortOrder string, minCount int) []matchedChat {
	states := []string{state}
	if state == StateAll {
		states = lifecycleStates
	}

	var matched []matchedChat
	seen := make(map[string]struct{})

	for _, st := range states {
		for _, chat := range run.paginate(ctx, st, sortOrder, minCount) {
			// Never-assigned chats carry no manager list at all.
			if len(chat.ManagerIDs) == 0 {
				continue
			}
			if !containsID(chat.ManagerIDs, managerID) {
				continue
			}
			if _, dup := seen[chat.ID]; dup {
				continue
			}
			seen[chat.ID] = struct{}{}
			matched = append(matched, matchedChat{
				chatID:    chat.ID,
				tags:      chat.Tags,
				state:     chat.State,
				createdAt: chat.CreatedAt,
				managerID: managerID,
			})
		}
	}

	s.logger.WithFields(logrus.Fields{
		"manager_id": managerID,
		"state":      state,
		"matched":    len(matched),
	}).Debug("manager chat filter finished")

	return matched
}

// buildReport is pure aggregation: count, echoed filters, record list.
func buildReport(managerID, date string, records []models.ChatRecord) *models.Report {
	return &models.Report{
		ReportID:    uuid.NewString(),
		ManagerID:   managerID,
		Count:       len(records),
		Date:        date,
		GeneratedAt: time.Now().In(reportLocation).Format(time.RFC3339),
		Chats:       records,
	}
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
