package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/chatlens/chatlens-backend/internal/channelio"
	"github.com/chatlens/chatlens-backend/internal/cleaner"
	"github.com/chatlens/chatlens-backend/internal/config"
)

// ChatPlatform is the slice of the remote platform API the aggregation
// engine consumes.
type ChatPlatform interface {
	FetchChatPage(ctx context.Context, state, sortOrder string, limit int, cursor string) (*channelio.ChatPage, error)
	FetchMessages(ctx context.Context, chatID string, limit int) (*channelio.MessagePage, error)
}

// Services holds all service instances
type Services struct {
	Report  *ReportService
	Channel *channelio.Client
}

// NewServices creates all service instances
func NewServices(cfg *config.Config, channel *channelio.Client, logger *logrus.Logger) *Services {
	textCleaner := cleaner.New(cfg.Report.BoilerplatePhrases)

	return &Services{
		Report:  NewReportService(channel, textCleaner, logger, cfg.Report),
		Channel: channel,
	}
}
