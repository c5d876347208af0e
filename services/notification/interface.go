package notification

import (
	"context"

	"consultly/utils"

	"go.uber.org/zap"
)

// NotificationService delivers reminder messages to either side of a
// booking. Delivery transport lives outside this core; the default
// implementation only records the intent.
type NotificationService interface {
	NotifySeeker(ctx context.Context, seekerID, title, body string) error
	NotifyProvider(ctx context.Context, providerID, title, body string) error
}

// LogNotificationService logs outgoing notifications instead of delivering
// them. Stands in for the external delivery subsystem.
type LogNotificationService struct{}

func (s *LogNotificationService) NotifySeeker(ctx context.Context, seekerID, title, body string) error {
	utils.GetLogger().Info("notify seeker",
		zap.String("seekerId", seekerID),
		zap.String("title", title),
		zap.String("body", body))
	return nil
}

func (s *LogNotificationService) NotifyProvider(ctx context.Context, providerID, title, body string) error {
	utils.GetLogger().Info("notify provider",
		zap.String("providerId", providerID),
		zap.String("title", title),
		zap.String("body", body))
	return nil
}
