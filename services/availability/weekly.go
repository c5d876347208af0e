// File: services/availability/weekly.go
package availability

import (
	"context"
	"time"

	"consultly/models"
	"consultly/utils"
)

// WeeklyProjection derives the read-only 7-day view of a provider's slots.
// The week runs Monday through Sunday; when weekStart is empty it defaults to
// the Monday of the current week. Every one of the seven dates gets a bucket,
// empty or not.
func (s *DefaultAvailabilityService) WeeklyProjection(ctx context.Context, providerID, weekStart string) (*models.WeeklySchedule, error) {
	var monday time.Time
	if weekStart == "" {
		monday = utils.StartOfWeek(time.Now())
	} else {
		day, err := utils.ParseDate(weekStart)
		if err != nil {
			return nil, &utils.ValidationError{Field: "weekStart", Message: err.Error()}
		}
		monday = utils.StartOfWeek(day)
	}
	sunday := monday.AddDate(0, 0, 6)

	startDate := monday.Format(utils.DateLayout)
	endDate := sunday.Format(utils.DateLayout)

	slots, err := s.Repo.ListByProviderAndRange(ctx, providerID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	schedule := make(map[string][]models.AvailabilitySlot, 7)
	for offset := 0; offset < 7; offset++ {
		date := monday.AddDate(0, 0, offset).Format(utils.DateLayout)
		schedule[date] = []models.AvailabilitySlot{}
	}
	for _, slot := range slots {
		schedule[slot.Date] = append(schedule[slot.Date], slot)
	}

	return &models.WeeklySchedule{
		ProviderID: providerID,
		WeekStart:  startDate,
		WeekEnd:    endDate,
		Schedule:   schedule,
	}, nil
}
