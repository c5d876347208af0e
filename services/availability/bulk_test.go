package availability

import (
	"context"
	"testing"

	"consultly/models"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlotsBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("all dates succeed", func(t *testing.T) {
		svc, _ := newTestService()
		result, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			Dates:     []string{futureDate(1), futureDate(2), futureDate(3)},
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		require.NoError(t, err)
		assert.Len(t, result.Created, 3)
		assert.Empty(t, result.Errors)
	})

	t.Run("past date fails alone, batch continues", func(t *testing.T) {
		svc, _ := newTestService()
		past := "2000-01-05"
		result, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			Dates:     []string{futureDate(1), past, futureDate(2)},
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		require.NoError(t, err)
		assert.Len(t, result.Created, 2)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "past date: "+past, result.Errors[0])
		assert.Equal(t, futureDate(1), result.Created[0].Date)
		assert.Equal(t, futureDate(2), result.Created[1].Date)
	})

	t.Run("conflicting date fails alone", func(t *testing.T) {
		svc, _ := newTestService()
		taken := futureDate(2)
		_, err := svc.CreateSlot(ctx, "prov-1", models.CreateSlotRequest{
			Date: taken, StartTime: "09:30", EndTime: "10:30",
		})
		require.NoError(t, err)

		result, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			Dates:     []string{futureDate(1), taken, futureDate(3)},
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		require.NoError(t, err)
		assert.Len(t, result.Created, 2)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], taken)
	})

	t.Run("errors mirror input order of failing dates", func(t *testing.T) {
		svc, _ := newTestService()
		result, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			Dates:     []string{"2000-01-02", futureDate(1), "2000-01-01"},
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		require.NoError(t, err)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "past date: 2000-01-02", result.Errors[0])
		assert.Equal(t, "past date: 2000-01-01", result.Errors[1])
	})

	t.Run("malformed times fail the whole batch", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			Dates:     []string{futureDate(1)},
			StartTime: "banana",
			EndTime:   "10:00",
		})
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("empty date list is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.CreateSlotsBulk(ctx, "prov-1", models.BulkSlotsRequest{
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
