package consultation

import (
	"context"
	"fmt"
	"testing"

	"consultly/models"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []string{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusRejected,
	models.StatusInProgress,
	models.StatusCompleted,
	models.StatusCancelled,
}

func TestTransitionTable(t *testing.T) {
	ctx := context.Background()

	legal := map[string]bool{
		"pending>confirmed":     true,
		"pending>rejected":      true,
		"confirmed>in_progress": true,
		"confirmed>cancelled":   true,
		"in_progress>completed": true,
		"in_progress>cancelled": true,
	}

	// Admins pass every role gate, so the table alone decides the outcome.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				f := newTestFixture()
				f.seedConsultation("c-1", from)

				updated, err := f.svc.Transition(ctx, "c-1", "admin-1", models.RoleAdmin, to, "")
				if legal[from+">"+to] {
					require.NoError(t, err)
					assert.Equal(t, to, updated.Status)
				} else {
					var transitionErr *utils.InvalidTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from, transitionErr.From)
					assert.Equal(t, to, transitionErr.To)
					// Status is reported, never clamped.
					stored, getErr := f.repo.GetByID(ctx, "c-1")
					require.NoError(t, getErr)
					assert.Equal(t, from, stored.Status)
				}
			})
		}
	}
}

func TestTransitionRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("provider drives forward transitions on own bookings", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusPending)

		for _, step := range []string{models.StatusConfirmed, models.StatusInProgress, models.StatusCompleted} {
			updated, err := f.svc.Transition(ctx, "c-1", "prov-1", models.RoleProvider, step, "")
			require.NoError(t, err)
			assert.Equal(t, step, updated.Status)
		}
	})

	t.Run("provider may reject a pending booking", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusPending)
		updated, err := f.svc.Transition(ctx, "c-1", "prov-1", models.RoleProvider, models.StatusRejected, "fully booked")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, updated.Status)
	})

	t.Run("another provider is forbidden", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusPending)
		_, err := f.svc.Transition(ctx, "c-1", "prov-2", models.RoleProvider, models.StatusConfirmed, "")
		var forbiddenErr *utils.ForbiddenError
		assert.ErrorAs(t, err, &forbiddenErr)
	})

	t.Run("seeker may cancel pending and confirmed", func(t *testing.T) {
		for _, from := range []string{models.StatusPending, models.StatusConfirmed} {
			f := newTestFixture()
			f.seedConsultation("c-1", from)
			updated, err := f.svc.Transition(ctx, "c-1", "seek-1", models.RoleSeeker, models.StatusCancelled, "changed plans")
			require.NoError(t, err)
			assert.Equal(t, models.StatusCancelled, updated.Status)
			assert.Equal(t, models.RoleSeeker, updated.CancelledBy)
			assert.Equal(t, "changed plans", updated.CancellationReason)
		}
	})

	t.Run("seeker may not cancel in progress", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusInProgress)
		_, err := f.svc.Transition(ctx, "c-1", "seek-1", models.RoleSeeker, models.StatusCancelled, "")
		var forbiddenErr *utils.ForbiddenError
		assert.ErrorAs(t, err, &forbiddenErr)
	})

	t.Run("seeker may not drive forward transitions", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusPending)
		_, err := f.svc.Transition(ctx, "c-1", "seek-1", models.RoleSeeker, models.StatusConfirmed, "")
		var forbiddenErr *utils.ForbiddenError
		assert.ErrorAs(t, err, &forbiddenErr)
	})

	t.Run("provider may cancel an in-progress booking", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusInProgress)
		updated, err := f.svc.Transition(ctx, "c-1", "prov-1", models.RoleProvider, models.StatusCancelled, "seeker absent")
		require.NoError(t, err)
		assert.Equal(t, models.RoleProvider, updated.CancelledBy)
	})

	t.Run("provider may not cancel a confirmed booking", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusConfirmed)
		_, err := f.svc.Transition(ctx, "c-1", "prov-1", models.RoleProvider, models.StatusCancelled, "")
		var forbiddenErr *utils.ForbiddenError
		assert.ErrorAs(t, err, &forbiddenErr)
	})

	t.Run("admin cancellation records the admin role", func(t *testing.T) {
		f := newTestFixture()
		f.seedConsultation("c-1", models.StatusConfirmed)
		updated, err := f.svc.Transition(ctx, "c-1", "admin-1", models.RoleAdmin, models.StatusCancelled, "dispute")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, updated.CancelledBy)
		assert.Equal(t, "dispute", updated.CancellationReason)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newTestFixture()
		_, err := f.svc.Transition(ctx, "ghost", "prov-1", models.RoleProvider, models.StatusConfirmed, "")
		var notFoundErr *utils.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}
