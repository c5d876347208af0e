package consultation

import (
	"context"
	"testing"

	"consultly/models"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	f := newTestFixture()
	f.seedConsultation("c-1", models.StatusConfirmed)

	t.Run("parties and admins can read", func(t *testing.T) {
		for _, caller := range []struct{ id, role string }{
			{"seek-1", models.RoleSeeker},
			{"prov-1", models.RoleProvider},
			{"admin-1", models.RoleAdmin},
		} {
			c, err := f.svc.GetByID(ctx, "c-1", caller.id, caller.role)
			require.NoError(t, err, "caller %s", caller.id)
			assert.Equal(t, "c-1", c.ID)
		}
	})

	t.Run("strangers are forbidden", func(t *testing.T) {
		_, err := f.svc.GetByID(ctx, "c-1", "seek-2", models.RoleSeeker)
		var forbiddenErr *utils.ForbiddenError
		assert.ErrorAs(t, err, &forbiddenErr)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.svc.GetByID(ctx, "nope", "seek-1", models.RoleSeeker)
		var notFoundErr *utils.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "nope", notFoundErr.ID)
	})
}
