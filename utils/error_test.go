package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondError(c, err)
	return rec
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &ValidationError{Field: "start", Message: "invalid"}, http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "slot", ID: "s-1"}, http.StatusNotFound},
		{"forbidden", &ForbiddenError{Message: "not yours"}, http.StatusForbidden},
		{"conflict", &ConflictError{Message: "overlapping slot"}, http.StatusConflict},
		{"invalid transition", &InvalidTransitionError{From: "completed", To: "pending"}, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := respond(tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "start: invalid", (&ValidationError{Field: "start", Message: "invalid"}).Error())
	assert.Equal(t, "bad payload", (&ValidationError{Message: "bad payload"}).Error())
	assert.Equal(t, `invalid transition from "completed" to "pending"`,
		(&InvalidTransitionError{From: "completed", To: "pending"}).Error())
}
