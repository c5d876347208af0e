// File: services/consultation/transition.go
package consultation

import (
	"context"
	"errors"
	"fmt"

	consultationRepo "consultly/database/repository/consultation"
	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// Transition drives a consultation to targetStatus. The edge must appear in
// the status graph and the caller must hold the role that owns that edge;
// illegal edges are reported, never clamped. Cancellations record who
// cancelled and why.
func (s *DefaultConsultationService) Transition(ctx context.Context, id, callerID, callerRole, targetStatus, reason string) (*models.Consultation, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "consultation", ID: id}
		}
		return nil, err
	}

	if !CanTransition(c.Status, targetStatus) {
		return nil, &utils.InvalidTransitionError{From: c.Status, To: targetStatus}
	}

	switch callerRole {
	case models.RoleAdmin:
		// Admin override applies from any non-terminal state.
	case models.RoleProvider:
		if c.ProviderID != callerID {
			return nil, &utils.ForbiddenError{Message: "consultation belongs to another provider"}
		}
		if !roleMayTransition(callerRole, c.Status, targetStatus) {
			return nil, &utils.ForbiddenError{Message: fmt.Sprintf("providers may not move a consultation from %s to %s", c.Status, targetStatus)}
		}
	case models.RoleSeeker:
		if c.SeekerID != callerID {
			return nil, &utils.ForbiddenError{Message: "consultation belongs to another seeker"}
		}
		if !roleMayTransition(callerRole, c.Status, targetStatus) {
			return nil, &utils.ForbiddenError{Message: "seekers may only cancel a pending or confirmed consultation"}
		}
	default:
		return nil, &utils.ForbiddenError{Message: fmt.Sprintf("unknown caller role %q", callerRole)}
	}

	previous := c.Status
	c.Status = targetStatus
	if targetStatus == models.StatusCancelled {
		c.CancellationReason = reason
		c.CancelledBy = callerRole
	}
	if targetStatus == models.StatusRejected && reason != "" {
		c.CancellationReason = reason
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	logger.Info("consultation transitioned",
		zap.String("consultationId", c.ID),
		zap.String("from", previous),
		zap.String("to", targetStatus),
		zap.String("by", callerRole))

	if targetStatus == models.StatusConfirmed && s.Reminders != nil {
		// Best effort; a failed reminder never fails the transition.
		if err := s.Reminders.ScheduleReminder(ctx, c); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("consultationId", c.ID), zap.Error(err))
		}
	}
	return c, nil
}
