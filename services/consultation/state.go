// File: services/consultation/state.go
package consultation

import "consultly/models"

// legalTransitions is the full status graph. Completed, rejected and
// cancelled have no outgoing edges.
var legalTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusRejected},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusRejected:   {},
	models.StatusCancelled:  {},
}

// CanTransition reports whether the (from, to) edge is in the status graph.
func CanTransition(from, to string) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// roleMayTransition applies the role gate on an edge already known to be
// legal. Providers drive the forward transitions on their own bookings and
// may cancel an in-progress one; seekers may only cancel before the
// consultation starts; admins may act on any non-terminal booking.
func roleMayTransition(role, from, to string) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleProvider:
		switch {
		case from == models.StatusPending && (to == models.StatusConfirmed || to == models.StatusRejected):
			return true
		case from == models.StatusConfirmed && to == models.StatusInProgress:
			return true
		case from == models.StatusInProgress:
			return true
		}
		return false
	case models.RoleSeeker:
		return to == models.StatusCancelled &&
			(from == models.StatusPending || from == models.StatusConfirmed)
	}
	return false
}
