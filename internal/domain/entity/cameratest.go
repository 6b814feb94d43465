package entity

import (
	"time"

	"github.com/google/uuid"
)

// CameraTestStatus represents the lifecycle state of a camera test visit.
type CameraTestStatus string

const (
	// CameraTestPending is the initial state of every registered visit.
	CameraTestPending CameraTestStatus = "PENDING"
	// CameraTestConfirmed means staff have confirmed the appointment.
	CameraTestConfirmed CameraTestStatus = "CONFIRMED"
	// CameraTestCompleted means the test took place. Terminal.
	CameraTestCompleted CameraTestStatus = "COMPLETED"
	// CameraTestCancelled means the visit will not happen. Terminal.
	CameraTestCancelled CameraTestStatus = "CANCELLED"
)

// String returns the string representation of the CameraTestStatus.
func (s CameraTestStatus) String() string {
	return string(s)
}

// IsValid checks if the CameraTestStatus is a valid value.
func (s CameraTestStatus) IsValid() bool {
	switch s {
	case CameraTestPending, CameraTestConfirmed, CameraTestCompleted, CameraTestCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s CameraTestStatus) IsTerminal() bool {
	return s == CameraTestCompleted || s == CameraTestCancelled
}

// CanTransitionTo reports whether a visit in status s may move to next.
// PENDING and CONFIRMED may advance or be cancelled; terminal states are frozen.
func (s CameraTestStatus) CanTransitionTo(next CameraTestStatus) bool {
	if !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	switch s {
	case CameraTestPending:
		return next == CameraTestConfirmed || next == CameraTestCancelled
	case CameraTestConfirmed:
		return next == CameraTestCompleted || next == CameraTestCancelled
	default:
		return false
	}
}

// CameraTest represents one studio visit of a model. At most one visit may
// exist per model per calendar day.
type CameraTest struct {
	ID        uuid.UUID        // The unique identifier for the visit.
	ModelID   uuid.UUID        // The model this visit belongs to.
	Status    CameraTestStatus // Current lifecycle state.
	VisitedAt time.Time        // The scheduled visit time.
	CreatedAt time.Time        // Timestamp of when this visit was registered.
	UpdatedAt time.Time        // Timestamp of the last status change.
}
