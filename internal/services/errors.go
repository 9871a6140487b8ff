package services

import "fmt"

// Service errors
var (
	ErrAuthRequired      = &ServiceError{Message: "sign in required"}
	ErrPredictionsLocked = &ServiceError{Message: "predictions are locked"}
	ErrDeadlinePassed    = &ServiceError{Message: "the ceremony has started - picks are frozen"}
	ErrUnknownCategory   = &ServiceError{Message: "unknown category"}
	ErrUnknownNominee    = &ServiceError{Message: "nominee is not on the ballot for this category"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// IncompletePredictionsError is returned when a participant tries to lock in
// before picking a nominee in every category
type IncompletePredictionsError struct {
	Selected int
	Total    int
}

func (e *IncompletePredictionsError) Error() string {
	return fmt.Sprintf("picked %d of %d categories - pick them all before locking in", e.Selected, e.Total)
}
