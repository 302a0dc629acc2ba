package schedule

import "fmt"

// ScheduleError is a rejected submission. Message is safe to show to users.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrInvalidInput = &ScheduleError{Code: "invalidInput", Message: "Please enter valid numbers for start and end times"}
	ErrInvalidOrder = &ScheduleError{Code: "invalidOrder", Message: "End time must be after start time"}
	ErrOutOfRange   = &ScheduleError{Code: "outOfRange", Message: "Times must be between 0 and 23"}
	ErrOverlap      = &ScheduleError{Code: "overlap", Message: "Event overlaps with existing events"}
)
