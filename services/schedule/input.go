package schedule

import (
	"dayplanner/models"
	"dayplanner/services/scheduler"
	"dayplanner/utils"
)

// ParseForm turns raw form text into an interval. Anything that is not a
// whole number is ErrInvalidInput.
func ParseForm(form models.AddEventForm) (models.Interval, error) {
	start, err := utils.ParseHour(form.StartTime)
	if err != nil {
		return models.Interval{}, ErrInvalidInput
	}
	end, err := utils.ParseHour(form.EndTime)
	if err != nil {
		return models.Interval{}, ErrInvalidInput
	}
	return models.Interval{Start: start, End: end}, nil
}

// FromRequest turns a JSON request into an interval. Missing fields are ErrInvalidInput.
func FromRequest(req models.AddEventRequest) (models.Interval, error) {
	if req.Start == nil || req.End == nil {
		return models.Interval{}, ErrInvalidInput
	}
	return models.Interval{Start: *req.Start, End: *req.End}, nil
}

// Validate reports which range rule candidate breaks, checking order first.
func Validate(candidate models.Interval) error {
	if candidate.Start >= candidate.End {
		return ErrInvalidOrder
	}
	if candidate.Start < scheduler.MinHour || candidate.End > scheduler.MaxHour {
		return ErrOutOfRange
	}
	return nil
}
