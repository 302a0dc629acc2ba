package models

// Interval is one scheduled event, occupying the half-open hour range [Start, End).
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether i and other share any hour. Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

// AddEventForm is the HTML form payload. Fields stay raw text until parsed.
type AddEventForm struct {
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
}

// AddEventRequest is the JSON payload of POST /api/events. Missing fields stay nil.
type AddEventRequest struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}
