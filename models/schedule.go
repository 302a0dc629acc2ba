package models

// EventView is one accepted interval as shown in the event list.
type EventView struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"` // e.g., "09:00 - 10:00"
}

// TimelineBar positions an interval on a 24 hour timeline, in percent of the day.
type TimelineBar struct {
	Start        int     `json:"start"`
	End          int     `json:"end"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// ScheduleView is everything a client needs to render a session's schedule.
type ScheduleView struct {
	Events   []EventView   `json:"events"`
	Timeline []TimelineBar `json:"timeline"`
	Markers  []string      `json:"markers"`
}
