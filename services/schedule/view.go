package schedule

import (
	"fmt"

	"dayplanner/models"
	"dayplanner/utils"
)

// TimelineMarkers label the timeline axis.
var TimelineMarkers = []string{"00:00", "06:00", "12:00", "18:00", "23:59"}

// BuildView lays out events for display.
func BuildView(events []models.Interval) *models.ScheduleView {
	view := &models.ScheduleView{
		Events:   make([]models.EventView, 0, len(events)),
		Timeline: make([]models.TimelineBar, 0, len(events)),
		Markers:  append([]string{}, TimelineMarkers...),
	}
	for _, e := range events {
		view.Events = append(view.Events, models.EventView{
			Start: e.Start,
			End:   e.End,
			Label: fmt.Sprintf("%s - %s", utils.FormatHour(e.Start), utils.FormatHour(e.End)),
		})
		view.Timeline = append(view.Timeline, models.TimelineBar{
			Start:        e.Start,
			End:          e.End,
			LeftPercent:  utils.DayPercent(e.Start),
			WidthPercent: utils.DayPercent(e.End - e.Start),
		})
	}
	return view
}
