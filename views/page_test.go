package views

import (
	"bytes"
	"context"
	"testing"

	"dayplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, view *models.ScheduleView, form models.AddEventForm, errMsg string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, SchedulerPage(view, form, errMsg).Render(context.Background(), &buf))
	return buf.String()
}

func TestSchedulerPageEmpty(t *testing.T) {
	html := render(t, &models.ScheduleView{Markers: []string{"00:00", "23:59"}}, models.AddEventForm{}, "")

	assert.Contains(t, html, "Daily Event Scheduler")
	assert.Contains(t, html, "No events scheduled")
	assert.Contains(t, html, "<span>23:59</span>")
	assert.NotContains(t, html, `class="alert"`)
}

func TestSchedulerPageWithEvents(t *testing.T) {
	view := &models.ScheduleView{
		Events:   []models.EventView{{Start: 6, End: 12, Label: "06:00 - 12:00"}},
		Timeline: []models.TimelineBar{{Start: 6, End: 12, LeftPercent: 25, WidthPercent: 25}},
	}
	html := render(t, view, models.AddEventForm{}, "")

	assert.Contains(t, html, "06:00 - 12:00")
	assert.Contains(t, html, "left: 25.0000%; width: 25.0000%;")
	assert.NotContains(t, html, "No events scheduled")
}

func TestSchedulerPageEscapesInput(t *testing.T) {
	form := models.AddEventForm{StartTime: `"><script>alert(1)</script>`, EndTime: "5"}
	html := render(t, &models.ScheduleView{}, form, "Times must be between 0 and 23")

	assert.Contains(t, html, "Times must be between 0 and 23")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, `value="5"`)
}

func TestSchedulerPageReconnectsLiveFeed(t *testing.T) {
	html := render(t, &models.ScheduleView{}, models.AddEventForm{}, "")

	assert.Contains(t, html, `new WebSocket(proto + location.host + "/ws")`)
	assert.Contains(t, html, "ws.onclose")
	assert.Contains(t, html, "setTimeout(connect, delay)")
}
