// Package views renders the scheduler page.
package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"dayplanner/models"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Daily Event Scheduler</title>
    <style>
        body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center; background: #0f172a; font-family: system-ui, sans-serif; }
        .card { width: 100%; max-width: 42rem; background: #fff; border-radius: .75rem; padding: 1.5rem; }
        .row { display: flex; gap: 1rem; }
        .row > div { flex: 1; }
        label { display: block; font-size: .875rem; font-weight: 500; margin-bottom: .25rem; }
        input { width: 100%; box-sizing: border-box; padding: .5rem; border: 1px solid #cbd5e1; border-radius: .375rem; }
        button { width: 100%; margin-top: 1rem; padding: .6rem; border: 0; border-radius: .375rem; background: #0f172a; color: #fff; }
        .alert { margin-top: 1rem; padding: .75rem; border: 1px solid #ef4444; border-radius: .375rem; color: #b91c1c; }
        .timeline { position: relative; height: 3rem; background: #f3f4f6; border-radius: .5rem; margin: 1rem 0 .25rem; }
        .bar { position: absolute; height: 100%; background: #3b82f6; opacity: .75; border-radius: .25rem; }
        .markers { display: flex; justify-content: space-between; font-size: .875rem; color: #6b7280; }
        .event { padding: .75rem; margin-top: .5rem; background: #eff6ff; border: 1px solid #dbeafe; border-radius: .5rem; }
        .empty { text-align: center; color: #6b7280; }
    </style>
</head>
<body>
<div class="card">
    <h2>Daily Event Scheduler</h2>
`

const pageTail = `</div>
<script>
(function () {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var delay = 1000;
    function connect() {
        var ws = new WebSocket(proto + location.host + "/ws");
        ws.onopen = function () { delay = 1000; };
        ws.onmessage = function (ev) {
            var msg = JSON.parse(ev.data);
            if (msg.type === "update") { location.reload(); }
        };
        ws.onclose = function () {
            setTimeout(connect, delay);
            delay = Math.min(delay * 2, 30000);
        };
    }
    connect();
})();
</script>
</body>
</html>`

// SchedulerPage renders the whole page: form, optional error, timeline and list.
func SchedulerPage(view *models.ScheduleView, form models.AddEventForm, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(pageHead)
		writeForm(&sb, form)
		if errMsg != "" {
			fmt.Fprintf(&sb, "    <div class=\"alert\" role=\"alert\">%s</div>\n", templ.EscapeString(errMsg))
		}
		sb.WriteString("    <h3>Scheduled Events</h3>\n")
		writeTimeline(&sb, view)
		writeEventList(&sb, view)
		sb.WriteString(pageTail)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeForm(sb *strings.Builder, form models.AddEventForm) {
	fmt.Fprintf(sb, `    <form method="post" action="/events">
        <div class="row">
            <div>
                <label for="start_time">Start Time (0-23)</label>
                <input id="start_time" name="start_time" type="number" min="0" max="23" value="%s" placeholder="Enter start time">
            </div>
            <div>
                <label for="end_time">End Time (0-23)</label>
                <input id="end_time" name="end_time" type="number" min="0" max="23" value="%s" placeholder="Enter end time">
            </div>
        </div>
        <button type="submit">Add Event</button>
    </form>
`, templ.EscapeString(form.StartTime), templ.EscapeString(form.EndTime))
}

func writeTimeline(sb *strings.Builder, view *models.ScheduleView) {
	sb.WriteString("    <div class=\"timeline\">\n")
	for _, bar := range view.Timeline {
		fmt.Fprintf(sb, "        <div class=\"bar\" style=\"left: %.4f%%; width: %.4f%%;\" title=\"%02d:00 - %02d:00\"></div>\n",
			bar.LeftPercent, bar.WidthPercent, bar.Start, bar.End)
	}
	sb.WriteString("    </div>\n    <div class=\"markers\">")
	for _, m := range view.Markers {
		fmt.Fprintf(sb, "<span>%s</span>", templ.EscapeString(m))
	}
	sb.WriteString("</div>\n")
}

func writeEventList(sb *strings.Builder, view *models.ScheduleView) {
	sb.WriteString("    <div class=\"events\">\n")
	if len(view.Events) == 0 {
		sb.WriteString("        <p class=\"empty\">No events scheduled</p>\n")
	}
	for _, e := range view.Events {
		fmt.Fprintf(sb, "        <div class=\"event\">%s</div>\n", templ.EscapeString(e.Label))
	}
	sb.WriteString("    </div>\n")
}
