package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dayplanner/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.URL.Query().Get("sid")
		initial := &models.ScheduleView{Events: []models.EventView{}, Markers: []string{"00:00"}}
		if err := hub.Serve(w, r, sid, initial); err != nil {
			t.Logf("serve: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, sid string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?sid=" + sid
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHubSendsSnapshotThenUpdates(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub)

	a1 := dial(t, srv, "a")
	a2 := dial(t, srv, "a")
	b := dial(t, srv, "b")

	for _, c := range []*websocket.Conn{a1, a2, b} {
		msg := readMessage(t, c)
		assert.Equal(t, "snapshot", msg.Type)
		require.NotNil(t, msg.Schedule)
		assert.Empty(t, msg.Schedule.Events)
	}
	assert.Equal(t, 2, hub.Count("a"))
	assert.Equal(t, 1, hub.Count("b"))

	hub.Publish("a", &models.ScheduleView{
		Events: []models.EventView{{Start: 9, End: 10, Label: "09:00 - 10:00"}},
	})

	for _, c := range []*websocket.Conn{a1, a2} {
		msg := readMessage(t, c)
		assert.Equal(t, "update", msg.Type)
		require.Len(t, msg.Schedule.Events, 1)
		assert.Equal(t, "09:00 - 10:00", msg.Schedule.Events[0].Label)
	}

	// b belongs to another session and must see nothing.
	require.NoError(t, b.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := b.ReadMessage()
	assert.Error(t, err)
}

func TestHubForgetsClosedClients(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub)

	conn := dial(t, srv, "a")
	readMessage(t, conn)
	require.Equal(t, 1, hub.Count("a"))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count("a") == 0 }, 2*time.Second, 10*time.Millisecond)

	// Publishing to a session without clients is a no-op.
	hub.Publish("a", &models.ScheduleView{})
}

func TestHubClose(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub)

	conn := dial(t, srv, "a")
	readMessage(t, conn)

	hub.Close()
	assert.Equal(t, 0, hub.Count("a"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestHubKeepsIdleClientsAlive(t *testing.T) {
	hub := NewHub(nil, nil)
	hub.pongWait = 300 * time.Millisecond
	hub.pingPeriod = 100 * time.Millisecond
	srv := newTestServer(t, hub)

	conn := dial(t, srv, "a")
	readMessage(t, conn)

	// The client only reads; its default ping handler answers with pongs.
	require.NoError(t, conn.SetReadDeadline(time.Time{}))
	received := make(chan Message, 1)
	go func() {
		var msg Message
		if err := conn.ReadJSON(&msg); err == nil {
			received <- msg
		}
	}()

	time.Sleep(4 * hub.pongWait)
	require.Equal(t, 1, hub.Count("a"), "idle client was dropped")

	hub.Publish("a", &models.ScheduleView{Events: []models.EventView{{Start: 1, End: 2, Label: "01:00 - 02:00"}}})
	select {
	case msg := <-received:
		assert.Equal(t, "update", msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no update after idle period")
	}
}

func TestHubDropsClientsThatStopAnswering(t *testing.T) {
	hub := NewHub(nil, nil)
	hub.pongWait = 200 * time.Millisecond
	hub.pingPeriod = 50 * time.Millisecond
	srv := newTestServer(t, hub)

	conn := dial(t, srv, "a")
	readMessage(t, conn)

	// Without reading, the client never processes pings and never pongs.
	assert.Eventually(t, func() bool { return hub.Count("a") == 0 }, 2*time.Second, 20*time.Millisecond)
}

func TestHubPublishDoesNotBlockOtherSessions(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := newTestServer(t, hub)

	a := dial(t, srv, "a")
	b := dial(t, srv, "b")
	readMessage(t, a)
	readMessage(t, b)

	hub.mu.Lock()
	var stalled *client
	for c := range hub.clients["a"] {
		stalled = c
	}
	hub.mu.Unlock()
	require.NotNil(t, stalled)

	// Hold a's writer as a slow peer would.
	stalled.mu.Lock()
	done := make(chan struct{})
	go func() {
		hub.Publish("a", &models.ScheduleView{})
		close(done)
	}()

	hub.Publish("b", &models.ScheduleView{Markers: []string{"00:00"}})
	assert.Equal(t, "update", readMessage(t, b).Type)
	assert.Equal(t, 1, hub.Count("b"))

	select {
	case <-done:
		t.Fatal("publish to a finished while its writer was held")
	default:
	}

	stalled.mu.Unlock()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish to a never finished")
	}
	assert.Equal(t, "update", readMessage(t, a).Type)
}
