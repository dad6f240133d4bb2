package session

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formen/formen/internal/document"
	"github.com/formen/formen/internal/editor"
)

func startServer(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(ServeWS(hub, Options{Width: 640, Height: 480}))
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Stop)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, ctx context.Context, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func read(t *testing.T, ctx context.Context, conn *websocket.Conn) Message {
	t.Helper()
	var msg Message
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	return msg
}

func send(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	msg := Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		msg.Payload = data
	}
	require.NoError(t, wsjson.Write(ctx, conn, msg))
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) FramePayload {
	t.Helper()
	msg := read(t, ctx, conn)
	require.Equal(t, TypeFrame, msg.Type, "payload: %s", msg.Payload)
	var frame FramePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &frame))
	return frame
}

func event(t *testing.T, ctx context.Context, conn *websocket.Conn, ev editor.Event) FramePayload {
	t.Helper()
	send(t, ctx, conn, TypeEvent, ev)
	return readFrame(t, ctx, conn)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestWelcome(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	conn := dial(t, ctx, url)

	msg := read(t, ctx, conn)
	assert.Equal(t, TypeWelcome, msg.Type)
	assert.True(t, strings.HasPrefix(msg.SessionID, "sess_"), msg.SessionID)
	assert.NotEmpty(t, msg.ClientID)

	var welcome WelcomePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &welcome))
	assert.Equal(t, 640, welcome.Width)
	assert.Equal(t, 480, welcome.Height)
	assert.Equal(t, 20.0, welcome.GridSize)
	assert.Equal(t, editor.ToolSquare, welcome.State.Tool)
	assert.Zero(t, welcome.State.ShapeCount)
}

func TestDrawOverWebsocket(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	conn := dial(t, ctx, url)
	read(t, ctx, conn)

	event(t, ctx, conn, editor.Event{Type: editor.EventTool, Tool: editor.ToolRectangle})
	event(t, ctx, conn, editor.Event{Type: editor.EventPointerDown, X: 10, Y: 10})
	frame := event(t, ctx, conn, editor.Event{Type: editor.EventPointerMove, X: 60, Y: 40})
	require.Len(t, frame.Commands, 1, "preview is rendered")

	frame = event(t, ctx, conn, editor.Event{Type: editor.EventPointerUp, X: 110, Y: 70})
	assert.Equal(t, 1, frame.State.ShapeCount)
	assert.Equal(t, "Rectangle created. Draw another or switch tools.", frame.Status)
	require.Len(t, frame.Commands, 1)
	cmd := frame.Commands[0]
	assert.Equal(t, "rect", cmd.Op)
	assert.Equal(t, []float64{20, 20, 100, 60}, []float64{cmd.X, cmd.Y, cmd.Width, cmd.Height})

	event(t, ctx, conn, editor.Event{Type: editor.EventTool, Tool: editor.ToolSelect})
	frame = event(t, ctx, conn, editor.Event{Type: editor.EventPointerDown, X: 50, Y: 50})
	assert.NotNil(t, frame.State.Selection)
	assert.Equal(t, editor.CursorMove, frame.Cursor)
	assert.Len(t, frame.Commands, 10, "shape, outline and eight handles")
}

func TestExportAndImport(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	conn := dial(t, ctx, url)
	read(t, ctx, conn)

	event(t, ctx, conn, editor.Event{Type: editor.EventSample})

	send(t, ctx, conn, TypeExport, nil)
	msg := read(t, ctx, conn)
	require.Equal(t, TypeExportResult, msg.Type)
	var result ExportResultPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &result))
	assert.Regexp(t, `^formen_\d+\.json$`, result.Filename)

	shapes, err := document.Import(result.Document)
	require.NoError(t, err)
	assert.Len(t, shapes, len(document.Sample()))

	frame := readFrame(t, ctx, conn)
	assert.Equal(t, "Shapes exported.", frame.Status)

	event(t, ctx, conn, editor.Event{Type: editor.EventClearShapes})

	send(t, ctx, conn, TypeImport, result.Document)
	frame = readFrame(t, ctx, conn)
	assert.Equal(t, len(shapes), frame.State.ShapeCount)
}

func TestImportFailureReportsError(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	conn := dial(t, ctx, url)
	read(t, ctx, conn)

	send(t, ctx, conn, TypeImport, map[string]int{"x": 1})
	msg := read(t, ctx, conn)
	require.Equal(t, TypeError, msg.Type)
	var e ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &e))
	assert.Contains(t, e.Message, "invalid shape document")

	frame := readFrame(t, ctx, conn)
	assert.Equal(t, "Import failed.", frame.Status)
	assert.Zero(t, frame.State.ShapeCount)
}

func TestBadMessages(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	conn := dial(t, ctx, url)
	read(t, ctx, conn)

	send(t, ctx, conn, "teleport", nil)
	msg := read(t, ctx, conn)
	assert.Equal(t, TypeError, msg.Type)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))
	msg = read(t, ctx, conn)
	assert.Equal(t, TypeError, msg.Type)

	send(t, ctx, conn, TypeEvent, editor.Event{Type: "explode"})
	msg = read(t, ctx, conn)
	assert.Equal(t, TypeError, msg.Type)
	readFrame(t, ctx, conn)

	send(t, ctx, conn, TypeRender, nil)
	readFrame(t, ctx, conn)
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := testContext(t)
	_, url := startServer(t)
	a := dial(t, ctx, url)
	b := dial(t, ctx, url)
	welcomeA := read(t, ctx, a)
	welcomeB := read(t, ctx, b)
	assert.NotEqual(t, welcomeA.SessionID, welcomeB.SessionID)

	frame := event(t, ctx, a, editor.Event{Type: editor.EventSample})
	assert.NotZero(t, frame.State.ShapeCount)

	send(t, ctx, b, TypeRender, nil)
	frame = readFrame(t, ctx, b)
	assert.Zero(t, frame.State.ShapeCount)
}

func TestHubTracksSessions(t *testing.T) {
	ctx := testContext(t)
	hub, url := startServer(t)

	conn := dial(t, ctx, url)
	read(t, ctx, conn)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubStopClosesSessions(t *testing.T) {
	ctx := testContext(t)
	hub, url := startServer(t)
	conn := dial(t, ctx, url)
	read(t, ctx, conn)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Stop()
	assert.Zero(t, hub.Count())

	_, _, err := conn.Read(ctx)
	assert.Error(t, err)
}
