package editor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formen/formen/internal/shape"
)

func TestHandleDrivesWholeSession(t *testing.T) {
	e := newTestEditor(t)
	events := []Event{
		{Type: EventTool, Tool: ToolRectangle},
		{Type: EventPointerDown, X: 10, Y: 10},
		{Type: EventPointerMove, X: 60, Y: 40},
		{Type: EventPointerUp, X: 110, Y: 70},
		{Type: EventTool, Tool: ToolSelect},
		{Type: EventPointerDown, X: 50, Y: 50},
		{Type: EventPointerUp, X: 50, Y: 50},
	}
	for _, ev := range events {
		require.NoError(t, e.Handle(ev).Err, "event %s", ev.Type)
	}
	require.NotNil(t, e.Selected())

	out := e.Handle(Event{Type: EventKeyUp, Key: "Delete"})
	assert.True(t, out.Redraw)
	assert.Zero(t, e.Scene().Len())
}

func TestHandleDecodesJSONEvents(t *testing.T) {
	e := newTestEditor(t)
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"color","color":"#ff0000"}`), &ev))
	e.Handle(ev)
	assert.Equal(t, "#ff0000", *e.Color())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"import","document":[{"type":"circle","x":0,"y":0,"width":40,"height":40,"color":null,"id":42}]}`), &ev))
	out := e.Handle(ev)
	require.NoError(t, out.Err)
	assert.Equal(t, "1 shapes imported.", out.Status)
	assert.True(t, e.Scene().Has(42))
}

func TestHandleUnknownEvent(t *testing.T) {
	e := newTestEditor(t)
	out := e.Handle(Event{Type: "explode"})
	assert.ErrorIs(t, out.Err, ErrUnknownEvent)
}

func TestHandleCommands(t *testing.T) {
	e := newTestEditor(t)
	require.NoError(t, e.Handle(Event{Type: EventSample}).Err)
	n := e.Scene().Len()
	require.NotZero(t, n)

	e.Handle(Event{Type: EventClearFills})
	for _, s := range e.Scene().Shapes() {
		assert.Nil(t, s.Color)
	}

	e.Handle(Event{Type: EventToggleGrid})
	assert.False(t, e.GridVisible())
	e.Handle(Event{Type: EventToggleInfo})
	assert.False(t, e.InfoVisible())

	out := e.Handle(Event{Type: EventDelete})
	assert.Equal(t, "Select a shape first to delete it.", out.Status)

	e.Handle(Event{Type: EventClearShapes})
	assert.Zero(t, e.Scene().Len())

	e.Handle(Event{Type: EventDeselect})
	e.Handle(Event{Type: EventPointerLeave})
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestImportFailureLeavesSceneUntouched(t *testing.T) {
	e := newTestEditor(t)
	draw(t, e, ToolRectangle, 0, 0, 100, 100)
	draw(t, e, ToolCircle, 200, 200, 300, 300)
	require.NoError(t, e.SetTool(ToolSelect).Err)
	click(e, 50, 50)
	before, err := e.Export()
	require.NoError(t, err)

	out := e.Import([]byte(`"not json"`))
	assert.Error(t, out.Err)
	assert.Equal(t, "Import failed.", out.Status)
	assert.Equal(t, "Import failed.", e.Status())

	after, err := e.Export()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	require.NotNil(t, e.Selected(), "a failed import keeps the selection")
	assert.Equal(t, shape.ID(1), e.Selected().ID)
}

func TestExportImportRoundTripThroughEditor(t *testing.T) {
	a := newTestEditor(t)
	draw(t, a, ToolRectangle, 0, 0, 100, 60)
	draw(t, a, ToolSquare, 200, 200, 120, 100)
	a.SetColor(shape.Color("#ff0000"))
	click(a, 50, 30)
	data, err := a.Export()
	require.NoError(t, err)

	b := NewEditor()
	draw(t, b, ToolCircle, 0, 0, 100, 100)
	b.SetTool(ToolSelect)
	click(b, 50, 50)
	require.NotNil(t, b.Selected())

	out := b.Import(data)
	require.NoError(t, out.Err)
	assert.Nil(t, b.Selected(), "import clears the selection")
	require.Equal(t, a.Scene().Len(), b.Scene().Len())
	for i, s := range a.Scene().Shapes() {
		assert.Equal(t, s, b.Scene().Shapes()[i])
	}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "formen_1760000000000.json", ExportFilename(fixedNow()))
}

func fixedNow() time.Time { return time.UnixMilli(1760000000000) }

func TestExportReportsStatus(t *testing.T) {
	e := newTestEditor(t)
	draw(t, e, ToolRectangle, 0, 0, 100, 100)
	_, err := e.Export()
	require.NoError(t, err)
	assert.Equal(t, "Shapes exported.", e.Status())
	assert.Equal(t, "Shapes exported.", e.State().Status)
}
