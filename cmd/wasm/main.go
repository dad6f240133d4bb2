//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/formen/formen/internal/editor"
	"github.com/formen/formen/internal/render"
	"github.com/formen/formen/internal/shape"
)

var (
	ed       *editor.Editor
	commands *render.CommandList
)

func main() {
	ed = editor.NewEditor()
	commands = render.NewCommandList()

	// Create the editor API object
	formenEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	formenEditor.Set("pointerDown", js.FuncOf(pointerDown))
	formenEditor.Set("pointerMove", js.FuncOf(pointerMove))
	formenEditor.Set("pointerUp", js.FuncOf(pointerUp))
	formenEditor.Set("pointerLeave", js.FuncOf(pointerLeave))
	formenEditor.Set("keyUp", js.FuncOf(keyUp))
	formenEditor.Set("setTool", js.FuncOf(setTool))
	formenEditor.Set("setColor", js.FuncOf(setColor))
	formenEditor.Set("deleteSelected", js.FuncOf(deleteSelected))
	formenEditor.Set("clearShapes", js.FuncOf(clearShapes))
	formenEditor.Set("clearFills", js.FuncOf(clearFills))
	formenEditor.Set("toggleGrid", js.FuncOf(toggleGrid))
	formenEditor.Set("importDocument", js.FuncOf(importDocument))
	formenEditor.Set("exportDocument", js.FuncOf(exportDocument))
	formenEditor.Set("loadSample", js.FuncOf(loadSample))

	// --- Queries (frontend ← editor) ---
	formenEditor.Set("render", js.FuncOf(renderCommands))
	formenEditor.Set("getState", js.FuncOf(getState))
	formenEditor.Set("getCursor", js.FuncOf(getCursor))

	// Register on global scope
	js.Global().Set("formenEditor", formenEditor)

	// Signal that WASM is ready
	js.Global().Set("formenWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// outcome converts an editor outcome into a plain JS object.
func outcome(out editor.Outcome) interface{} {
	result := map[string]interface{}{
		"redraw": out.Redraw,
		"cursor": string(out.Cursor),
		"status": out.Status,
	}
	if out.Err != nil {
		result["error"] = out.Err.Error()
	}
	return js.ValueOf(result)
}

func point(args []js.Value) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	return args[0].Float(), args[1].Float(), true
}

// --- Command Handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	x, y, ok := point(args)
	if !ok {
		return nil
	}
	return outcome(ed.PointerDown(x, y))
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	x, y, ok := point(args)
	if !ok {
		return nil
	}
	return outcome(ed.PointerMove(x, y))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	x, y, ok := point(args)
	if !ok {
		return nil
	}
	return outcome(ed.PointerUp(x, y))
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	return outcome(ed.PointerLeave())
}

func keyUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	return outcome(ed.KeyUp(args[0].String()))
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing tool"})
	}
	return outcome(ed.SetTool(editor.Tool(args[0].String())))
}

// setColor takes a CSS color string, or null to clear the choice.
func setColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].IsNull() || args[0].IsUndefined() {
		return outcome(ed.SetColor(nil))
	}
	return outcome(ed.SetColor(shape.Color(args[0].String())))
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	return outcome(ed.DeleteSelected())
}

func clearShapes(this js.Value, args []js.Value) interface{} {
	return outcome(ed.ClearShapes())
}

func clearFills(this js.Value, args []js.Value) interface{} {
	return outcome(ed.ClearFills())
}

func toggleGrid(this js.Value, args []js.Value) interface{} {
	return outcome(ed.ToggleGrid())
}

func importDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}
	return outcome(ed.Import([]byte(args[0].String())))
}

// exportDocument returns {filename, document, status} for the page to
// download.
func exportDocument(this js.Value, args []js.Value) interface{} {
	data, err := ed.Export()
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{
		"filename": editor.ExportFilename(time.Now()),
		"document": string(data),
		"status":   ed.Status(),
	})
}

func loadSample(this js.Value, args []js.Value) interface{} {
	return outcome(ed.LoadSample())
}

// --- Query Handlers ---

func renderCommands(this js.Value, args []js.Value) interface{} {
	commands.Reset()
	ed.Render(commands)
	out, err := commands.JSON()
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(out)
}

func getState(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(ed.State())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getCursor(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(ed.Cursor()))
}
