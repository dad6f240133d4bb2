// Package export serves the HTTP endpoints that turn shape documents into
// images and validate uploaded documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/formen/formen/internal/document"
	"github.com/formen/formen/internal/shape"
	"github.com/formen/formen/internal/typeid"
)

const maxDimension = 8192

// ImportResponse is returned from the import endpoint.
type ImportResponse struct {
	Count  int               `json:"count"`
	Shapes document.Document `json:"shapes"`
}

type Handler struct {
	maxBytes int64
	width    int
	height   int
}

// NewHandler creates a handler that accepts documents up to maxBytes and
// renders width x height images unless the request asks otherwise.
func NewHandler(maxBytes int64, width, height int) *Handler {
	return &Handler{maxBytes: maxBytes, width: width, height: height}
}

// ExportPNG handles POST /export/png?width=&height=&grid=1 with a shape
// document as the body.
func (h *Handler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "png", "image/png", PNG)
}

// ExportSVG handles POST /export/svg?width=&height=&grid=1.
func (h *Handler) ExportSVG(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "svg", "image/svg+xml", SVG)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, ext, contentType string,
	encode func(io.Writer, []*shape.Shape, Options) error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "document too large"})
		return
	}

	shapes, err := document.Import(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	opts := h.options(r)
	job := typeid.NewExportID()
	slog.Info("export started", "job", job, "format", ext, "shapes", len(shapes), "width", opts.Width, "height", opts.Height)

	var buf bytes.Buffer
	if err := encode(&buf, shapes, opts); err != nil {
		slog.Error("export failed", "job", job, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "encoding failed"})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, document.Filename(time.Now(), ext)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Export-ID", job)
	w.Write(buf.Bytes())

	slog.Info("export complete", "job", job, "format", ext, "size", buf.Len())
}

// Import handles POST /import (multipart form with a "file" field). It
// validates the document and echoes it back normalized.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request too large or not multipart"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read file"})
		return
	}

	doc, err := document.Parse(data)
	if err != nil {
		slog.Info("import rejected", "name", header.Filename, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	slog.Info("document imported", "name", header.Filename, "shapes", len(doc))
	writeJSON(w, http.StatusOK, ImportResponse{Count: len(doc), Shapes: doc})
}

func (h *Handler) options(r *http.Request) Options {
	q := r.URL.Query()
	return Options{
		Width:  dimension(q.Get("width"), h.width),
		Height: dimension(q.Get("height"), h.height),
		Grid:   q.Get("grid") == "1" || q.Get("grid") == "true",
	}
}

func dimension(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 || v > maxDimension {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
