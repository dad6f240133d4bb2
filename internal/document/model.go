// Package document converts between scene shapes and the flat JSON shape
// document used for export and import.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/formen/formen/internal/shape"
)

// FilePrefix starts every exported file name.
const FilePrefix = "formen_"

var ErrInvalidDocument = errors.New("invalid shape document")

// Record is one exported shape. Color is null for unfilled shapes.
type Record struct {
	Type   shape.Kind `json:"type"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Color  *string    `json:"color"`
	ID     shape.ID   `json:"id"`
}

// Document is the exported form of a scene, bottom shape first.
type Document []Record

// FromShapes builds a document from scene shapes.
func FromShapes(shapes []*shape.Shape) Document {
	doc := make(Document, 0, len(shapes))
	for _, s := range shapes {
		doc = append(doc, Record{
			Type:   s.Kind,
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
			Color:  shape.CopyColor(s.Color),
			ID:     s.ID,
		})
	}
	return doc
}

// Shapes rebuilds scene shapes, keeping the recorded ids.
func (d Document) Shapes() []*shape.Shape {
	shapes := make([]*shape.Shape, 0, len(d))
	for _, r := range d {
		shapes = append(shapes, &shape.Shape{
			ID:     r.ID,
			Kind:   r.Type,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
			Color:  shape.CopyColor(r.Color),
		})
	}
	return shapes
}

// Export serializes shapes as an indented JSON array.
func Export(shapes []*shape.Shape) ([]byte, error) {
	data, err := json.MarshalIndent(FromShapes(shapes), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

// Import parses a shape document. Either every record is valid and all
// shapes are returned, or an error wrapping ErrInvalidDocument is returned.
func Import(data []byte) ([]*shape.Shape, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Shapes(), nil
}

// record mirrors Record with every required field optional so missing
// fields can be told apart from zero values.
type record struct {
	Type   *string  `json:"type"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
	Color  *string  `json:"color"`
	ID     *float64 `json:"id"`
}

// Parse decodes and validates a shape document.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of shapes", ErrInvalidDocument)
	}

	var raw []record
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := make(Document, 0, len(raw))
	seen := make(map[shape.ID]struct{}, len(raw))
	for i, r := range raw {
		rec, err := r.validate()
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d: %v", ErrInvalidDocument, i, err)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: shape %d: duplicate id %v", ErrInvalidDocument, i, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		doc = append(doc, rec)
	}
	return doc, nil
}

func (r record) validate() (Record, error) {
	if r.Type == nil {
		return Record{}, errors.New("missing type")
	}
	kind, err := shape.ParseKind(*r.Type)
	if err != nil {
		return Record{}, err
	}

	fields := []struct {
		name string
		v    *float64
	}{
		{"x", r.X}, {"y", r.Y}, {"width", r.Width}, {"height", r.Height}, {"id", r.ID},
	}
	for _, f := range fields {
		if f.v == nil {
			return Record{}, fmt.Errorf("missing %s", f.name)
		}
	}

	return Record{
		Type:   kind,
		X:      *r.X,
		Y:      *r.Y,
		Width:  *r.Width,
		Height: *r.Height,
		Color:  r.Color,
		ID:     shape.ID(*r.ID),
	}, nil
}

// Filename returns the download name for an export taken at now,
// e.g. formen_1700000000000.json.
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("%s%d.%s", FilePrefix, now.UnixMilli(), ext)
}
