// Package layout loads and saves widget layout documents.
//
// A layout file is a JSON list of widgets, each with a rect, an optional
// border style name, and an optional title and color:
//
//	{
//	  "name": "dashboard",
//	  "widgets": [
//	    {"x": 0, "y": 0, "width": 20, "height": 6, "style": "thick", "title": "logs"},
//	    {"x": 20, "y": 0, "width": 20, "height": 6}
//	  ]
//	}
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"seam/core"
	"seam/geometry"
)

// Widget is the serialized form of one widget boundary.
type Widget struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Style  string `json:"style,omitempty"`
	Title  string `json:"title,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Boundary converts the serialized widget to a core boundary.
func (w Widget) Boundary() (core.WidgetBoundary, error) {
	style, err := core.ParseBorderStyle(w.Style)
	if err != nil {
		return core.WidgetBoundary{}, err
	}
	return core.WidgetBoundary{
		Rect:  core.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height},
		Style: style,
		Title: w.Title,
	}, nil
}

// Layout is a named collection of widgets.
type Layout struct {
	Name    string   `json:"name,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Parse decodes a layout document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return &l, nil
}

// Load reads a layout document from a file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// Save writes the layout to a file as indented JSON.
func (l *Layout) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// Boundaries converts every widget, failing on the first invalid one.
func (l *Layout) Boundaries() ([]core.WidgetBoundary, error) {
	out := make([]core.WidgetBoundary, 0, len(l.Widgets))
	for i, w := range l.Widgets {
		b, err := w.Boundary()
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Bounds returns the canvas size needed to fit every widget, including the
// border lattice line at x+width / y+height.
func (l *Layout) Bounds() (width, height int) {
	for _, w := range l.Widgets {
		width = geometry.Max(width, w.X+w.Width+1)
		height = geometry.Max(height, w.Y+w.Height+1)
	}
	return width, height
}

// Demo returns a built-in layout exercising corners, tees and crosses in
// mixed styles: a 2x2 grid sharing one cross point, with a thick sidebar
// flush against the grid's left edge.
func Demo() *Layout {
	return &Layout{
		Name: "demo",
		Widgets: []Widget{
			{X: 8, Y: 0, Width: 22, Height: 6, Title: "alpha"},
			{X: 30, Y: 0, Width: 22, Height: 6, Title: "beta", Style: "double"},
			{X: 8, Y: 6, Width: 22, Height: 6, Title: "gamma", Style: "rounded"},
			{X: 30, Y: 6, Width: 22, Height: 6, Title: "delta"},
			{X: 0, Y: 0, Width: 8, Height: 12, Title: "nav", Style: "thick"},
		},
	}
}
