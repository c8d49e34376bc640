// Package page models the document the color cycler runs against: an ordered
// set of text elements, each addressable by a stable identifier and carrying a
// single presentation attribute, its text color.
package page

import "github.com/vovakirdan/tui-hello/internal/core"

// Element is one identified piece of text on the page.
type Element struct {
	id    string
	text  string
	color string // Hex color; empty means the terminal default
}

// NewElement creates an element with no color applied.
func NewElement(id, text string) *Element {
	return &Element{id: id, text: text}
}

// ID returns the element identifier.
func (e *Element) ID() string {
	return e.id
}

// Text returns the element content.
func (e *Element) Text() string {
	return e.text
}

// Color returns the current text color, or "" if none has been applied.
func (e *Element) Color() string {
	return e.color
}

// SetColor sets the text color.
func (e *Element) SetColor(hex string) {
	e.color = hex
}

// Document is an ordered collection of elements.
type Document struct {
	elements []*Element
	byID     map[string]*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{byID: make(map[string]*Element)}
}

// Default builds the stock page with the "hello" heading and a caption.
func Default() *Document {
	doc := NewDocument()
	doc.Add(NewElement(core.TargetID, "Hello, World!"))
	doc.Add(NewElement("caption", "press q to quit"))
	return doc
}

// Add appends an element. When identifiers repeat, lookups resolve to the
// first element added with that identifier.
func (d *Document) Add(el *Element) {
	d.elements = append(d.elements, el)
	if _, exists := d.byID[el.id]; !exists {
		d.byID[el.id] = el
	}
}

// ElementByID resolves an element by identifier.
// Returns false when no such element exists.
func (d *Document) ElementByID(id string) (*Element, bool) {
	if d == nil {
		return nil, false
	}
	el, ok := d.byID[id]
	return el, ok
}

// Elements returns the elements in document order.
func (d *Document) Elements() []*Element {
	if d == nil {
		return nil
	}
	out := make([]*Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Len returns the number of elements.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.elements)
}
