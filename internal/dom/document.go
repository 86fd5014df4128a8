// Package dom holds the server-side model of a deck page: a small set of
// elements addressed by id, each with text, classes, a disabled flag and a
// display style. Rendering to HTML happens elsewhere.
package dom

import (
	"slices"
	"sync"
	"time"
)

// Element ids of the deck page
const (
	IDRemainingCards = "remaining-cards"
	IDShuffleStatus  = "shuffle-status"
	IDDeckCard       = "deck-card"
	IDRefreshButton  = "refresh-btn"
	IDErrorMessage   = "error-message"
)

const (
	ClassLoading = "loading"

	DisplayNone  = "none"
	DisplayBlock = "block"

	PlaceholderText = "-"
	ButtonLabel     = "Get New Deck"
)

// Element is a single addressable node of a Document.
// All accessors lock the owning document.
type Element struct {
	doc      *Document
	id       string
	text     string
	classes  []string
	disabled bool
	display  string
}

// Document is a page's element set plus its refresh bookkeeping
type Document struct {
	mu          sync.RWMutex
	elements    map[string]*Element
	generation  uint64
	lastRefresh time.Time
}

// New creates an empty document
func New() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// NewDeckDocument creates a document with the five deck page elements in their initial state
func NewDeckDocument() *Document {
	d := New()
	d.Append(IDRemainingCards).SetText(PlaceholderText)
	d.Append(IDShuffleStatus).SetText(PlaceholderText)
	d.Append(IDDeckCard)
	d.Append(IDRefreshButton).SetText(ButtonLabel)
	d.Append(IDErrorMessage).SetDisplay(DisplayNone)
	return d
}

// Append adds an element with the given id, replacing any existing one
func (d *Document) Append(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := &Element{doc: d, id: id}
	d.elements[id] = el
	return el
}

// Remove drops the element with the given id
func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, id)
}

// GetElementByID returns the element or nil when the document has none with that id
func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[id]
}

// Batch applies element changes while the document lock is already held.
// It is only valid inside the callback it was handed to.
type Batch struct {
	doc *Document
}

// BeginRefresh starts a new refresh cycle and returns its generation.
// Any cycle started earlier becomes stale. fn runs under the same lock,
// so no other cycle can interleave with the changes it makes.
func (d *Document) BeginRefresh(fn func(b Batch)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	if fn != nil {
		fn(Batch{doc: d})
	}
	return d.generation
}

// Commit runs fn only while gen is still the latest refresh cycle, holding
// the document lock for the check and every change fn makes. It reports
// whether fn ran.
func (d *Document) Commit(gen uint64, fn func(b Batch)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen {
		return false
	}
	fn(Batch{doc: d})
	return true
}

// SetText replaces the element's text content
func (b Batch) SetText(e *Element, text string) { e.text = text }

// AddClass adds a class if absent
func (b Batch) AddClass(e *Element, class string) { e.addClass(class) }

// RemoveClass removes a class if present
func (b Batch) RemoveClass(e *Element, class string) { e.removeClass(class) }

// SetDisabled toggles the disabled flag
func (b Batch) SetDisabled(e *Element, disabled bool) { e.disabled = disabled }

// SetDisplay sets the display style
func (b Batch) SetDisplay(e *Element, display string) { e.display = display }

// MarkRefreshed records when the current cycle completed
func (b Batch) MarkRefreshed(at time.Time) { b.doc.lastRefresh = at }

// LastRefresh returns when the latest refresh cycle completed
func (d *Document) LastRefresh() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastRefresh
}

// ID returns the element id
func (e *Element) ID() string {
	return e.id
}

// Text returns the element's text content
func (e *Element) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.text
}

// SetText replaces the element's text content
func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.text = text
}

// AddClass adds a class if absent
func (e *Element) AddClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.addClass(class)
}

func (e *Element) addClass(class string) {
	if !slices.Contains(e.classes, class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes a class if present
func (e *Element) RemoveClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.removeClass(class)
}

func (e *Element) removeClass(class string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

// HasClass reports whether the element carries the class
func (e *Element) HasClass(class string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Contains(e.classes, class)
}

// Classes returns a copy of the element's class list
func (e *Element) Classes() []string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.classes)
}

// SetDisabled toggles the disabled flag
func (e *Element) SetDisabled(disabled bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.disabled = disabled
}

// Disabled reports whether the element is disabled
func (e *Element) Disabled() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.disabled
}

// SetDisplay sets the display style ("" means the element's default)
func (e *Element) SetDisplay(display string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.display = display
}

// Display returns the display style
func (e *Element) Display() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.display
}

// Hidden reports whether the element is not displayed
func (e *Element) Hidden() bool {
	return e.Display() == DisplayNone
}
