package form

import (
	"sync"
)

// StaticDocument is an in-memory Document for running the form headless.
type StaticDocument struct {
	mu       sync.Mutex
	elements map[string]*StaticElement
}

func NewStaticDocument() *StaticDocument {
	return &StaticDocument{elements: make(map[string]*StaticElement)}
}

// Add registers an element under id, replacing any previous one.
func (d *StaticDocument) Add(id, value string) *StaticElement {
	el := &StaticElement{value: value}
	d.mu.Lock()
	d.elements[id] = el
	d.mu.Unlock()
	return el
}

func (d *StaticDocument) Remove(id string) {
	d.mu.Lock()
	delete(d.elements, id)
	d.mu.Unlock()
}

func (d *StaticDocument) GetElementByID(id string) (Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

type StaticElement struct {
	mu        sync.Mutex
	value     string
	listeners map[string][]func(Event)
}

func (e *StaticElement) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *StaticElement) SetValue(value string) {
	e.mu.Lock()
	e.value = value
	e.mu.Unlock()
}

func (e *StaticElement) AddEventListener(eventType string, listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string][]func(Event))
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// Dispatch fires a synthetic event at the element's listeners and reports
// whether any of them suppressed the default action.
func (e *StaticElement) Dispatch(eventType string) *StaticEvent {
	e.mu.Lock()
	listeners := append([]func(Event){}, e.listeners[eventType]...)
	e.mu.Unlock()

	event := &StaticEvent{Type: eventType}
	for _, listener := range listeners {
		listener(event)
	}
	return event
}

type StaticEvent struct {
	Type string

	mu               sync.Mutex
	defaultPrevented bool
}

func (e *StaticEvent) PreventDefault() {
	e.mu.Lock()
	e.defaultPrevented = true
	e.mu.Unlock()
}

func (e *StaticEvent) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultPrevented
}
