package form

import (
	"errors"
	"fmt"
)

const (
	FormID       = "newsletter-form"
	EmailInputID = "email"
	SubmitEvent  = "submit"
)

var ErrElementNotFound = errors.New("element not found")

// Document is the slice of the page the form handler needs.
type Document interface {
	GetElementByID(id string) (Element, bool)
}

type Element interface {
	Value() string
	AddEventListener(eventType string, listener func(Event))
}

// Event is a DOM event whose default action can be suppressed.
type Event interface {
	PreventDefault()
}

// EmailSource reads the current email value at submission time.
type EmailSource func() (string, error)

// InputValue returns an EmailSource that looks the element up on every call,
// so an input added or removed after load is seen as it is at submit time.
func InputValue(doc Document, id string) EmailSource {
	return func() (string, error) {
		el, ok := doc.GetElementByID(id)
		if !ok {
			return "", fmt.Errorf("%w: #%s", ErrElementNotFound, id)
		}
		return el.Value(), nil
	}
}
