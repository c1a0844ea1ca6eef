package form

import (
	"context"
	"fmt"
)

// Bind attaches the handler to the newsletter form's submit event.
// It runs once, at page load.
func Bind(ctx context.Context, doc Document, handler *Handler) error {
	formEl, ok := doc.GetElementByID(FormID)
	if !ok {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, FormID)
	}

	formEl.AddEventListener(SubmitEvent, func(event Event) {
		if _, err := handler.HandleSubmit(ctx, event); err != nil {
			handler.logger.Error("Submit handling aborted", "error", err)
		}
	})

	return nil
}

// NewDocumentHandler builds a Handler that reads the email from the
// document's #email input.
func NewDocumentHandler(doc Document, subscriber Subscriber, sink Sink) *Handler {
	return NewHandler(subscriber, InputValue(doc, EmailInputID), sink, nil)
}
