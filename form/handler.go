package form

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/statictask/newsletter/subscription"
)

// Subscriber sends one subscription request. *subscription.Client satisfies it.
type Subscriber interface {
	Subscribe(ctx context.Context, request subscription.Request) (subscription.Response, error)
}

// Result is the outcome of one submission: either Data or Err is set.
type Result struct {
	SubmissionID uuid.UUID
	Data         subscription.Response
	Err          error
}

// Handler reacts to submissions of the newsletter form. It keeps no state
// between submissions: every submit produces its own request, with no
// de-duplication, in-flight guard or cancellation.
type Handler struct {
	subscriber Subscriber
	email      EmailSource
	sink       Sink
	logger     *slog.Logger
}

func NewHandler(subscriber Subscriber, email EmailSource, sink Sink, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = NewSlogSink(logger)
	}
	return &Handler{
		subscriber: subscriber,
		email:      email,
		sink:       sink,
		logger:     logger,
	}
}

// HandleSubmit suppresses the event's default action, reads the email and
// sends it on a new goroutine. It returns as soon as the request is issued;
// the channel yields the single Result once the response arrives.
//
// A missing email input halts handling of this event only: the error is
// returned and nothing is sent.
func (h *Handler) HandleSubmit(ctx context.Context, event Event) (<-chan Result, error) {
	event.PreventDefault()

	email, err := h.email()
	if err != nil {
		return nil, err
	}

	results := make(chan Result, 1)
	go func() {
		defer close(results)
		results <- h.Submit(ctx, email)
	}()

	return results, nil
}

// Submit sends one subscription and reports the outcome to the sink.
// An HTTP error status with a JSON body counts as success.
func (h *Handler) Submit(ctx context.Context, email string) Result {
	result := Result{SubmissionID: uuid.New()}
	logger := h.logger.With("submission_id", result.SubmissionID.String())
	logger.Debug("Sending subscription")

	result.Data, result.Err = h.subscriber.Subscribe(ctx, subscription.Request{Email: email})

	switch {
	case result.Err != nil:
		logger.Debug("Subscription request failed", "error", result.Err)
		h.sink.Error(result.Err)
	default:
		logger.Debug("Subscription request completed")
		h.sink.Log(result.Data)
	}

	return result
}
