package form

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statictask/newsletter/subscription"
)

func TestBind_MissingForm(t *testing.T) {
	doc := NewStaticDocument()
	doc.Add(EmailInputID, "a@b.com")

	h := NewDocumentHandler(doc, &fakeSubscriber{}, &recordingSink{})
	err := Bind(context.Background(), doc, h)
	require.ErrorIs(t, err, ErrElementNotFound)
	assert.Contains(t, err.Error(), "#"+FormID)
}

func TestBind_SubmitSendsRequest(t *testing.T) {
	doc := NewStaticDocument()
	formEl := doc.Add(FormID, "")
	doc.Add(EmailInputID, "a@b.com")

	sub := &fakeSubscriber{response: map[string]any{"status": "ok"}}
	sink := &recordingSink{}
	h := NewDocumentHandler(doc, sub, sink)
	require.NoError(t, Bind(context.Background(), doc, h))

	event := formEl.Dispatch(SubmitEvent)
	assert.True(t, event.DefaultPrevented())

	require.Eventually(t, func() bool {
		logs, _ := sink.snapshot()
		return len(logs) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []subscription.Request{{Email: "a@b.com"}}, sub.calls())
}

func TestBind_IgnoresOtherEvents(t *testing.T) {
	doc := newTestDocument("a@b.com")
	formEl, ok := doc.GetElementByID(FormID)
	require.True(t, ok)

	sub := &fakeSubscriber{}
	require.NoError(t, Bind(context.Background(), doc, NewDocumentHandler(doc, sub, &recordingSink{})))

	event := formEl.(*StaticElement).Dispatch("reset")
	assert.False(t, event.DefaultPrevented())
	assert.Empty(t, sub.calls())
}

func TestBind_DoubleSubmit(t *testing.T) {
	doc := NewStaticDocument()
	formEl := doc.Add(FormID, "")
	doc.Add(EmailInputID, "a@b.com")

	sub := &fakeSubscriber{response: map[string]any{}}
	sink := &recordingSink{}
	require.NoError(t, Bind(context.Background(), doc, NewDocumentHandler(doc, sub, sink)))

	first := formEl.Dispatch(SubmitEvent)
	second := formEl.Dispatch(SubmitEvent)
	assert.True(t, first.DefaultPrevented())
	assert.True(t, second.DefaultPrevented())

	require.Eventually(t, func() bool {
		logs, _ := sink.snapshot()
		return len(logs) == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.Len(t, sub.calls(), 2)
}

func TestBind_MissingEmailKeepsPageUsable(t *testing.T) {
	doc := NewStaticDocument()
	formEl := doc.Add(FormID, "")

	sub := &fakeSubscriber{response: map[string]any{}}
	sink := &recordingSink{}
	require.NoError(t, Bind(context.Background(), doc, NewDocumentHandler(doc, sub, sink)))

	event := formEl.Dispatch(SubmitEvent)
	assert.True(t, event.DefaultPrevented())
	assert.Empty(t, sub.calls())

	doc.Add(EmailInputID, "a@b.com")
	formEl.Dispatch(SubmitEvent)
	require.Eventually(t, func() bool { return len(sub.calls()) == 1 }, 5*time.Second, 10*time.Millisecond)
}
