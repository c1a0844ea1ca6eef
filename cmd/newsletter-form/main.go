//go:build js && wasm

// Command newsletter-form is the WebAssembly build of the newsletter signup
// script. It binds #newsletter-form on the hosting page and posts the
// entered email to the project's subscriptions endpoint.
//
//	GOOS=js GOARCH=wasm go build -o static/newsletter.wasm ./cmd/newsletter-form
package main

import (
	"context"
	"log/slog"

	"github.com/statictask/newsletter/form"
	"github.com/statictask/newsletter/subscription"
)

func main() {
	client, err := subscription.NewClient(subscription.Config{
		BaseURL:   subscription.DefaultBaseURL,
		ProjectID: subscription.DefaultProjectID,
	})
	if err != nil {
		slog.Error("Subscription client setup failed", "error", err)
		return
	}

	doc := form.BrowserDocument()
	handler := form.NewDocumentHandler(doc, client, form.NewConsoleSink())

	if err := form.Bind(context.Background(), doc, handler); err != nil {
		slog.Error("Binding newsletter form failed", "error", err)
		return
	}

	// Keep the Go runtime alive so the listener stays callable.
	select {}
}
