//go:build js && wasm

package form

import (
	"fmt"
	"syscall/js"
)

type browserDocument struct {
	doc js.Value
}

// BrowserDocument wraps the page's global document.
func BrowserDocument() Document {
	return browserDocument{doc: js.Global().Get("document")}
}

func (d browserDocument) GetElementByID(id string) (Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return browserElement{v: v}, true
}

type browserElement struct {
	v js.Value
}

func (e browserElement) Value() string {
	return e.v.Get("value").String()
}

// AddEventListener registers a Go callback. The js.Func is never released:
// listeners live as long as the page.
//
// The callback runs on the browser's event loop and must not block, which is
// why HandleSubmit moves the request onto its own goroutine.
func (e browserElement) AddEventListener(eventType string, listener func(Event)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			listener(browserEvent{v: args[0]})
		}
		return nil
	})
	e.v.Call("addEventListener", eventType, fn)
}

type browserEvent struct {
	v js.Value
}

func (e browserEvent) PreventDefault() {
	e.v.Call("preventDefault")
}

// ConsoleSink reports outcomes on the browser console.
type ConsoleSink struct {
	console js.Value
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{console: js.Global().Get("console")}
}

func (s *ConsoleSink) Log(v any) {
	s.console.Call("log", toJSValue(v))
}

func (s *ConsoleSink) Error(err error) {
	s.console.Call("error", err.Error())
}

// toJSValue converts decoded JSON to a JS value so the console shows an
// inspectable object rather than a Go-formatted string.
func toJSValue(v any) (out any) {
	defer func() {
		if recover() != nil {
			out = fmt.Sprint(v)
		}
	}()
	return js.ValueOf(v)
}
