// Package assets holds the page the newsletter form script binds to.
package assets

import (
	_ "embed"
)

//go:embed index.html
var IndexHTML []byte
