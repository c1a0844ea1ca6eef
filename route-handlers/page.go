package routehandlers

import (
	"bytes"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/statictask/newsletter/webutil"
)

// PageHandler serves the newsletter form page and the files it loads
// (wasm_exec.js and newsletter.wasm).
type PageHandler struct {
	Page   []byte
	Assets fs.FS
}

func NewPageHandler(page []byte, assets fs.FS) *PageHandler {
	return &PageHandler{Page: page, Assets: assets}
}

func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) error {
	webutil.RespondWithBytes(w, http.StatusOK, webutil.ContentTypeHTMLUTF8, h.Page)
	return nil
}

func (h *PageHandler) HandleAsset(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "*")
	if !fs.ValidPath(name) || name == "." {
		return webutil.ErrBadRequest("Invalid asset path")
	}

	info, err := fs.Stat(h.Assets, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return webutil.ErrNotFoundWrap("Asset not found", err)
		}
		return webutil.ErrInternalServerWrap("stat asset "+name, err)
	}
	if info.IsDir() {
		return webutil.ErrNotFound("Asset not found")
	}

	data, err := fs.ReadFile(h.Assets, name)
	if err != nil {
		return webutil.ErrInternalServerWrap("read asset "+name, err)
	}

	w.Header().Set(webutil.HeaderContentType, assetContentType(name))
	w.Header().Set(webutil.HeaderCacheControl, "no-cache")
	http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(data))
	return nil
}

func assetContentType(name string) string {
	switch path.Ext(name) {
	case ".wasm":
		return webutil.ContentTypeWasm
	case ".js":
		return webutil.ContentTypeJavaScript
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func HandleHealthCheck(w http.ResponseWriter, r *http.Request) error {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}
