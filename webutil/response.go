package webutil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondWithBytes writes a static body, e.g. the embedded form page.
func RespondWithBytes(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set(HeaderContentType, contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func HasResponseWriterSentHeader(w http.ResponseWriter) bool {
	return w.Header().Get(HeaderContentType) != ""
}
