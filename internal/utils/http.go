package utils

import (
	"fmt"
	"html"
	"net/http"
)

const htmlPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>%s</title></head>
<body><h1>%s</h1><p>%s</p></body></html>
`

// WriteHTML writes a minimal HTML page with the given title and message and
// the provided HTTP status code. Title and message are escaped.
//
// Returns the number of bytes written to the response body.
//
// Example usage:
//
//	WriteHTML(w, "Signed in", "You can close this window.", http.StatusOK)
func WriteHTML(w http.ResponseWriter, title, message string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	t := html.EscapeString(title)
	return fmt.Fprintf(w, htmlPage, t, t, html.EscapeString(message))
}
