package handlers

import (
	"fmt"
	"io"
	"net/http"
)

// Greeting is a fixed response served by the hello servers.
type Greeting struct {
	ContentType string
	Body        string
}

// Greetings maps variant names to their fixed responses.
var Greetings = map[string]Greeting{
	"lec1": {ContentType: "text/plain", Body: "Hello World from NodeJs server  "},
	"lec3": {ContentType: "text/html", Body: "Hello World!"},
}

// HelloHandler answers every request with the same greeting.
type HelloHandler struct {
	greeting Greeting
}

// NewHelloHandler returns a handler for the named variant.
func NewHelloHandler(variant string) (*HelloHandler, error) {
	g, ok := Greetings[variant]
	if !ok {
		return nil, fmt.Errorf("unknown hello variant %q", variant)
	}
	return &HelloHandler{greeting: g}, nil
}

// ServeHTTP writes the greeting regardless of method or path.
func (h *HelloHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", h.greeting.ContentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, h.greeting.Body)
}
