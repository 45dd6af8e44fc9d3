package handlers

import (
	"log"
	"net/http"
)

func (h *Handler) Ping(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("pong"))
}

func (h *Handler) Readiness(writer http.ResponseWriter, request *http.Request) {
	if h.Ready != nil {
		if err := h.Ready(request.Context()); err != nil {
			log.Printf("Readiness probe failed: %v", err)
			sendError(writer, "Storage not reachable", http.StatusServiceUnavailable)
			return
		}
	}
	writer.WriteHeader(http.StatusOK)
}
