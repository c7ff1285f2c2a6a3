package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-note-keeper/internal/store"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	// routes authorised by a signed download token
	router.Group(func(r chi.Router) {
		r.Use(h.blobToken)
		r.Get(store.BlobDownloadPrefix+"*", h.downloadBlob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
