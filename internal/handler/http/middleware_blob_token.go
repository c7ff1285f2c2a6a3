package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// blobToken authorises a blob download.
//
// The token is taken from the "token" query parameter, which is where signed
// URLs carry it, or from an "Authorization: Bearer" header. It must verify
// and grant exactly the requested path; the granted path is stored in the
// request context under [utils.BlobPathCtxKey].
func (h *Handler) blobToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, statusFromError(err), err.Error())
			return
		}

		granted, err := h.blobs.VerifyToken(token)
		if err != nil {
			status := statusFromError(err)
			log.Err(err).Int("status", status).Msg("blob token rejected")
			utils.WriteError(w, status, http.StatusText(status))
			return
		}

		requested, err := requestedBlobPath(r)
		if err != nil {
			log.Err(err).Msg("malformed blob path")
			utils.WriteError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
			return
		}
		if requested != granted {
			log.Warn().
				Str("requested", requested).
				Str("granted", granted).
				Msg("blob token issued for another path")
			utils.WriteError(w, http.StatusForbidden, ErrTokenPathMismatch.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBlobPath(r.Context(), granted)))
	})
}

// requestedBlobPath returns the unescaped blob path of the route. chi
// matches on RawPath when the client escaped more than required.
func requestedBlobPath(r *http.Request) (string, error) {
	requested := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return requested, nil
	}
	return url.PathUnescape(requested)
}

func tokenFromRequest(r *http.Request) (string, error) {
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingBlobToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return token, nil
}
