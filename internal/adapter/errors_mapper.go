package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		statusErr.sentinel = ErrNotFound
	case http.StatusBadGateway:
		statusErr.sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.sentinel = ErrInternalServerError
	}

	return statusErr
}
