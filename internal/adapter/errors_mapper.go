package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &StatusError{
		Op:     op,
		Code:   resp.StatusCode(),
		Status: http.StatusText(resp.StatusCode()),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}
