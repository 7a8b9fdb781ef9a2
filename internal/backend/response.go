package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)

type envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func send(req *pkghttp.Request) (pkghttp.Response, error) {
	resp, err := req.Send()
	if err != nil {
		return nil, err
	}

	return resp, checkStatus(resp)
}

func sendAndParse[T any](req *pkghttp.Request) (T, error) {
	resp, err := send(req)
	if err != nil {
		var result T
		return result, err
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONResponseBody[envelope[T]]())
	return body.Data, err
}

func checkStatus(resp pkghttp.Response) error {
	code := resp.StatusCode()
	if code < http.StatusBadRequest {
		return nil
	}

	detail := errorDetail(resp.Body())
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	default:
		return fmt.Errorf("unexpected response status %d: %s", code, detail)
	}
}

// errorDetail returns the backend's detail message. Validation failures carry a list of
// issues instead of a string and are returned as raw JSON.
func errorDetail(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		return strconv.Quote(string(body))
	}

	var message string
	if err := json.Unmarshal(parsed.Detail, &message); err == nil {
		return message
	}

	return string(parsed.Detail)
}

func pageParams(page, limit int) (string, string) {
	var pageValue, limitValue string
	if page > 0 {
		pageValue = strconv.Itoa(page)
	}
	if limit > 0 {
		limitValue = strconv.Itoa(limit)
	}
	return pageValue, limitValue
}
