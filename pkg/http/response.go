package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var ErrParsingError = errors.New("parsing error")

type (
	Response interface {
		StatusCode() int
		Header() http.Header
		Body() []byte
	}

	ResponseExtractor[T any] func(Response) (T, error)

	response struct {
		impl *resty.Response
	}
)

func ParseResponse[T any](resp Response, extractor ResponseExtractor[T]) (T, error) {
	return extractor(resp)
}

func JSONResponseBody[T any]() ResponseExtractor[T] {
	return func(resp Response) (T, error) {
		var result T
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}
		return result, nil
	}
}

func (r response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r response) Header() http.Header {
	return r.impl.Header()
}

func (r response) Body() []byte {
	return r.impl.Body()
}
