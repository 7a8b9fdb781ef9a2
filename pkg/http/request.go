package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/adoption-portal/pkg/strings"
)

const ContentTypeJSON = "application/json"

type RequestExtractor[T any] func(*http.Request) (T, error)

func ParseRequest[T any](r *http.Request, extractor RequestExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func PathParameter[T strings.SupportedValueParsingTypes](param string) RequestExtractor[T] {
	return func(r *http.Request) (T, error) {
		value, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseValue[T](value)
	}
}

// QueryParameterOptional returns nil when the parameter is absent or empty.
func QueryParameterOptional[T strings.SupportedValueParsingTypes](param string) RequestExtractor[*T] {
	return func(r *http.Request) (*T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			return nil, nil
		}

		v, err := parseValue[T](value)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// JSONBody rejects bodies not declared as application/json.
func JSONBody[T any]() RequestExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != ContentTypeJSON {
			return result, fmt.Errorf("%w: content type must be %s", ErrParsingError, ContentTypeJSON)
		}

		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func parseValue[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return v, nil
}
