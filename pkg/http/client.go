package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

type (
	ClientOption func(*ClientImpl)

	RequestHook  func(*resty.Request) error
	ResponseHook func(*resty.Response) error

	Client interface {
		NewRequest(ctx context.Context, route Route) *Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}

	Route struct {
		Method string
		URL    string
	}
)

func NewClient(opts ...ClientOption) Client {
	client := &ClientImpl{
		RESTClient: resty.New(),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *ClientImpl) NewRequest(ctx context.Context, route Route) *Request {
	return &Request{
		impl:  c.RESTClient.NewRequest().SetContext(ctx),
		route: route,
	}
}

func (c *ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, baseURL string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(baseURL)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(key, value)
	}
}

// WithRequestHook runs the hook before every request is sent. Returning an error aborts
// the request and the error is returned to the caller.
func WithRequestHook(hook RequestHook) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return hook(req)
		})
	}
}

// WithResponseHook runs the hook for every received response, whatever its status code.
// Returning an error makes the call fail with it.
func WithResponseHook(hook ResponseHook) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			return hook(resp)
		})
	}
}

func WithRequestIDPropagation() ClientOption {
	return WithRequestHook(func(req *resty.Request) error {
		if id, ok := RequestID(req.Context()); ok {
			req.SetHeader(RequestIDHeader, id)
		}
		return nil
	})
}

// WithRequestLogging logs every call. Failures matching one of expectedErrs are logged with
// infoLevel.
func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level, expectedErrs ...error) ClientOption {
	return func(c *ClientImpl) {
		destination := c.DestinationName
		if destination == "" {
			destination = "-"
		}

		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			l := logger.With(log.Fields{
				"destination": destination,
				"method":      resp.Request.Method,
				"url":         resp.Request.URL,
				"code":        resp.StatusCode(),
				"duration":    resp.Time().String(),
			})
			if resp.StatusCode() >= http.StatusInternalServerError {
				l.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				l.Log(resp.Request.Context(), infoLevel, "http call completed")
			}
			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			l := logger.With(log.Fields{
				"destination": destination,
				"method":      req.Method,
				"url":         req.URL,
			}).WithError(err)
			for _, expected := range expectedErrs {
				if errors.Is(err, expected) {
					l.Log(req.Context(), infoLevel, "http call failed")
					return
				}
			}
			l.Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

type Request struct {
	impl  *resty.Request
	route Route
}

func (r *Request) SetPathParam(name, value string) *Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r *Request) SetQueryParam(name, value string) *Request {
	if value != "" {
		r.impl.SetQueryParam(name, value)
	}
	return r
}

func (r *Request) SetJSONBody(body any) *Request {
	r.impl.SetHeader("Content-Type", ContentTypeJSON).SetBody(body)
	return r
}

func (r *Request) SetMultipartField(name, value string) *Request {
	r.impl.SetMultipartFormData(map[string]string{name: value})
	return r
}

func (r *Request) SetFileReader(param, fileName string, reader io.Reader) *Request {
	r.impl.SetFileReader(param, fileName, reader)
	return r
}

// Send executes the request. A non-nil Response may be returned together with an error
// when a response hook rejected it.
func (r *Request) Send() (Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	var result Response
	if resp != nil && resp.RawResponse != nil {
		result = response{resp}
	}
	if err != nil {
		return result, fmt.Errorf("%s %s: %w", r.route.Method, r.route.URL, err)
	}

	return result, nil
}
