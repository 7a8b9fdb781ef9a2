package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
	"github.com/klwxsrx/adoption-portal/pkg/log"
)

var errNotFound = errors.New("not found")

func TestServer_HandlerResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler pkghttp.HandlerFunc
		expect  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "json_body_with_status",
			handler: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusCreated).SetJSONBody(map[string]string{"name": "Rex"})
				return nil
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"name":"Rex"}`, rec.Body.String())
			},
		},
		{
			name: "redirect",
			handler: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.Redirect("/login")
				return nil
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/login", rec.Header().Get("Location"))
			},
		},
		{
			name: "mapped_error",
			handler: func(pkghttp.ResponseWriter, *http.Request) error {
				return errNotFound
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
			},
		},
		{
			name: "parsing_error",
			handler: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int]("id"), nil)
				return err
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "unknown_error",
			handler: func(pkghttp.ResponseWriter, *http.Request) error {
				return errors.New("boom")
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
		{
			name: "panic",
			handler: func(pkghttp.ResponseWriter, *http.Request) error {
				panic("unexpected")
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress,
				pkghttp.WithErrorMapping(map[int][]error{http.StatusNotFound: {errNotFound}}),
			)
			srv.Register(pkghttp.NewHandler(http.MethodGet, "/animals/{id}", tt.handler))

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animals/abc", nil))

			tt.expect(t, rec)
		})
	}
}

func TestServer_GroupSharesPathAcrossMethods(t *testing.T) {
	var guarded int
	guard := pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guarded++
			handler.ServeHTTP(w, r)
		})
	})

	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	registry := srv.Group(guard)
	registry.Register(pkghttp.NewHandler(http.MethodGet, "/profile", func(w pkghttp.ResponseWriter, _ *http.Request) error {
		w.SetStatusCode(http.StatusOK)
		return nil
	}))
	registry.Register(pkghttp.NewHandler(http.MethodPut, "/profile", func(w pkghttp.ResponseWriter, _ *http.Request) error {
		w.SetStatusCode(http.StatusNoContent)
		return nil
	}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/profile", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, guarded)
}

func TestServer_HealthCheckAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LevelInfo, log.WithOutput(&buf))

	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress,
		pkghttp.WithRequestIDs(logger),
		pkghttp.WithLogging(logger, log.LevelInfo, log.LevelError),
		pkghttp.WithHealthCheck(),
	)
	srv.Register(pkghttp.NewHandler(http.MethodGet, "/animals", func(w pkghttp.ResponseWriter, r *http.Request) error {
		id, ok := pkghttp.RequestID(r.Context())
		require.True(t, ok)
		w.SetJSONBody(map[string]string{"requestID": id})
		return nil
	}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, buf.Len())

	req := httptest.NewRequest(http.MethodGet, "/animals", nil)
	req.Header.Set(pkghttp.RequestIDHeader, "req-42")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(pkghttp.RequestIDHeader))
	assert.JSONEq(t, `{"requestID":"req-42"}`, rec.Body.String())

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "request handled", record["msg"])
	assert.Equal(t, "req-42", record["requestID"])
	assert.Equal(t, "GET_animals", record["routeName"])
	assert.EqualValues(t, http.StatusOK, record["responseCode"])
}

func TestParseRequest_QueryAndBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/applications?page=2", strings.NewReader(`{"animalId":"a1"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	page, err := pkghttp.ParseRequest(req, pkghttp.QueryParameterOptional[int]("page"), nil)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, 2, *page)

	limit, err := pkghttp.ParseRequest(req, pkghttp.QueryParameterOptional[int]("limit"), err)
	require.NoError(t, err)
	assert.Nil(t, limit)

	body, err := pkghttp.ParseRequest(req, pkghttp.JSONBody[struct {
		AnimalID string `json:"animalId"`
	}](), err)
	require.NoError(t, err)
	assert.Equal(t, "a1", body.AnimalID)

	_, err = pkghttp.ParseRequest(req, pkghttp.QueryParameterOptional[int]("page"), errNotFound)
	assert.ErrorIs(t, err, errNotFound)
}

func TestJSONBody_RequiresJSONContentType(t *testing.T) {
	for _, contentType := range []string{"", "text/plain", "application/x-www-form-urlencoded", "multipart/form-data; boundary=x"} {
		t.Run(contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{"name":"Eve"}`))
			if contentType != "" {
				req.Header.Set("Content-Type", contentType)
			}

			_, err := pkghttp.ParseRequest(req, pkghttp.JSONBody[map[string]string](), nil)
			assert.ErrorIs(t, err, pkghttp.ErrParsingError)
		})
	}
}

func TestServer_CrossOriginProtection(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		headers map[string]string
		expect  int
	}{
		{
			name:    "cross_site_post_rejected",
			method:  http.MethodPost,
			headers: map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "https://evil.example"},
			expect:  http.StatusForbidden,
		},
		{
			name:    "same_site_delete_rejected",
			method:  http.MethodDelete,
			headers: map[string]string{"Sec-Fetch-Site": "same-site"},
			expect:  http.StatusForbidden,
		},
		{
			name:    "foreign_origin_without_fetch_metadata_rejected",
			method:  http.MethodPut,
			headers: map[string]string{"Origin": "https://evil.example"},
			expect:  http.StatusForbidden,
		},
		{
			name:    "same_origin_post_served",
			method:  http.MethodPost,
			headers: map[string]string{"Sec-Fetch-Site": "same-origin", "Origin": "http://portal.local"},
			expect:  http.StatusNoContent,
		},
		{
			name:    "matching_origin_served",
			method:  http.MethodPost,
			headers: map[string]string{"Origin": "http://portal.local"},
			expect:  http.StatusNoContent,
		},
		{
			name:   "non_browser_client_served",
			method: http.MethodPatch,
			expect: http.StatusNoContent,
		},
		{
			name:    "cross_site_get_served",
			method:  http.MethodGet,
			headers: map[string]string{"Sec-Fetch-Site": "cross-site"},
			expect:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var served bool
			server := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithCrossOriginProtection())
			server.Register(pkghttp.NewHandler(tt.method, "/admin/users", func(w pkghttp.ResponseWriter, _ *http.Request) error {
				served = true
				w.SetStatusCode(http.StatusNoContent)
				return nil
			}))

			req := httptest.NewRequest(tt.method, "http://portal.local/admin/users", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			assert.Equal(t, tt.expect, rec.Code)
			assert.Equal(t, tt.expect != http.StatusForbidden, served)
		})
	}
}
