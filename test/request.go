// Package test contains helpers for tests that run requests against the full router.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"

	v1 "github.com/envelope-zero/tracker/internal/controllers/v1"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/router"
	"github.com/envelope-zero/tracker/internal/service"
	"github.com/envelope-zero/tracker/internal/store"
	"github.com/envelope-zero/tracker/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL is the external URL the test routers are configured with.
const BaseURL = "http://example.com"

// Backend configures the backend created by Router.
//
// Zero values use the same defaults as the production backend.
type Backend struct {
	Now      func() time.Time // Clock for the store and services
	IDs      uuid.Generator   // Generator for expense IDs
	Currency models.Currency  // Currency of the monthly report
}

// Router returns a router with all routes attached, backed by a store in dir.
//
// The store is initialized. Metrics are unregistered when the test ends.
func Router(t *testing.T, dir string, b Backend) *gin.Engine {
	if b.Now == nil {
		b.Now = time.Now
	}

	if b.Currency == (models.Currency{}) {
		b.Currency = models.Currency{Code: "USD", Symbol: "US$"}
	}

	s := store.New(dir, store.WithClock(b.Now))
	require.Nil(t, s.Init(), "Store could not be initialized")

	co := v1.Controller{
		Expenses: service.NewExpenseService(s, b.IDs),
		Income:   service.NewIncomeService(s, b.Now),
		Report:   service.NewReportService(s, s, b.Currency, b.Now),
	}

	baseURL, err := url.Parse(BaseURL)
	require.Nil(t, err)

	r, teardown, err := router.Config(baseURL, router.Options{})
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	t.Cleanup(teardown)

	router.AttachRoutes(r.Group("/"), co, s, router.Options{})
	return r
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, r http.Handler, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch {
	case body == nil:
		byteBuffer = &bytes.Buffer{}
	case reflect.TypeOf(body).Kind() == reflect.String:
		// If the body is a string, send it as is
		byteBuffer = bytes.NewBufferString(body.(string))
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
