package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/university/internal/apperror"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperror.Validation("x must not be null"), want: http.StatusBadRequest},
		{name: "not found", err: apperror.NotFound(apperror.ReasonStudentNotFound), want: http.StatusNotFound},
		{name: "unprocessable", err: apperror.Unprocessable("no question registered with id %d", 1), want: http.StatusUnprocessableEntity},
		{name: "wrapped not found", err: errors.Wrap(apperror.NotFound(apperror.ReasonExamNotFound), "tx"), want: http.StatusNotFound},
		{name: "storage failure", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondError(ctx, err)
	return w
}

func TestRespondErrorBodies(t *testing.T) {
	w := respond(apperror.Validation("a must not be null", "b must not be blank"))
	var messages []string
	if err := json.Unmarshal(w.Body.Bytes(), &messages); err != nil {
		t.Fatalf("validation body must be a JSON array: %v (%s)", err, w.Body.String())
	}
	if len(messages) != 2 || messages[0] != "a must not be null" {
		t.Fatalf("unexpected messages %v", messages)
	}

	w = respond(apperror.NotFound(apperror.ReasonStudentNotFound))
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if w.Code != http.StatusNotFound || body["error"] != "student not registered" {
		t.Fatalf("unexpected response %d %v", w.Code, body)
	}

	w = respond(errors.New("pq: deadlock detected"))
	body = map[string]string{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if w.Code != http.StatusInternalServerError || body["error"] != "internal server error" {
		t.Fatalf("storage details must not leak: %d %v", w.Code, body)
	}
}

func TestParseIDAndCreatedAt(t *testing.T) {
	r := gin.New()
	r.POST("/students/:student_id/things", func(ctx *gin.Context) {
		id, ok := ParseID(ctx, "student_id")
		if !ok {
			return
		}
		CreatedAt(ctx, id+40)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students/2/things", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "http://example.com/students/2/things/42" {
		t.Fatalf("unexpected location %q", got)
	}

	for _, raw := range []string{"abc", "0", "-3", "9223372036854775808", "18446744073709551615"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students/"+raw+"/things", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", raw, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString(requestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Fatalf("expected generated request id, header=%q body=%q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller request id, got %q", got)
	}
}
