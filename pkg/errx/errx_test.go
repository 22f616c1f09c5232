package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	if code != "WIDGET_NOT_FOUND" {
		t.Errorf("code = %s, want WIDGET_NOT_FOUND", code)
	}

	e := reg.New(code)
	if e.Type != TypeNotFound {
		t.Errorf("Type = %s", e.Type)
	}
	if e.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d", e.HTTPStatus)
	}
	if e.Message != "Widget not found" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestRegistryDuplicateCodePanics(t *testing.T) {
	reg := NewRegistry("WIDGET")
	reg.Register("BROKEN", TypeInternal, http.StatusInternalServerError, "broken")

	defer func() {
		if recover() == nil {
			t.Error("expected duplicate Register to panic")
		}
	}()
	reg.Register("BROKEN", TypeInternal, http.StatusInternalServerError, "broken again")
}

func TestNewWithCause(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("FAILED", TypeInternal, http.StatusInternalServerError, "Operation failed")

	cause := fmt.Errorf("connection refused")
	e := reg.NewWithCause(code, cause)

	if !errors.Is(e, cause) {
		t.Error("NewWithCause did not preserve the cause chain")
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if Wrap(nil, "ignored", TypeInternal) != nil {
			t.Error("Wrap(nil) should be nil")
		}
	})

	t.Run("existing Error passes through untouched", func(t *testing.T) {
		reg := NewRegistry("WIDGET")
		code := reg.Register("MISSING", TypeNotFound, http.StatusNotFound, "missing")
		orig := reg.New(code)

		wrapped := Wrap(orig, "different message", TypeInternal)
		if wrapped != orig {
			t.Error("Wrap should return the original *Error unchanged")
		}
		if wrapped.HTTPStatus != http.StatusNotFound {
			t.Errorf("HTTPStatus = %d, want the original 404", wrapped.HTTPStatus)
		}
	})

	t.Run("plain errors become internal errors", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		e := Wrap(cause, "An unexpected error occurred", TypeInternal)

		if e.Code != "INTERNAL_ERROR" {
			t.Errorf("Code = %s, want INTERNAL_ERROR", e.Code)
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Errorf("HTTPStatus = %d, want 500", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Error("cause chain lost")
		}
	})
}

func TestToHTTPResponseHidesCause(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("FAILED", TypeInternal, http.StatusInternalServerError, "Operation failed")

	e := reg.NewWithCause(code, fmt.Errorf("password=hunter2 leaked")).
		WithDetail("operation", "save")
	resp := e.ToHTTPResponse()

	if resp.Code != code || resp.Message != "Operation failed" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Details["operation"] != "save" {
		t.Errorf("details missing: %+v", resp.Details)
	}
}
