package bind

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

type samplePayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestJSON_Valid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"aacuser","password":"x"}`))

	var p samplePayload
	if err := JSON(r, &p); err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	if p.Username != "aacuser" {
		t.Fatalf("unexpected decode: %#v", p)
	}
}

func TestJSON_MalformedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{oops`))

	var p samplePayload
	if err := JSON(r, &p); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestJSON_MissingFieldUsesJSONName(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"aacuser"}`))

	var p samplePayload
	err := JSON(r, &p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	// El mensaje nombra el campo como lo ve el cliente, no el struct Go.
	if err.Error() != "password is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
