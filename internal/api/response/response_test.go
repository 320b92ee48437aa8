package response

import (
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	env := Success(map[string]string{"k": "v"}, "done")
	if env.Meta.Code != http.StatusOK || env.Meta.Status != "success" || env.Meta.Message != "done" {
		t.Fatalf("unexpected meta: %+v", env.Meta)
	}
	if env.Data == nil {
		t.Fatalf("expected data to be carried")
	}
}

func TestError(t *testing.T) {
	env := Error(nil, "boom", http.StatusBadRequest)
	if env.Meta.Code != http.StatusBadRequest || env.Meta.Status != "error" || env.Meta.Message != "boom" {
		t.Fatalf("unexpected meta: %+v", env.Meta)
	}
	if env.Data != nil {
		t.Fatalf("expected nil data")
	}
}

func TestEnvelopesAreIndependent(t *testing.T) {
	first := Error(nil, "first", http.StatusBadRequest)
	second := Error(nil, "second", http.StatusInternalServerError)
	if first.Meta.Message != "first" || first.Meta.Code != http.StatusBadRequest {
		t.Fatalf("earlier envelope mutated: %+v", first.Meta)
	}
	if second.Meta.Message != "second" {
		t.Fatalf("unexpected meta: %+v", second.Meta)
	}
}
