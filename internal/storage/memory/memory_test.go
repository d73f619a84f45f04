package memory

import (
	"context"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s := New()
	v, ok, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("expected miss, got (%q,%v)", v, ok)
	}
}

func TestSetThenGet(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("got (%q,%v,%v), want (v2,true,nil)", v, ok, err)
	}
}
