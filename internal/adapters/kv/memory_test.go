package kv

import (
	"context"
	"testing"
)

func TestMemory_MissingKeyReturnsNil(t *testing.T) {
	m := NewMemory()
	v, err := m.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != nil {
		t.Errorf("Get(absent) = %q, want nil", v)
	}
}

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(v) != "v1" {
		t.Errorf("Get = %q, want v1", v)
	}

	if err := m.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, _ = m.Get(ctx, "k")
	if string(v) != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", v)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	v, _ = m.Get(ctx, "k")
	if v != nil {
		t.Errorf("Get after delete = %q, want nil", v)
	}
}

func TestMemory_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("abc")
	m.Set(ctx, "k", in)
	in[0] = 'x'

	out, _ := m.Get(ctx, "k")
	if string(out) != "abc" {
		t.Errorf("stored value aliased the caller's slice: %q", out)
	}

	out[0] = 'y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned value aliased the store: %q", again)
	}
}
