package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUsernameCtxKey(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected 'username', got '%s'", UsernameCtxKey.String())
	}
}

func TestGetUsernameFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "alice")

	username, ok := GetUsernameFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "alice" {
		t.Errorf("expected username=alice, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	username, ok := GetUsernameFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %s", username)
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	username, ok := GetUsernameFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %s", username)
	}
}

func TestGetUsernameFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "bob")

	username, ok := GetUsernameFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %s", username)
	}
}
