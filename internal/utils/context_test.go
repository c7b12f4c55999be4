// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func TestClientIDCtxKey(t *testing.T) {
	if ClientIDCtxKey.String() != "clientID" {
		t.Errorf("expected 'clientID', got '%s'", ClientIDCtxKey.String())
	}
}

func TestGetClientIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "desktop")

	clientID, ok := GetClientIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if clientID != "desktop" {
		t.Errorf("expected clientID='desktop', got %q", clientID)
	}
}

func TestGetClientIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	clientID, ok := GetClientIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if clientID != "" {
		t.Errorf("expected empty clientID, got %q", clientID)
	}
}

func TestGetClientIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, int64(42))

	clientID, ok := GetClientIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if clientID != "" {
		t.Errorf("expected empty clientID, got %q", clientID)
	}
}

func TestGetClientIDFromContext_EmptyValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "")

	clientID, ok := GetClientIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for empty string value, got false")
	}
	if clientID != "" {
		t.Errorf("expected empty clientID, got %q", clientID)
	}
}

func TestGetClientIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "mobile")

	clientID, ok := GetClientIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if clientID != "" {
		t.Errorf("expected empty clientID, got %q", clientID)
	}
}
