package utils

import (
	"testing"

	"stayhaven/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != 32 {
		t.Fatalf("expected a 32-char hex token, got %q", token)
	}

	other, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == other {
		t.Fatal("tokens must be unique")
	}

	if HashToken(token) != HashToken(token) {
		t.Fatal("hashing must be deterministic")
	}
	if HashToken(token) == HashToken(other) {
		t.Fatal("distinct tokens must hash differently")
	}
}

func TestViewerCookieRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	cookie, err := GenerateViewerCookie("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viewerID, err := ParseViewerCookie(cookie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viewerID != "user-123" {
		t.Fatalf("got %q, want user-123", viewerID)
	}
}

func TestParseViewerCookieRejectsTampering(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	cookie, err := GenerateViewerCookie("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseViewerCookie(cookie + "x"); err == nil {
		t.Fatal("a tampered cookie must not parse")
	}

	config.AppConfig.JWTSecret = "different-secret"
	if _, err := ParseViewerCookie(cookie); err == nil {
		t.Fatal("a cookie signed with another secret must not parse")
	}
}
