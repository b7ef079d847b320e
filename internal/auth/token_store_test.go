package auth

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestFileTokenStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	s := NewFileTokenStore(path)

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}
	if err := s.SaveToken(token); err != nil {
		t.Fatalf("SaveToken() returned an error: %v", err)
	}

	loaded, err := s.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() returned an error: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadToken() returned nil after save")
	}
	if loaded.AccessToken != token.AccessToken || loaded.RefreshToken != token.RefreshToken {
		t.Errorf("loaded token %+v does not match saved token", loaded)
	}
	if !loaded.Expiry.Equal(token.Expiry) {
		t.Errorf("loaded expiry %v, want %v", loaded.Expiry, token.Expiry)
	}
}

func TestFileTokenStoreMissingFile(t *testing.T) {
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "nope.json"))

	token, err := s.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() on a missing file should not error, got: %v", err)
	}
	if token != nil {
		t.Errorf("LoadToken() on a missing file = %+v, want nil", token)
	}
}
