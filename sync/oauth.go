// ABOUTME: OAuth configuration and token management for Google APIs
// ABOUTME: Handles OAuth flow config, token storage at XDG paths, and client options for services
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrNoCredentials = errors.New("google credentials not configured")

// Scopes requested by the updater. Changing them invalidates saved tokens.
var Scopes = []string{
	docs.DocumentsScope,
	sheets.SpreadsheetsReadonlyScope,
	drive.DriveMetadataReadonlyScope,
}

// NewOAuthConfig creates OAuth2 config for Google APIs.
// Users must create their own OAuth app in Google Cloud Console and set
// GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.
func NewOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  "http://localhost:8080/oauth/callback",
		Scopes:       Scopes,
		Endpoint:     google.Endpoint,
	}
}

// TokenPath returns XDG-compliant path for storing OAuth tokens.
func TokenPath() string {
	return filepath.Join(xdg.DataHome, "photodir", "google-credentials.json")
}

// SaveToken saves OAuth token to path, or TokenPath when path is empty.
func SaveToken(path string, token *oauth2.Token) error {
	if path == "" {
		path = TokenPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	// Write token file with restricted permissions
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}

// LoadToken loads OAuth token from path, or TokenPath when path is empty.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = TokenPath()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return &token, nil
}

// GetOAuthConfig returns the OAuth config or an error when the client id or
// secret is missing.
func GetOAuthConfig() (*oauth2.Config, error) {
	config := NewOAuthConfig()

	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("%w: set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables", ErrNoCredentials)
	}

	return config, nil
}

// ClientOptions picks the credentials for the Google services: a service
// account key file when credentialsFile is set, otherwise the saved OAuth token.
func ClientOptions(ctx context.Context, credentialsFile string) ([]option.ClientOption, error) {
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoCredentials, err)
		}
		return []option.ClientOption{
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(Scopes...),
		}, nil
	}

	config, err := GetOAuthConfig()
	if err != nil {
		return nil, err
	}

	token, err := LoadToken("")
	if err != nil {
		return nil, fmt.Errorf("%w: no authentication token found, run 'photodir auth' first: %w", ErrNoCredentials, err)
	}

	return []option.ClientOption{option.WithHTTPClient(config.Client(ctx, token))}, nil
}
