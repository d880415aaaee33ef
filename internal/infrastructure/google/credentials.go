package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// cloudPlatformScope covers both the Vision and Generative Language APIs.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// NewHTTPClient builds an authenticated HTTP client for Google APIs.
// When credentialsFile is set, the service-account JSON at that path is
// used; otherwise ambient default credentials are resolved. The returned
// client carries the given timeout on the underlying transport.
func NewHTTPClient(ctx context.Context, credentialsFile string, timeout time.Duration) (*http.Client, error) {
	creds, err := resolveCredentials(ctx, credentialsFile)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, creds.TokenSource)
	client.Timeout = timeout
	return client, nil
}

// resolveCredentials loads service-account credentials from the given
// file, falling back to ambient default credentials when no path is set.
func resolveCredentials(ctx context.Context, credentialsFile string) (*google.Credentials, error) {
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials file: %w", err)
		}
		return creds, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default credentials: %w", err)
	}
	return creds, nil
}
