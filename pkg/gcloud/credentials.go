package gcloud

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CloudPlatformScope covers both Text-to-Speech and Speech-to-Text.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// TokenSourceFromFile reads a Service Account JSON key. An empty path falls
// back to Application Default Credentials.
func TokenSourceFromFile(ctx context.Context, credentialsPath string) (oauth2.TokenSource, error) {
	if credentialsPath == "" {
		ts, err := google.DefaultTokenSource(ctx, CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("find default google credentials: %w", err)
		}
		return ts, nil
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data)
}

// TokenSourceFromJSON builds a token source from raw Service Account JSON.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return cfg.TokenSource(ctx), nil
}
