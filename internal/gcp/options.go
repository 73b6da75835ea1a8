package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

var scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/devstorage.read_write",
	"https://www.googleapis.com/auth/firebase",
	"https://www.googleapis.com/auth/identitytoolkit",
	"https://www.googleapis.com/auth/userinfo.email",
}

// ClientOptions picks Google credentials for Firebase and Cloud Storage clients:
// inline service-account JSON first, then a key file, then application default credentials.
func ClientOptions(ctx context.Context, credentialsJSON, credentialsFile string) ([]option.ClientOption, error) {
	switch {
	case credentialsJSON != "":
		creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), scopes...)
		if err != nil {
			return nil, fmt.Errorf("parse GOOGLE_CREDENTIALS_JSON: %w", err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	case credentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}, nil
	default:
		return nil, nil
	}
}
