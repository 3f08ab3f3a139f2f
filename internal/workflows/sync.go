package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/webdav"
)

// Upload stores document at <server>/T-Countdown/data.json, creating the
// folder first. Folder creation failures are ignored; only the upload
// itself decides the outcome.
//
// Returns ErrNotConfigured when no remote is stored, ErrDecode when the
// stored credentials are corrupt, and ErrNetwork when the upload fails.
func (s *Syncer) Upload(ctx context.Context, document string) error {
	server, creds, err := s.credentials()
	if err != nil {
		s.record("upload", server, 0, err)
		return err
	}

	s.client.EnsureFolder(ctx, server, creds)

	err = s.client.Put(ctx, webdav.ObjectURL(server), creds, document)
	s.record("upload", server, len(document), err)
	if err != nil {
		return fmt.Errorf("uploading document: %w", err)
	}
	return nil
}

// Download fetches the remote document. A missing document yields "[]".
//
// Returns ErrNotConfigured when no remote is stored, ErrDecode when the
// stored credentials are corrupt, and ErrNetwork when the download fails.
func (s *Syncer) Download(ctx context.Context) (string, error) {
	server, creds, err := s.credentials()
	if err != nil {
		s.record("download", server, 0, err)
		return "", err
	}

	document, err := s.client.Get(ctx, webdav.ObjectURL(server), creds)
	s.record("download", server, len(document), err)
	if err != nil {
		return "", fmt.Errorf("downloading document: %w", err)
	}
	return document, nil
}
