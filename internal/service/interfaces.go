package service

import (
	"context"

	"github.com/MKhiriev/go-note-share/internal/op"
	"github.com/MKhiriev/go-note-share/models"
)

// OpClient is the slice of the 1Password CLI surface the sharing pipeline
// depends on. It is satisfied by [op.Client].
type OpClient interface {
	CheckSession(ctx context.Context) error
	VaultExists(ctx context.Context, name string) (bool, error)
	CreateVault(ctx context.Context, name string) error
	GetTemplate(ctx context.Context, kind string) ([]byte, error)
	CreateItem(ctx context.Context, params op.ItemCreateParams) ([]byte, error)
	ShareItem(ctx context.Context, req models.ShareRequest) (string, error)
}
