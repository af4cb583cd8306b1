package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)
}

// Upload categories. Every uploaded file lives under its category prefix.
const (
	CategoryProfiles = "profiles"
	CategoryPayments = "payments"
	CategoryMenus    = "menus"
	CategoryCarousel = "carousel"
	CategoryFood     = "food"
	CategoryStaff    = "staff"
	CategoryOwners   = "owners"
	CategoryQR       = "payments/qr"
)

// ObjectPath builds a collision-free storage path for an uploaded file:
// <category>/<uuid><ext>. The original name only contributes its extension.
func ObjectPath(category, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s/%s%s", category, uuid.NewString(), ext)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For R2
	AccessKey  string // For R2
	SecretKey  string // For R2
	Endpoint   string // For R2
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
