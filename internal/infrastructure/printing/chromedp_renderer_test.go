package printing

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_tecnica/internal/infrastructure/config"
)

func TestRenderPDF_EmptyHTML(t *testing.T) {
	r := NewChromedpRenderer(config.DocumentsConfig{})
	defer r.Close()

	if _, err := r.RenderPDF(context.Background(), "  \n"); !errors.Is(err, ErrEmptyHTML) {
		t.Fatalf("expected ErrEmptyHTML, got %v", err)
	}
}

func TestNewChromedpRenderer_DefaultTimeout(t *testing.T) {
	r := NewChromedpRenderer(config.DocumentsConfig{})
	defer r.Close()
	if r.timeout != defaultRenderTimeout {
		t.Fatalf("timeout = %s", r.timeout)
	}

	r2 := NewChromedpRenderer(config.DocumentsConfig{RenderTimeout: 5 * time.Second})
	defer r2.Close()
	if r2.timeout != 5*time.Second {
		t.Fatalf("timeout = %s", r2.timeout)
	}
}
