// Package scan reads an account level and EXP from a screenshot with the help
// of an external vision model.
package scan

import (
	"context"
	"fmt"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
)

// ModelClient sends a prompt and an image to a vision model and returns the
// raw text it answered with.
type ModelClient interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// Service defines screenshot scanning
type Service interface {
	Scan(ctx context.Context, image []byte, mimeType string) (domain.ScanResult, error)
}

type service struct {
	client ModelClient
}

// NewService creates a scan service backed by client
func NewService(client ModelClient) Service {
	return &service{client: client}
}

// Scan validates the image, asks the model to read it and parses the answer.
func (s *service) Scan(ctx context.Context, image []byte, mimeType string) (domain.ScanResult, error) {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		return domain.ScanResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyImage)
	}
	if len(image) > MaxImageBytes {
		return domain.ScanResult{}, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidInput, MaxImageBytes)
	}
	if !SupportedMIMETypes[mimeType] {
		return domain.ScanResult{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnsupportedImage, mimeType)
	}

	text, err := s.client.Generate(ctx, Prompt, image, mimeType)
	if err != nil {
		log.Error("Vision model request failed", "error", err)
		return domain.ScanResult{}, fmt.Errorf("%s: %w", ErrMsgModelFailed, err)
	}

	result, err := ParseModelOutput(text)
	if err != nil {
		log.Warn("Unreadable scan", "error", err)
		return domain.ScanResult{}, err
	}

	log.Info("Screenshot scanned", "level", result.Level, "progress", result.Progress.String())
	return result, nil
}
