package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/color-analyzer/internal/imaging"
	"github.com/example/color-analyzer/internal/logging"
	"github.com/example/color-analyzer/internal/palette"
	"github.com/example/color-analyzer/internal/undertone"
	"github.com/example/color-analyzer/internal/upload"
)

// ErrInvalidSelector reports a style or formality value outside the
// enumerated set. It is a client-input error.
var ErrInvalidSelector = errors.New("invalid selector")

// Result is the outcome of a single analysis.
type Result struct {
	Undertone undertone.Undertone `json:"undertone"`
	Colors    []palette.Color     `json:"colors"`
	Outfits   []string            `json:"outfits"`
}

// AnalysisUseCase encapsulates the analyze pipeline: selector validation,
// temp staging, decode, classification, and table lookup.
type AnalysisUseCase struct {
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewAnalysisUseCase constructs a new use case instance.
func NewAnalysisUseCase(logger *zap.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		logger:         logger.Named("analysis_usecase"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// Analyze classifies the uploaded photo and assembles the matching palette
// and outfit suggestions. It returns a request identifier alongside the
// result. The staged temp file is removed on every exit path.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, style, formality string, imageBytes []byte) (string, *Result, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.analyze", requestID)

	st, fm, err := parseSelectors(style, formality)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.validate_selectors", requestID, err)
		opLogger.Warn("selector validation failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	path, cleanup, err := uc.stageWithRetry(ctx, requestID, imageBytes)
	if err != nil {
		opLogger.Error("failed to stage upload", zap.Error(err))
		return "", nil, err
	}
	defer cleanup()

	img, err := imaging.DecodeFile(path)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.decode_image", requestID, err)
		opLogger.Warn("image decode failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	tone := undertone.Classify(img)
	result := &Result{
		Undertone: tone,
		Colors:    palette.ForUndertone(tone, st),
		Outfits:   palette.OutfitsFor(tone, st, fm),
	}

	opLogger.Info("analysis complete",
		zap.String("undertone", string(tone)),
		zap.String("style", string(st)),
		zap.String("formality", string(fm)),
		zap.Int("image_bytes", len(imageBytes)),
	)

	return requestID, result, nil
}

func parseSelectors(style, formality string) (palette.Style, palette.Formality, error) {
	st := palette.Style(style)
	if !palette.ValidStyle(st) {
		return "", "", fmt.Errorf("%w: style must be one of %v", ErrInvalidSelector, palette.Styles())
	}
	fm := palette.Formality(formality)
	if !palette.ValidFormality(fm) {
		return "", "", fmt.Errorf("%w: formality must be one of %v", ErrInvalidSelector, palette.Formalities())
	}
	return st, fm, nil
}

func (uc *AnalysisUseCase) stageWithRetry(ctx context.Context, requestID string, data []byte) (string, func(), error) {
	var (
		path    string
		cleanup func()
	)
	err := uc.executeWithRetry(ctx, "usecase.stage_upload", requestID, func() error {
		p, c, err := upload.Stage(data)
		if err != nil {
			return err
		}
		path, cleanup = p, c
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return path, cleanup, nil
}
