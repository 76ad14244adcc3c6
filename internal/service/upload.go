package service

import (
	"context"

	"go.uber.org/zap"

	"docdash/internal/logger"
	"docdash/internal/upload"
)

// UploadService accepts normalized upload submissions.
type UploadService interface {
	// Submit records s. The document list is left unchanged.
	Submit(ctx context.Context, s upload.Submission) error
}

type uploadService struct {
	log *zap.Logger
}

// NewUploadService constructs an UploadService that logs submissions.
func NewUploadService(log *zap.Logger) UploadService {
	return &uploadService{log: log.Named("uploads")}
}

func (s *uploadService) Submit(ctx context.Context, sub upload.Submission) error {
	logger.For(ctx, s.log).Info("upload submitted",
		zap.String("file", sub.File.Name),
		zap.String("size", sub.File.SizeLabel()),
		zap.String("type", string(sub.File.DocumentType())),
		zap.Strings("tags", sub.Tags),
		zap.String("description", sub.Description),
	)
	return nil
}
