package kyc

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

type UploadInput struct {
	UserID  string `json:"user_id" validate:"required"`
	DocType string `json:"doc_type" validate:"required"`
	URI     string `json:"uri" validate:"required"`
}

type UseCase struct {
	documents repository.DocumentRepository
	outbox    usecase.IntegrationOutbox
	rt        usecase.Runtime
	logger    *zap.Logger
}

func New(documents repository.DocumentRepository, outbox usecase.IntegrationOutbox, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{documents: documents, outbox: outbox, rt: rt, logger: logger}
}

// UploadDoc stores the document as under review and queues it for verification.
func (uc *UseCase) UploadDoc(ctx context.Context, in UploadInput) (string, error) {
	if err := usecase.Validate(in, "invalid document"); err != nil {
		return "", err
	}
	if err := uc.rt.Simulate(ctx, usecase.OpUploadDoc); err != nil {
		return "", err
	}

	doc, err := uc.documents.Create(ctx, &domain.Document{
		UserID:  in.UserID,
		DocType: in.DocType,
		URI:     in.URI,
		Status:  domain.DocumentUnderReview,
		At:      uc.rt.Now(),
	})
	if err != nil {
		return "", err
	}

	if uc.outbox != nil {
		if err := uc.outbox.RequestKYCReview(ctx, doc); err != nil {
			// the upload itself succeeded; review can be requested again later
			uc.logger.Error("failed to queue kyc review", zap.String("document_id", doc.ID), zap.Error(err))
		}
	}
	return doc.ID, nil
}

func (uc *UseCase) ListDocuments(ctx context.Context, userID string) ([]domain.Document, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpListOwned); err != nil {
		return nil, err
	}
	return uc.documents.ListByUser(ctx, userID)
}
