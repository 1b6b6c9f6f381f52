package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	kycUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/kyc"
)

type KYCHandler struct {
	baseHandler
	uc *kycUC.UseCase
}

func NewKYCHandler(uc *kycUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *KYCHandler {
	return &KYCHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Upload a KYC document
// @Tags kyc
// @Router /api/v1/documents [post]
func (h *KYCHandler) Upload(ctx *fasthttp.RequestCtx) {
	var req transport.DocumentRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := h.uc.UploadDoc(stdCtx, kycUC.UploadInput{
		UserID:  httpcontext.UserID(ctx),
		DocType: req.DocType,
		URI:     req.URI,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.IDResponse{ID: id})
}

// @Summary Documents of the authenticated user
// @Tags kyc
// @Router /api/v1/documents [get]
func (h *KYCHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	docs, err := h.uc.ListDocuments(stdCtx, httpcontext.UserID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, docs, len(docs))
}
