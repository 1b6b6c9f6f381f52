package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	leadUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/lead"
)

type LeadHandler struct {
	baseHandler
	uc *leadUC.UseCase
}

func NewLeadHandler(uc *leadUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Leads addressed to the authenticated user
// @Tags leads
// @Router /api/v1/leads [get]
func (h *LeadHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	leads, err := h.uc.ListLeads(stdCtx, httpcontext.UserID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, leads, len(leads))
}

// @Summary Assign a matched lead to the authenticated user
// @Tags leads
// @Router /api/v1/leads/auto-assign [post]
func (h *LeadHandler) AutoAssign(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	lead, err := h.uc.AutoAssign(stdCtx, httpcontext.UserID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, lead)
}
