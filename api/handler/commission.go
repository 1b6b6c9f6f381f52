package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	commissionUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/commission"
)

type CommissionHandler struct {
	baseHandler
	uc *commissionUC.UseCase
}

func NewCommissionHandler(uc *commissionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CommissionHandler {
	return &CommissionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Record a commission
// @Tags commissions
// @Router /api/v1/commissions [post]
func (h *CommissionHandler) Record(ctx *fasthttp.RequestCtx) {
	var req transport.CommissionRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := h.uc.RecordCommission(stdCtx, commissionUC.RecordInput{
		UserID: httpcontext.UserID(ctx),
		Amount: req.Amount,
		City:   req.City,
		Split:  req.Split,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.IDResponse{ID: id})
}

// @Summary Commissions of the authenticated user
// @Tags commissions
// @Router /api/v1/commissions [get]
func (h *CommissionHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	rows, err := h.uc.ListCommissions(stdCtx, httpcontext.UserID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, rows, len(rows))
}

// @Summary Request a payout
// @Tags commissions
// @Router /api/v1/commissions/{id}/payout [post]
func (h *CommissionHandler) Payout(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RequestPayout(stdCtx, httpcontext.UserID(ctx), id); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusAccepted, transport.OKResponse{OK: true})
}
