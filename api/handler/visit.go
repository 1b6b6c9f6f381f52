package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	visitUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/visit"
)

type VisitHandler struct {
	baseHandler
	uc *visitUC.UseCase
}

func NewVisitHandler(uc *visitUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *VisitHandler {
	return &VisitHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Schedule a site visit
// @Tags visits
// @Router /api/v1/visits [post]
func (h *VisitHandler) Schedule(ctx *fasthttp.RequestCtx) {
	var req transport.VisitRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := h.uc.ScheduleVisit(stdCtx, visitUC.ScheduleInput{
		ListingID: req.ListingID,
		UserID:    httpcontext.UserID(ctx),
		When:      req.When,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.IDResponse{ID: id})
}

// @Summary Visits of the authenticated user
// @Tags visits
// @Router /api/v1/visits [get]
func (h *VisitHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	visits, err := h.uc.ListVisits(stdCtx, httpcontext.UserID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, visits, len(visits))
}

// @Summary Check in at a visit
// @Tags visits
// @Router /api/v1/visits/{id}/checkin [post]
func (h *VisitHandler) CheckIn(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	var req transport.CheckInRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	ok, err := h.uc.CheckIn(stdCtx, visitUC.CheckInInput{VisitID: id, Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.OKResponse{OK: ok})
}
