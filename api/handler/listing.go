package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	listingUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/listing"
)

type ListingHandler struct {
	baseHandler
	uc *listingUC.UseCase
}

func NewListingHandler(uc *listingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Search listings, boosted first
// @Tags listings
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	filter := domain.ListingFilter{
		Query:    string(args.Peek("q")),
		Category: domain.Category(args.Peek("category")),
		City:     string(args.Peek("city")),
	}
	var err error
	if filter.BudgetMin, err = parseBudget(args.Peek("budget_min")); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "budget_min must be a number", nil))
		return
	}
	if filter.BudgetMax, err = parseBudget(args.Peek("budget_max")); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "budget_max must be a number", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	listings, err := h.uc.ListProperties(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, listings, len(listings))
}

// @Summary Get a listing
// @Tags listings
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	l, err := h.uc.GetListing(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, l)
}

// @Summary Create a listing for the authenticated dealer
// @Tags listings
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(ctx *fasthttp.RequestCtx) {
	var req listingUC.CreateInput
	if !h.decode(ctx, &req) {
		return
	}
	if req.DealerID == "" && req.SellerID == "" {
		req.DealerID = httpcontext.UserID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := h.uc.CreateListing(stdCtx, req)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.IDResponse{ID: id})
}

// @Summary Set or clear the boost of a listing
// @Tags listings
// @Router /api/v1/listings/{id}/boost [put]
func (h *ListingHandler) Boost(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	var req transport.BoostRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	ok, err := h.uc.ToggleBoost(stdCtx, id, req.Boosted)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.OKResponse{OK: ok})
}

func parseBudget(raw []byte) (int64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	return strconv.ParseInt(string(raw), 10, 64)
}
