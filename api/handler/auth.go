package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	authUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Send a one-time code
// @Tags auth
// @Router /api/v1/auth/otp [post]
func (h *AuthHandler) SendOTP(ctx *fasthttp.RequestCtx) {
	var req transport.OTPRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.SendOTP(stdCtx, req.Identifier)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Verify a code and issue a session
// @Tags auth
// @Router /api/v1/auth/verify [post]
func (h *AuthHandler) Verify(ctx *fasthttp.RequestCtx) {
	var req transport.VerifyRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Authenticate(stdCtx, authUC.AuthenticateInput{
		Identifier: req.Identifier,
		Code:       req.Code,
		Role:       req.Role,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary Find or register a user without issuing a session
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.LoginOrRegister(stdCtx, authUC.LoginInput{Identifier: req.Identifier, Role: req.Role})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}
