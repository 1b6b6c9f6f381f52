package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	chatUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/chat"
)

type ChatHandler struct {
	baseHandler
	uc *chatUC.UseCase
}

func NewChatHandler(uc *chatUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Room history
// @Tags chat
// @Router /api/v1/chats/{room} [get]
func (h *ChatHandler) History(ctx *fasthttp.RequestCtx) {
	room, _ := ctx.UserValue("room").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	msgs, err := h.uc.GetChat(stdCtx, room)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondList(ctx, msgs, len(msgs))
}

// @Summary Post a message as the authenticated user
// @Tags chat
// @Router /api/v1/chats/{room} [post]
func (h *ChatHandler) Send(ctx *fasthttp.RequestCtx) {
	room, _ := ctx.UserValue("room").(string)
	var req transport.MessageRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	ok, err := h.uc.SendMessage(stdCtx, room, chatUC.MessageInput{
		From: httpcontext.UserID(ctx),
		Name: req.Name,
		Text: req.Text,
	})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.OKResponse{OK: ok})
}
