package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/api/transport"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/monitor"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"redis": map[string]interface{}{
				"enabled": status.RedisInUse,
				"online":  status.Redis,
			},
			"outbox": map[string]interface{}{
				"enabled": status.OutboxInUse,
				"online":  status.Outbox,
				"size":    status.OutboxSize,
			},
		},
		"store":      status.Store,
		"last_check": status.LastCheck,
	}

	if status.Healthy() {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "dependencies unhealthy", payload))
}
