package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pine007/pi-todo/internal/adapter/http/mapper"
	"github.com/pine007/pi-todo/internal/adapter/http/middleware"
	"github.com/pine007/pi-todo/internal/core/ports"
	"github.com/pine007/pi-todo/pkg/apierrors"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	stats, err := h.statsService.Overview(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to compute stats", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailFetchStats, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatsResponse(stats))
}
