package api

import (
	"net/http"

	models "github.com/newdevoleper/match-making/internal/domain/models"
	"github.com/newdevoleper/match-making/internal/service/ratelimit"
	"github.com/newdevoleper/match-making/internal/usecase"
	xhttp "github.com/newdevoleper/match-making/pkg/http"
	xlogger "github.com/newdevoleper/match-making/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RateLimitSettings carries the token bucket parameters for the match routes.
type RateLimitSettings struct {
	Enabled      bool
	Capacity     float64
	RefillPerSec float64
}

// MatchEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type MatchEchoHandler struct {
	logger *xlogger.Logger
	mm     *usecase.MatchMaker
	rl     *ratelimit.Limiter
	rlCfg  RateLimitSettings
}

func NewMatchEchoHandler(logger *xlogger.Logger, mm *usecase.MatchMaker, rl *ratelimit.Limiter, rlCfg RateLimitSettings) *MatchEchoHandler {
	return &MatchEchoHandler{logger: logger, mm: mm, rl: rl, rlCfg: rlCfg}
}

func (h *MatchEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/match", h.Match)
	g.POST("/chart", h.Chart)
	g.GET("/health", h.Health)
}

func (h *MatchEchoHandler) Match(c echo.Context) error {
	if !h.allow(c, "match") {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limited"})
	}
	req := &models.MatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.mm.Match(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("match usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MatchEchoHandler) Chart(c echo.Context) error {
	if !h.allow(c, "chart") {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limited"})
	}
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.mm.Chart(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("chart usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MatchEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *MatchEchoHandler) allow(c echo.Context, route string) bool {
	if h.rl == nil || !h.rlCfg.Enabled {
		return true
	}
	if h.rl.Allow(c.RealIP()+":"+route, h.rlCfg.Capacity, h.rlCfg.RefillPerSec) {
		return true
	}
	h.logger.Warn("rate limited", xlogger.String("remote", c.RealIP()), xlogger.String("route", route))
	return false
}
