package api

import (
	"errors"

	"Starluck/internal/astro"
	"Starluck/internal/domain/models"
	"Starluck/internal/service/chart"
	"Starluck/internal/service/debug"
	xhttp "Starluck/pkg/http"
	xlogger "Starluck/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartsHandler implements the Echo-based HTTP surface of the chart engine.
type ChartsHandler struct {
	logger  *xlogger.Logger
	svc     *chart.Service
	debug   *debug.Store
	version string
	swiss   bool
}

func NewChartsHandler(logger *xlogger.Logger, svc *chart.Service, dbg *debug.Store, version string, swissEnabled bool) *ChartsHandler {
	return &ChartsHandler{
		logger:  logger,
		svc:     svc,
		debug:   dbg,
		version: version,
		swiss:   swissEnabled,
	}
}

func (h *ChartsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api/v1")
	g.POST("/natal", h.Natal)
	g.POST("/synastry", h.Synastry)
	g.POST("/composite", h.Composite)
	g.POST("/forecast", h.Forecast)
}

func (h *ChartsHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.HealthResponse{
		Status:         "ok",
		Version:        h.version,
		SwissEphemeris: h.swiss,
		ActiveBackend:  h.svc.Backend(),
	})
}

func (h *ChartsHandler) Natal(c echo.Context) error {
	req := &models.NatalChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Compute(*req)
	if err != nil {
		return h.chartError(c, "natal", err)
	}
	h.debug.Save("natal", res)
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartsHandler) Synastry(c echo.Context) error {
	req := &models.SynastryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Synastry(*req)
	if err != nil {
		return h.chartError(c, "synastry", err)
	}
	h.debug.Save("synastry", res)
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartsHandler) Composite(c echo.Context) error {
	req := &models.CompositeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Composite(*req)
	if err != nil {
		return h.chartError(c, "composite", err)
	}
	h.debug.Save("composite", res)
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartsHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Forecast(*req)
	if err != nil {
		return h.chartError(c, "forecast", err)
	}
	h.debug.Save("forecast", res)
	return xhttp.SuccessResponse(c, res)
}

// chartError maps domain failures onto HTTP statuses: input problems are
// 400s, everything else is a 500.
func (h *ChartsHandler) chartError(c echo.Context, op string, err error) error {
	if errors.Is(err, chart.ErrMalformedInput) || errors.Is(err, astro.ErrUnsupportedHouseSystem) {
		if h.logger != nil {
			h.logger.Warn(op+" rejected", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	if h.logger != nil {
		h.logger.Error(op+" failed", xlogger.Error(err))
	}
	return xhttp.AppErrorResponse(c, xhttp.InternalError(err.Error()))
}
