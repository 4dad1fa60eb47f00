package report

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenueReport)
		routerGroup.Get("/occupancy", handler.GetOccupancyReport)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetRevenueReport retrieves the revenue report.
// @Summary Get revenue report
// @Description Retrieve total revenue, payment count, and a monthly breakdown.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} dto.RevenueReportResponse "Revenue report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenueReport")
	defer scope.End()

	report, err := handler.service.Revenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetOccupancyReport retrieves the occupancy report.
// @Summary Get occupancy report
// @Description Retrieve room occupancy counts, rate, and a per-room-type breakdown.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} dto.OccupancyReportResponse "Occupancy report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	report, err := handler.service.Occupancy(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetDashboard retrieves headline statistics for the admin dashboard.
// @Summary Get dashboard statistics
// @Description Retrieve room, guest, and active booking counts along with today's revenue.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stats, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
