package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/report/model"
	"hotelier/shared/constant"
	"hotelier/shared/logger"
)

const (
	revenueQuery = `SELECT COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count FROM payments`

	monthlyRevenueQuery = `SELECT to_char(payment_date, 'YYYY-MM') AS month,
		COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM payments
		GROUP BY to_char(payment_date, 'YYYY-MM')
		ORDER BY month DESC
		LIMIT 6`

	occupancyQuery = `SELECT COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'Occupied') AS occupied
		FROM rooms`

	typeOccupancyQuery = `SELECT room_type,
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'Occupied') AS occupied
		FROM rooms
		GROUP BY room_type
		ORDER BY room_type`

	dashboardQuery = `SELECT
		(SELECT COUNT(*) FROM rooms) AS rooms,
		(SELECT COUNT(*) FROM guests) AS guests,
		(SELECT COUNT(*) FROM bookings WHERE booking_status = 'Confirmed') AS active_bookings,
		(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_date::date = CURRENT_DATE) AS today_revenue`
)

type Report interface {
	GetRevenue(ctx context.Context) (model.Revenue, error)
	GetMonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error)
	GetOccupancy(ctx context.Context) (model.Occupancy, error)
	GetTypeOccupancy(ctx context.Context) ([]model.TypeOccupancy, error)
	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetRevenue(ctx context.Context) (model.Revenue, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetRevenue")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueQuery)

	var revenue model.Revenue

	if err := repo.db.Read.GetContext(ctx, &revenue, revenueQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return revenue, fmt.Errorf("failed to get revenue: %w", err)
	}

	return revenue, nil
}

func (repo *repositoryImpl) GetMonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetMonthlyRevenue")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, monthlyRevenueQuery)

	monthly := []model.MonthlyRevenue{}

	if err := repo.db.Read.SelectContext(ctx, &monthly, monthlyRevenueQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return monthly, nil
}

func (repo *repositoryImpl) GetOccupancy(ctx context.Context) (model.Occupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetOccupancy")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, occupancyQuery)

	var occupancy model.Occupancy

	if err := repo.db.Read.GetContext(ctx, &occupancy, occupancyQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return occupancy, fmt.Errorf("failed to get occupancy: %w", err)
	}

	return occupancy, nil
}

func (repo *repositoryImpl) GetTypeOccupancy(ctx context.Context) ([]model.TypeOccupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetTypeOccupancy")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, typeOccupancyQuery)

	byType := []model.TypeOccupancy{}

	if err := repo.db.Read.SelectContext(ctx, &byType, typeOccupancyQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get occupancy by room type: %w", err)
	}

	return byType, nil
}

func (repo *repositoryImpl) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetDashboardStats")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, dashboardQuery)

	var stats model.DashboardStats

	if err := repo.db.Read.GetContext(ctx, &stats, dashboardQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}
