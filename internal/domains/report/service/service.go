package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/domains/report/repository"
	"hotelier/shared/cache"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheRevenueReport   = constant.CacheKeyReportPrefix + "revenue"
	cacheOccupancyReport = constant.CacheKeyReportPrefix + "occupancy"
	cacheDashboard       = constant.CacheKeyReportPrefix + "dashboard"
)

type Report interface {
	Revenue(ctx context.Context) (dto.RevenueReportResponse, error)
	Occupancy(ctx context.Context) (dto.OccupancyReportResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Revenue(ctx context.Context) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRevenueReport, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRevenueReport).Msg("cache hit for revenue report")

		return res, nil
	}

	revenue, err := s.repo.GetRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue")

		return res, fmt.Errorf("failed to get revenue: %w", err)
	}

	monthly, err := s.repo.GetMonthlyRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly revenue")

		return res, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	res.FromModels(revenue, monthly)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRevenueReport, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context) (res dto.OccupancyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheOccupancyReport, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheOccupancyReport).Msg("cache hit for occupancy report")

		return res, nil
	}

	occupancy, err := s.repo.GetOccupancy(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy")

		return res, fmt.Errorf("failed to get occupancy: %w", err)
	}

	byType, err := s.repo.GetTypeOccupancy(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy by room type")

		return res, fmt.Errorf("failed to get occupancy by room type: %w", err)
	}

	res.FromModels(occupancy, byType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheOccupancyReport, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupancy report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard stats")

		return res, nil
	}

	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	res.FromModel(stats)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
