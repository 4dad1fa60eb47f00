package dto

import "hotelier/internal/domains/report/model"

type MonthlyRevenueResponse struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	PaymentCount int     `json:"payment_count"`
}

type RevenueReportResponse struct {
	TotalRevenue float64                  `json:"total_revenue"`
	PaymentCount int                      `json:"payment_count"`
	Monthly      []MonthlyRevenueResponse `json:"monthly"`
}

func (r *RevenueReportResponse) FromModels(revenue model.Revenue, monthly []model.MonthlyRevenue) {
	r.TotalRevenue = revenue.Total
	r.PaymentCount = revenue.Count

	r.Monthly = make([]MonthlyRevenueResponse, len(monthly))
	for i, mod := range monthly {
		r.Monthly[i] = MonthlyRevenueResponse{
			Month:        mod.Month,
			Revenue:      mod.Total,
			PaymentCount: mod.Count,
		}
	}
}

type TypeOccupancyResponse struct {
	RoomType string `json:"room_type"`
	Total    int    `json:"total"`
	Occupied int    `json:"occupied"`
}

type OccupancyReportResponse struct {
	TotalRooms    int                     `json:"total_rooms"`
	Occupied      int                     `json:"occupied"`
	Available     int                     `json:"available"`
	OccupancyRate float64                 `json:"occupancy_rate"`
	ByType        []TypeOccupancyResponse `json:"by_type"`
}

func (r *OccupancyReportResponse) FromModels(occupancy model.Occupancy, byType []model.TypeOccupancy) {
	r.TotalRooms = occupancy.Total
	r.Occupied = occupancy.Occupied
	r.Available = occupancy.Total - occupancy.Occupied

	// guard against division by zero when no rooms exist
	if occupancy.Total > 0 {
		r.OccupancyRate = float64(occupancy.Occupied) / float64(occupancy.Total) * 100
	}

	r.ByType = make([]TypeOccupancyResponse, len(byType))
	for i, mod := range byType {
		r.ByType[i] = TypeOccupancyResponse{
			RoomType: mod.RoomType,
			Total:    mod.Total,
			Occupied: mod.Occupied,
		}
	}
}

type DashboardResponse struct {
	Rooms          int     `json:"rooms"`
	Guests         int     `json:"guests"`
	ActiveBookings int     `json:"active_bookings"`
	TodayRevenue   float64 `json:"today_revenue"`
}

func (r *DashboardResponse) FromModel(model model.DashboardStats) {
	r.Rooms = model.Rooms
	r.Guests = model.Guests
	r.ActiveBookings = model.ActiveBookings
	r.TodayRevenue = model.TodayRevenue
}
