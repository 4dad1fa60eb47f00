package model

type Revenue struct {
	Total float64 `db:"total"`
	Count int     `db:"count"`
}

type MonthlyRevenue struct {
	Month string  `db:"month"`
	Total float64 `db:"total"`
	Count int     `db:"count"`
}

type Occupancy struct {
	Total    int `db:"total"`
	Occupied int `db:"occupied"`
}

type TypeOccupancy struct {
	RoomType string `db:"room_type"`
	Total    int    `db:"total"`
	Occupied int    `db:"occupied"`
}

type DashboardStats struct {
	Rooms          int     `db:"rooms"`
	Guests         int     `db:"guests"`
	ActiveBookings int     `db:"active_bookings"`
	TodayRevenue   float64 `db:"today_revenue"`
}
