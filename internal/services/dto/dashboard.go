package dto

// DashboardStats is the per-user summary on the dashboard page. Every field defaults to zero.
type DashboardStats struct {
	Vouches        int64   `json:"vouches"`
	Tickets        int64   `json:"tickets"`
	AccountsListed int64   `json:"accounts_listed"`
	AvgRating      float64 `json:"avg_rating"`
	Invites        int64   `json:"invites"`
	TotalTrades    int64   `json:"total_trades"`
	TotalEarnings  float64 `json:"total_earnings"`
	MemberSince    int     `json:"member_since"`
}
