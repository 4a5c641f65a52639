package domain

import "context"

// AdminStats contains dashboard statistics
type AdminStats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	TotalJobs      int `json:"totalJobs"`
	RecentJobs     int `json:"recentJobs"` // posted within the trailing 30 days
	TotalEvents    int `json:"totalEvents"`
	UpcomingEvents int `json:"upcomingEvents"`
	TotalCompanies int `json:"totalCompanies"`
	TotalCourses   int `json:"totalCourses"`
	// Growth figures are fixed display values carried over from the source.
	UserGrowth float64 `json:"userGrowth"`
	JobGrowth  float64 `json:"jobGrowth"`
}

type BulkOperation string

const (
	BulkActivate   BulkOperation = "activate"
	BulkDeactivate BulkOperation = "deactivate"
	BulkDelete     BulkOperation = "delete"
)

// BulkResult reports a bulk call as a single outcome; there is no per-item
// success/failure breakdown.
type BulkResult struct {
	Operation BulkOperation `json:"operation"`
	Kind      ResourceKind  `json:"kind"`
	Succeeded int           `json:"succeeded"`
}

// CSVExport is the serialized form handed to the download collaborator.
type CSVExport struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// Request structs for the admin Users tab
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=student employer"`
}

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"omitempty"`
	Email  string `json:"email" binding:"omitempty,email"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

// AdminUsecase drives the management console: dashboard statistics, the
// Users tab CRUD, bulk operations and CSV export over the active tab.
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)

	ListUsers(ctx context.Context, filter ListFilter) ([]Actor, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*Actor, error)
	UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*Actor, error)
	DeleteUser(ctx context.Context, userID string) error

	ApplyBulk(ctx context.Context, kind ResourceKind, op BulkOperation, ids []string) (*BulkResult, error)
	Export(ctx context.Context, kind ResourceKind, filter ListFilter) (*CSVExport, error)
}
