package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/query"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/export"
	"go-careerhub-backend/pkg/logger"

	"github.com/google/uuid"
)

type adminUsecase struct {
	actorRepo   domain.ActorRepository
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
	eventRepo   domain.EventRepository
	courseRepo  domain.CourseRepository
	gate        gate
}

func NewAdminUsecase(actorRepo domain.ActorRepository, companyRepo domain.CompanyRepository,
	jobRepo domain.JobRepository, eventRepo domain.EventRepository, courseRepo domain.CourseRepository,
	latency time.Duration) domain.AdminUsecase {
	return &adminUsecase{
		actorRepo:   actorRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		eventRepo:   eventRepo,
		courseRepo:  courseRepo,
		gate:        gate{delay: latency},
	}
}

func requireAdmin(ctx context.Context) *apperror.AppError {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return apperror.Unauthorized("Not logged in")
	}
	if !actor.IsAdmin() {
		return apperror.PermissionDenied("Admin access required")
	}
	return nil
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}

	actors, err := u.actorRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	events, err := u.eventRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	companies, err := u.companyRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	courses, err := u.courseRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	stats := &domain.AdminStats{
		TotalUsers:     len(actors),
		TotalJobs:      len(jobs),
		TotalEvents:    len(events),
		TotalCompanies: len(companies),
		TotalCourses:   len(courses),
		UserGrowth:     12.5,
		JobGrowth:      8.3,
	}
	for _, a := range actors {
		if a.Status == domain.StatusActive {
			stats.ActiveUsers++
		}
	}
	for _, j := range jobs {
		if now.Sub(j.PostedDate) <= 30*24*time.Hour {
			stats.RecentJobs++
		}
	}
	for _, e := range events {
		if e.Date.After(now) {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, filter domain.ListFilter) ([]domain.Actor, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}
	actors, err := u.actorRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return query.Users(actors, filter), nil
}

func (u *adminUsecase) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.Actor, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}

	if existing, err := u.actorRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apperror.BadRequest("Email is already in use")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	actor := &domain.Actor{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   domain.Role(req.Role),
		Status: domain.StatusActive,
	}
	if actor.Role == domain.RoleEmployer {
		actor.ManagedItems = &domain.ManagedItems{}
	}

	err := u.gate.do(func() error {
		return u.actorRepo.Create(ctx, actor)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("admin created user", "userId", actor.ID, "role", actor.Role)
	return actor, nil
}

func (u *adminUsecase) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.Actor, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}

	actor, err := u.actorRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if req.Name != "" {
		actor.Name = req.Name
	}
	if req.Email != "" {
		actor.Email = req.Email
	}
	if req.Status != "" {
		actor.Status = domain.ActorStatus(req.Status)
	}

	gateErr := u.gate.do(func() error {
		return u.actorRepo.Update(ctx, actor)
	})
	if gateErr != nil {
		return nil, apperror.Internal(gateErr)
	}
	return actor, nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	if appErr := requireAdmin(ctx); appErr != nil {
		return appErr
	}

	err := u.gate.do(func() error {
		return u.actorRepo.Delete(ctx, userID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("User not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ApplyBulk runs one operation over a selection. Activate and deactivate
// are user-tab operations; on any other tab they are a no-op that still
// reports success with zero touched rows. The result is a single outcome,
// not a per-item breakdown.
func (u *adminUsecase) ApplyBulk(ctx context.Context, kind domain.ResourceKind, op domain.BulkOperation, ids []string) (*domain.BulkResult, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}

	result := &domain.BulkResult{Operation: op, Kind: kind}

	switch op {
	case domain.BulkActivate, domain.BulkDeactivate:
		if kind != domain.KindUser {
			return result, nil
		}
		status := domain.StatusActive
		if op == domain.BulkDeactivate {
			status = domain.StatusInactive
		}
		err := u.gate.do(func() error {
			for _, id := range ids {
				actor, err := u.actorRepo.GetByID(ctx, id)
				if err != nil {
					continue
				}
				actor.Status = status
				if err := u.actorRepo.Update(ctx, actor); err == nil {
					result.Succeeded++
				}
			}
			return nil
		})
		if err != nil {
			return nil, apperror.Internal(err)
		}

	case domain.BulkDelete:
		del := u.deleterFor(kind)
		if del == nil {
			return nil, apperror.BadRequest("Bulk delete is not supported for this tab")
		}
		err := u.gate.do(func() error {
			for _, id := range ids {
				if err := del(ctx, id); err == nil {
					result.Succeeded++
				}
			}
			return nil
		})
		if err != nil {
			return nil, apperror.Internal(err)
		}

	default:
		return nil, apperror.BadRequest("Unknown bulk operation")
	}

	logger.Log.Info("bulk operation applied",
		"operation", op, "kind", kind, "selected", len(ids), "succeeded", result.Succeeded)
	return result, nil
}

func (u *adminUsecase) deleterFor(kind domain.ResourceKind) func(context.Context, string) error {
	switch kind {
	case domain.KindUser:
		return u.actorRepo.Delete
	case domain.KindCompany:
		return u.companyRepo.Delete
	case domain.KindJob:
		return u.jobRepo.Delete
	case domain.KindEvent:
		return u.eventRepo.Delete
	case domain.KindCourse:
		return u.courseRepo.Delete
	default:
		return nil
	}
}

// tabNames maps resource kinds to the console's tab labels used in
// export filenames.
var tabNames = map[domain.ResourceKind]string{
	domain.KindUser:    "users",
	domain.KindCompany: "companies",
	domain.KindJob:     "jobs",
	domain.KindEvent:   "events",
	domain.KindCourse:  "courses",
}

// Export serializes the active tab, after filtering, as CSV. The filename
// follows the {tab}-export-{date}.csv convention.
func (u *adminUsecase) Export(ctx context.Context, kind domain.ResourceKind, filter domain.ListFilter) (*domain.CSVExport, error) {
	if appErr := requireAdmin(ctx); appErr != nil {
		return nil, appErr
	}

	out := &domain.CSVExport{
		Filename: export.Filename(tabNames[kind], time.Now()),
	}

	switch kind {
	case domain.KindUser:
		actors, err := u.actorRepo.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out.Header = []string{"ID", "Name", "Email", "Role", "Status"}
		for _, a := range query.Users(actors, filter) {
			out.Rows = append(out.Rows, []string{a.ID, a.Name, a.Email, string(a.Role), string(a.Status)})
		}

	case domain.KindCompany:
		companies, err := u.companyRepo.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out.Header = []string{"ID", "Name", "Industry", "Location", "Website"}
		for _, c := range query.Companies(companies, filter) {
			out.Rows = append(out.Rows, []string{c.ID, c.Name, strings.Join(c.Industry, "; "), c.Location, c.Website})
		}

	case domain.KindJob:
		jobs, err := u.jobRepo.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out.Header = []string{"ID", "Title", "Company", "Location", "Type", "Salary", "Posted"}
		for _, j := range query.Jobs(jobs, filter, time.Now()) {
			out.Rows = append(out.Rows, []string{
				j.ID, j.Title, j.CompanyName, j.Location, string(j.Type), j.Salary,
				j.PostedDate.Format("2006-01-02"),
			})
		}

	case domain.KindEvent:
		events, err := u.eventRepo.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out.Header = []string{"ID", "Title", "Date", "Location", "Organizer", "Type"}
		for _, e := range query.Events(events, filter, time.Now()) {
			out.Rows = append(out.Rows, []string{
				e.ID, e.Title, e.Date.Format("2006-01-02"), e.Location, e.Organizer, string(e.Type),
			})
		}

	case domain.KindCourse:
		courses, err := u.courseRepo.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out.Header = []string{"ID", "Title", "Provider", "Level", "Duration"}
		for _, c := range query.Courses(courses, filter) {
			out.Rows = append(out.Rows, []string{c.ID, c.Title, c.Provider, c.Level, c.Duration})
		}

	default:
		return nil, apperror.BadRequest("Export is not supported for this tab")
	}

	logger.Log.Info("csv export generated", "kind", kind, "rows", len(out.Rows))
	return out, nil
}
