package service

import (
	"context"
	"time"

	"watched-api/internal/repository"

	"github.com/google/uuid"
)

// SiteActivityFilter selects the reporting window for the activity summary.
type SiteActivityFilter string

const (
	FilterAll       SiteActivityFilter = "all"
	FilterPastMonth SiteActivityFilter = "past-month"
	FilterPastTwoWk SiteActivityFilter = "past-2-weeks"
)

// AdminLogEntry is one moderation action flattened for the admin console.
// Target fields come back empty when the underlying row has since been
// deleted; the log line itself always survives.
type AdminLogEntry struct {
	LogID                uuid.UUID `json:"logId"`
	Action               string    `json:"action"`
	CreatedAt            time.Time `json:"createdAt"`
	AdminName            string    `json:"adminName"`
	TargetPostTitle      string    `json:"targetPostTitle"`
	TargetCommentContent string    `json:"targetCommentContent"`
	TargetUserName       string    `json:"targetUserName"`
}

// SiteActivityEntry is one site event with the acting username resolved.
type SiteActivityEntry struct {
	LogID     uuid.UUID `json:"logId"`
	Activity  string    `json:"activity"`
	Operation string    `json:"operation"`
	TimeOf    time.Time `json:"timeOf"`
	Username  string    `json:"username"`
}

// AdminService exposes the moderation log and the site activity report, both
// restricted to administrators.
type AdminService interface {
	Logs(ctx context.Context, requesterID uuid.UUID, page, limit int) ([]AdminLogEntry, int64, error)
	SiteActivity(ctx context.Context, requesterID uuid.UUID, filter SiteActivityFilter) ([]SiteActivityEntry, error)
}

type adminService struct {
	adminLogs repository.AdminLogRepository
	activity  repository.ActivityRepository
	users     repository.UserRepository
}

// NewAdminService returns a new instance of AdminService
func NewAdminService(adminLogs repository.AdminLogRepository, activity repository.ActivityRepository, users repository.UserRepository) AdminService {
	return &adminService{adminLogs: adminLogs, activity: activity, users: users}
}

func (s *adminService) Logs(ctx context.Context, requesterID uuid.UUID, page, limit int) ([]AdminLogEntry, int64, error) {
	requester := resolveRequester(ctx, s.users, requesterID)
	if requester == nil || !requester.IsAdmin {
		return nil, 0, ErrAdminLogsForbidden
	}

	logs, total, err := s.adminLogs.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]AdminLogEntry, 0, len(logs))
	for _, l := range logs {
		entry := AdminLogEntry{
			LogID:     l.ID,
			Action:    l.Action,
			CreatedAt: l.CreatedAt,
			AdminName: l.Admin.Username,
		}
		if l.TargetPost != nil {
			entry.TargetPostTitle = l.TargetPost.Title
		}
		if l.TargetComment != nil {
			entry.TargetCommentContent = l.TargetComment.Content
		}
		if l.TargetUser != nil {
			entry.TargetUserName = l.TargetUser.Username
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

// SiteActivity reports site events for the requested window in the site's
// display timezone. If the timezone database is unavailable the timestamps
// stay in UTC rather than failing the request.
func (s *adminService) SiteActivity(ctx context.Context, requesterID uuid.UUID, filter SiteActivityFilter) ([]SiteActivityEntry, error) {
	requester := resolveRequester(ctx, s.users, requesterID)
	if requester == nil || !requester.IsAdmin {
		return nil, ErrSiteActivityForbidden
	}

	var since *time.Time
	now := time.Now().UTC()
	switch filter {
	case FilterPastMonth:
		t := now.AddDate(0, -1, 0)
		since = &t
	case FilterPastTwoWk:
		t := now.AddDate(0, 0, -14)
		since = &t
	}

	logs, err := s.activity.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	usernames, err := s.users.UsernamesByID(ctx)
	if err != nil {
		return nil, err
	}

	loc, locErr := time.LoadLocation("America/Toronto")
	if locErr != nil {
		loc = time.UTC
	}

	entries := make([]SiteActivityEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, SiteActivityEntry{
			LogID:     l.ID,
			Activity:  l.Activity,
			Operation: l.Operation,
			TimeOf:    l.TimeOf.In(loc),
			Username:  usernames[l.UserID],
		})
	}
	return entries, nil
}
