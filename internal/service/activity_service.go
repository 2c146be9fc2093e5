package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/google/uuid"
)

// ActivityEvent is the JSON payload pushed to live feed subscribers.
type ActivityEvent struct {
	Activity  string    `json:"activity"`
	Operation string    `json:"operation"`
	TimeOf    time.Time `json:"timeOf"`
	UserID    uuid.UUID `json:"userId"`
}

// Broadcaster pushes serialized events to connected websocket clients.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// ActivityRecorder appends site activity rows and feeds the live stream.
// Recording is best-effort: a failed insert is logged and swallowed so the
// primary mutation that triggered it is never rolled back or failed.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, activity, operation string)
}

type activityRecorder struct {
	repo repository.ActivityRepository
	feed Broadcaster // optional, may be nil
}

// NewActivityRecorder returns a new instance of ActivityRecorder
func NewActivityRecorder(repo repository.ActivityRepository, feed Broadcaster) ActivityRecorder {
	return &activityRecorder{repo: repo, feed: feed}
}

func (r *activityRecorder) Record(ctx context.Context, userID uuid.UUID, activity, operation string) {
	event := ActivityEvent{
		Activity:  activity,
		Operation: operation,
		TimeOf:    time.Now().UTC(),
		UserID:    userID,
	}

	entry := &model.SiteActivityLog{
		Activity:  event.Activity,
		Operation: event.Operation,
		TimeOf:    event.TimeOf,
		UserID:    event.UserID,
	}
	if err := r.repo.Log(ctx, entry); err != nil {
		log.Printf("WARNING: failed to record site activity %s/%s: %v", activity, operation, err)
	}

	if r.feed != nil {
		if payload, err := json.Marshal(event); err == nil {
			r.feed.BroadcastMessage(payload)
		}
	}
}
