package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"watched-api/internal/model"

	"github.com/google/uuid"
)

type capturingFeed struct {
	messages [][]byte
}

func (f *capturingFeed) BroadcastMessage(message []byte) {
	f.messages = append(f.messages, message)
}

type failingActivityRepo struct{}

func (failingActivityRepo) Log(context.Context, *model.SiteActivityLog) error {
	return errors.New("insert failed")
}

func (failingActivityRepo) ListSince(context.Context, *time.Time) ([]model.SiteActivityLog, error) {
	return nil, nil
}

func TestRecordPersistsAndBroadcasts(t *testing.T) {
	repo := &fakeActivityRepo{}
	feed := &capturingFeed{}
	recorder := NewActivityRecorder(repo, feed)
	userID := uuid.New()

	recorder.Record(context.Background(), userID, model.ActivityPost, model.OperationCreate)

	if len(repo.entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Activity != model.ActivityPost || entry.Operation != model.OperationCreate || entry.UserID != userID {
		t.Errorf("entry = %+v", entry)
	}

	if len(feed.messages) != 1 {
		t.Fatalf("broadcast %d messages, want 1", len(feed.messages))
	}
	var event ActivityEvent
	if err := json.Unmarshal(feed.messages[0], &event); err != nil {
		t.Fatalf("decoding event: %v", err)
	}
	if event.Activity != model.ActivityPost || event.UserID != userID {
		t.Errorf("event = %+v", event)
	}
}

func TestRecordSwallowsRepoFailure(t *testing.T) {
	feed := &capturingFeed{}
	recorder := NewActivityRecorder(failingActivityRepo{}, feed)

	// Must not panic, and the feed still gets the event
	recorder.Record(context.Background(), uuid.New(), model.ActivityLike, model.OperationDelete)

	if len(feed.messages) != 1 {
		t.Errorf("broadcast %d messages, want 1 despite repo failure", len(feed.messages))
	}
}

func TestRecordWithoutFeed(t *testing.T) {
	repo := &fakeActivityRepo{}
	recorder := NewActivityRecorder(repo, nil)

	recorder.Record(context.Background(), uuid.New(), model.ActivityRating, model.OperationCreate)

	if len(repo.entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(repo.entries))
	}
}
