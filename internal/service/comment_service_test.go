package service

import (
	"context"
	"errors"
	"testing"

	"watched-api/internal/model"

	"github.com/google/uuid"
)

type commentFixture struct {
	svc       CommentService
	adminLogs *fakeAdminLogRepo

	owner  *model.User
	other  *model.User
	admin  *model.User
	postID uuid.UUID
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	users := newFakeUserRepo()
	posts := newFakePostRepo(users)
	comments := newFakeCommentRepo(users)
	adminLogs := &fakeAdminLogRepo{}

	f := &commentFixture{
		svc:       NewCommentService(comments, posts, users, adminLogs, noopRecorder{}),
		adminLogs: adminLogs,
		owner:     &model.User{ID: uuid.New(), Username: "owner"},
		other:     &model.User{ID: uuid.New(), Username: "other"},
		admin:     &model.User{ID: uuid.New(), Username: "mod", IsAdmin: true},
	}
	users.users[f.owner.ID] = f.owner
	users.users[f.other.ID] = f.other
	users.users[f.admin.ID] = f.admin

	post := &model.Post{UserID: f.other.ID, MovieID: uuid.New(), Title: "t", Content: "c"}
	if err := posts.Create(context.Background(), post); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	f.postID = post.ID
	return f
}

func (f *commentFixture) createComment(t *testing.T) *CommentDTO {
	t.Helper()
	comment, err := f.svc.Create(context.Background(), f.owner.ID, CreateCommentRequest{
		PostID:  f.postID,
		Content: "nice review",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return comment
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner.ID, CreateCommentRequest{
		PostID:  uuid.New(),
		Content: "hello",
	})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListCommentsByPost(t *testing.T) {
	f := newCommentFixture(t)
	f.createComment(t)
	f.createComment(t)

	comments, err := f.svc.ListByPost(context.Background(), f.postID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len = %d, want 2", len(comments))
	}
	if comments[0].Username != "owner" {
		t.Errorf("Username = %q, want owner", comments[0].Username)
	}
}

func TestUpdateCommentPermissions(t *testing.T) {
	f := newCommentFixture(t)
	comment := f.createComment(t)

	_, err := f.svc.Update(context.Background(), comment.CommentID, f.other.ID, UpdateCommentRequest{Content: "hacked"})
	if !errors.Is(err, ErrCommentUpdateForbidden) {
		t.Fatalf("stranger update: got %v, want ErrCommentUpdateForbidden", err)
	}

	updated, err := f.svc.Update(context.Background(), comment.CommentID, f.owner.ID, UpdateCommentRequest{Content: "fixed typo"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Content != "fixed typo" {
		t.Errorf("content = %q, want clean owner edit", updated.Content)
	}
	if len(f.adminLogs.entries) != 0 {
		t.Errorf("owner edit must not produce admin log")
	}
}

func TestAdminCommentEditSuffixesAndLogsOnce(t *testing.T) {
	f := newCommentFixture(t)
	comment := f.createComment(t)

	updated, err := f.svc.Update(context.Background(), comment.CommentID, f.admin.ID, UpdateCommentRequest{Content: "toned down"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Content != "toned down -edited by mod" {
		t.Errorf("content = %q, want admin edit suffix", updated.Content)
	}

	if len(f.adminLogs.entries) != 1 {
		t.Fatalf("admin log entries = %d, want exactly 1", len(f.adminLogs.entries))
	}
	entry := f.adminLogs.entries[0]
	if entry.Action != model.ActionEditedComment {
		t.Errorf("Action = %q, want %q", entry.Action, model.ActionEditedComment)
	}
	if entry.TargetUserID == nil || *entry.TargetUserID != f.owner.ID {
		t.Errorf("TargetUserID = %v, want original owner %s", entry.TargetUserID, f.owner.ID)
	}
	if entry.TargetCommentID == nil || *entry.TargetCommentID != comment.CommentID {
		t.Errorf("TargetCommentID = %v, want %s", entry.TargetCommentID, comment.CommentID)
	}
}

func TestDeleteCommentPermissions(t *testing.T) {
	f := newCommentFixture(t)
	comment := f.createComment(t)

	if err := f.svc.Delete(context.Background(), comment.CommentID, f.other.ID); !errors.Is(err, ErrCommentDeleteForbidden) {
		t.Fatalf("stranger delete: got %v, want ErrCommentDeleteForbidden", err)
	}

	if err := f.svc.Delete(context.Background(), comment.CommentID, f.admin.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), comment.CommentID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatal("comment still readable after delete")
	}
	if len(f.adminLogs.entries) != 1 || f.adminLogs.entries[0].Action != model.ActionDeletedComment {
		t.Errorf("admin delete must log %q", model.ActionDeletedComment)
	}
}
