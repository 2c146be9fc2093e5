package service

import (
	"context"

	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/google/uuid"
)

// canModify is the single owner-or-admin predicate gating mutation of
// user-generated content.
func canModify(requester *model.User, requesterID, ownerID uuid.UUID) bool {
	if requesterID == ownerID {
		return true
	}
	return requester != nil && requester.IsAdmin
}

// resolveRequester loads the acting user's row so role decisions always see
// the current admin flag rather than anything frozen into the token. A
// missing row degrades to "not admin" instead of failing the request.
func resolveRequester(ctx context.Context, users repository.UserRepository, id uuid.UUID) *model.User {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return user
}
