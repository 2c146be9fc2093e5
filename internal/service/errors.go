package service

import "errors"

// Sentinel errors carrying the exact user-facing messages. Handlers translate
// them to HTTP statuses in one place (handler.respondError); services never
// pick status codes themselves.

// Authentication and token lifecycle.
var (
	ErrFieldsRequired     = errors.New("All fields are required!")
	ErrUserExists         = errors.New("User already exists!")
	ErrCredentialsMissing = errors.New("Username and password are required!")
	ErrUnknownUsername    = errors.New("Error Unable to find username!")
	ErrInvalidPassword    = errors.New("Error invalid password!")
	ErrRefreshExpired     = errors.New("Refresh token expired. Please log in again.")
)

// Entity lookups.
var (
	ErrPostNotFound    = errors.New("Post not found")
	ErrCommentNotFound = errors.New("Comment not found")
	ErrMovieNotFound   = errors.New("Movie not found")
	ErrInvalidMovieID  = errors.New("Invalid Movie ID.")
)

// Permission denials.
var (
	ErrPostUpdateForbidden    = errors.New("You do not have permission to update this post.")
	ErrPostDeleteForbidden    = errors.New("You do not have permission to delete this post.")
	ErrCommentUpdateForbidden = errors.New("You do not have permission to update this comment.")
	ErrCommentDeleteForbidden = errors.New("You do not have permission to delete this comment.")
	ErrAdminLogsForbidden     = errors.New("You do not have permission to view admin logs.")
	ErrSiteActivityForbidden  = errors.New("You do not have permission to view site activity.")
)

// Likes and ratings. Like failures collapse to 400 at the API boundary,
// duplicate ratings report 409. The split is part of the public contract.
var (
	ErrSelfLike         = errors.New("You cannot like your own post.")
	ErrAlreadyLiked     = errors.New("Post already liked.")
	ErrNotLiked         = errors.New("Post not liked or post not found")
	ErrLikePostNotFound = errors.New("Post not found.")
	ErrRatingRange      = errors.New("Rating must be between 1 and 10")
	ErrAlreadyRated     = errors.New("You have already rated this movie")
)
