package handler

import (
	"errors"
	"net/http"

	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses in one place so every
// handler reports the same status for the same failure.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	c.JSON(status, response.Error(status, err.Error()))
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrFieldsRequired),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrCredentialsMissing),
		errors.Is(err, service.ErrInvalidMovieID),
		errors.Is(err, service.ErrLikePostNotFound),
		errors.Is(err, service.ErrSelfLike),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrNotLiked),
		errors.Is(err, service.ErrRatingRange):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownUsername),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrRefreshExpired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPostUpdateForbidden),
		errors.Is(err, service.ErrPostDeleteForbidden),
		errors.Is(err, service.ErrCommentUpdateForbidden),
		errors.Is(err, service.ErrCommentDeleteForbidden),
		errors.Is(err, service.ErrAdminLogsForbidden),
		errors.Is(err, service.ErrSiteActivityForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrMovieNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyRated):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
