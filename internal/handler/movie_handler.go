package handler

import (
	"net/http"

	"watched-api/internal/middleware"
	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MovieHandler struct {
	movieService service.MovieService
	auth         gin.HandlerFunc
	cache        gin.HandlerFunc
}

// NewMovieHandler sets up the routing dependencies for movie endpoints.
// cache may be nil when redis is not configured.
func NewMovieHandler(movieService service.MovieService, auth, cache gin.HandlerFunc) *MovieHandler {
	if cache == nil {
		cache = func(c *gin.Context) { c.Next() }
	}
	return &MovieHandler{movieService: movieService, auth: auth, cache: cache}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("", h.cache, h.List)
		movies.GET("/:id", h.cache, h.Get)
		movies.POST("/fetch", h.Fetch)
		movies.POST("/:id/ratemovie", h.auth, h.Rate)
	}
}

// List handles GET /movies
// @Summary      List movies
// @Description  Lists the catalogue alphabetically with stored average ratings
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Movie}
// @Failure      500  {object}  response.Response
// @Router       /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, movies))
}

// Get handles GET /movies/:id
// @Summary      Get movie
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=model.Movie}
// @Failure      404  {object}  response.Response
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrMovieNotFound.Error()))
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, movie))
}

// Fetch handles POST /movies/fetch
// @Summary      Seed catalogue
// @Description  Fetches the fixed title list from OMDb and stores the results
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Movie}
// @Failure      500  {object}  response.Response
// @Router       /movies/fetch [post]
func (h *MovieHandler) Fetch(c *gin.Context) {
	movies, err := h.movieService.FetchCatalogue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, movies))
}

type rateMovieRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// Rate handles POST /movies/:id/ratemovie
// @Summary      Rate movie
// @Description  Records a 1-10 rating; one rating per user per movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string            true  "Movie ID"
// @Param        payload  body      rateMovieRequest  true  "Rating Payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /movies/{id}/ratemovie [post]
func (h *MovieHandler) Rate(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrMovieNotFound.Error()))
		return
	}

	var req rateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrRatingRange.Error()))
		return
	}

	if err := h.movieService.Rate(c.Request.Context(), userID, id, req.Rating); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Rating recorded"))
}
