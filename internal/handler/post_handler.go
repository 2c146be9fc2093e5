package handler

import (
	"net/http"

	"watched-api/internal/middleware"
	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService  service.PostService
	auth         gin.HandlerFunc
	optionalAuth gin.HandlerFunc
}

// NewPostHandler sets up the routing dependencies for post endpoints
func NewPostHandler(postService service.PostService, auth, optionalAuth gin.HandlerFunc) *PostHandler {
	return &PostHandler{postService: postService, auth: auth, optionalAuth: optionalAuth}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.POST("/create", h.auth, h.Create)
		posts.GET("/all", h.optionalAuth, h.ListAll)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.auth, h.Update)
		posts.DELETE("/:id", h.auth, h.Delete)
		posts.POST("/:id/like", h.auth, h.Like)
		posts.DELETE("/:id/like", h.auth, h.Unlike)
	}
}

// Create handles POST /posts/create
// @Summary      Create post
// @Description  Creates a review post tied to a movie
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreatePostRequest  true  "Create Post Payload"
// @Success      200      {object}  response.Response{data=service.PostDTO}
// @Failure      400      {object}  response.Response
// @Router       /posts/create [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, post))
}

// Get handles GET /posts/:id
// @Summary      Get post
// @Description  Fetch a single post with like count
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response{data=service.PostDTO}
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrPostNotFound.Error()))
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, post))
}

// ListAll handles GET /posts/all
// @Summary      List all posts
// @Description  Lists every post newest-first, with hasLiked resolved for the caller when authenticated
// @Tags         posts
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.PostDTO}
// @Failure      500  {object}  response.Response
// @Router       /posts/all [get]
func (h *PostHandler) ListAll(c *gin.Context) {
	// hasLiked only resolves for authenticated callers; anonymous gets uuid.Nil
	currentUserID, _ := middleware.CurrentUserID(c)

	posts, err := h.postService.ListAll(c.Request.Context(), currentUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, posts))
}

// Update handles PUT /posts/:id
// @Summary      Update post
// @Description  Updates a post's content; owner or admin only
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Post ID"
// @Param        payload  body      service.UpdatePostRequest  true  "Update Post Payload"
// @Success      200      {object}  response.Response{data=service.PostDTO}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrPostNotFound.Error()))
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, post))
}

// Delete handles DELETE /posts/:id
// @Summary      Delete post
// @Description  Deletes a post; owner or admin only
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrPostNotFound.Error()))
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Post deleted successfully"))
}

// Like handles POST /posts/:id/like
// @Summary      Like post
// @Description  Likes a post; self-likes and duplicates are rejected
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response{data=model.PostLike}
// @Failure      400  {object}  response.Response
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrLikePostNotFound.Error()))
		return
	}

	like, err := h.postService.Like(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, like))
}

// Unlike handles DELETE /posts/:id/like
// @Summary      Unlike post
// @Description  Removes the caller's like from a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /posts/{id}/like [delete]
func (h *PostHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrNotLiked.Error()))
		return
	}

	if err := h.postService.Unlike(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Like removed"))
}
