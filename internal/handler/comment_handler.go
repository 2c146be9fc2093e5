package handler

import (
	"net/http"

	"watched-api/internal/middleware"
	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService service.CommentService
	auth           gin.HandlerFunc
}

// NewCommentHandler sets up the routing dependencies for comment endpoints
func NewCommentHandler(commentService service.CommentService, auth gin.HandlerFunc) *CommentHandler {
	return &CommentHandler{commentService: commentService, auth: auth}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.POST("/create", h.auth, h.Create)
		comments.GET("/post/:postId", h.ListByPost)
		comments.GET("/:id", h.Get)
		comments.PUT("/:id", h.auth, h.Update)
		comments.DELETE("/:id", h.auth, h.Delete)
	}
}

// Create handles POST /comments/create
// @Summary      Create comment
// @Description  Adds a comment to an existing post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateCommentRequest  true  "Create Comment Payload"
// @Success      200      {object}  response.Response{data=service.CommentDTO}
// @Failure      404      {object}  response.Response
// @Router       /comments/create [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, comment))
}

// Get handles GET /comments/:id
// @Summary      Get comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  response.Response{data=service.CommentDTO}
// @Failure      404  {object}  response.Response
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrCommentNotFound.Error()))
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, comment))
}

// ListByPost handles GET /comments/post/:postId
// @Summary      List comments for a post
// @Description  Lists a post's comments oldest-first
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post ID"
// @Success      200     {object}  response.Response{data=[]service.CommentDTO}
// @Failure      404     {object}  response.Response
// @Router       /comments/post/{postId} [get]
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrPostNotFound.Error()))
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, comments))
}

// Update handles PUT /comments/:id
// @Summary      Update comment
// @Description  Updates a comment's content; owner or admin only
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Comment ID"
// @Param        payload  body      service.UpdateCommentRequest  true  "Update Comment Payload"
// @Success      200      {object}  response.Response{data=service.CommentDTO}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrCommentNotFound.Error()))
		return
	}

	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, comment))
}

// Delete handles DELETE /comments/:id
// @Summary      Delete comment
// @Description  Deletes a comment; owner or admin only
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, service.ErrCommentNotFound.Error()))
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Comment deleted successfully"))
}
