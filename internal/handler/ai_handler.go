package handler

import (
	"net/http"

	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService service.AIService
}

// NewAIHandler sets up the routing dependencies for the assistant endpoint
func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.POST("/chat", h.Chat)
	}
}

type chatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Chat handles POST /ai/chat
// @Summary      Movie assistant chat
// @Description  Proxies the prompt to the Gemini API and returns the reply text
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        payload  body      chatRequest  true  "Chat Payload"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	reply, err := h.aiService.Chat(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"reply": reply}))
}
