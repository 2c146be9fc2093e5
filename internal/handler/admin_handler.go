package handler

import (
	"net/http"

	"watched-api/internal/middleware"
	"watched-api/internal/service"
	"watched-api/pkg/pagination"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
	auth         gin.HandlerFunc
}

// NewAdminHandler sets up the routing dependencies for admin endpoints
func NewAdminHandler(adminService service.AdminService, auth gin.HandlerFunc) *AdminHandler {
	return &AdminHandler{adminService: adminService, auth: auth}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/logs", h.auth, h.Logs)
		admin.GET("/site-activity", h.auth, h.SiteActivity)
	}
}

// Logs handles GET /admin/logs
// @Summary      List admin logs
// @Description  Paginated moderation trail, newest first; admin only
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      403    {object}  response.Response
// @Router       /admin/logs [get]
func (h *AdminHandler) Logs(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	params := pagination.Parse(c)
	logs, total, err := h.adminService.Logs(c.Request.Context(), userID, params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// SiteActivity handles GET /admin/site-activity
// @Summary      Site activity report
// @Description  Lists site events for a window (all, past-month, past-2-weeks); admin only
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query     string  false  "all | past-month | past-2-weeks (default all)"
// @Success      200     {object}  response.Response{data=[]service.SiteActivityEntry}
// @Failure      403     {object}  response.Response
// @Router       /admin/site-activity [get]
func (h *AdminHandler) SiteActivity(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	filter := service.SiteActivityFilter(c.DefaultQuery("filter", string(service.FilterAll)))
	entries, err := h.adminService.SiteActivity(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entries))
}
