package controller

import (
	"errors"

	"twi_edu_backend/internal/service"
	"twi_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService *service.ContactService
}

func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{ContactService: contactService}
}

// ContactRequest 联系表单
// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SendMessage godoc
// @Summary 提交联系留言
// @Description 公开接口，三个字段都必填
// @Tags 联系
// @Accept json
// @Produce json
// @Param body body ContactRequest true "留言内容"
// @Success 201 {object} util.Response{data=model.ContactMessage}
// @Failure 400 {object} util.Response "字段缺失"
// @Router /api/contact [post]
func (c *ContactController) SendMessage(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.ContactService.Submit(ctx.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, msg)
}

// ListMessages godoc
// @Summary 留言收件箱
// @Description 管理端查看全部留言，最新的在前
// @Tags 联系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ContactMessage}
// @Router /api/admin/messages [get]
func (c *ContactController) ListMessages(ctx *gin.Context) {
	messages, err := c.ContactService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// MarkMessageRead godoc
// @Summary 标记留言已读
// @Tags 联系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "留言ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "留言不存在"
// @Router /api/admin/messages/{id}/read [patch]
func (c *ContactController) MarkMessageRead(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.ContactService.MarkRead(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrMessageNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetUnreadCount godoc
// @Summary 未读留言数
// @Tags 联系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/messages/unread-count [get]
func (c *ContactController) GetUnreadCount(ctx *gin.Context) {
	count, err := c.ContactService.UnreadCount(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unreadCount": count})
}
