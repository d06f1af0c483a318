package controller

import (
	"errors"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/service"
	"twi_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	UserService     *service.UserService
	WordService     *service.WordService
	QuestionService *service.QuestionService
	HistoryService  *service.QuizHistoryService
	ContactService  *service.ContactService
}

func NewAdminController(
	userService *service.UserService,
	wordService *service.WordService,
	questionService *service.QuestionService,
	historyService *service.QuizHistoryService,
	contactService *service.ContactService,
) *AdminController {
	return &AdminController{
		UserService:     userService,
		WordService:     wordService,
		QuestionService: questionService,
		HistoryService:  historyService,
		ContactService:  contactService,
	}
}

// GetDashboard godoc
// @Summary 管理面板
// @Description 用户、词条、全部测验记录和留言的汇总视图
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/dashboard [get]
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	words, err := c.WordService.ListWords()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	history, err := c.HistoryService.AllHistory()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	messages, err := c.ContactService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users":       users,
		"words":       words,
		"quizHistory": history,
		"messages":    messages,
	})
}

// ToggleUserRole godoc
// @Summary 切换用户角色
// @Description 普通用户和管理员之间来回切换
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/admin/users/{id}/role [patch]
func (c *AdminController) ToggleUserRole(ctx *gin.Context) {
	id := util.ParamID(ctx)

	newRole, err := c.UserService.ToggleRole(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"role": newRole})
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 不允许删除当前登录的管理员自己
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "不能删除自己的账号"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.ParamID(ctx)

	if err := c.UserService.DeleteUser(claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, util.ErrSelfDeletion):
			util.BadRequest(ctx, "不能删除自己的账号")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// WordRequest 词条创建/更新请求
// swagger:model WordRequest
type WordRequest struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	PartOfSpeech  string `json:"partOfSpeech"`
	Definition    string `json:"definition"`
	Example       string `json:"example"`
	AudioFile     string `json:"audioFile"`
}

// CreateWord godoc
// @Summary 新增词条
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body WordRequest true "词条内容，word和definition必填"
// @Success 201 {object} util.Response{data=model.Word}
// @Failure 400 {object} util.Response
// @Router /api/admin/words [post]
func (c *AdminController) CreateWord(ctx *gin.Context) {
	var req WordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word := &model.Word{
		Word:          req.Word,
		Pronunciation: req.Pronunciation,
		PartOfSpeech:  req.PartOfSpeech,
		Definition:    req.Definition,
		Example:       req.Example,
		AudioFile:     req.AudioFile,
	}

	if err := c.WordService.CreateWord(word); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, word)
}

// UpdateWord godoc
// @Summary 更新词条
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词条ID"
// @Param body body WordRequest true "词条内容"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response "词条不存在"
// @Router /api/admin/words/{id} [put]
func (c *AdminController) UpdateWord(ctx *gin.Context) {
	id := util.ParamID(ctx)

	var req WordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word, err := c.WordService.UpdateWord(id, &model.Word{
		Pronunciation: req.Pronunciation,
		PartOfSpeech:  req.PartOfSpeech,
		Definition:    req.Definition,
		Example:       req.Example,
		AudioFile:     req.AudioFile,
	})
	if err != nil {
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, word)
}

// DeleteWord godoc
// @Summary 删除词条
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词条ID"
// @Success 200 {object} util.Response
// @Router /api/admin/words/{id} [delete]
func (c *AdminController) DeleteWord(ctx *gin.Context) {
	id := util.ParamID(ctx)

	if err := c.WordService.DeleteWord(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadWordAudio godoc
// @Summary 上传词条发音音频
// @Tags 管理
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词条ID"
// @Param file formData file true "音频文件"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 400 {object} util.Response "文件不是有效音频"
// @Router /api/admin/words/{id}/audio [post]
func (c *AdminController) UploadWordAudio(ctx *gin.Context) {
	id := util.ParamID(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	word, err := c.WordService.AttachAudio(ctx.Request.Context(), id, fileHeader)
	if err != nil {
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, word)
}

// QuestionRequest 题目创建请求
// swagger:model QuestionRequest
type QuestionRequest struct {
	Category      string `json:"category" binding:"required"`
	Question      string `json:"question" binding:"required"`
	OptionA       string `json:"optionA" binding:"required"`
	OptionB       string `json:"optionB" binding:"required"`
	OptionC       string `json:"optionC" binding:"required"`
	OptionD       string `json:"optionD" binding:"required"`
	CorrectOption string `json:"correctOption"`
	AudioFile     string `json:"audioFile"`
}

// CreateQuestion godoc
// @Summary 新增测验题目
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/quiz/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.QuizQuestion{
		Category:      req.Category,
		Question:      req.Question,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		AudioFile:     req.AudioFile,
	}

	if err := c.QuestionService.CreateQuestion(question); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, question)
}

// ListQuestions godoc
// @Summary 按类别查看题目
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param category query string true "测验类别"
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Router /api/admin/quiz/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "" {
		util.BadRequest(ctx, "category is required")
		return
	}

	questions, err := c.QuestionService.ListByCategory(category)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// DeleteQuestion godoc
// @Summary 删除测验题目
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/admin/quiz/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id := util.ParamID(ctx)

	if err := c.QuestionService.DeleteQuestion(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadQuestionAudio godoc
// @Summary 上传题目音频
// @Tags 管理
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param file formData file true "音频文件"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Router /api/admin/quiz/questions/{id}/audio [post]
func (c *AdminController) UploadQuestionAudio(ctx *gin.Context) {
	id := util.ParamID(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	question, err := c.QuestionService.AttachAudio(ctx.Request.Context(), id, fileHeader)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, question)
}
