package controller

import (
	"errors"

	"twi_edu_backend/internal/service"
	"twi_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService     *service.QuizService
	QuestionService *service.QuestionService
	HistoryService  *service.QuizHistoryService
}

func NewQuizController(quizService *service.QuizService, questionService *service.QuestionService, historyService *service.QuizHistoryService) *QuizController {
	return &QuizController{
		QuizService:     quizService,
		QuestionService: questionService,
		HistoryService:  historyService,
	}
}

// GetTopics godoc
// @Summary 测验选题页
// @Description 全部类别及题目数、是否带音频
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.TopicSummary}
// @Router /api/quiz/topics [get]
func (c *QuizController) GetTopics(ctx *gin.Context) {
	topics, err := c.QuestionService.ListTopics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// StartQuiz godoc
// @Summary 开始或继续某类别的测验
// @Description 同一类别已有进行中的测验时原样返回当前题目；类别下没有题目时返回404，前端跳回选题页
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param category path string true "测验类别"
// @Success 200 {object} util.Response{data=service.QuizProgress}
// @Failure 404 {object} util.Response "该类别暂无题目"
// @Router /api/quiz/{category}/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	category := ctx.Param("category")

	progress, err := c.QuizService.StartOrResume(ctx.Request.Context(), claims.UserID, category)
	if err != nil {
		if errors.Is(err, util.ErrNoQuizQuestions) {
			util.NotFoundMessage(ctx, "该类别暂无题目")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// GetCurrentQuestion godoc
// @Summary 当前题目
// @Description 重新渲染答题页时取当前题目和进度
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.QuizProgress}
// @Failure 404 {object} util.Response "没有进行中的测验"
// @Router /api/quiz/current [get]
func (c *QuizController) GetCurrentQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.QuizService.CurrentQuestion(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoActiveQuiz) || errors.Is(err, util.ErrQuizStateCorrupt) {
			util.NotFoundMessage(ctx, "没有进行中的测验")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// SubmitAnswerRequest 提交答案请求
// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswer godoc
// @Summary 提交当前题目的答案
// @Description 返回下一题，或在最后一题之后返回完成摘要；空答案按答错处理，照样前进
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAnswerRequest true "所选选项的文本"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 404 {object} util.Response "没有进行中的测验"
// @Router /api/quiz/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAnswer(ctx.Request.Context(), claims.UserID, claims.Username, req.Answer)
	if err != nil {
		if errors.Is(err, util.ErrNoActiveQuiz) || errors.Is(err, util.ErrQuizStateCorrupt) {
			util.NotFoundMessage(ctx, "没有进行中的测验")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// AbandonQuiz godoc
// @Summary 放弃当前测验
// @Description 清掉进行中的一局，不写历史记录
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quiz/abandon [post]
func (c *QuizController) AbandonQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Abandon(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetMyHistory godoc
// @Summary 我的测验成绩
// @Description 当前用户的测验历史，最新的在前
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizHistory}
// @Router /api/quiz/history [get]
func (c *QuizController) GetMyHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.HistoryService.UserHistory(claims.Username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
