package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/util"
	"twi_edu_backend/pkg/logger"
	"twi_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuestionSource 按类别提供题目，类别不存在时返回空切片
type QuestionSource interface {
	FindByCategory(category string) ([]model.QuizQuestion, error)
}

// RunStore 保存用户进行中的测验状态，Get 在没有状态时返回 (nil, nil)
type RunStore interface {
	Get(ctx context.Context, userID uint) (*model.QuizRun, error)
	Save(ctx context.Context, userID uint, run *model.QuizRun) error
	Delete(ctx context.Context, userID uint) error
}

// HistoryRecorder 追加一条完成记录，失败时返回 false 而不是错误：
// 丢一条历史记录不能挡住用户看到自己的成绩
type HistoryRecorder interface {
	RecordResult(username, category string, score, total, elapsedSeconds int) bool
}

// QuizService 一题一页的测验状态机。每个用户同一时刻至多一局，
// 换类别时旧的一局直接作废，不写历史。
type QuizService struct {
	Questions QuestionSource
	Runs      RunStore
	Recorder  HistoryRecorder
}

func NewQuizService(questions QuestionSource, runs RunStore, recorder HistoryRecorder) *QuizService {
	return &QuizService{
		Questions: questions,
		Runs:      runs,
		Recorder:  recorder,
	}
}

// QuestionView 展示给答题者的题目，不包含答案文本
type QuestionView struct {
	QuestionID uint               `json:"questionId"`
	Text       string             `json:"text"`
	Options    []model.QuizOption `json:"options"`
	AudioFile  string             `json:"audioFile,omitempty"`
}

// QuizProgress 当前题目及进度
type QuizProgress struct {
	Category string       `json:"category"`
	Question QuestionView `json:"question"`
	Index    int          `json:"index"`
	Total    int          `json:"total"`
}

// SubmitResult 一次提交的结果：要么带下一题，要么带完成摘要
type SubmitResult struct {
	Correct        bool          `json:"correct"`
	Completed      bool          `json:"completed"`
	Next           *QuizProgress `json:"next,omitempty"`
	Score          int           `json:"score"`
	Total          int           `json:"total"`
	ElapsedSeconds int           `json:"elapsedSeconds,omitempty"`
	HistorySaved   bool          `json:"historySaved,omitempty"`
}

// StartOrResume 开始或继续某类别的测验。同一类别已有进行中的一局时
// 原样返回（洗牌顺序、进度都不变）；换了类别则重新开一局。
// 类别下没有题目时返回 util.ErrNoQuizQuestions，调用方跳回选题页。
func (s *QuizService) StartOrResume(ctx context.Context, userID uint, category string) (*QuizProgress, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, util.ErrNoQuizQuestions
	}

	run, err := s.Runs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if run != nil && run.Category == category && !run.Finished() {
		return s.progressOf(run), nil
	}

	questions, err := s.Questions.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuizQuestions
	}

	prepared := make([]model.PreparedQuestion, 0, len(questions))
	for _, q := range questions {
		prepared = append(prepared, prepareQuestion(&q))
	}

	run = &model.QuizRun{
		Category:  category,
		Questions: prepared,
		Index:     0,
		Score:     0,
		StartedAt: time.Now(),
	}

	if err := s.Runs.Save(ctx, userID, run); err != nil {
		return nil, err
	}

	monitoring.QuizRunsStarted.WithLabelValues(category).Inc()
	return s.progressOf(run), nil
}

// CurrentQuestion 返回当前题目，用于重新渲染答题页。
// 索引越界属于内部不变量被破坏：记日志、清状态，但不崩溃。
func (s *QuizService) CurrentQuestion(ctx context.Context, userID uint) (*QuizProgress, error) {
	run, err := s.Runs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, util.ErrNoActiveQuiz
	}

	if _, ok := run.Current(); !ok {
		s.resetCorruptRun(ctx, userID, run)
		return nil, util.ErrQuizStateCorrupt
	}

	return s.progressOf(run), nil
}

// SubmitAnswer 提交当前题目的答案。答对加一分，无论对错索引都前进一格。
// 走完最后一题时计算耗时、写一条历史记录（尽力而为）、清掉本局状态。
func (s *QuizService) SubmitAnswer(ctx context.Context, userID uint, username, answer string) (*SubmitResult, error) {
	run, err := s.Runs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, util.ErrNoActiveQuiz
	}

	question, ok := run.Current()
	if !ok {
		s.resetCorruptRun(ctx, userID, run)
		return nil, util.ErrQuizStateCorrupt
	}

	normalized := util.NormalizeAnswer(answer)
	correct := normalized != "" && normalized == util.NormalizeAnswer(question.Answer)
	if correct {
		run.Score++
	}
	run.Index++

	total := len(run.Questions)

	if run.Finished() {
		elapsed := int(time.Since(run.StartedAt).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}

		saved := s.Recorder.RecordResult(username, run.Category, run.Score, total, elapsed)

		if err := s.Runs.Delete(ctx, userID); err != nil {
			logger.Log.Warn("Failed to clear finished quiz run",
				zap.Uint("userID", userID), zap.Error(err))
		}

		monitoring.QuizRunsCompleted.WithLabelValues(run.Category).Inc()

		return &SubmitResult{
			Correct:        correct,
			Completed:      true,
			Score:          run.Score,
			Total:          total,
			ElapsedSeconds: elapsed,
			HistorySaved:   saved,
		}, nil
	}

	if err := s.Runs.Save(ctx, userID, run); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Correct:   correct,
		Completed: false,
		Next:      s.progressOf(run),
		Score:     run.Score,
		Total:     total,
	}, nil
}

// Abandon 主动放弃当前一局，不写历史
func (s *QuizService) Abandon(ctx context.Context, userID uint) error {
	return s.Runs.Delete(ctx, userID)
}

func (s *QuizService) progressOf(run *model.QuizRun) *QuizProgress {
	question, _ := run.Current()
	return &QuizProgress{
		Category: run.Category,
		Question: QuestionView{
			QuestionID: question.QuestionID,
			Text:       question.Text,
			Options:    question.Options,
			AudioFile:  question.AudioFile,
		},
		Index: run.Index,
		Total: len(run.Questions),
	}
}

func (s *QuizService) resetCorruptRun(ctx context.Context, userID uint, run *model.QuizRun) {
	logger.Log.Error("Quiz run index out of range, resetting",
		zap.Uint("userID", userID),
		zap.String("category", run.Category),
		zap.Int("index", run.Index),
		zap.Int("total", len(run.Questions)))

	if err := s.Runs.Delete(ctx, userID); err != nil {
		logger.Log.Warn("Failed to clear corrupt quiz run",
			zap.Uint("userID", userID), zap.Error(err))
	}
}

// prepareQuestion 把题库里的一道题变成本局用的题目：
// 组装四个 (标签, 文本) 选项对，正确字母缺失或不合法时按约定回退到 A，
// 先取出正确答案的文本再对选项洗牌，之后的比较不依赖字母位置。
func prepareQuestion(q *model.QuizQuestion) model.PreparedQuestion {
	options := []model.QuizOption{
		{Label: "A", Text: q.OptionA},
		{Label: "B", Text: q.OptionB},
		{Label: "C", Text: q.OptionC},
		{Label: "D", Text: q.OptionD},
	}

	letter := strings.ToUpper(strings.TrimSpace(q.CorrectOption))
	switch letter {
	case "A", "B", "C", "D":
	default:
		letter = util.CorrectOptionFallback
	}
	answer := q.Option(letter)

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return model.PreparedQuestion{
		QuestionID: q.ID,
		Text:       q.Question,
		Options:    options,
		Answer:     answer,
		AudioFile:  q.AudioFile,
	}
}
