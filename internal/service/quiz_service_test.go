package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/util"
	"twi_edu_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakeQuestionSource struct {
	byCategory map[string][]model.QuizQuestion
	err        error
}

func (f *fakeQuestionSource) FindByCategory(category string) ([]model.QuizQuestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCategory[category], nil
}

// fakeRunStore 走一遍 JSON 序列化来模拟真实会话存储：
// 取出来的状态和存进去的是两个对象
type fakeRunStore struct {
	runs    map[uint]*model.QuizRun
	saveErr error
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: make(map[uint]*model.QuizRun)}
}

func (f *fakeRunStore) Get(ctx context.Context, userID uint) (*model.QuizRun, error) {
	run, ok := f.runs[userID]
	if !ok {
		return nil, nil
	}
	clone := *run
	clone.Questions = append([]model.PreparedQuestion(nil), run.Questions...)
	return &clone, nil
}

func (f *fakeRunStore) Save(ctx context.Context, userID uint, run *model.QuizRun) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	clone := *run
	clone.Questions = append([]model.PreparedQuestion(nil), run.Questions...)
	f.runs[userID] = &clone
	return nil
}

func (f *fakeRunStore) Delete(ctx context.Context, userID uint) error {
	delete(f.runs, userID)
	return nil
}

type recordedResult struct {
	Username string
	Category string
	Score    int
	Total    int
	Elapsed  int
}

type fakeRecorder struct {
	records []recordedResult
	fail    bool
}

func (f *fakeRecorder) RecordResult(username, category string, score, total, elapsedSeconds int) bool {
	f.records = append(f.records, recordedResult{
		Username: username,
		Category: category,
		Score:    score,
		Total:    total,
		Elapsed:  elapsedSeconds,
	})
	return !f.fail
}

func makeQuestion(id uint, category, correct string) model.QuizQuestion {
	q := model.QuizQuestion{
		Category:      category,
		Question:      "q",
		OptionA:       "answer-a",
		OptionB:       "answer-b",
		OptionC:       "answer-c",
		OptionD:       "answer-d",
		CorrectOption: correct,
	}
	q.ID = id
	return q
}

// correctAnswerFor 根据字母返回 makeQuestion 固定的选项文本
func correctAnswerFor(letter string) string {
	return "answer-" + letter
}

func newTestService(questions map[string][]model.QuizQuestion) (*QuizService, *fakeRunStore, *fakeRecorder) {
	store := newFakeRunStore()
	recorder := &fakeRecorder{}
	svc := NewQuizService(&fakeQuestionSource{byCategory: questions}, store, recorder)
	return svc, store, recorder
}

func TestStartOrResumeEmptyCategory(t *testing.T) {
	svc, store, _ := newTestService(nil)

	for _, category := range []string{"", "   ", "no-such-category"} {
		_, err := svc.StartOrResume(context.Background(), 1, category)
		if !errors.Is(err, util.ErrNoQuizQuestions) {
			t.Errorf("category %q: got err %v, want ErrNoQuizQuestions", category, err)
		}
	}
	if len(store.runs) != 0 {
		t.Error("no run should be saved when there are no questions")
	}
}

func TestStartOrResumePreparesOptions(t *testing.T) {
	svc, _, _ := newTestService(map[string][]model.QuizQuestion{
		"colors": {makeQuestion(1, "colors", "B")},
	})

	progress, err := svc.StartOrResume(context.Background(), 1, "colors")
	if err != nil {
		t.Fatalf("StartOrResume: %v", err)
	}

	if progress.Category != "colors" || progress.Index != 0 || progress.Total != 1 {
		t.Errorf("unexpected progress: %+v", progress)
	}
	if len(progress.Question.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(progress.Question.Options))
	}

	// 洗牌后四个选项文本必须还是原来那四个
	seen := make(map[string]bool)
	for _, opt := range progress.Question.Options {
		seen[opt.Text] = true
	}
	for _, letter := range []string{"a", "b", "c", "d"} {
		if !seen["answer-"+letter] {
			t.Errorf("option text answer-%s missing after shuffle", letter)
		}
	}
}

func TestStartOrResumeIsIdempotentForSameCategory(t *testing.T) {
	svc, _, _ := newTestService(map[string][]model.QuizQuestion{
		"colors": {
			makeQuestion(1, "colors", "A"),
			makeQuestion(2, "colors", "B"),
			makeQuestion(3, "colors", "C"),
		},
	})
	ctx := context.Background()

	first, err := svc.StartOrResume(ctx, 7, "colors")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	// 答一题推进进度，再次 start 不得重开一局
	if _, err := svc.SubmitAnswer(ctx, 7, "kofi", "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	second, err := svc.StartOrResume(ctx, 7, "colors")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if second.Index != 1 {
		t.Errorf("resume index = %d, want 1", second.Index)
	}
	if second.Question.QuestionID == first.Question.QuestionID && second.Index == first.Index {
		t.Error("resume returned the first question again, run was restarted")
	}

	// 洗牌顺序不变：同一索引的题目前后一致
	third, err := svc.StartOrResume(ctx, 7, "colors")
	if err != nil {
		t.Fatalf("third start: %v", err)
	}
	if third.Question.QuestionID != second.Question.QuestionID {
		t.Error("question order changed between resumes")
	}
	for i := range second.Question.Options {
		if third.Question.Options[i] != second.Question.Options[i] {
			t.Error("option order changed between resumes")
			break
		}
	}
}

func TestStartOrResumeCategorySwitchDiscardsRun(t *testing.T) {
	svc, store, recorder := newTestService(map[string][]model.QuizQuestion{
		"colors":  {makeQuestion(1, "colors", "A"), makeQuestion(2, "colors", "B")},
		"numbers": {makeQuestion(3, "numbers", "C")},
	})
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 1, "colors"); err != nil {
		t.Fatalf("start colors: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, 1, "kofi", correctAnswerFor("a")); err != nil {
		t.Fatalf("submit: %v", err)
	}

	progress, err := svc.StartOrResume(ctx, 1, "numbers")
	if err != nil {
		t.Fatalf("start numbers: %v", err)
	}
	if progress.Category != "numbers" || progress.Index != 0 {
		t.Errorf("switch did not open a fresh run: %+v", progress)
	}
	if len(recorder.records) != 0 {
		t.Error("discarded run must not leave a history record")
	}
	if run := store.runs[1]; run == nil || run.Category != "numbers" {
		t.Error("stored run should belong to the new category")
	}
}

func TestSubmitAnswerFullRun(t *testing.T) {
	svc, store, recorder := newTestService(map[string][]model.QuizQuestion{
		"greetings": {
			makeQuestion(1, "greetings", "A"),
			makeQuestion(2, "greetings", "B"),
			makeQuestion(3, "greetings", "C"),
		},
	})
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 5, "greetings"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// 答案以文本比较，与选项洗牌后的字母位置无关。
	// 第一题答对（带空白和大小写变化），第二题答错，第三题答对。
	answers := []struct {
		answer      string
		wantCorrect bool
	}{
		{"  Answer-A\u200b ", true},
		{"answer-a", false},
		{"answer-c", true},
	}

	for i, step := range answers {
		progress, err := svc.CurrentQuestion(ctx, 5)
		if err != nil {
			t.Fatalf("step %d current: %v", i, err)
		}
		if progress.Index != i {
			t.Fatalf("step %d index = %d", i, progress.Index)
		}

		result, err := svc.SubmitAnswer(ctx, 5, "adwoa", step.answer)
		if err != nil {
			t.Fatalf("step %d submit: %v", i, err)
		}
		if result.Correct != step.wantCorrect {
			t.Errorf("step %d correct = %v, want %v", i, result.Correct, step.wantCorrect)
		}
	}

	if len(recorder.records) != 1 {
		t.Fatalf("got %d history records, want 1", len(recorder.records))
	}
	rec := recorder.records[0]
	if rec.Username != "adwoa" || rec.Category != "greetings" || rec.Score != 2 || rec.Total != 3 {
		t.Errorf("unexpected history record: %+v", rec)
	}
	if rec.Elapsed < 0 {
		t.Errorf("elapsed seconds negative: %d", rec.Elapsed)
	}

	if _, ok := store.runs[5]; ok {
		t.Error("finished run must be removed from the store")
	}
	if _, err := svc.CurrentQuestion(ctx, 5); !errors.Is(err, util.ErrNoActiveQuiz) {
		t.Errorf("after completion: got %v, want ErrNoActiveQuiz", err)
	}
}

func TestSubmitAnswerCompletionResult(t *testing.T) {
	svc, _, _ := newTestService(map[string][]model.QuizQuestion{
		"colors": {makeQuestion(1, "colors", "D")},
	})
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 2, "colors"); err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SubmitAnswer(ctx, 2, "kofi", correctAnswerFor("d"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Completed || result.Next != nil {
		t.Errorf("single-question run should complete immediately: %+v", result)
	}
	if result.Score != 1 || result.Total != 1 || !result.HistorySaved {
		t.Errorf("unexpected completion summary: %+v", result)
	}
}

func TestSubmitAnswerDefaultsToOptionA(t *testing.T) {
	for _, correct := range []string{"", "x", " a "} {
		svc, _, _ := newTestService(map[string][]model.QuizQuestion{
			"colors": {makeQuestion(1, "colors", correct)},
		})
		ctx := context.Background()

		if _, err := svc.StartOrResume(ctx, 1, "colors"); err != nil {
			t.Fatalf("correct %q start: %v", correct, err)
		}
		result, err := svc.SubmitAnswer(ctx, 1, "kofi", correctAnswerFor("a"))
		if err != nil {
			t.Fatalf("correct %q submit: %v", correct, err)
		}
		if !result.Correct {
			t.Errorf("correct letter %q should fall back to option A", correct)
		}
	}
}

func TestSubmitAnswerEmptyAnswerAdvances(t *testing.T) {
	svc, _, _ := newTestService(map[string][]model.QuizQuestion{
		"colors": {makeQuestion(1, "colors", "A"), makeQuestion(2, "colors", "A")},
	})
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 1, "colors"); err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SubmitAnswer(ctx, 1, "kofi", "   \u200b ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct {
		t.Error("blank answer must count as incorrect")
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if result.Next == nil || result.Next.Index != 1 {
		t.Error("blank answer must still advance to the next question")
	}
}

func TestSubmitAnswerWithoutActiveRun(t *testing.T) {
	svc, _, _ := newTestService(nil)
	if _, err := svc.SubmitAnswer(context.Background(), 1, "kofi", "x"); !errors.Is(err, util.ErrNoActiveQuiz) {
		t.Errorf("got %v, want ErrNoActiveQuiz", err)
	}
}

func TestCorruptRunIsReset(t *testing.T) {
	svc, store, recorder := newTestService(nil)
	ctx := context.Background()

	store.runs[9] = &model.QuizRun{
		Category:  "colors",
		Questions: []model.PreparedQuestion{{QuestionID: 1, Answer: "answer-a"}},
		Index:     5,
	}

	if _, err := svc.CurrentQuestion(ctx, 9); !errors.Is(err, util.ErrQuizStateCorrupt) {
		t.Errorf("got %v, want ErrQuizStateCorrupt", err)
	}
	if _, ok := store.runs[9]; ok {
		t.Error("corrupt run must be cleared")
	}
	if len(recorder.records) != 0 {
		t.Error("corrupt run must not produce a history record")
	}
}

func TestRecorderFailureStillCompletes(t *testing.T) {
	svc, store, recorder := newTestService(map[string][]model.QuizQuestion{
		"colors": {makeQuestion(1, "colors", "A")},
	})
	recorder.fail = true
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 3, "colors"); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err := svc.SubmitAnswer(ctx, 3, "kofi", correctAnswerFor("a"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Completed {
		t.Error("run must complete even when the history write fails")
	}
	if result.HistorySaved {
		t.Error("HistorySaved should be false on recorder failure")
	}
	if _, ok := store.runs[3]; ok {
		t.Error("run must be cleared even when the history write fails")
	}
}

func TestAbandonClearsRun(t *testing.T) {
	svc, store, recorder := newTestService(map[string][]model.QuizQuestion{
		"colors": {makeQuestion(1, "colors", "A")},
	})
	ctx := context.Background()

	if _, err := svc.StartOrResume(ctx, 1, "colors"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Abandon(ctx, 1); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, ok := store.runs[1]; ok {
		t.Error("abandoned run must be removed")
	}
	if len(recorder.records) != 0 {
		t.Error("abandoned run must not leave a history record")
	}
}
