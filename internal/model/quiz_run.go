package model

import "time"

// QuizOption 出题时的一个 (标签, 文本) 选项对
type QuizOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// PreparedQuestion 一次测验实例中的题目：选项顺序在建题时洗牌一次，
// 正确答案以文本形式固化，之后的比较不再关心字母映射
type PreparedQuestion struct {
	QuestionID uint         `json:"questionId"`
	Text       string       `json:"text"`
	Options    []QuizOption `json:"options"`
	Answer     string       `json:"answer"`
	AudioFile  string       `json:"audioFile,omitempty"`
}

// QuizRun 某个用户在某个类别下进行中的测验。只存在于会话存储里，
// 完成或被新类别覆盖后即销毁
type QuizRun struct {
	Category  string             `json:"category"`
	Questions []PreparedQuestion `json:"questions"`
	Index     int                `json:"index"`
	Score     int                `json:"score"`
	StartedAt time.Time          `json:"startedAt"`
}

// Finished 当前索引是否已走完全部题目
func (r *QuizRun) Finished() bool {
	return r.Index >= len(r.Questions)
}

// Current 返回当前题目，索引越界时第二个返回值为 false
func (r *QuizRun) Current() (*PreparedQuestion, bool) {
	if r.Index < 0 || r.Index >= len(r.Questions) {
		return nil, false
	}
	return &r.Questions[r.Index], true
}
