package model

// QuizQuestion 题库中的一道选择题，四个选项，正确答案以字母标记
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	Category      string `gorm:"size:100;not null;index" json:"category"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:255;not null" json:"optionA"`
	OptionB       string `gorm:"size:255;not null" json:"optionB"`
	OptionC       string `gorm:"size:255;not null" json:"optionC"`
	OptionD       string `gorm:"size:255;not null" json:"optionD"`
	CorrectOption string `gorm:"size:1" json:"correctOption"`
	AudioFile     string `gorm:"size:255" json:"audioFile"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// Option 根据字母取对应选项文本，未知字母返回空串
func (q *QuizQuestion) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
