package model

import "time"

// QuizHistory 一次完成的测验记录，写入后不再修改
// swagger:model QuizHistory
type QuizHistory struct {
	BaseModel
	Username       string    `gorm:"size:100;not null;index" json:"username"`
	Category       string    `gorm:"size:100;not null" json:"category"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	TimeTaken      int       `gorm:"not null" json:"timeTaken"` // 秒
	DateTaken      time.Time `gorm:"not null" json:"dateTaken"`
}

func (QuizHistory) TableName() string {
	return "quiz_history"
}
