package model

import "time"

// WordOfTheDay 每日推荐词条的快照，每个自然日一行
// swagger:model WordOfTheDay
type WordOfTheDay struct {
	BaseModel
	Word          string    `gorm:"size:100;not null" json:"word"`
	Pronunciation string    `gorm:"size:255" json:"pronunciation"`
	PartOfSpeech  string    `gorm:"size:50" json:"partOfSpeech"`
	Definition    string    `gorm:"type:text;not null" json:"definition"`
	Example       string    `gorm:"type:text" json:"example"`
	AudioFile     string    `gorm:"size:255" json:"audioFile"`
	DateSelected  time.Time `gorm:"type:date;uniqueIndex;not null" json:"dateSelected"`
}

func (WordOfTheDay) TableName() string {
	return "word_of_the_day"
}
