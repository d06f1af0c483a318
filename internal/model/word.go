package model

// Word 词典中的一个Twi词条
// swagger:model Word
type Word struct {
	BaseModel
	Word          string `gorm:"size:100;not null;index" json:"word"`
	Pronunciation string `gorm:"size:255" json:"pronunciation"`
	PartOfSpeech  string `gorm:"size:50" json:"partOfSpeech"`
	Definition    string `gorm:"type:text;not null" json:"definition"`
	Example       string `gorm:"type:text" json:"example"`
	AudioFile     string `gorm:"size:255" json:"audioFile"`
}

func (Word) TableName() string {
	return "words"
}
