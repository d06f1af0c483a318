package model

// ContactMessage 访客通过联系表单提交的留言
// swagger:model ContactMessage
type ContactMessage struct {
	UUIDBase
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"default:false;index" json:"isRead"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
