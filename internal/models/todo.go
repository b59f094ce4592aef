package models

import "time"

type Todo struct {
	ID          uint64     `gorm:"primarykey;column:todo_id" json:"todo_id"`
	Description string     `gorm:"type:text;not null" json:"description"`
	IsDone      bool       `gorm:"column:is_done;not null;default:false" json:"is_done"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	CreatedAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at" json:"update_at"`
	CognitoSub  string     `gorm:"column:cognito_sub;type:varchar(50);not null;index" json:"-"`

	// Relations
	Tags []Tag `gorm:"many2many:todo_tag;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}
