package models

type Tag struct {
	ID         uint64 `gorm:"primarykey;column:tag_id" json:"tag_id"`
	Name       string `gorm:"column:tag_name;type:varchar(50);not null" json:"tag_name"`
	CognitoSub string `gorm:"column:cognito_sub;type:varchar(50);not null;index" json:"-"`
}
