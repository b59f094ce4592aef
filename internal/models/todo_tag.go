package models

// TodoTag is the join row between a todo and one of its owner's tags.
type TodoTag struct {
	TodoID uint64 `gorm:"primarykey;column:todo_id" json:"todo_id"`
	TagID  uint64 `gorm:"primarykey;column:tag_id;index" json:"tag_id"`
}

func (TodoTag) TableName() string {
	return "todo_tag"
}
