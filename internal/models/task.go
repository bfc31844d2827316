package model

import "time"

type Task struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description *string    `gorm:"size:500" json:"description"`
	Completed   bool       `gorm:"not null;index" json:"completed"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
