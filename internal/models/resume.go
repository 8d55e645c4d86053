package models

import "time"

type Resume struct {
	ID       string `gorm:"column:id;type:text;primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;type:text;index" json:"user_id"`
	FileName string `gorm:"column:file_name;type:text" json:"file_name"`
	URL      string `gorm:"column:url;type:text" json:"url"`

	FileSize int    `gorm:"column:file_size;type:integer" json:"file_size"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mime_type"`

	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz" json:"uploaded_at"`
}

func (Resume) TableName() string { return "resumes" }
