package models

import (
	"time"
)

// Media is the metadata row for an uploaded image or video. The binary lives
// on the asset host; URL points at the published copy and AssetID is the
// handle needed to release it again.
type Media struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	FolderID       uint      `json:"folder_id" gorm:"not null;index"`
	URL            string    `json:"url" gorm:"not null"`
	AssetID        string    `json:"asset_id" gorm:"not null"`
	OrderIndex     int       `json:"order_index" gorm:"not null;default:0"`
	Layout         string    `json:"layout" gorm:"not null"`
	VideoStartTime int       `json:"video_start_time" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (Media) TableName() string {
	return "media"
}
