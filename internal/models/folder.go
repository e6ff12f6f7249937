package models

import (
	"time"
)

// Folder is a node of the category/project tree. A category is a top-level
// folder (ParentID nil, IsCategory true); a project hangs off a category and
// owns ordered media.
type Folder struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string    `json:"name" gorm:"not null"`
	Slug              string    `json:"slug" gorm:"not null;index:idx_folders_parent_slug,unique"`
	ParentID          *uint     `json:"parent_id" gorm:"index:idx_folders_parent_slug,unique"`
	IsCategory        bool      `json:"is_category" gorm:"not null;default:false"`
	IsActive          bool      `json:"is_active" gorm:"not null;default:true"`
	IsProtected       bool      `json:"is_protected" gorm:"not null;default:false"`
	HeroImageURL      *string   `json:"hero_image_url"`
	RelatedProject1ID *uint     `json:"related_project_1_id"`
	RelatedProject2ID *uint     `json:"related_project_2_id"`
	Ordering          int       `json:"ordering" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Media []Media `json:"media,omitempty" gorm:"foreignKey:FolderID"`
}

// TableName explicitly sets the table name for GORM.
func (Folder) TableName() string {
	return "folders"
}

// FolderWithRelated is a folder with both related-project slots resolved.
// A slot whose target project no longer exists resolves to nil.
type FolderWithRelated struct {
	Folder
	RelatedProject1 *Folder `json:"related_project_1"`
	RelatedProject2 *Folder `json:"related_project_2"`
}
