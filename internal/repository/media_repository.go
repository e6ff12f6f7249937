package repository

import (
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// MediaRepository defines persistence operations for media rows.
type MediaRepository interface {
	Create(media *models.Media) error
	GetByID(id string) (*models.Media, error)
	ListByFolder(folderID uint) ([]models.Media, error)
	ListByFolders(folderIDs []uint) ([]models.Media, error)
	Update(media *models.Media) error
	SwapOrderIndexes(aID, bID string) error
	Delete(id string) error
	DeleteByFolders(folderIDs []uint) error
	CountsByFolder() (map[uint]int, error)
	FirstImagesByCategory(categoryID uint) (map[uint]string, error)
}

// MediaRepositoryImpl provides methods to interact with the Media model in the database.
type MediaRepositoryImpl struct {
	db *gorm.DB
}

// NewMediaRepository creates a new MediaRepositoryImpl instance with the provided GORM database connection.
func NewMediaRepository(db *gorm.DB) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{db: db}
}

// Create inserts a new Media row in the database.
func (r *MediaRepositoryImpl) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

// GetByID retrieves a Media row by its ID from the database.
func (r *MediaRepositoryImpl) GetByID(id string) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// ListByFolder returns a folder's media in display order. Creation time breaks
// order-index ties so the projection stays stable.
func (r *MediaRepositoryImpl) ListByFolder(folderID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.db.
		Where("folder_id = ?", folderID).
		Order("order_index ASC, created_at ASC").
		Find(&media).Error
	return media, err
}

// ListByFolders returns all media owned by any of the given folders.
func (r *MediaRepositoryImpl) ListByFolders(folderIDs []uint) ([]models.Media, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}
	var media []models.Media
	err := r.db.
		Where("folder_id IN ?", folderIDs).
		Order("order_index ASC, created_at ASC").
		Find(&media).Error
	return media, err
}

// Update saves an existing Media row in the database.
func (r *MediaRepositoryImpl) Update(media *models.Media) error {
	return r.db.Save(media).Error
}

// SwapOrderIndexes exchanges the order indexes of two media rows in one
// transaction, so a failure cannot leave only half the swap applied.
func (r *MediaRepositoryImpl) SwapOrderIndexes(aID, bID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var a, b models.Media
		if err := tx.First(&a, "id = ?", aID).Error; err != nil {
			return err
		}
		if err := tx.First(&b, "id = ?", bID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Media{}).Where("id = ?", a.ID).
			Update("order_index", b.OrderIndex).Error; err != nil {
			return err
		}
		return tx.Model(&models.Media{}).Where("id = ?", b.ID).
			Update("order_index", a.OrderIndex).Error
	})
}

// Delete removes a Media row by its ID.
func (r *MediaRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Media{}, "id = ?", id).Error
}

// DeleteByFolders removes all media rows owned by any of the given folders.
func (r *MediaRepositoryImpl) DeleteByFolders(folderIDs []uint) error {
	if len(folderIDs) == 0 {
		return nil
	}
	return r.db.Delete(&models.Media{}, "folder_id IN ?", folderIDs).Error
}

// CountsByFolder returns the number of media rows per folder id.
func (r *MediaRepositoryImpl) CountsByFolder() (map[uint]int, error) {
	var rows []struct {
		FolderID uint
		Count    int
	}
	err := r.db.Model(&models.Media{}).
		Select("folder_id, COUNT(*) AS count").
		Group("folder_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.FolderID] = row.Count
	}
	return counts, nil
}

// FirstImagesByCategory returns, for every project of a category, the URL of
// its first image by order index. Video-only projects have no entry.
func (r *MediaRepositoryImpl) FirstImagesByCategory(categoryID uint) (map[uint]string, error) {
	var rows []struct {
		FolderID uint
		URL      string
	}
	query := `
		SELECT DISTINCT ON (m.folder_id) m.folder_id, m.url
		FROM media m
		JOIN folders f ON f.id = m.folder_id
		WHERE f.parent_id = ? AND m.url ~* '\.(jpg|jpeg|png|gif|webp)$'
		ORDER BY m.folder_id, m.order_index ASC, m.created_at ASC
	`
	if err := r.db.Raw(query, categoryID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	images := make(map[uint]string, len(rows))
	for _, row := range rows {
		images[row.FolderID] = row.URL
	}
	return images, nil
}
