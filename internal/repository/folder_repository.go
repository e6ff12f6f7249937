package repository

import (
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// FolderRepository defines persistence operations for the folder tree.
type FolderRepository interface {
	Create(folder *models.Folder) error
	GetByID(id uint) (*models.Folder, error)
	GetBySlug(slug string, parentID *uint) (*models.Folder, error)
	ListCategories() ([]models.Folder, error)
	ListProjects(categoryID uint) ([]models.Folder, error)
	ListAllProjects() ([]models.Folder, error)
	NextOrdering(parentID uint) (int, error)
	Update(folder *models.Folder) error
	SwapOrdering(aID, bID uint) error
	ListSubtree(id uint) ([]models.Folder, error)
	ClearRelatedReferences(ids []uint) error
	DeleteByIDs(ids []uint) error
}

// FolderRepositoryImpl provides methods to interact with the Folder model in the database.
type FolderRepositoryImpl struct {
	db *gorm.DB
}

// NewFolderRepository creates a new FolderRepositoryImpl instance with the provided GORM database connection.
func NewFolderRepository(db *gorm.DB) *FolderRepositoryImpl {
	return &FolderRepositoryImpl{db: db}
}

// Create inserts a new Folder in the database.
func (r *FolderRepositoryImpl) Create(folder *models.Folder) error {
	return r.db.Create(folder).Error
}

// GetByID retrieves a Folder by its ID from the database.
func (r *FolderRepositoryImpl) GetByID(id uint) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.First(&folder, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetBySlug retrieves a Folder by slug within the scope of one parent.
// parentID nil scopes the lookup to top-level categories.
func (r *FolderRepositoryImpl) GetBySlug(slug string, parentID *uint) (*models.Folder, error) {
	var folder models.Folder
	q := r.db.Where("slug = ?", slug)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	if err := q.First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// ListCategories retrieves all top-level categories ordered by name.
func (r *FolderRepositoryImpl) ListCategories() ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.
		Where("is_category = ? AND parent_id IS NULL", true).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

// ListProjects retrieves the projects of one category in display order.
func (r *FolderRepositoryImpl) ListProjects(categoryID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.
		Where("parent_id = ? AND is_category = ?", categoryID, false).
		Order("ordering ASC, name ASC").
		Find(&folders).Error
	return folders, err
}

// ListAllProjects retrieves every project regardless of category, by name.
func (r *FolderRepositoryImpl) ListAllProjects() ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.
		Where("is_category = ?", false).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

// NextOrdering returns the append-at-end rank for a new project under a category.
func (r *FolderRepositoryImpl) NextOrdering(parentID uint) (int, error) {
	var next int
	err := r.db.Model(&models.Folder{}).
		Where("parent_id = ? AND is_category = ?", parentID, false).
		Select("COALESCE(MAX(ordering), 0) + 1").
		Scan(&next).Error
	return next, err
}

// Update saves an existing Folder in the database.
func (r *FolderRepositoryImpl) Update(folder *models.Folder) error {
	return r.db.Save(folder).Error
}

// SwapOrdering exchanges the ordering values of two folders in one transaction.
func (r *FolderRepositoryImpl) SwapOrdering(aID, bID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var a, b models.Folder
		if err := tx.First(&a, "id = ?", aID).Error; err != nil {
			return err
		}
		if err := tx.First(&b, "id = ?", bID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Folder{}).Where("id = ?", a.ID).
			Update("ordering", b.Ordering).Error; err != nil {
			return err
		}
		return tx.Model(&models.Folder{}).Where("id = ?", b.ID).
			Update("ordering", a.Ordering).Error
	})
}

// ListSubtree returns the folder and all its descendants, deepest first, so
// callers can delete children before parents.
func (r *FolderRepositoryImpl) ListSubtree(id uint) ([]models.Folder, error) {
	var folders []models.Folder
	query := `
		WITH RECURSIVE folder_tree AS (
			SELECT *, 0 AS depth FROM folders WHERE id = ?
			UNION ALL
			SELECT f.*, ft.depth + 1 FROM folders f
			JOIN folder_tree ft ON f.parent_id = ft.id
		)
		SELECT id, name, slug, parent_id, is_category, is_active, is_protected,
		       hero_image_url, related_project_1_id, related_project_2_id,
		       ordering, created_at, updated_at
		FROM folder_tree
		ORDER BY depth DESC
	`
	err := r.db.Raw(query, id).Scan(&folders).Error
	return folders, err
}

// ClearRelatedReferences nulls out any related-project slot pointing at one of
// the given folder ids, so deletes leave no dangling cross-references.
func (r *FolderRepositoryImpl) ClearRelatedReferences(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Model(&models.Folder{}).
		Where("related_project_1_id IN ?", ids).
		Update("related_project_1_id", nil).Error; err != nil {
		return err
	}
	return r.db.Model(&models.Folder{}).
		Where("related_project_2_id IN ?", ids).
		Update("related_project_2_id", nil).Error
}

// DeleteByIDs removes folder rows by id.
func (r *FolderRepositoryImpl) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Folder{}, "id IN ?", ids).Error
}
