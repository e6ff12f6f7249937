package services

import (
	"context"
	"log"
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"portfolio-service/internal/assets"
	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// RelatedUpdate carries the tri-state semantics of one related-project slot:
// absent (leave unchanged), null (clear) or an id (set).
type RelatedUpdate struct {
	Present bool
	ID      *uint
}

// FolderService orchestrates the category/project tree: creation, rename,
// hero image, active toggle, related links, reordering and cascading delete.
type FolderService struct {
	folderRepo repository.FolderRepository
	mediaRepo  repository.MediaRepository
	host       assets.Host
}

// NewFolderService creates a FolderService over the given repositories and asset host.
func NewFolderService(folderRepo repository.FolderRepository, mediaRepo repository.MediaRepository, host assets.Host) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
		mediaRepo:  mediaRepo,
		host:       host,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// SeedCategories creates the configured base categories once. Seeded
// categories are protected; the flag is persisted and survives renames of
// anything else, so protection never depends on name matching.
func (s *FolderService) SeedCategories(names []string) error {
	for _, name := range names {
		slug := Slugify(name)
		if slug == "" {
			continue
		}
		_, err := s.folderRepo.GetBySlug(slug, nil)
		if err == nil {
			continue
		}
		if !isNotFound(err) {
			return errors.Wrap(err, "failed to check seed category")
		}
		category := &models.Folder{
			Name:        name,
			Slug:        slug,
			IsCategory:  true,
			IsActive:    true,
			IsProtected: true,
		}
		if err := s.folderRepo.Create(category); err != nil {
			return errors.Wrapf(err, "failed to seed category %q", name)
		}
		log.Printf("Seeded category %q (id=%d)", name, category.ID)
	}
	return nil
}

// CreateProject creates a project under a category. The slug is derived from
// the name and must be unique among the category's projects; the ordering
// rank is appended at the end.
func (s *FolderService) CreateProject(name string, parentID uint, heroImageURL *string) (*models.Folder, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrInvalidName
	}

	parent, err := s.folderRepo.GetByID(parentID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidParent
		}
		return nil, errors.Wrap(err, "failed to load parent category")
	}
	if !parent.IsCategory {
		return nil, ErrInvalidParent
	}

	if _, err := s.folderRepo.GetBySlug(slug, &parentID); err == nil {
		return nil, ErrDuplicateSlug
	} else if !isNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for duplicate slug")
	}

	ordering, err := s.folderRepo.NextOrdering(parentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute ordering")
	}

	folder := &models.Folder{
		Name:         name,
		Slug:         slug,
		ParentID:     &parentID,
		IsCategory:   false,
		IsActive:     true,
		HeroImageURL: heroImageURL,
		Ordering:     ordering,
	}
	if err := s.folderRepo.Create(folder); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}
	return folder, nil
}

// Rename updates a folder's name and re-derives its slug. Protected
// categories cannot be renamed, and the new slug must not collide with a
// sibling's.
func (s *FolderService) Rename(id uint, newName string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if folder.IsProtected {
		return nil, ErrProtectedFolder
	}

	slug := Slugify(newName)
	if slug == "" {
		return nil, ErrInvalidName
	}
	if existing, err := s.folderRepo.GetBySlug(slug, folder.ParentID); err == nil {
		if existing.ID != folder.ID {
			return nil, ErrDuplicateSlug
		}
	} else if !isNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for duplicate slug")
	}

	folder.Name = newName
	folder.Slug = slug
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, errors.Wrap(err, "failed to rename folder")
	}
	return folder, nil
}

// SetHeroImage updates only the hero image URL; nil clears it.
func (s *FolderService) SetHeroImage(id uint, url *string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	folder.HeroImageURL = url
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, errors.Wrap(err, "failed to update hero image")
	}
	return folder, nil
}

// SetActive toggles a folder between active and inactive. Setting the current
// state again is a no-op success.
func (s *FolderService) SetActive(id uint, active bool) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if folder.IsActive == active {
		return folder, nil
	}
	folder.IsActive = active
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, errors.Wrap(err, "failed to update active state")
	}
	return folder, nil
}

// SetRelatedProjects updates one or both related-project slots. A slot not
// present in the request is left untouched; a present nil clears it. Links
// must reference existing projects, never the folder itself, and the two
// slots must stay distinct.
func (s *FolderService) SetRelatedProjects(id uint, slot1, slot2 RelatedUpdate) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	next1 := folder.RelatedProject1ID
	next2 := folder.RelatedProject2ID
	if slot1.Present {
		next1 = slot1.ID
	}
	if slot2.Present {
		next2 = slot2.ID
	}

	for _, target := range []*uint{next1, next2} {
		if target == nil {
			continue
		}
		if *target == id {
			return nil, ErrSelfReference
		}
		related, err := s.folderRepo.GetByID(*target)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrRelatedNotFound
			}
			return nil, errors.Wrap(err, "failed to load related project")
		}
		if related.IsCategory {
			return nil, ErrRelatedNotFound
		}
	}
	if next1 != nil && next2 != nil && *next1 == *next2 {
		return nil, ErrDuplicateRelated
	}

	folder.RelatedProject1ID = next1
	folder.RelatedProject2ID = next2
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, errors.Wrap(err, "failed to update related projects")
	}
	return folder, nil
}

// ReorderProjects swaps the display ranks of two projects under the same
// category. Dropping a project onto itself is a no-op; the swap is its own
// inverse.
func (s *FolderService) ReorderProjects(draggedID, targetID uint) error {
	if draggedID == targetID {
		return nil
	}
	dragged, err := s.folderRepo.GetByID(draggedID)
	if err != nil {
		return err
	}
	target, err := s.folderRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if dragged.IsCategory || target.IsCategory ||
		dragged.ParentID == nil || target.ParentID == nil ||
		*dragged.ParentID != *target.ParentID {
		return ErrDifferentCollection
	}
	return s.folderRepo.SwapOrdering(draggedID, targetID)
}

// GetFolder retrieves a single folder by id.
func (s *FolderService) GetFolder(id uint) (*models.Folder, error) {
	return s.folderRepo.GetByID(id)
}

// GetCategories returns all top-level categories.
func (s *FolderService) GetCategories() ([]models.Folder, error) {
	return s.folderRepo.ListCategories()
}

// GetProjectsByCategory returns a category's projects in display order.
func (s *FolderService) GetProjectsByCategory(categoryID uint) ([]models.Folder, error) {
	return s.folderRepo.ListProjects(categoryID)
}

// GetAllProjects returns every project, for selection dropdowns.
func (s *FolderService) GetAllProjects() ([]models.Folder, error) {
	return s.folderRepo.ListAllProjects()
}

// GetCategoriesWithProjects returns the grouped sidebar listing: each
// category with its ordered projects and summed media count.
func (s *FolderService) GetCategoriesWithProjects() ([]models.CategoryWithProjects, error) {
	categories, err := s.folderRepo.ListCategories()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	counts, err := s.mediaRepo.CountsByFolder()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count media")
	}

	listing := make([]models.CategoryWithProjects, 0, len(categories))
	for _, category := range categories {
		projects, err := s.folderRepo.ListProjects(category.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list projects of category %d", category.ID)
		}
		total := 0
		for _, project := range projects {
			total += counts[project.ID]
		}
		if projects == nil {
			projects = []models.Folder{}
		}
		listing = append(listing, models.CategoryWithProjects{
			ID:              category.ID,
			Name:            category.Name,
			Slug:            category.Slug,
			Projects:        projects,
			TotalMediaCount: total,
		})
	}
	return listing, nil
}

// GetProjectsWithFirstImage returns a category's projects joined with the URL
// of their first image, for thumbnail listings.
func (s *FolderService) GetProjectsWithFirstImage(categoryID uint) ([]models.ProjectWithFirstImage, error) {
	projects, err := s.folderRepo.ListProjects(categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	images, err := s.mediaRepo.FirstImagesByCategory(categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up first images")
	}
	out := make([]models.ProjectWithFirstImage, 0, len(projects))
	for _, project := range projects {
		entry := models.ProjectWithFirstImage{Folder: project}
		if url, ok := images[project.ID]; ok {
			entry.FirstImageURL = &url
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetFolderWithRelated resolves both related-project slots of a folder. A
// slot pointing at a project that no longer exists resolves to nil.
func (s *FolderService) GetFolderWithRelated(id uint) (*models.FolderWithRelated, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := &models.FolderWithRelated{Folder: *folder}
	if folder.RelatedProject1ID != nil {
		related, err := s.folderRepo.GetByID(*folder.RelatedProject1ID)
		if err != nil && !isNotFound(err) {
			return nil, errors.Wrap(err, "failed to resolve related project")
		}
		out.RelatedProject1 = related
	}
	if folder.RelatedProject2ID != nil {
		related, err := s.folderRepo.GetByID(*folder.RelatedProject2ID)
		if err != nil && !isNotFound(err) {
			return nil, errors.Wrap(err, "failed to resolve related project")
		}
		out.RelatedProject2 = related
	}
	return out, nil
}

// DeleteFolder removes a folder, its descendant folders and all owned media.
// Remote assets are released best-effort in parallel: a failed release is
// logged and never blocks the cascade. Inbound related links pointing into
// the deleted subtree are cleared so no dangling references remain. Protected
// categories are rejected before any side effect.
func (s *FolderService) DeleteFolder(ctx context.Context, id uint) error {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if folder.IsProtected {
		return ErrProtectedFolder
	}

	subtree, err := s.folderRepo.ListSubtree(id)
	if err != nil {
		return errors.Wrap(err, "failed to collect folder subtree")
	}
	ids := make([]uint, 0, len(subtree))
	for _, node := range subtree {
		ids = append(ids, node.ID)
	}

	media, err := s.mediaRepo.ListByFolders(ids)
	if err != nil {
		return errors.Wrap(err, "failed to collect media for deletion")
	}

	var wg sync.WaitGroup
	for _, m := range media {
		wg.Add(1)
		go func(m models.Media) {
			defer wg.Done()
			if err := s.host.Delete(ctx, m.AssetID); err != nil {
				log.Printf("Failed to release asset %s for media %s: %v", m.AssetID, m.ID, err)
			}
		}(m)
	}
	wg.Wait()

	if err := s.mediaRepo.DeleteByFolders(ids); err != nil {
		return errors.Wrap(err, "failed to delete media rows")
	}
	if err := s.folderRepo.ClearRelatedReferences(ids); err != nil {
		return errors.Wrap(err, "failed to clear inbound related links")
	}
	if err := s.folderRepo.DeleteByIDs(ids); err != nil {
		return errors.Wrap(err, "failed to delete folder rows")
	}
	log.Printf("Deleted folder %d with %d descendant folders and %d media", id, len(ids)-1, len(media))
	return nil
}
