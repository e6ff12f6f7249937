package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gorm"

	"portfolio-service/internal/assets"
	"portfolio-service/internal/models"
)

// --- In-memory folder repository ---

type fakeFolderRepo struct {
	folders     map[uint]*models.Folder
	nextID      uint
	createErr   error
	updateCalls int
	createCalls int
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[uint]*models.Folder), nextID: 1}
}

func (r *fakeFolderRepo) add(f models.Folder) *models.Folder {
	if f.ID == 0 {
		f.ID = r.nextID
	}
	if f.ID >= r.nextID {
		r.nextID = f.ID + 1
	}
	stored := f
	r.folders[stored.ID] = &stored
	return &stored
}

func (r *fakeFolderRepo) Create(folder *models.Folder) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	folder.ID = r.nextID
	r.nextID++
	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

func (r *fakeFolderRepo) GetByID(id uint) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *f
	return &out, nil
}

func (r *fakeFolderRepo) GetBySlug(slug string, parentID *uint) (*models.Folder, error) {
	for _, f := range r.folders {
		if f.Slug != slug {
			continue
		}
		if parentID == nil && f.ParentID == nil {
			out := *f
			return &out, nil
		}
		if parentID != nil && f.ParentID != nil && *parentID == *f.ParentID {
			out := *f
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFolderRepo) ListCategories() ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if f.IsCategory && f.ParentID == nil {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFolderRepo) ListProjects(categoryID uint) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if !f.IsCategory && f.ParentID != nil && *f.ParentID == categoryID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ordering != out[j].Ordering {
			return out[i].Ordering < out[j].Ordering
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeFolderRepo) ListAllProjects() ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if !f.IsCategory {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFolderRepo) NextOrdering(parentID uint) (int, error) {
	max := 0
	for _, f := range r.folders {
		if !f.IsCategory && f.ParentID != nil && *f.ParentID == parentID && f.Ordering > max {
			max = f.Ordering
		}
	}
	return max + 1, nil
}

func (r *fakeFolderRepo) Update(folder *models.Folder) error {
	r.updateCalls++
	if _, ok := r.folders[folder.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

func (r *fakeFolderRepo) SwapOrdering(aID, bID uint) error {
	a, okA := r.folders[aID]
	b, okB := r.folders[bID]
	if !okA || !okB {
		return gorm.ErrRecordNotFound
	}
	a.Ordering, b.Ordering = b.Ordering, a.Ordering
	return nil
}

func (r *fakeFolderRepo) ListSubtree(id uint) ([]models.Folder, error) {
	if _, ok := r.folders[id]; !ok {
		return nil, nil
	}
	level := []uint{id}
	var layers [][]models.Folder
	for len(level) > 0 {
		var layer []models.Folder
		var next []uint
		for _, parent := range level {
			layer = append(layer, *r.folders[parent])
			for _, f := range r.folders {
				if f.ParentID != nil && *f.ParentID == parent {
					next = append(next, f.ID)
				}
			}
		}
		layers = append(layers, layer)
		level = next
	}
	// deepest first
	var out []models.Folder
	for i := len(layers) - 1; i >= 0; i-- {
		out = append(out, layers[i]...)
	}
	return out, nil
}

func (r *fakeFolderRepo) ClearRelatedReferences(ids []uint) error {
	gone := make(map[uint]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	for _, f := range r.folders {
		if f.RelatedProject1ID != nil && gone[*f.RelatedProject1ID] {
			f.RelatedProject1ID = nil
		}
		if f.RelatedProject2ID != nil && gone[*f.RelatedProject2ID] {
			f.RelatedProject2ID = nil
		}
	}
	return nil
}

func (r *fakeFolderRepo) DeleteByIDs(ids []uint) error {
	for _, id := range ids {
		delete(r.folders, id)
	}
	return nil
}

// --- In-memory media repository ---

type fakeMediaRepo struct {
	media       map[string]*models.Media
	order       []string
	firstImages map[uint]string
	createErr   error
	updateCalls int
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{
		media:       make(map[string]*models.Media),
		firstImages: make(map[uint]string),
	}
}

func (r *fakeMediaRepo) add(m models.Media) *models.Media {
	stored := m
	r.media[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return &stored
}

func (r *fakeMediaRepo) Create(media *models.Media) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := *media
	r.media[media.ID] = &stored
	r.order = append(r.order, media.ID)
	return nil
}

func (r *fakeMediaRepo) GetByID(id string) (*models.Media, error) {
	m, ok := r.media[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *m
	return &out, nil
}

func (r *fakeMediaRepo) ListByFolder(folderID uint) ([]models.Media, error) {
	var out []models.Media
	for _, id := range r.order {
		if m, ok := r.media[id]; ok && m.FolderID == folderID {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *fakeMediaRepo) ListByFolders(folderIDs []uint) ([]models.Media, error) {
	want := make(map[uint]bool, len(folderIDs))
	for _, id := range folderIDs {
		want[id] = true
	}
	var out []models.Media
	for _, id := range r.order {
		if m, ok := r.media[id]; ok && want[m.FolderID] {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) Update(media *models.Media) error {
	r.updateCalls++
	if _, ok := r.media[media.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *media
	r.media[media.ID] = &stored
	return nil
}

func (r *fakeMediaRepo) SwapOrderIndexes(aID, bID string) error {
	a, okA := r.media[aID]
	b, okB := r.media[bID]
	if !okA || !okB {
		return gorm.ErrRecordNotFound
	}
	a.OrderIndex, b.OrderIndex = b.OrderIndex, a.OrderIndex
	return nil
}

func (r *fakeMediaRepo) Delete(id string) error {
	delete(r.media, id)
	return nil
}

func (r *fakeMediaRepo) DeleteByFolders(folderIDs []uint) error {
	want := make(map[uint]bool, len(folderIDs))
	for _, id := range folderIDs {
		want[id] = true
	}
	for id, m := range r.media {
		if want[m.FolderID] {
			delete(r.media, id)
		}
	}
	return nil
}

func (r *fakeMediaRepo) CountsByFolder() (map[uint]int, error) {
	counts := make(map[uint]int)
	for _, m := range r.media {
		counts[m.FolderID]++
	}
	return counts, nil
}

func (r *fakeMediaRepo) FirstImagesByCategory(categoryID uint) (map[uint]string, error) {
	return r.firstImages, nil
}

// --- Fake asset host ---

type fakeHost struct {
	mu        sync.Mutex
	uploads   []string
	deleted   []string
	uploadErr error
	deleteErr map[string]error
}

func newFakeHost() *fakeHost {
	return &fakeHost{deleteErr: make(map[string]error)}
}

func (h *fakeHost) Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*assets.UploadResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.uploadErr != nil {
		return nil, h.uploadErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	h.uploads = append(h.uploads, filename)
	assetID := fmt.Sprintf("asset-%d", len(h.uploads))
	return &assets.UploadResult{
		AssetID:     assetID,
		PublicURL:   "https://cdn.test/" + filename,
		ContentType: contentType,
	}, nil
}

func (h *fakeHost) Delete(ctx context.Context, assetID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err, ok := h.deleteErr[assetID]; ok {
		return err
	}
	h.deleted = append(h.deleted, assetID)
	return nil
}

func (h *fakeHost) deletedAssets() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.deleted))
	copy(out, h.deleted)
	return out
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }
