package services

import (
	"context"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"portfolio-service/internal/assets"
	"portfolio-service/internal/extraction"
	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// UploadOutcome is the per-file result of a batch upload. Files succeed and
// fail independently.
type UploadOutcome struct {
	Filename string        `json:"filename"`
	Success  bool          `json:"success"`
	Media    *models.Media `json:"media,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// MediaService manages media rows and their remote binaries: uploads,
// ordering, layout cycling, video start times and deletion.
type MediaService struct {
	mediaRepo      repository.MediaRepository
	folderRepo     repository.FolderRepository
	host           assets.Host
	layoutCycle    []string
	maxUploadBytes int64
}

// NewMediaService creates a MediaService. layoutCycle is the circular layout
// sequence for CycleLayout; maxUploadBytes is the per-file ceiling checked
// before any upload call.
func NewMediaService(mediaRepo repository.MediaRepository, folderRepo repository.FolderRepository, host assets.Host, layoutCycle []string, maxUploadBytes int64) *MediaService {
	return &MediaService{
		mediaRepo:      mediaRepo,
		folderRepo:     folderRepo,
		host:           host,
		layoutCycle:    layoutCycle,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetMediaByFolder returns a folder's media in display order.
func (s *MediaService) GetMediaByFolder(folderID uint) ([]models.Media, error) {
	return s.mediaRepo.ListByFolder(folderID)
}

// UploadMedia uploads a batch of files into a project. Each file is checked
// against the size ceiling before any network call, pushed to the asset host
// and appended at the end of the folder's order. One file failing does not
// stop the rest; the outcome slice reports every file individually.
func (s *MediaService) UploadMedia(ctx context.Context, folderID uint, files []*multipart.FileHeader, layout string) ([]UploadOutcome, error) {
	if err := s.checkUploadTarget(folderID); err != nil {
		return nil, err
	}
	if layout == "" {
		layout = s.layoutCycle[0]
	}
	existing, err := s.mediaRepo.ListByFolder(folderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list existing media")
	}

	outcomes := make([]UploadOutcome, 0, len(files))
	for i, fh := range files {
		media, err := s.uploadFileHeader(ctx, folderID, fh, layout, len(existing)+i)
		if err != nil {
			log.Printf("Upload failed for %s: %v", fh.Filename, err)
			outcomes = append(outcomes, UploadOutcome{Filename: fh.Filename, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, UploadOutcome{Filename: fh.Filename, Success: true, Media: media})
	}
	return outcomes, nil
}

// UploadArchive extracts a zip/rar archive and uploads every media file it
// contains through the regular per-file pipeline. Junk files (dotfiles,
// resource forks, Thumbs.db) and non-media files are skipped.
func (s *MediaService) UploadArchive(ctx context.Context, folderID uint, fileHeader *multipart.FileHeader, layout string) ([]UploadOutcome, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".zip" && ext != ".rar" {
		return nil, errors.Errorf("unsupported archive format: %s", ext)
	}
	if err := s.checkUploadTarget(folderID); err != nil {
		return nil, err
	}
	if layout == "" {
		layout = s.layoutCycle[0]
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded archive")
	}
	defer src.Close()

	tempArchive, err := os.CreateTemp(os.TempDir(), "upload-*"+ext)
	if err != nil {
		return nil, errors.Wrap(err, "could not create temporary file for archive")
	}
	tempArchivePath := tempArchive.Name()
	_, err = io.Copy(tempArchive, src)
	tempArchive.Close()
	if err != nil {
		os.Remove(tempArchivePath)
		return nil, errors.Wrap(err, "failed to write uploaded archive")
	}

	files, destDir, err := extraction.ExtractArchive(tempArchivePath)
	os.Remove(tempArchivePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract archive")
	}
	defer os.RemoveAll(destDir)

	existing, err := s.mediaRepo.ListByFolder(folderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list existing media")
	}

	var outcomes []UploadOutcome
	next := len(existing)
	for _, path := range files {
		filename := filepath.Base(path)
		if extraction.ShouldIgnoreFile(filename) || !extraction.IsMediaFile(filepath.Ext(path)) {
			continue
		}
		media, err := s.uploadLocalFile(ctx, folderID, path, filename, layout, next)
		next++
		if err != nil {
			log.Printf("Upload failed for %s from archive: %v", filename, err)
			outcomes = append(outcomes, UploadOutcome{Filename: filename, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, UploadOutcome{Filename: filename, Success: true, Media: media})
	}
	return outcomes, nil
}

// DeleteMedia removes a media row and releases its remote asset. The remote
// release is best-effort: a failure is logged and the row is removed anyway.
func (s *MediaService) DeleteMedia(ctx context.Context, id string) error {
	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.host.Delete(ctx, media.AssetID); err != nil {
		log.Printf("Failed to release asset %s for media %s: %v", media.AssetID, media.ID, err)
	}
	return s.mediaRepo.Delete(id)
}

// ReorderMedia swaps the order indexes of two media items in the same folder.
// Dropping an item onto itself is a no-op; the swap is its own inverse. Both
// updates run in one transaction.
func (s *MediaService) ReorderMedia(draggedID, targetID string) error {
	if draggedID == targetID {
		return nil
	}
	dragged, err := s.mediaRepo.GetByID(draggedID)
	if err != nil {
		return err
	}
	target, err := s.mediaRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if dragged.FolderID != target.FolderID {
		return ErrDifferentCollection
	}
	return s.mediaRepo.SwapOrderIndexes(draggedID, targetID)
}

// CycleLayout advances a media item's layout tag to the next value of the
// configured cycle. A stored value outside the cycle restarts at the first
// element.
func (s *MediaService) CycleLayout(id string) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	next := s.layoutCycle[0]
	for i, layout := range s.layoutCycle {
		if layout == media.Layout {
			next = s.layoutCycle[(i+1)%len(s.layoutCycle)]
			break
		}
	}
	media.Layout = next
	if err := s.mediaRepo.Update(media); err != nil {
		return nil, errors.Wrap(err, "failed to update layout")
	}
	return media, nil
}

// SetVideoStartTime stores minutes*60+seconds on a media row. Both fields
// must parse as non-negative integers; malformed input is rejected before any
// persistence call.
func (s *MediaService) SetVideoStartTime(id, minutes, seconds string) (*models.Media, error) {
	mins, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil || mins < 0 {
		return nil, ErrInvalidTime
	}
	secs, err := strconv.Atoi(strings.TrimSpace(seconds))
	if err != nil || secs < 0 {
		return nil, ErrInvalidTime
	}

	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	media.VideoStartTime = mins*60 + secs
	if err := s.mediaRepo.Update(media); err != nil {
		return nil, errors.Wrap(err, "failed to update video start time")
	}
	return media, nil
}

func (s *MediaService) checkUploadTarget(folderID uint) error {
	folder, err := s.folderRepo.GetByID(folderID)
	if err != nil {
		return err
	}
	if folder.IsCategory {
		return ErrNotProject
	}
	return nil
}

func (s *MediaService) uploadFileHeader(ctx context.Context, folderID uint, fh *multipart.FileHeader, layout string, orderIndex int) (*models.Media, error) {
	if fh.Size > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	return s.uploadOne(ctx, folderID, src, fh.Size, fh.Filename, contentType, layout, orderIndex)
}

func (s *MediaService) uploadLocalFile(ctx context.Context, folderID uint, path, filename, layout string, orderIndex int) (*models.Media, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open extracted file")
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "could not stat extracted file")
	}
	if stat.Size() > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	return s.uploadOne(ctx, folderID, file, stat.Size(), filename, contentType, layout, orderIndex)
}

// uploadOne pushes one binary to the asset host and records its media row.
// If the row cannot be saved the remote asset is released again to avoid an
// orphan file.
func (s *MediaService) uploadOne(ctx context.Context, folderID uint, r io.Reader, size int64, originalName, contentType, layout string, orderIndex int) (*models.Media, error) {
	mediaID := uuid.New().String()
	result, err := s.host.Upload(ctx, r, size, mediaID+"-"+originalName, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload to asset host")
	}

	media := &models.Media{
		ID:         mediaID,
		FolderID:   folderID,
		URL:        result.PublicURL,
		AssetID:    result.AssetID,
		OrderIndex: orderIndex,
		Layout:     layout,
	}
	if err := s.mediaRepo.Create(media); err != nil {
		if delErr := s.host.Delete(ctx, result.AssetID); delErr != nil {
			log.Printf("Failed to release orphaned asset %s: %v", result.AssetID, delErr)
		}
		return nil, errors.Wrap(err, "failed to save media row")
	}
	return media, nil
}
