package handlers

import (
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"portfolio-service/internal/services"
)

// MediaHandler defines handlers for media upload, ordering and layout.
type MediaHandler struct {
	Service *services.MediaService
}

// NewMediaHandler creates a new MediaHandler with the given MediaService.
func NewMediaHandler(service *services.MediaService) *MediaHandler {
	return &MediaHandler{Service: service}
}

type reorderMediaRequest struct {
	DraggedID string `json:"dragged_id"`
	TargetID  string `json:"target_id"`
}

func (r reorderMediaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DraggedID, validation.Required),
		validation.Field(&r.TargetID, validation.Required),
	)
}

type videoStartRequest struct {
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// ListMedia handles GET /folders/:id/media.
// @Summary List a folder's media
// @Description Gets the media of one folder in display order
// @Tags media
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {array} models.Media "Media"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /folders/{id}/media [get]
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	media, err := h.Service.GetMediaByFolder(uint(id))
	if err != nil {
		log.Printf("Error listing media for folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(media)
}

// UploadMedia handles POST /folders/:id/media.
// @Summary Upload media files
// @Description Uploads one or more files to a project; each file succeeds or fails independently
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param files formData file true "Media files"
// @Param layout formData string false "Layout tag for the new media"
// @Success 200 {array} services.UploadOutcome "Per-file results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Router /folders/{id}/media [post]
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing multipart form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid multipart form", "details": err.Error(),
		})
	}
	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "No files provided",
		})
	}
	layout := c.FormValue("layout")

	outcomes, err := h.Service.UploadMedia(c.Context(), uint(id), files, layout)
	if err != nil {
		log.Printf("Error uploading media to folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(outcomes)
}

// UploadArchive handles POST /folders/:id/media/archive.
// @Summary Upload an archive of media
// @Description Extracts a zip or rar archive and uploads every media file it contains
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param archive formData file true "Archive file (.zip or .rar)"
// @Param layout formData string false "Layout tag for the new media"
// @Success 200 {array} services.UploadOutcome "Per-file results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /folders/{id}/media/archive [post]
func (h *MediaHandler) UploadArchive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	fileHeader, err := c.FormFile("archive")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "No archive file provided",
		})
	}
	layout := c.FormValue("layout")

	outcomes, err := h.Service.UploadArchive(c.Context(), uint(id), fileHeader, layout)
	if err != nil {
		log.Printf("Error uploading archive to folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(outcomes)
}

// ReorderMedia handles PUT /media/reorder.
// @Summary Reorder two media items
// @Description Swaps the display ranks of a dragged media item and a drop target in the same folder
// @Tags media
// @Accept json
// @Produce json
// @Param reorder body reorderMediaRequest true "Dragged and target media ids"
// @Success 200 {object} map[string]interface{} "Swap applied"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Media not found"
// @Router /media/reorder [put]
func (h *MediaHandler) ReorderMedia(c *fiber.Ctx) error {
	var req reorderMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Validation failed", "details": err.Error(),
		})
	}

	if err := h.Service.ReorderMedia(req.DraggedID, req.TargetID); err != nil {
		log.Printf("Error reordering media %s/%s: %v", req.DraggedID, req.TargetID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// CycleLayout handles PUT /media/:id/layout.
// @Summary Cycle a media item's layout
// @Description Advances the layout tag to the next value in the configured cycle
// @Tags media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} models.Media "Updated media"
// @Failure 404 {object} map[string]interface{} "Media not found"
// @Router /media/{id}/layout [put]
func (h *MediaHandler) CycleLayout(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	media, err := h.Service.CycleLayout(id)
	if err != nil {
		log.Printf("Error cycling layout for media %s: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(media)
}

// SetVideoStartTime handles PUT /media/:id/video-start.
// @Summary Set a video's start time
// @Description Sets the playback start offset from minutes and seconds fields
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Param time body videoStartRequest true "Minutes and seconds"
// @Success 200 {object} models.Media "Updated media"
// @Failure 400 {object} map[string]interface{} "Invalid time"
// @Failure 404 {object} map[string]interface{} "Media not found"
// @Router /media/{id}/video-start [put]
func (h *MediaHandler) SetVideoStartTime(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	var req videoStartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}

	media, err := h.Service.SetVideoStartTime(id, req.Minutes, req.Seconds)
	if err != nil {
		log.Printf("Error setting video start time for media %s: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(media)
}

// DeleteMedia handles DELETE /media/:id.
// @Summary Delete a media item
// @Description Releases the remote asset best-effort and removes the media record
// @Tags media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} map[string]interface{} "Media deleted"
// @Failure 404 {object} map[string]interface{} "Media not found"
// @Router /media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	if err := h.Service.DeleteMedia(c.Context(), id); err != nil {
		log.Printf("Error deleting media %s: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
