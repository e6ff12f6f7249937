package handlers

import (
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"portfolio-service/internal/services"
)

// FolderHandler defines handlers for the category/project tree.
type FolderHandler struct {
	Service *services.FolderService
}

// NewFolderHandler creates a new FolderHandler with the given FolderService.
func NewFolderHandler(service *services.FolderService) *FolderHandler {
	return &FolderHandler{Service: service}
}

type createProjectRequest struct {
	Name         string  `json:"name"`
	ParentID     uint    `json:"parent_id"`
	HeroImageURL *string `json:"hero_image_url"`
}

func (r createProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ParentID, validation.Required),
	)
}

type renameRequest struct {
	Name string `json:"name"`
}

func (r renameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

type heroImageRequest struct {
	HeroImageURL *string `json:"hero_image_url"`
}

type activeRequest struct {
	IsActive *bool `json:"is_active"`
}

type relatedProjectsRequest struct {
	RelatedProject1ID OptionalID `json:"related_project_1_id"`
	RelatedProject2ID OptionalID `json:"related_project_2_id"`
}

type reorderProjectsRequest struct {
	DraggedID uint `json:"dragged_id"`
	TargetID  uint `json:"target_id"`
}

func (r reorderProjectsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DraggedID, validation.Required),
		validation.Field(&r.TargetID, validation.Required),
	)
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Description Gets all top-level categories
// @Tags folders
// @Produce json
// @Success 200 {array} models.Folder "Categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories [get]
func (h *FolderHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Service.GetCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(categories)
}

// ListCategoriesWithProjects handles GET /categories/listing.
// @Summary Grouped category listing
// @Description Gets every category with its ordered projects and summed media count
// @Tags folders
// @Produce json
// @Success 200 {array} models.CategoryWithProjects "Grouped listing"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories/listing [get]
func (h *FolderHandler) ListCategoriesWithProjects(c *fiber.Ctx) error {
	listing, err := h.Service.GetCategoriesWithProjects()
	if err != nil {
		log.Printf("Error building category listing: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(listing)
}

// ListProjects handles GET /categories/:id/projects.
// @Summary List a category's projects
// @Description Gets the projects of one category in display order
// @Tags folders
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Folder "Projects"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories/{id}/projects [get]
func (h *FolderHandler) ListProjects(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	projects, err := h.Service.GetProjectsByCategory(uint(id))
	if err != nil {
		log.Printf("Error listing projects for category %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

// ListProjectsWithFirstImage handles GET /categories/:id/projects/first-images.
// @Summary List projects with first image
// @Description Gets a category's projects joined with the URL of their first image
// @Tags folders
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.ProjectWithFirstImage "Projects with thumbnails"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories/{id}/projects/first-images [get]
func (h *FolderHandler) ListProjectsWithFirstImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	projects, err := h.Service.GetProjectsWithFirstImage(uint(id))
	if err != nil {
		log.Printf("Error listing projects with first image for category %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

// ListAllProjects handles GET /projects.
// @Summary List all projects
// @Description Gets every project regardless of category, for selection lists
// @Tags folders
// @Produce json
// @Success 200 {array} models.Folder "Projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *FolderHandler) ListAllProjects(c *fiber.Ctx) error {
	projects, err := h.Service.GetAllProjects()
	if err != nil {
		log.Printf("Error listing all projects: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

// CreateProject handles POST /projects.
// @Summary Create a project
// @Description Creates a project under a category; the slug is derived from the name and must be unique within the category
// @Tags folders
// @Accept json
// @Produce json
// @Param project body createProjectRequest true "Project data"
// @Success 201 {object} models.Folder "Project created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Duplicate slug"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *FolderHandler) CreateProject(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Validation failed", "details": err.Error(),
		})
	}

	project, err := h.Service.CreateProject(req.Name, req.ParentID, req.HeroImageURL)
	if err != nil {
		log.Printf("Error creating project %q: %v", req.Name, err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetFolder handles GET /folders/:id, resolving both related-project slots.
// @Summary Get a folder
// @Description Gets a folder with its related projects resolved; dangling links resolve to null
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} models.FolderWithRelated "Folder"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /folders/{id} [get]
func (h *FolderHandler) GetFolder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	folder, err := h.Service.GetFolderWithRelated(uint(id))
	if err != nil {
		log.Printf("Error fetching folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(folder)
}

// RenameFolder handles PUT /folders/:id/name.
// @Summary Rename a folder
// @Description Renames a folder and re-derives its slug; protected categories are rejected
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param name body renameRequest true "New name"
// @Success 200 {object} models.Folder "Renamed folder"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Protected category"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Failure 409 {object} map[string]interface{} "Duplicate slug"
// @Router /folders/{id}/name [put]
func (h *FolderHandler) RenameFolder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	var req renameRequest
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

	folder, err := h.Service.Rename(uint(id), req.Name)
	if err != nil {
		log.Printf("Error renaming folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(folder)
}

// SetHeroImage handles PUT /folders/:id/hero.
// @Summary Set a folder's hero image
// @Description Updates only the hero image URL; null clears it
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param hero body heroImageRequest true "Hero image URL"
// @Success 200 {object} models.Folder "Updated folder"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Router /folders/{id}/hero [put]
func (h *FolderHandler) SetHeroImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	var req heroImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}

	folder, err := h.Service.SetHeroImage(uint(id), req.HeroImageURL)
	if err != nil {
		log.Printf("Error updating hero image for folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(folder)
}

// SetActive handles PUT /folders/:id/active.
// @Summary Toggle a folder's active state
// @Description Sets the active flag; setting the current state again is a no-op success
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param active body activeRequest true "Active state"
// @Success 200 {object} models.Folder "Updated folder"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Router /folders/{id}/active [put]
func (h *FolderHandler) SetActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	var req activeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}
	if req.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "is_active is required",
		})
	}

	folder, err := h.Service.SetActive(uint(id), *req.IsActive)
	if err != nil {
		log.Printf("Error toggling active state for folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(folder)
}

// SetRelatedProjects handles PUT /folders/:id/related.
// @Summary Update related-project links
// @Description Updates one or both related slots; an absent field is left unchanged and null clears a slot
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param related body relatedProjectsRequest true "Related project ids"
// @Success 200 {object} models.Folder "Updated folder"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Router /folders/{id}/related [put]
func (h *FolderHandler) SetRelatedProjects(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}
	var req relatedProjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format", "details": err.Error(),
		})
	}

	folder, err := h.Service.SetRelatedProjects(uint(id),
		services.RelatedUpdate{Present: req.RelatedProject1ID.Present, ID: req.RelatedProject1ID.Value},
		services.RelatedUpdate{Present: req.RelatedProject2ID.Present, ID: req.RelatedProject2ID.Value},
	)
	if err != nil {
		log.Printf("Error updating related projects for folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(folder)
}

// ReorderProjects handles PUT /projects/reorder.
// @Summary Reorder two projects
// @Description Swaps the display ranks of a dragged project and a drop target under the same category
// @Tags folders
// @Accept json
// @Produce json
// @Param reorder body reorderProjectsRequest true "Dragged and target project ids"
// @Success 200 {object} map[string]interface{} "Swap applied"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/reorder [put]
func (h *FolderHandler) ReorderProjects(c *fiber.Ctx) error {
	var req reorderProjectsRequest
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

	if err := h.Service.ReorderProjects(req.DraggedID, req.TargetID); err != nil {
		log.Printf("Error reordering projects %d/%d: %v", req.DraggedID, req.TargetID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteFolder handles DELETE /folders/:id.
// @Summary Delete a folder
// @Description Deletes a folder, its descendants and all owned media; remote assets are released best-effort
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} map[string]interface{} "Folder deleted"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 403 {object} map[string]interface{} "Protected category"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Router /folders/{id} [delete]
func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidIDError,
		})
	}

	if err := h.Service.DeleteFolder(c.Context(), uint(id)); err != nil {
		log.Printf("Error deleting folder %d: %v", id, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
