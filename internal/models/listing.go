package models

// CategoryWithProjects is the grouped listing used by the sidebar: a category,
// its projects in display order and the media count summed over all of them.
type CategoryWithProjects struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Projects        []Folder `json:"projects"`
	TotalMediaCount int      `json:"total_media_count"`
}

// ProjectWithFirstImage is a project row joined with the URL of its first
// image (by order index), used for thumbnail listings.
type ProjectWithFirstImage struct {
	Folder
	FirstImageURL *string `json:"first_image_url"`
}
