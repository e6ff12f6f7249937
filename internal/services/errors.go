package services

import "errors"

// Sentinel errors surfaced by the service layer. Handlers map these to HTTP
// statuses; anything else is an internal error.
var (
	// ErrDuplicateSlug means a sibling under the same parent already owns the
	// slug the requested name derives to.
	ErrDuplicateSlug = errors.New("a project with this name already exists in this category")

	// ErrProtectedFolder rejects rename/delete of a seeded base category.
	ErrProtectedFolder = errors.New("this category is protected and cannot be modified")

	// ErrInvalidName means the name is empty or derives to an empty slug.
	ErrInvalidName = errors.New("name must contain at least one letter or digit")

	// ErrInvalidParent means the parent id does not reference a category.
	ErrInvalidParent = errors.New("parent must be a top-level category")

	// ErrInvalidTime means minutes or seconds did not parse as a non-negative integer.
	ErrInvalidTime = errors.New("minutes and seconds must be non-negative integers")

	// ErrSelfReference rejects a related-project link pointing at the project itself.
	ErrSelfReference = errors.New("a project cannot be related to itself")

	// ErrDuplicateRelated rejects the same project occupying both related slots.
	ErrDuplicateRelated = errors.New("related projects must be distinct")

	// ErrRelatedNotFound means a related-project link targets no existing project.
	ErrRelatedNotFound = errors.New("related project does not exist")

	// ErrDifferentCollection rejects a reorder whose two items do not share a parent.
	ErrDifferentCollection = errors.New("reorder requires two items of the same collection")

	// ErrFileTooLarge rejects an upload before any network call is made.
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

	// ErrNotProject rejects media uploads targeting a category instead of a project.
	ErrNotProject = errors.New("media can only be uploaded to a project")
)
