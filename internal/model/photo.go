package model

import (
	"strings"
	"time"
)

// PhotoFileExtension is appended to the photo ID when saving to disk
const PhotoFileExtension = ".jpg"

// Photo represents the currently displayed photo
type Photo struct {
	ID          string
	DisplayURL  string // display-resolution variant (urls.regular)
	FullURL     string // full-resolution variant (urls.full)
	Description string
	Author      string
	AuthorURL   string
	Category    Category
	FetchedAt   time.Time
}

// FileName returns the name used when saving the full-resolution image.
// Path separators are removed from the ID so the file always lands in the chosen directory.
func (p *Photo) FileName() string {
	id := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return -1
		}
		return r
	}, p.ID)
	id = strings.Trim(id, ".")
	if id == "" {
		id = "photo"
	}
	return id + PhotoFileExtension
}

// GetAttribution returns "Photo by <author>" or an empty string if the author is unknown
func (p *Photo) GetAttribution() string {
	author := strings.TrimSpace(p.Author)
	if author == "" {
		return ""
	}
	return "Photo by " + author
}
