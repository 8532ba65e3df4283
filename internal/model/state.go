package model

// UIState tracks which actions the window currently allows.
// Download stays enabled once any photo has been fetched: a failed refetch
// leaves the previous photo committed and still downloadable.
type UIState struct {
	category Category
	hasPhoto bool
	busy     bool
}

// NewUIState returns the startup state: placeholder selected, no photo, idle
func NewUIState() *UIState {
	return &UIState{category: CategoryPlaceholder}
}

// SelectCategory records the selector value
func (s *UIState) SelectCategory(c Category) {
	if c == "" {
		c = CategoryPlaceholder
	}
	s.category = c
}

// Category returns the selected category
func (s *UIState) Category() Category {
	return s.category
}

// MarkPhotoReady records a successful fetch
func (s *UIState) MarkPhotoReady() {
	s.hasPhoto = true
}

// HasPhoto reports whether a photo has been fetched in this session
func (s *UIState) HasPhoto() bool {
	return s.hasPhoto
}

// SetBusy marks a handler as in flight (or finished)
func (s *UIState) SetBusy(busy bool) {
	s.busy = busy
}

// IsBusy reports whether a handler is in flight
func (s *UIState) IsBusy() bool {
	return s.busy
}

// GenerateEnabled returns true if the Generate button should accept clicks
func (s *UIState) GenerateEnabled() bool {
	return !s.busy && s.category.IsValid()
}

// DownloadEnabled returns true if the Download button should accept clicks
func (s *UIState) DownloadEnabled() bool {
	return !s.busy && s.hasPhoto
}
