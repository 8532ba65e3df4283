package platform

// Package platform contains OS/platform integration: filesystem helpers,
// atomic file writes for saved photos, and OS reveal-in-file-manager.
