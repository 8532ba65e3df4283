package photoapi

// Package photoapi is a minimal client for the Unsplash REST API: random photo
// search, the download-tracking ping, and raw image byte fetches.
