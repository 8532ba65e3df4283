package download

// Package download implements the photo pipeline behind the two buttons: fetching
// a random photo for a category and preparing it for display, and saving the
// full-resolution variant after the provider's download-tracking ping.
