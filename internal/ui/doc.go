package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the category selector and the Generate/Download buttons to the
// download service and renders the current photo, dialogs, and settings.
// All UI strings are localized via Localization.
