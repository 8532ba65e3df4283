package model

// Package model defines domain data structures used across the app: the
// currently displayed photo, photo categories, and the button enablement
// state. Structures are plain values so the UI can hold and copy them freely.
