package domain

import "errors"

// ErrCourseUnavailable the course tree could not be loaded; surfaced to the
// viewer as a recoverable display state, no retry is scheduled
var ErrCourseUnavailable = errors.New("Failed to load course content")

// ErrWorkItemsUnavailable the assignment/quiz list could not be loaded
var ErrWorkItemsUnavailable = errors.New("Failed to load work items")
