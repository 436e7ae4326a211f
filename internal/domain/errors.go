package domain

import "errors"

// Read-side lookup errors
var (
	ErrMatchNotFound = errors.New("match not found")
	ErrStoryNotFound = errors.New("match story not found")
)

// Write-side validation errors
var (
	ErrInvalidStage      = errors.New("invalid stage")
	ErrInvalidActionType = errors.New("invalid action type")
	ErrInvalidStoryLabel = errors.New("invalid story label")
	ErrDuplicateOrder    = errors.New("draft order already taken in this match")
	ErrProtectedReferent = errors.New("entity is still referenced and cannot be deleted")
)
