package domain

import "errors"

var (
	ErrCardNotFound   = errors.New("custom card not found")
	ErrDuplicateField = errors.New("field name already used by another card")
	ErrIncomplete     = errors.New("record is missing mandatory fields")
	ErrInvalidCard    = errors.New("invalid custom card")
	ErrNoImages       = errors.New("no images found in directory")
	ErrNoReviewer     = errors.New("reviewer name is required")
	ErrNoSavedReview  = errors.New("no saved review in directory")
	ErrRecordNotFound = errors.New("record not found")
)
