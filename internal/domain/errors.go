package domain

import "errors"

// Lookup errors
var (
	ErrPlanNotFound = errors.New("plan not found")
)
