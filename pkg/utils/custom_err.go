package utils

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("not logged in")
	ErrDatabaseError      = errors.New("database error")
	ErrPersistence        = errors.New("could not save travel plan")
	ErrPlanNotFound       = errors.New("travel plan not found")

	// inference provider failures
	ErrInferenceAuth      = errors.New("inference provider rejected credentials")
	ErrInferenceTransport = errors.New("inference provider unreachable")
	ErrRateLimited        = errors.New("inference provider is throttling requests")
	ErrEmptyResponse      = errors.New("inference provider returned no text")
)

// UserMessage is the text shown to a person for a service error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	case errors.Is(err, ErrDuplicateUser):
		return "Username already exists"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrUnauthorized):
		return "Please login to continue"
	case errors.Is(err, ErrRateLimited):
		return "The AI planner is busy right now. Please try again in a minute."
	case errors.Is(err, ErrInferenceAuth),
		errors.Is(err, ErrInferenceTransport),
		errors.Is(err, ErrEmptyResponse):
		return "Failed to generate itinerary. Please try again."
	case errors.Is(err, ErrPlanNotFound):
		return "Travel plan not found"
	case errors.Is(err, ErrPersistence):
		return "Your plan was generated but could not be saved to your history"
	default:
		return "Something went wrong. Please try again."
	}
}
