package entities

import (
	"errors"
	"fmt"
)

// Сентинелы для errors.Is; конкретные типы ниже несут контекст для errors.As.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrStateConflict      = errors.New("state conflict")
	ErrLimitExceeded      = errors.New("engagement limit exceeded")
	ErrRoutingUnavailable = errors.New("routing unavailable")
	ErrStaleLocation      = errors.New("no position fix")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("actor headers are required")
)

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type StateConflictError struct {
	Entity string
	ID     int64
	From   string
	To     string
}

func NewStateConflictError(entity string, id int64, from, to string) *StateConflictError {
	return &StateConflictError{Entity: entity, ID: id, From: from, To: to}
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %d: cannot move from %s to %s", e.Entity, e.ID, e.From, e.To)
}

func (e *StateConflictError) Is(target error) bool {
	return target == ErrStateConflict
}

type LimitExceededError struct {
	CarrierID int64
	Current   int
	Limit     int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("carrier %d has %d active engagements, limit is %d", e.CarrierID, e.Current, e.Limit)
}

func (e *LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}

type RoutingUnavailableError struct {
	Cause error
}

func (e *RoutingUnavailableError) Error() string {
	return fmt.Sprintf("routing unavailable: %v", e.Cause)
}

func (e *RoutingUnavailableError) Is(target error) bool {
	return target == ErrRoutingUnavailable
}

func (e *RoutingUnavailableError) Unwrap() error {
	return e.Cause
}

type StaleLocationError struct {
	CarrierID int64
}

func (e *StaleLocationError) Error() string {
	return fmt.Sprintf("carrier %d has no position fix", e.CarrierID)
}

func (e *StaleLocationError) Is(target error) bool {
	return target == ErrStaleLocation
}

type ForbiddenError struct {
	ActorID int64
	Role    Role
	Action  string
}

func NewForbiddenError(actor Actor, action string) *ForbiddenError {
	return &ForbiddenError{ActorID: actor.ID, Role: actor.Role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s %d is not allowed to %s", e.Role, e.ActorID, e.Action)
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}
