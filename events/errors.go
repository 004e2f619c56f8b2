package events

import (
	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
)

// Error is the error type returned by Registry methods
type Error = regerrors.Error

// Code categorizes an Error
type Code = regerrors.Code

const (
	CodeInvalidArgument   = regerrors.CodeInvalidArgument
	CodeDuplicateListener = regerrors.CodeDuplicateListener
	CodeUnknownEventType  = regerrors.CodeUnknownEventType
)

// IsInvalidArgument reports whether err came from a malformed declaration or listener
func IsInvalidArgument(err error) bool { return regerrors.IsInvalidArgument(err) }

// IsDuplicateListener reports whether err came from attaching a listener twice
func IsDuplicateListener(err error) bool { return regerrors.IsDuplicateListener(err) }

// IsUnknownEventType reports whether err came from an undeclared event type
func IsUnknownEventType(err error) bool { return regerrors.IsUnknownEventType(err) }
