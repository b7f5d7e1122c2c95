package datastore

import (
	"errors"
	"fmt"
)

// Code is the machine-readable kind of a business-rule failure. The HTTP
// layer maps codes to status codes; the store never does.
type Code string

const (
	CodePersonNotFound     Code = "PERSON_NOT_FOUND"
	CodeRoomNotFound       Code = "ROOM_NOT_FOUND"
	CodeMembershipNotFound Code = "MEMBERSHIP_NOT_FOUND"
	CodeNotAMember         Code = "NOT_A_MEMBER"
	CodeAlreadyAMember     Code = "ALREADY_A_MEMBER"
	CodeNotMemberOfRoom    Code = "NOT_MEMBER_OF_ROOM"
)

// Error is a business-rule failure reported to the caller. Precondition
// violations are not Errors; those panic.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code carried by err, or "" when err is not a store error.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
