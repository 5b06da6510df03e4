// Error codes reference.
//
// Terminal errors are reported with a short message, a suggested action and
// a code that can be quoted when asking for help:
//
//	FILE001 - Source file not found
//	          Action: Check the --source path or CSVEDIT_SOURCE
//
//	FILE002 - Permission denied on a source or destination file
//	          Action: Check file and directory permissions
//
//	FILE003 - Any other read or write failure
//	          Action: Check disk space and that the path is a regular file
//
//	FILE004 - Destination directory not found
//	          Action: Check the --dest path or CSVEDIT_DEST
//
//	IDX001  - Row index out of range on update
//	          Action: Pick a row index below the number of lines in the file
//
//	IDX002  - Column index out of range on update
//	          Action: Pick a column index below the number of fields in that row
//
//	ERR000  - Anything else; see the logged technical error
//
// Matchers are tried in order and the first hit wins, so specific
// conditions come before general ones.
package table

import (
	"errors"
	"fmt"
	"io/fs"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

type errorMatcher struct {
	match func(error) bool
	msg   UserMessage
}

func isFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}

// fileOpIs reports whether err is a FileError raised by one of ops.
func fileOpIs(err error, ops ...string) bool {
	var fe *FileError
	if !errors.As(err, &fe) {
		return false
	}
	for _, op := range ops {
		if fe.Op == op {
			return true
		}
	}
	return false
}

var errorMatchers = []errorMatcher{
	{
		match: func(err error) bool { return errors.Is(err, ErrInvalidRow) },
		msg: UserMessage{
			Message: "Row index is out of range",
			Action:  "Pick a row index below the number of lines in the file",
			Code:    "IDX001",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, ErrInvalidColumn) },
		msg: UserMessage{
			Message: "Column index is out of range for that row",
			Action:  "Pick a column index below the number of fields in that row",
			Code:    "IDX002",
		},
	},
	{
		match: func(err error) bool { return fileOpIs(err, "open", "read") && errors.Is(err, fs.ErrNotExist) },
		msg: UserMessage{
			Message: "File not found",
			Action:  "Check the --source path or CSVEDIT_SOURCE",
			Code:    "FILE001",
		},
	},
	{
		match: func(err error) bool { return fileOpIs(err, "create", "write") && errors.Is(err, fs.ErrNotExist) },
		msg: UserMessage{
			Message: "Destination directory not found",
			Action:  "Check the --dest path or CSVEDIT_DEST",
			Code:    "FILE004",
		},
	},
	{
		match: func(err error) bool { return isFileError(err) && errors.Is(err, fs.ErrPermission) },
		msg: UserMessage{
			Message: "Permission denied",
			Action:  "Check file and directory permissions",
			Code:    "FILE002",
		},
	},
	{
		match: isFileError,
		msg: UserMessage{
			Message: "File could not be read or written",
			Action:  "Check disk space and that the path is a regular file",
			Code:    "FILE003",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts an error to a user-facing message. A nil error maps to
// the zero UserMessage; an unknown one to code ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, m := range errorMatchers {
		if m.match(err) {
			return m.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to something more specific than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
