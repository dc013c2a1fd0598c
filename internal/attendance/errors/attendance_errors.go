package attendanceerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDuplicateCheckIn = apperror.New(
		apperror.CodeConflict,
		"Already checked in for today",
		http.StatusConflict,
	)
	ErrNoCheckIn = apperror.New(
		apperror.CodeNotFound,
		"No check-in found for today",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Already checked out for today",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidTimeValue = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid HH:MM time value",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
)
