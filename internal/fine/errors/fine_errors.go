package fineerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrFineNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fine not found",
		http.StatusNotFound,
	)
	ErrInvalidFineID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid fine ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
