package appealerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrAppealNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appeal not found",
		http.StatusNotFound,
	)
	ErrInvalidAppealID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid appeal ID",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Only pending appeals can change status",
		http.StatusConflict,
	)
)
