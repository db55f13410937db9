package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainErrorNil(t *testing.T) {
	de := ToDomainError(nil)

	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, DefaultMessage, de.Message)
	assert.Equal(t, DefaultCode, de.Code)
	assert.Nil(t, de.Details)
}

func TestToDomainErrorPlainError(t *testing.T) {
	de := ToDomainError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, DefaultMessage, de.Message)
	assert.Equal(t, DefaultCode, de.Code)
}

func TestToDomainErrorPassthrough(t *testing.T) {
	err := NewValidationError("bad input", map[string]any{"field": "email"})

	de := ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "bad input", de.Message)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, "email", de.Details["field"])
}

func TestToDomainErrorEmptyFieldsFallBack(t *testing.T) {
	de := ToDomainError(&DomainError{})

	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, DefaultMessage, de.Message)
	assert.Equal(t, DefaultCode, de.Code)
}

func TestToDomainErrorNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)

	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestToDomainErrorWrapped(t *testing.T) {
	inner := NewConflict("duplicate")
	de := ToDomainError(inner)

	assert.Equal(t, http.StatusConflict, de.HTTPStatus)
	assert.Equal(t, "CONFLICT", de.Code)
}

func TestTaxonomyStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NewValidationError("v", nil), http.StatusBadRequest, "VALIDATION_FAILED"},
		{NewNotFound("n"), http.StatusNotFound, "NOT_FOUND"},
		{NewConflict("c"), http.StatusConflict, "CONFLICT"},
		{NewUnauthorized("u"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbidden("f"), http.StatusForbidden, "FORBIDDEN"},
		{NewInternalError(errors.New("i")), http.StatusInternalServerError, DefaultCode},
	}

	for _, tc := range cases {
		de := ToDomainError(tc.err)
		assert.Equal(t, tc.status, de.HTTPStatus, tc.code)
		assert.Equal(t, tc.code, de.Code)
	}
}
