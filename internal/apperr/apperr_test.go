package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"skip", SkipErr("wrong resource"), http.StatusOK},
		{"invalid", InvalidErr(CodeInvalidOperation, "bad"), http.StatusBadRequest},
		{"not found", NotFoundErr("missing"), http.StatusBadRequest},
		{"wrapped invalid", fmt.Errorf("ctx: %w", InvalidErr(CodeInvalidInput, "bad")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"internal", Wrap(errors.New("boom"), "psp down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrapKeepsAppError(t *testing.T) {
	orig := NotFoundErr("payment not found")
	assert.Same(t, orig, Wrap(fmt.Errorf("lookup: %w", orig), "ignored"))
	assert.Nil(t, Wrap(nil, "x"))
}

func TestBodyHidesInternalDetails(t *testing.T) {
	body := Body(Wrap(errors.New("dial tcp: refused"), "psp down"))
	assert.Equal(t, ErrorBody{Code: CodeGeneral, Message: "internal error"}, body)

	body = Body(InvalidErr(CodeInvalidOperation, "Only one transaction can be in Initial state at any time."))
	assert.Equal(t, CodeInvalidOperation, body.Code)
}

func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip(fmt.Errorf("wrapped: %w", SkipErr("no-op"))))
	assert.False(t, IsSkip(InvalidErr(CodeInvalidInput, "x")))
	assert.False(t, IsSkip(errors.New("x")))
}
