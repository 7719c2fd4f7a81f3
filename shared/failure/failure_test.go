package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"digitalpage/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad")), want: http.StatusBadRequest},
		{name: "bad request from string", err: failure.BadRequestFromString("bad"), want: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("nope"), want: http.StatusUnauthorized},
		{name: "not found", err: failure.NotFound("order not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("taken"), want: http.StatusConflict},
		{name: "internal error", err: failure.InternalError(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "plain error defaults to internal", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestFailureCodeSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", failure.NotFound("order not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "order not found", failure.NotFound("order not found").Error())
}
