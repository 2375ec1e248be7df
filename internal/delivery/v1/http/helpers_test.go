package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"with cents", "599.99", 59999},
		{"whole value", "600", 60000},
		{"one decimal place", "5.5", 550},
		{"zero", "0", 0},
		{"trailing zeroes", "10.00", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceToCentsErrors(t *testing.T) {
	_, err := parsePriceToCents("")
	require.Error(t, err)

	_, err = parsePriceToCents("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("-5.00")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	// Больше двух знаков после запятой — отдельная ошибка точности
	_, err = parsePriceToCents("5.999")
	assert.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = parsePriceToCents("100000000001")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestSessionID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.Header.Set(sessionHeader, "  term-1  ")

	id, err := sessionID(r)
	require.NoError(t, err)
	assert.Equal(t, "term-1", id)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	_, err = sessionID(r)
	assert.ErrorIs(t, err, e.ErrSessionRequired)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrEmptyCart, http.StatusBadRequest},
		{e.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{e.Wrap("OrderUseCase.SubmitOrder", e.ErrPaymentMethodRequired), http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "for error %v", tt.err)
	}
}
