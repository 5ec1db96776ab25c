package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"restropos-backend/services"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, recorder
}

func TestBindJSONReportsFieldErrors(t *testing.T) {
	c, recorder := testContext(`{"email":"not-an-email"}`)

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	assert.False(t, bindJSON(c, &input))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `"status":"error"`)
	assert.Contains(t, body, "Validation failed")
	assert.Contains(t, body, `"field"`)
	assert.Contains(t, body, `"rule"`)
}

func TestBindJSONMalformedBody(t *testing.T) {
	c, recorder := testContext(`{"email":`)

	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	assert.False(t, bindJSON(c, &input))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid input")
}

func TestBindJSONValidBody(t *testing.T) {
	c, recorder := testContext(`{"email":"alice@example.com","password":"hunter2hunter2"}`)

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	assert.True(t, bindJSON(c, &input))
	assert.Equal(t, "alice@example.com", input.Email)
	assert.Zero(t, recorder.Body.Len())
}

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing record", err: services.ErrNotFound, want: http.StatusNotFound},
		{name: "missing order line item", err: services.ErrItemNotFound, want: http.StatusBadRequest},
		{name: "insufficient stock", err: services.ErrInsufficientStock, want: http.StatusBadRequest},
		{name: "shift already open", err: services.ErrShiftAlreadyOpen, want: http.StatusBadRequest},
		{name: "invalid lifecycle state", err: services.ErrInvalidState, want: http.StatusBadRequest},
		{name: "duplicate email", err: services.ErrDuplicateEmail, want: http.StatusBadRequest},
		{name: "unknown errors stay internal", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c, recorder := testContext(`{}`)

			handleServiceError(c, testCase.err)

			assert.Equal(t, testCase.want, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"status":"error"`)
		})
	}
}
