package services

import (
	"restropos-backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpCount(t *testing.T) {
	breakdown := models.JSONB{}

	bumpCount(breakdown, "delivered")
	bumpCount(breakdown, "delivered")
	bumpCount(breakdown, "cancelled")
	bumpCount(breakdown, "")

	assert.Equal(t, 2, breakdown["delivered"])
	assert.Equal(t, 1, breakdown["cancelled"])
	assert.Len(t, breakdown, 2)
}
