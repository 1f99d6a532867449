package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jamie@example.com"))
	assert.True(t, ValidEmail(" hr@citygen.example "))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
	assert.False(t, ValidEmail("Jamie Park <jamie@example.com>"))
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://citygen.example"))
	assert.True(t, ValidURL("http://citygen.example/careers"))

	assert.False(t, ValidURL(""))
	assert.False(t, ValidURL("citygen.example"))
	assert.False(t, ValidURL("ftp://citygen.example"))
}
