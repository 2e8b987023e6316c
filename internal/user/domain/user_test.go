package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserType_Valid(t *testing.T) {
	assert.True(t, UserTypeCustomer.Valid())
	assert.True(t, UserTypeAdmin.Valid())
	assert.False(t, UserType("supplier").Valid())
	assert.False(t, UserType("").Valid())
}
