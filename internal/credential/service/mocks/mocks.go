// Package mocks provides testify mocks for the credential pipeline.
package mocks

import (
	"github.com/stretchr/testify/mock"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
)

// MockPipeline is a mock implementation of service.Pipeline.
type MockPipeline struct {
	mock.Mock
}

// HashForStorage mocks the HashForStorage method.
func (m *MockPipeline) HashForStorage(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

// OpenPassword mocks the OpenPassword method.
func (m *MockPipeline) OpenPassword(input credentialDomain.PasswordInput) (string, error) {
	args := m.Called(input)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method.
func (m *MockPipeline) Verify(plain, stored string) (bool, error) {
	args := m.Called(plain, stored)
	return args.Bool(0), args.Error(1)
}

// Seal mocks the Seal method.
func (m *MockPipeline) Seal(value string) (string, error) {
	args := m.Called(value)
	return args.String(0), args.Error(1)
}

// GeneratePassword mocks the GeneratePassword method.
func (m *MockPipeline) GeneratePassword() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
