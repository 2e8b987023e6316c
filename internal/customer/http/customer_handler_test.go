package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	"github.com/ourshop/shop/internal/customer/domain"
	"github.com/ourshop/shop/internal/customer/http/dto"
	"github.com/ourshop/shop/internal/customer/usecase/mocks"
	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
	userDomain "github.com/ourshop/shop/internal/user/domain"
)

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func setupTestHandler(t *testing.T) (*CustomerHandler, *mocks.MockCustomerUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	mockUseCase := &mocks.MockCustomerUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCustomerHandler(mockUseCase, logger), mockUseCase
}

func sealedCustomer() *domain.Customer {
	now := time.Now().UTC()
	return &domain.Customer{
		User: userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "jane",
			Password:  "c2VhbGVk",
			Active:    true,
			Type:      userDomain.UserTypeCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Balance:  10,
	}
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"username":    "jane",
		"password":    "password",
		"active":      true,
		"full_name":   "Jane Doe",
		"email":       "jane@example.com",
		"postal_code": 48001,
	}
}

func TestCustomerHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		customer := sealedCustomer()

		mockUseCase.On("Create", mock.Anything, mock.MatchedBy(func(in *domain.CreateCustomerInput) bool {
			return in.Password == credentialDomain.PasswordInput{Plain: "password"} &&
				in.Email == "jane@example.com" && in.PostalCode == 48001
		})).Return(customer, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/customers", validCreateBody())
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.CustomerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, customer.ID.String(), response.ID)
		assert.Equal(t, "c2VhbGVk", response.Password)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		body := validCreateBody()
		body["email"] = "not-an-email"

		c, w := createTestContext(http.MethodPost, "/v1/customers", body)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_EmailTaken", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken).Once()

		c, w := createTestContext(http.MethodPost, "/v1/customers", validCreateBody())
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCustomerHandler_GetHandlers(t *testing.T) {
	t.Run("GetByID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		customer := sealedCustomer()
		mockUseCase.On("Get", mock.Anything, customer.ID).Return(customer, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/customers/"+customer.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: customer.ID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetByEmail_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrCustomerNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/customers/email/ghost@example.com", nil)
		c.Params = gin.Params{{Key: "email", Value: "ghost@example.com"}}
		handler.GetByEmailHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandler_UpdateBalanceHandler(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("UpdateBalance", mock.Anything, id, 15.75).Return(nil).Once()

		c, w := createTestContext(http.MethodPut, "/v1/customers/"+id.String()+"/balance",
			map[string]interface{}{"balance": 15.75})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.UpdateBalanceHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_MissingBalance", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/customers/"+id.String()+"/balance", map[string]interface{}{})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.UpdateBalanceHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_Negative", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/customers/"+id.String()+"/balance",
			map[string]interface{}{"balance": -3})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.UpdateBalanceHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCustomerHandler_UpdateHandler_UsernameWithInnerSpace(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)
	id := uuid.Must(uuid.NewV7())

	c, w := createTestContext(http.MethodPut, "/v1/customers/"+id.String(), map[string]interface{}{
		"username":    "jane doe",
		"full_name":   "Jane Doe",
		"email":       "jane@example.com",
		"postal_code": 48001,
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	handler.UpdateHandler(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerHandler_PasswordResetHandler(t *testing.T) {
	t.Run("Success_Accepted", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("ResetPassword", mock.Anything, "jane@example.com").Return(nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/customers/password-reset",
			map[string]interface{}{"email": "jane@example.com"})
		handler.PasswordResetHandler(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"accepted"}`, w.Body.String())
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/customers/password-reset", map[string]interface{}{})
		handler.PasswordResetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DeliveryFailed", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("ResetPassword", mock.Anything, "jane@example.com").
			Return(notificationDomain.ErrDeliveryFailed).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/customers/password-reset",
			map[string]interface{}{"email": "jane@example.com"})
		handler.PasswordResetHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "5", w.Header().Get("Retry-After"))
	})
}

func TestCustomerHandler_DeleteHandler_InvalidID(t *testing.T) {
	handler, _ := setupTestHandler(t)

	c, w := createTestContext(http.MethodDelete, "/v1/customers/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	handler.DeleteHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
