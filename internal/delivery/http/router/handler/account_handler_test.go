package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/internal/delivery/http/validator"
	domainerrors "accounts/internal/domain/errors"
	mockUsecase "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return NewAccountHandler(uc, logger), uc, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func strPtr(s string) *string {
	return &s
}

func TestAccountHandler_SignUp(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPost, "/signup",
		`{"username":"alice","email":"a@x.io","password":"pw1","image":"http://img/a.png"}`)

	uc.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{
			Username: "alice",
			Email:    "a@x.io",
			Password: "pw1",
			Image:    "http://img/a.png",
		}).
		Return(&usecase.AccountOutput{User: &usecase.AccountProjection{
			Username:     "alice",
			Email:        "a@x.io",
			ProfileImage: strPtr("http://img/a.png"),
		}}, nil)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"User created successfully!","user":{"username":"alice","email":"a@x.io","profileImage":"http://img/a.png"}}`,
		rec.Body.String())
}

func TestAccountHandler_SignUp_MissingField(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, _ := newJSONContext(e, http.MethodPost, "/signup", `{"username":"alice","email":"a@x.io"}`)

	err := h.SignUp(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	uc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestAccountHandler_SignUp_MalformedJSON(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPost, "/signup", `{"username":`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
	uc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestAccountHandler_SignUp_UsecaseError(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, _ := newJSONContext(e, http.MethodPost, "/signup", `{"username":"alice","email":"a@x.io","password":"pw1"}`)

	uc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountCreationFailed)

	err := h.SignUp(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountCreationFailed))
}

func TestAccountHandler_SignIn(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPost, "/signin", `{"email":"a@x.io","password":"pw1"}`)

	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "a@x.io", Password: "pw1"}).
		Return(&usecase.AccountOutput{User: &usecase.AccountProjection{Username: "alice", Email: "a@x.io"}}, nil)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"message":"Sign in successful!","user":{"username":"alice","email":"a@x.io","profileImage":null}}`,
		rec.Body.String())
}

func TestAccountHandler_SignIn_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		usecaseErr  error
		expectedErr error
	}{
		{name: "unknown email", usecaseErr: domainerrors.ErrAccountNotFound, expectedErr: domainerrors.ErrAccountNotFound},
		{name: "wrong password", usecaseErr: domainerrors.ErrInvalidCredentials, expectedErr: domainerrors.ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc, e := newTestHandler(t)
			c, _ := newJSONContext(e, http.MethodPost, "/signin", `{"email":"a@x.io","password":"x"}`)

			uc.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, tc.usecaseErr)

			err := h.SignIn(c)

			assert.True(t, errors.Is(err, tc.expectedErr))
		})
	}
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	h, uc, e := newTestHandler(t)
	c, rec := newJSONContext(e, http.MethodPut, "/update-profile",
		`{"email":"a@x.io","newemail":"a2@x.io","password":"pw3"}`)

	uc.EXPECT().
		UpdateProfile(mock.Anything, &usecase.UpdateProfileInput{
			Email:    "a@x.io",
			NewEmail: "a2@x.io",
			Password: "pw3",
		}).
		Return(&usecase.AccountOutput{User: &usecase.AccountProjection{Username: "alice", Email: "a2@x.io"}}, nil)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"message":"Profile updated successfully!","user":{"username":"alice","email":"a2@x.io","profileImage":null}}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "pw3")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Service is healthy"}`, rec.Body.String())
}
