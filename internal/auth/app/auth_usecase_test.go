package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/auth/app"
	"notekeeper/internal/auth/domain/entities"
	"notekeeper/internal/auth/domain/services"
)

func TestRegister(t *testing.T) {
	testEmail := "test@example.com"
	testFullName := "Test User"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	generatedUserID := "generated-user-id"

	now := time.Now()
	tokenExpires := now.Add(24 * time.Hour)
	accessToken := "access-token-123"

	createdUser := &entities.User{
		ID:           generatedUserID,
		Email:        testEmail,
		FullName:     testFullName,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name         string
		fullName     string
		email        string
		password     string
		setupMocks   func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedErr  error
		errorContext string
	}{
		{
			name:     "Success - user registered successfully",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == testEmail && u.FullName == testFullName && u.PasswordHash == hashedPassword
				})).Return(createdUser, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID).
					Return(accessToken, tokenExpires, nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:         "Error - empty full name",
			fullName:     "",
			email:        testEmail,
			password:     testPassword,
			setupMocks:   func(_ *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {},
			expectedErr:  entities.ErrEmptyFullName,
			errorContext: "validating full name",
		},
		{
			name:         "Error - invalid email format",
			fullName:     testFullName,
			email:        "invalid-email",
			password:     testPassword,
			setupMocks:   func(_ *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {},
			expectedErr:  entities.ErrInvalidEmail,
			errorContext: "validating email",
		},
		{
			name:         "Error - email with spaces",
			fullName:     testFullName,
			email:        "bad user@example.com",
			password:     testPassword,
			setupMocks:   func(_ *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {},
			expectedErr:  entities.ErrInvalidEmail,
			errorContext: "validating email",
		},
		{
			name:         "Error - password too short",
			fullName:     testFullName,
			email:        testEmail,
			password:     "short",
			setupMocks:   func(_ *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {},
			expectedErr:  entities.ErrPasswordTooShort,
			errorContext: "validating password",
		},
		{
			name:     "Error - user already exists",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(createdUser, nil).Once()
			},
			expectedErr:  services.ErrEmailAlreadyExists,
			errorContext: "email already registered",
		},
		{
			name:     "Error - database error during user check",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errors.New("database error")).Once()
			},
			expectedErr:  errors.New("database error"),
			errorContext: "checking existing user",
		},
		{
			name:     "Error - password hashing failure",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return("", errors.New("hashing error")).Once()
			},
			expectedErr:  errors.New("hashing error"),
			errorContext: "hashing password",
		},
		{
			name:     "Error - duplicate detected on insert",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrEmailAlreadyExists).Once()
			},
			expectedErr:  services.ErrEmailAlreadyExists,
			errorContext: "email already registered",
		},
		{
			name:     "Error - token generation failure",
			fullName: testFullName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.Anything).Return(createdUser, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID).
					Return("", time.Time{}, errors.New("token generation failed")).Once()
			},
			expectedErr:  services.ErrTokenGenerationFailed,
			errorContext: "generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)

			tt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			authUseCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			ctx := context.Background()
			token, err := authUseCase.Register(ctx, tt.fullName, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContext)

				if errors.Is(err, entities.ErrEmptyFullName) ||
					errors.Is(err, entities.ErrInvalidEmail) ||
					errors.Is(err, entities.ErrPasswordTooShort) ||
					errors.Is(err, services.ErrEmailAlreadyExists) ||
					errors.Is(err, services.ErrTokenGenerationFailed) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}

				assert.Nil(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, token)
				assert.Equal(t, generatedUserID, token.UserID)
				assert.Equal(t, accessToken, token.Token)
				assert.Equal(t, tokenExpires, token.ExpiresAt)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	userID := "user-id-1"

	now := time.Now()
	tokenExpires := now.Add(24 * time.Hour)
	accessToken := "access-token-123"

	existingUser := &entities.User{
		ID:           userID,
		Email:        testEmail,
		FullName:     "Test User",
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name         string
		setupMocks   func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedErr  error
		errorContext string
	}{
		{
			name: "Success - user logged in",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, userID).
					Return(accessToken, tokenExpires, nil).Once()
			},
			expectedErr: nil,
		},
		{
			name: "Error - non-existent email yields invalid credentials",
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name: "Error - wrong password yields invalid credentials",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(false, nil).Once()
			},
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name: "Error - database failure during lookup",
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errors.New("database error")).Once()
			},
			expectedErr:  errors.New("database error"),
			errorContext: "finding user",
		},
		{
			name: "Error - password verification failure",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(false, errors.New("bcrypt error")).Once()
			},
			expectedErr:  errors.New("bcrypt error"),
			errorContext: "verifying password",
		},
		{
			name: "Error - token generation failure",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, userID).
					Return("", time.Time{}, errors.New("token generation failed")).Once()
			},
			expectedErr:  services.ErrTokenGenerationFailed,
			errorContext: "generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)

			tt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			authUseCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			ctx := context.Background()
			token, err := authUseCase.Login(ctx, testEmail, testPassword)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContext)

				if errors.Is(err, services.ErrInvalidCredentials) ||
					errors.Is(err, services.ErrTokenGenerationFailed) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}

				assert.Nil(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, token)
				assert.Equal(t, userID, token.UserID)
				assert.Equal(t, accessToken, token.Token)
				assert.Equal(t, tokenExpires, token.ExpiresAt)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}
