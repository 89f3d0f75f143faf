package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/services/auth/mocks"
)

const testPhone = "998900404001"

func setupAuthUC(t *testing.T) (*AuthUC, *mocks.MockUserRepo, *mocks.MockOTPRepo, *mocks.MockSMSGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockOTPRepo := mocks.NewMockOTPRepo(ctrl)
	mockSMSGW := mocks.NewMockSMSGateway(ctrl)

	cfg := &models.Config{}
	cfg.Auth.ForcePasswordReset = true
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.RefreshExpiration = 10080

	uc := NewAuthUC(mockUserRepo, mockOTPRepo, mockSMSGW, cfg)
	return uc, mockUserRepo, mockOTPRepo, mockSMSGW
}

func TestSendOTP_Success(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, mockSMSGW := setupAuthUC(t)

	var sentCode string

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(nil, apperrors.ErrNotFound)

	mockSMSGW.EXPECT().
		SendSMS(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, code string) error {
			sentCode = code
			return nil
		})

	mockOTPRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any(), constants.OTPPreRegisterTTL).
		DoAndReturn(func(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
			assert.Equal(t, testPhone, otp.Phone)
			assert.Equal(t, sentCode, otp.Code)
			return nil
		})

	err := uc.SendOTP(context.Background(), testPhone)
	require.NoError(t, err)

	// Issued code is a 4-digit number in range
	n, err := strconv.Atoi(sentCode)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, constants.OTPCodeMin)
	assert.LessOrEqual(t, n, constants.OTPCodeMax)
}

func TestSendOTP_AlreadyRegistered(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUC(t)

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(&models.User{Phone: testPhone}, nil)

	err := uc.SendOTP(context.Background(), testPhone)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)

	err := uc.SendOTP(context.Background(), "not-a-phone")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPhone)
}

func TestSendOTP_DeliveryFailed(t *testing.T) {
	uc, mockUserRepo, _, mockSMSGW := setupAuthUC(t)

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(nil, apperrors.ErrNotFound)

	// Nothing may be cached for a delivery that never happened: StoreOTP
	// has no expectation, so any call would fail the test.
	mockSMSGW.EXPECT().
		SendSMS(gomock.Any(), testPhone, gomock.Any()).
		Return(apperrors.ErrDeliveryFailed)

	err := uc.SendOTP(context.Background(), testPhone)
	assert.ErrorIs(t, err, apperrors.ErrDeliveryFailed)
}

func TestSendOTP_SentinelCode(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, mockSMSGW := setupAuthUC(t)
	uc.cfg.Auth.OTPSentinel = "1212"

	mockUserRepo.EXPECT().
		GetUserByPhone(gomock.Any(), testPhone).
		Return(nil, apperrors.ErrNotFound)

	mockSMSGW.EXPECT().
		SendSMS(gomock.Any(), testPhone, "1212").
		Return(nil)

	mockOTPRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any(), constants.OTPPreRegisterTTL).
		DoAndReturn(func(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
			assert.Equal(t, "1212", otp.Code)
			return nil
		})

	err := uc.SendOTP(context.Background(), testPhone)
	assert.NoError(t, err)
}

func TestVerifyOTP_Matched(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUC(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(&models.OTP{Phone: testPhone, Code: "4242"}, nil)

	// Single-use: the matched challenge is invalidated
	mockOTPRepo.EXPECT().
		DeleteOTP(gomock.Any(), testPhone).
		Return(nil)

	err := uc.VerifyOTP(context.Background(), testPhone, "4242")
	assert.NoError(t, err)
}

func TestVerifyOTP_Mismatch_KeepsChallenge(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUC(t)

	// DeleteOTP has no expectation: a mismatch must not consume the entry
	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(&models.OTP{Phone: testPhone, Code: "4242"}, nil)

	err := uc.VerifyOTP(context.Background(), testPhone, "1111")
	assert.ErrorIs(t, err, apperrors.ErrOTPMismatch)
}

func TestVerifyOTP_AbsentOrExpired(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUC(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(nil, apperrors.ErrOTPInvalidOrExpired)

	err := uc.VerifyOTP(context.Background(), testPhone, "4242")
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalidOrExpired)
}

func TestVerifyOTP_StoreUnavailable(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUC(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(nil, errors.New("failed to get OTP: store unavailable: dial tcp refused"))

	err := uc.VerifyOTP(context.Background(), testPhone, "4242")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrOTPMismatch)
}

func TestRegister_IssuesWithRegistrationTTL(t *testing.T) {
	uc, _, mockOTPRepo, mockSMSGW := setupAuthUC(t)

	mockSMSGW.EXPECT().
		SendSMS(gomock.Any(), testPhone, gomock.Any()).
		Return(nil)

	mockOTPRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any(), constants.OTPRegisterTTL).
		Return(nil)

	resp, err := uc.Register(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, testPhone, resp.Phone)

	// The code is never echoed unless explicitly enabled
	assert.Empty(t, resp.Code)
}

func TestRegister_EchoesCodeWhenEnabled(t *testing.T) {
	uc, _, mockOTPRepo, mockSMSGW := setupAuthUC(t)
	uc.cfg.Auth.EchoCode = true

	var sentCode string
	mockSMSGW.EXPECT().
		SendSMS(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, code string) error {
			sentCode = code
			return nil
		})

	mockOTPRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any(), constants.OTPRegisterTTL).
		Return(nil)

	resp, err := uc.Register(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, sentCode, resp.Code)
}

func TestCompleteRegistration_NewAccount(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, _ := setupAuthUC(t)

	newUser := &models.User{Phone: testPhone, IsActive: true}
	newUser.ID = mustNewUUID(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(&models.OTP{Phone: testPhone, Code: "4242"}, nil)

	mockOTPRepo.EXPECT().
		DeleteOTP(gomock.Any(), testPhone).
		Return(nil)

	mockUserRepo.EXPECT().
		GetOrCreateUser(gomock.Any(), testPhone).
		Return(newUser, true, nil)

	// The temporary credential is the hashed OTP code, with a pending
	// password reset per policy.
	mockUserRepo.EXPECT().
		UpdatePassword(gomock.Any(), newUser.ID, gomock.Any(), true).
		DoAndReturn(func(ctx context.Context, id interface{}, hash string, reset bool) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("4242")))
			return nil
		})

	user, created, err := uc.CompleteRegistration(context.Background(), testPhone, "4242")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testPhone, user.Phone)
	assert.True(t, user.RequirePasswordReset)
}

func TestCompleteRegistration_ExistingAccount(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, _ := setupAuthUC(t)

	existing := &models.User{Phone: testPhone, IsActive: true}

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(&models.OTP{Phone: testPhone, Code: "4242"}, nil)

	mockOTPRepo.EXPECT().
		DeleteOTP(gomock.Any(), testPhone).
		Return(nil)

	// No UpdatePassword expectation: an existing credential is untouched
	mockUserRepo.EXPECT().
		GetOrCreateUser(gomock.Any(), testPhone).
		Return(existing, false, nil)

	user, created, err := uc.CompleteRegistration(context.Background(), testPhone, "4242")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, user)
}

func TestCompleteRegistration_Mismatch(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUC(t)

	mockOTPRepo.EXPECT().
		GetOTP(gomock.Any(), testPhone).
		Return(&models.OTP{Phone: testPhone, Code: "4242"}, nil)

	_, created, err := uc.CompleteRegistration(context.Background(), testPhone, "9999")
	assert.ErrorIs(t, err, apperrors.ErrOTPMismatch)
	assert.False(t, created)
}
