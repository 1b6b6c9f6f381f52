package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/usecasetest"
)

const testSecret = "test-secret"

type authFixture struct {
	uc     *UseCase
	outbox *usecasetest.Outbox
	clock  *usecasetest.Clock
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	store := memory.NewStore(idgen.NewSequence())
	outbox := &usecasetest.Outbox{}
	clock := usecasetest.NewClock(time.Now().Add(-time.Minute))
	uc := New(
		memory.NewUserRepository(store),
		memory.NewSessionRepository(store, time.Hour),
		outbox,
		clock.Runtime(usecase.PolicySilent),
		Config{JWTSecret: testSecret, Issuer: "neat-test", SessionTTL: time.Hour},
		nil,
	)
	return authFixture{uc: uc, outbox: outbox, clock: clock}
}

func TestSendOTP_AlwaysSucceedsWithFixedCode(t *testing.T) {
	fx := newAuthFixture(t)

	res, err := fx.uc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, DefaultOTPCode, res.Code)
	assert.Equal(t, []string{"9876543210"}, fx.outbox.OTPs)
}

func TestSendOTP_RejectsEmptyIdentifier(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.uc.SendOTP(context.Background(), "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	assert.Empty(t, fx.outbox.OTPs)
}

func TestSendOTP_OutboxFailureDoesNotFail(t *testing.T) {
	fx := newAuthFixture(t)
	fx.outbox.FailWith = assert.AnError

	res, err := fx.uc.SendOTP(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestVerifyOTP_MatchesSentinelOnly(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	ok, err := fx.uc.VerifyOTP(ctx, "a@b.c", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.uc.VerifyOTP(ctx, "a@b.c", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginOrRegister_IsIdempotentOnIdentifier(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	first, err := fx.uc.LoginOrRegister(ctx, LoginInput{Identifier: "9876543210", Role: domain.RoleDealer})
	require.NoError(t, err)
	second, err := fx.uc.LoginOrRegister(ctx, LoginInput{Identifier: "9876543210", Role: domain.RoleBuyer})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RoleDealer, second.Role)
}

func TestLoginOrRegister_AppliesDefaults(t *testing.T) {
	fx := newAuthFixture(t)

	user, err := fx.uc.LoginOrRegister(context.Background(), LoginInput{Identifier: "a@b.c", Role: domain.RoleSeller})
	require.NoError(t, err)

	assert.Equal(t, "Seller a@b.c", user.Name)
	assert.Equal(t, domain.KYCPending, user.KYCStatus)
	assert.Equal(t, []string{domain.DefaultServiceArea}, user.ServiceAreas)
	assert.Empty(t, user.Ratings)
}

func TestLoginOrRegister_ValidatesInput(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.uc.LoginOrRegister(ctx, LoginInput{Role: domain.RoleBuyer})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = fx.uc.LoginOrRegister(ctx, LoginInput{Identifier: "x", Role: "Landlord"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestAuthenticate_IssuesSignedSession(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	res, err := fx.uc.Authenticate(ctx, AuthenticateInput{Identifier: "9876543210", Code: "123456", Role: domain.RoleBuyer})
	require.NoError(t, err)
	require.NotNil(t, res.Session)

	token, err := jwt.Parse(res.Session.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, res.User.ID, claims["user_id"])
	assert.Equal(t, "neat-test", claims["iss"])

	stored, err := fx.uc.GetSession(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, stored.UserID)

	require.NoError(t, fx.uc.RevokeSession(ctx, res.Session.ID))
	_, err = fx.uc.GetSession(ctx, res.Session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthenticate_RejectsWrongCode(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.uc.Authenticate(context.Background(), AuthenticateInput{Identifier: "x", Code: "111111", Role: domain.RoleBuyer})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestGetSession_ExpiredSessionIsDropped(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	user, err := fx.uc.LoginOrRegister(ctx, LoginInput{Identifier: "x", Role: domain.RoleBuyer})
	require.NoError(t, err)
	session, err := fx.uc.IssueSession(ctx, user)
	require.NoError(t, err)

	fx.clock.Step = 2 * time.Hour
	fx.clock.Now()

	_, err = fx.uc.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
