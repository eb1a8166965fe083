package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/usecase"
)

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	account := &model.Account{UserID: "U123", UserName: "alice", Team: "example"}

	newMessenger := func() *mocks.MessengerMock {
		return &mocks.MessengerMock{
			LoginFunc: func(ctx context.Context, creds *model.Credentials) (*model.Account, error) {
				return account, nil
			},
		}
	}

	t.Run("Login succeeds", func(t *testing.T) {
		messenger := newMessenger()
		auth := usecase.NewAuth(messenger)

		got, err := auth.Login(ctx, &model.Credentials{Token: "xoxp-test", Account: "alice"})
		gt.NoError(t, err)
		gt.Equal(t, got.UserID, account.UserID)
		gt.A(t, messenger.LoginCalls()).Length(1)
	})

	t.Run("Missing token is rejected without calling the platform", func(t *testing.T) {
		messenger := newMessenger()
		auth := usecase.NewAuth(messenger)

		_, err := auth.Login(ctx, &model.Credentials{ClientID: "123"})
		gt.Error(t, err)
		gt.A(t, messenger.LoginCalls()).Length(0)
	})

	t.Run("Account mismatch", func(t *testing.T) {
		auth := usecase.NewAuth(newMessenger())

		_, err := auth.Login(ctx, &model.Credentials{Token: "xoxp-test", Account: "bob"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAccountMismatch))
	})

	t.Run("Platform failure", func(t *testing.T) {
		messenger := newMessenger()
		messenger.LoginFunc = func(ctx context.Context, creds *model.Credentials) (*model.Account, error) {
			return nil, goerr.New("invalid_auth")
		}
		auth := usecase.NewAuth(messenger)

		_, err := auth.Login(ctx, &model.Credentials{Token: "xoxp-test"})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid_auth")
		gt.S(t, err.Error()).NotContains("xoxp-test")
	})
}
