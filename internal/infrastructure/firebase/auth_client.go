package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Auth SDK for phone-number sign-in. Clients
// complete phone verification on-device; the server only verifies the
// resulting ID tokens and looks up accounts by phone number.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *AuthClient) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (string, error) {
	user, err := f.client.GetUserByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}
