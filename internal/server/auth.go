package server

import "context"

// authenticator checks Basic credentials against the users table.
type authenticator struct {
	users UserRepo
}

func (a authenticator) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if a.users == nil || username == "" {
		return false, nil
	}
	return a.users.ValidateUser(ctx, username, password)
}
