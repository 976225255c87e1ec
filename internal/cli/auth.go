package cli

import (
	"context"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/session"
)

// Register prompts for a username and a password twice and creates the
// account. On success the session returns to the login page.
func (a *App) Register(ctx context.Context, s *session.Session) error {
	s.Page = session.PageRegister

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.authService.Register(opCtx, username, password, confirm); err != nil {
		return err
	}

	s.Page = session.PageLogin
	a.println("Success! You can log in now.")
	return nil
}

// Login prompts for credentials and opens the cashier menu on success.
func (a *App) Login(ctx context.Context, s *session.Session) error {
	s.Page = session.PageLogin

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	u, err := a.authService.Login(opCtx, username, password)
	if err != nil {
		return err
	}

	s.Login(u.Username)
	a.log.Info(ctx, "cashier logged in", "username", u.Username)
	a.printf("Welcome, %s!\n", u.Username)
	return nil
}

// Logout clears the session, including the cart.
func (a *App) Logout(ctx context.Context, s *session.Session) error {
	a.log.Info(ctx, "cashier logged out", "username", s.Username)
	s.Logout()
	a.println("Logged out.")
	return nil
}
