package cli

import (
	"context"
	"errors"
	"os"

	"bukuku/internal/gateway"
)

// Login prompts for credentials, opens a session and refreshes the view
// state: the principal is fetched and the list reloaded, since access
// control changes what the list returns.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			printlnFn("Login failed: wrong email or password")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		a.log.Warn(ctx, "login failed", "err", err)
		return err
	}

	u, err := a.ctrl.UserFromGateway(ctx)
	if err != nil {
		a.log.Warn(ctx, "fetching user after login", "err", err)
	} else {
		printlnFn("Selamat datang,", u.FullName)
	}

	a.loggedIn = true
	_ = a.ctrl.Reload(ctx)
	return nil
}

// Logout drops the session and the now-inaccessible data.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.ctrl.ClearUser()
	a.loggedIn = false
	_ = a.ctrl.Reload(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami prints the signed-in principal.
func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.ctrl.User()
	if !ok {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(u.FullName, "<"+u.Email+">")
	return nil
}
