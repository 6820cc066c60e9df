package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/touristguide/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in.
//
// An unknown email is not rejected: a fresh demo account is provisioned
// with the supplied password and signed in straight away. Input errors are
// surfaced as messages and swallowed; only I/O failures are returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, provisioned, err := a.identity.SignIn(ctx, email, string(password))
	switch {
	case errors.Is(err, common.ErrInvalidEmail):
		fmt.Fprintln(a.out, "Please enter a valid email address.")
		return nil
	case errors.Is(err, common.ErrWrongPassword):
		fmt.Fprintln(a.out, "Incorrect password for that fake account.")
		return nil
	case err != nil:
		return err
	}

	if provisioned {
		fmt.Fprintln(a.out, "No account found — demo account created and signed in.")
	} else {
		fmt.Fprintf(a.out, "Signed in as %s (fake).\n", user.Name)
	}
	return nil
}

// Register prompts for name, email, and password and creates an account.
// A successful registration also signs in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.identity.Register(ctx, name, email, string(password))
	switch {
	case errors.Is(err, common.ErrInvalidEmail):
		fmt.Fprintln(a.out, "Please enter a valid email.")
		return nil
	case errors.Is(err, common.ErrWeakPassword):
		fmt.Fprintln(a.out, "Password must be at least 4 characters.")
		return nil
	case errors.Is(err, common.ErrDuplicateEmail):
		fmt.Fprintln(a.out, "An account with that email already exists in this profile.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(a.out, "Account created and signed in (fake).")
	return nil
}

// Logout clears the session. Signing out while signed out is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the active account, or a guest notice.
func (a *App) WhoAmI(ctx context.Context) error {
	email, ok := a.identity.CurrentIdentity(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", a.displayName(ctx, email), email)
	return nil
}
