package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/credvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("please log in first")

func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register creates a user. It does not log in.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.client.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can log in now.")
	return nil
}

// Login authenticates and shows the stored accounts.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	callCtx, cancel := a.callCtx(ctx)
	err = a.client.Login(callCtx, userName, string(password))
	cancel()
	if err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
	return a.List(ctx)
}

// List prints the accounts of the logged-in user.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	accounts, err := a.client.ListAccounts(ctx)
	if err != nil {
		return a.sessionError(err)
	}

	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts stored.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACCOUNT\tPASSWORD")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", acc.ID, acc.Name, acc.Password)
	}
	return tw.Flush()
}

// Add stores a new account for the logged-in user.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	name, err := getSimpleText(a.reader, "Enter account name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter account password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	id, err := a.client.AddAccount(ctx, name, string(password))
	if err != nil {
		return a.sessionError(err)
	}

	fmt.Fprintf(a.out, "Added account %q (id %d).\n", name, id)
	return nil
}

// Delete removes the account whose id is given as the first argument, or
// prompted for when absent.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, "Enter account id to delete", a.out); err != nil {
			return err
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q", raw)
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.DeleteAccount(ctx, id); err != nil {
		return a.sessionError(err)
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// Logout ends the session. The local session is dropped even if the server
// cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	err := a.client.Logout(ctx)
	a.userName = ""
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// sessionError forgets the logged-in user once the server reports the session
// is no longer active.
func (a *App) sessionError(err error) error {
	if errors.Is(err, common.ErrNotAuthenticated) {
		a.userName = ""
	}
	return err
}

// describe turns client errors into user-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		return "that username is already taken"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "wrong username or password"
	case errors.Is(err, common.ErrNotAuthenticated):
		return "session expired, please log in again"
	case errors.Is(err, common.ErrorValidation):
		return "required field is empty"
	case errors.Is(err, common.ErrStoreUnavailable):
		return "the vault is busy, try again later"
	case errors.Is(err, common.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}
