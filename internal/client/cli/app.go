// Package cli implements the interactive credvault command line.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/credvault/internal/client/client"
	"github.com/dmitrijs2005/credvault/internal/client/config"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
)

// VaultClient is the server API the CLI drives.
type VaultClient interface {
	Register(ctx context.Context, userName, password string) (int64, error)
	Login(ctx context.Context, userName, password string) error
	ListAccounts(ctx context.Context) ([]pb.Account, error)
	AddAccount(ctx context.Context, name, password string) (int64, error)
	DeleteAccount(ctx context.Context, id int64) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Close() error
}

type App struct {
	config   *config.Config
	client   VaultClient
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewCredVaultClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, vc VaultClient, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: vc, reader: bufio.NewReader(in), out: out}
}

// Run reads commands until "exit" or end of input, then logs out and closes
// the connection.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer func() {
		if a.isLoggedIn() {
			_ = a.Logout(ctx)
		}
	}()

	printlnFn("credvault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "guest"
}

// callCtx bounds a single server call.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
