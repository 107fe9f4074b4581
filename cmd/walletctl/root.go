package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastprodman/cashinreward/pkg/apiclient"
)

const defaultServer = "http://localhost:8080"

type cli struct {
	server    string
	tokenFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "walletctl",
		Short:         "Cash IN Reward wallet client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("WALLETCTL_SERVER")
	if server == "" {
		server = defaultServer
	}

	root.PersistentFlags().StringVar(&c.server, "server", server, "API base URL")
	root.PersistentFlags().StringVar(&c.tokenFile, "token-file", defaultTokenFile(), "where the session token is kept")

	root.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.balanceCmd(),
		c.historyCmd(),
		c.depositCmd(),
		c.withdrawCmd(),
		c.lifafaCmd(),
		c.tasksCmd(),
		c.payoutsCmd(),
	)

	return root
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".walletctl-token"
	}

	return filepath.Join(home, ".walletctl-token")
}

// client returns an API client carrying the saved token, if any.
func (c *cli) client() (*apiclient.Client, error) {
	raw, err := os.ReadFile(c.tokenFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read token: %w", err)
	}

	return apiclient.New(c.server, apiclient.WithToken(strings.TrimSpace(string(raw)))), nil
}

func (c *cli) saveToken(token string) error {
	err := os.WriteFile(c.tokenFile, []byte(token+"\n"), 0o600)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

func (c *cli) dropToken() error {
	err := os.Remove(c.tokenFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}

	return nil
}

// explain turns an expired session into a hint.
func explain(err error) error {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return fmt.Errorf("%w (run `walletctl login`)", err)
	}

	return err
}
