// Package commands implements the devtoken command tree.
package commands

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amastore/admin/internal/auth"
)

var errNoSecret = errors.New("a signing secret is required (--secret or JWT_SECRET)")

// NewRootCmd builds the command tree. Tests call it directly to avoid shared
// flag state.
func NewRootCmd() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)

	root := &cobra.Command{
		Use:          "devtoken",
		Short:        "Mint and inspect dashboard session tokens",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "HS256 signing secret (default $JWT_SECRET)")
	root.PersistentFlags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	manager := func() (*auth.JWTManager, error) {
		if secret == "" {
			return nil, errNoSecret
		}
		return auth.NewJWTManager(secret, ttl), nil
	}

	root.AddCommand(mintCmd(manager), inspectCmd(manager))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
