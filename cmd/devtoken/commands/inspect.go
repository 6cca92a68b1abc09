package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amastore/admin/internal/auth"
)

func inspectCmd(manager func() (*auth.JWTManager, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <token>",
		Short: "Validate a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manager()
			if err != nil {
				return err
			}
			claims, err := m.Validate(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "email:   %s\n", claims.Email)
			fmt.Fprintf(out, "subject: %s\n", claims.Subject)
			if claims.ExpiresAt != nil {
				fmt.Fprintf(out, "expires: %s\n", claims.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z"))
			}
			return nil
		},
	}
}
