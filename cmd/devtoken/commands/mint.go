package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amastore/admin/internal/auth"
)

func mintCmd(manager func() (*auth.JWTManager, error)) *cobra.Command {
	var (
		email   string
		subject string
		cookie  string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Print a signed session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manager()
			if err != nil {
				return err
			}
			token, err := m.Generate(email, subject)
			if err != nil {
				return err
			}
			if cookie != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", cookie, token)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email claim (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject claim")
	cmd.Flags().StringVar(&cookie, "cookie", "", "print as name=value for a Cookie header")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
