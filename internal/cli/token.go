package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrNoSecret = errors.New("a signing secret is required (--secret or PWGEN_SECRET)")

func newTokenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the passgen API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := app.v.GetString("secret")
			if secret == "" {
				return ErrNoSecret
			}
			token, err := crypto.GenerateToken(app.v.GetString("subject"), secret, app.v.GetDuration("ttl"))
			if err != nil {
				return fmt.Errorf("generating token: %w", err)
			}
			fmt.Fprintln(app.Out, token)
			return nil
		},
	}

	cmd.Flags().String("subject", "", "token subject, e.g. the calling service")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().String("secret", "", "HMAC secret shared with the API's JWT_SECRET")

	return cmd
}
