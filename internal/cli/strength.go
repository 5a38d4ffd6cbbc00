package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrNoPassword = errors.New("no password given on the command line or stdin")

func newStrengthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength [PASSWORD]",
		Short: "Estimate the strength of a password",
		Long: "Estimate the strength of a password. When PASSWORD is omitted the first line\n" +
			"of standard input is used, which keeps it out of shell history.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runStrength(args)
		},
	}

	cmd.Flags().StringSlice("user-input", nil, "words to penalise, such as a username or email")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	addClassFlags(cmd)

	return cmd
}

func (app *App) runStrength(args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		sc := bufio.NewScanner(app.In)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return ErrNoPassword
		}
		password = sc.Text()
	}

	req := model.StrengthRequest{
		Password:   password,
		UserInputs: app.v.GetStringSlice("user-input"),
	}
	req.Uppercase, req.Lowercase, req.Numbers, req.Symbols = app.classFlags()

	resp, err := app.Service.Evaluate(req)
	if err != nil {
		return err
	}

	if app.v.GetBool("json") {
		return json.NewEncoder(app.Out).Encode(resp)
	}
	fmt.Fprintf(app.Out, "%s (score %d/4, %.1f bits)\n", resp.Strength.Label, resp.Strength.Score, resp.EntropyBits)
	return nil
}
