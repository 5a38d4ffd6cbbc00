package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
)

const maxCount = 100

var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", maxCount)

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGenerate()
		},
	}

	cmd.Flags().IntP("length", "l", 16, "password length (4-64, or 0 for empty)")
	cmd.Flags().IntP("count", "n", 1, "number of passwords to generate")
	cmd.Flags().Bool("copy", false, "copy the last password to the clipboard")
	cmd.Flags().Bool("json", false, "print results as JSON lines")
	cmd.Flags().BoolP("quiet", "q", false, "print only the passwords")
	addClassFlags(cmd)

	return cmd
}

func (app *App) runGenerate() error {
	count := app.v.GetInt("count")
	if count < 1 || count > maxCount {
		return ErrInvalidCount
	}

	length := app.v.GetInt("length")
	req := model.GenerateRequest{Length: &length}
	req.Uppercase, req.Lowercase, req.Numbers, req.Symbols = app.classFlags()

	enc := json.NewEncoder(app.Out)
	var last string
	for range count {
		resp, err := app.Service.Generate(req)
		if err != nil {
			return err
		}
		last = resp.Password

		switch {
		case app.v.GetBool("json"):
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		case app.v.GetBool("quiet"):
			fmt.Fprintln(app.Out, resp.Password)
		default:
			fmt.Fprintf(app.Out, "%s  %s (%.1f bits)\n", resp.Password, resp.Strength.Label, resp.EntropyBits)
		}
	}

	if app.v.GetBool("copy") {
		app.copyToClipboard(last)
	}
	return nil
}

// copyToClipboard never fails the command: the password has already been
// printed, so a missing clipboard only earns a warning.
func (app *App) copyToClipboard(text string) {
	if app.Copy == nil {
		app.Copy = func(string) error { return errors.New("no clipboard available") }
	}
	if err := app.Copy(text); err != nil {
		fmt.Fprintf(app.Err, "warning: could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(app.Err, "Copied")
}
