// Package cli implements the pwgen command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultpass/passgen-go/internal/service"
)

const envPrefix = "PWGEN"

// App holds the dependencies shared by all commands.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Copy writes text to the system clipboard.
	Copy    func(text string) error
	Service *service.GeneratorService

	v       *viper.Viper
	cfgFile string
}

// NewApp returns an App wired to the process's stdio and clipboard.
func NewApp() *App {
	return &App{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Copy:    clipboard.WriteAll,
		Service: service.NewGeneratorService(nil),
	}
}

// NewRootCmd builds the pwgen command tree.
func NewRootCmd(app *App) *cobra.Command {
	app.v = viper.New()
	app.v.SetEnvPrefix(envPrefix)
	app.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	app.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "pwgen",
		Short:         "Generate random passwords and estimate their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			if app.cfgFile == "" {
				return nil
			}
			app.v.SetConfigFile(app.cfgFile)
			if err := app.v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config %s: %w", app.cfgFile, err)
			}
			slog.Debug("loaded config", "file", app.v.ConfigFileUsed())
			return nil
		},
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "YAML config file providing flag defaults")

	root.AddCommand(newGenerateCmd(app), newStrengthCmd(app), newTokenCmd(app))
	return root
}

// Execute runs pwgen with os.Args and returns the process exit code.
func Execute() int {
	app := NewApp()
	if err := NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(app.Err, "error:", err)
		return 1
	}
	return 0
}

// addClassFlags registers the character class toggles shared by generate and strength.
func addClassFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("upper", true, "include uppercase letters (ABC)")
	cmd.Flags().Bool("lower", true, "include lowercase letters (abc)")
	cmd.Flags().Bool("numbers", true, "include digits (123)")
	cmd.Flags().Bool("symbols", false, "include symbols (# $ &)")
}

func (app *App) classFlags() (upper, lower, numbers, symbols *bool) {
	get := func(key string) *bool {
		b := app.v.GetBool(key)
		return &b
	}
	return get("upper"), get("lower"), get("numbers"), get("symbols")
}
