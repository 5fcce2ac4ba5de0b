package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/goblin-prune/internal/config"
	"github.com/Johannes-Berggren/goblin-prune/internal/git"
)

func newInitCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}

			path := opts.path()
			cfg, err := config.LoadConfig(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if err := newInitForm(cfg).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			return saveInitConfig(cfg, path, cmd.OutOrStdout())
		},
	}
}

// saveInitConfig writes cfg and reports whether an existing file was
// replaced.
func saveInitConfig(cfg *config.Config, path string, w io.Writer) error {
	verb := "created"
	if config.ConfigFileExists(path) {
		verb = "updated"
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", verb, path)
	return nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func newInitForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Remote").
				Description("Remote whose branches are pruned").
				Value(&cfg.Remote).
				Validate(notBlank("remote")),
			huh.NewInput().
				Title("Filter").
				Description("Only refs containing this text are listed").
				Value(&cfg.Filter),
			huh.NewInput().
				Title("Keep suffix").
				Description("Branches ending with this can never be selected").
				Value(&cfg.KeepSuffix),
			huh.NewSelect[string]().
				Title("Backend").
				Options(
					huh.NewOption("git binary", git.BackendExec),
					huh.NewOption("go-git (no git install needed)", git.BackendGoGit),
				).
				Value(&cfg.Backend),
		),
	).WithTheme(huh.ThemeCharm())
}
