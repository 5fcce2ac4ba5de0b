package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/goblin-prune/internal/config"
	"github.com/Johannes-Berggren/goblin-prune/internal/git"
	"github.com/Johannes-Berggren/goblin-prune/internal/logging"
	"github.com/Johannes-Berggren/goblin-prune/internal/models"
	"github.com/Johannes-Berggren/goblin-prune/internal/prune"
	"github.com/Johannes-Berggren/goblin-prune/internal/ui"
)

var errNotTerminal = errors.New("interactive mode needs a terminal on stdin and stdout")

type options struct {
	configPath string
	remote     string
	filter     string
	keepSuffix string
	backend    string
	dir        string
}

// NewRootCommand builds the goblin-prune command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "goblin-prune",
		Short: "Interactively delete remote branches",
		Long: `goblin-prune lists the branches of a git remote that match a naming filter,
lets you pick some with the keyboard and deletes them on the remote after an
explicit confirmation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: ~/.goblin-prune/config.yaml)")
	flags.StringVar(&opts.remote, "remote", "", "Remote to prune (overrides config)")
	flags.StringVar(&opts.filter, "filter", "", "Only show refs containing this substring (overrides config)")
	flags.StringVar(&opts.keepSuffix, "keep-suffix", "", "Branches ending with this suffix cannot be selected (overrides config)")
	flags.StringVar(&opts.backend, "backend", "", "Remote access backend: exec or gogit (overrides config)")
	flags.StringVar(&opts.dir, "dir", "", "Repository directory (default: current directory)")

	root.AddCommand(
		newListCommand(opts),
		newInitCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.ConfigPath()
}

// loadConfig reads the config file and applies flags that were set
// explicitly, so an empty --filter or --keep-suffix is honoured.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.path())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("remote") {
		cfg.Remote = o.remote
	}
	if flags.Changed("filter") {
		cfg.Filter = o.filter
	}
	if flags.Changed("keep-suffix") {
		cfg.KeepSuffix = o.keepSuffix
	}
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o *options) newRemote(cfg *config.Config) (git.Remote, error) {
	return git.NewRemote(cfg.Backend, o.dir, cfg.Remote, cfg.GitBinary)
}

// loadBranches lists the remote and builds the candidate list.
func loadBranches(ctx context.Context, remote git.Remote, cfg *config.Config, log *logging.Logger) (*models.BranchList, error) {
	raw, err := remote.ListReferences(ctx)
	if err != nil {
		log.Error("list references: %v", err)
		return nil, err
	}

	list := models.BuildBranchList(raw, cfg.Filter, cfg.KeepSuffix)
	if list.Empty() {
		log.Warn("no references on %s match %q", cfg.Remote, cfg.Filter)
	} else {
		log.Info("loaded %d candidate branches from %s", list.Len(), cfg.Remote)
	}
	return list, nil
}

func isTerminal() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

func runSession(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	log := logging.NewLogger(cfg.LogFile)
	defer log.Close()

	remote, err := opts.newRemote(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	list, err := loadBranches(ctx, remote, cfg, log)
	if err != nil {
		return err
	}

	keys := ui.DefaultKeyMap().WithOverrides(cfg.Keys)
	p := tea.NewProgram(ui.NewModel(list, keys, log), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		log.Error("TUI fatal: %v", err)
		return fmt.Errorf("run session: %w", err)
	}

	// The terminal is restored by the time Run returns.
	m, ok := final.(ui.Model)
	if !ok || m.Mode() != ui.ModeCommitting {
		log.Info("session ended without deleting")
		return nil
	}

	return commit(ctx, remote, m.Staged(), log, cmd)
}

// commit deletes the staged branches. Individual failures are printed but do
// not change the exit status.
func commit(ctx context.Context, remote git.Remote, names []string, log *logging.Logger, cmd *cobra.Command) error {
	log.Info("deleting %d branches", len(names))
	d := prune.NewDeleter(remote, log, cmd.OutOrStdout())
	summary := d.Run(ctx, names)
	d.Report(summary)
	return nil
}
