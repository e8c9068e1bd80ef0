// Package cli wires the syswiz commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/command"
	"github.com/aam-007/syswiz/internal/config"
	"github.com/aam-007/syswiz/internal/history"
	"github.com/aam-007/syswiz/internal/logging"
	"github.com/aam-007/syswiz/internal/runner"
	"github.com/aam-007/syswiz/internal/system"
	"github.com/aam-007/syswiz/internal/tui"
	"github.com/aam-007/syswiz/internal/tui/icons"
	"github.com/aam-007/syswiz/internal/tui/theme"
)

// Version is set by the build via -ldflags.
var Version = "dev"

var (
	flagConfig   string
	flagOutput   string
	flagLogLevel string
	flagTheme    string
	flagDNFPath  string
)

var rootCmd = &cobra.Command{
	Use:   "syswiz",
	Short: "Guided wizard for Fedora package management",
	Long: `syswiz is an interactive wizard over dnf.

Every operation shows the exact command it is about to run and asks
for confirmation before anything executes. Riskier operations are
marked and default to cancel. Nothing is ever passed through a shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.syswiz/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "table", "output format for non-interactive commands (table|json)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme (dark|light)")
	rootCmd.PersistentFlags().StringVar(&flagDNFPath, "dnf-path", "", "override the dnf executable")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// loadConfig applies the flag overrides on top of file and environment
// configuration.
func loadConfig() (config.Config, error) {
	overrides := map[string]any{}
	if flagLogLevel != "" {
		overrides["general.log_level"] = flagLogLevel
	}
	if flagTheme != "" {
		overrides["ui.theme"] = flagTheme
	}
	if flagDNFPath != "" {
		overrides["general.dnf_path"] = flagDNFPath
	}
	return config.Load(config.LoadOptions{
		ConfigPath:    flagConfig,
		FlagOverrides: overrides,
	})
}

// dnfOverride tokenizes the configured dnf front-end, e.g. "dnf5
// --color=never". Nil means the catalog's "dnf" template token stands.
func dnfOverride(cfg config.Config) ([]string, error) {
	if cfg.General.DNFPath == "" {
		return nil, nil
	}
	argv, err := command.ParseArgv(cfg.General.DNFPath)
	if err != nil {
		return nil, fmt.Errorf("invalid dnf_path %q: %w", cfg.General.DNFPath, err)
	}
	return argv, nil
}

func runWizard(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("syswiz is interactive and needs a terminal; see 'syswiz actions' for scripted use")
	}

	logger, err := logging.NewSessionLogger(cfg.General.LogLevel)
	if err != nil {
		return err
	}

	theme.Set(theme.ByName(cfg.UI.Theme))
	icons.SetNerdFonts(cfg.UI.NerdIcons)

	dnfArgv, err := dnfOverride(cfg)
	if err != nil {
		return err
	}
	dnfBinary := ""
	if len(dnfArgv) > 0 {
		dnfBinary = dnfArgv[0]
	}

	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	info, err := system.Probe(probeCtx, dnfBinary)
	if err != nil {
		return err
	}

	// Cache credentials once, up front, so no confirmation later stalls
	// on a password prompt.
	if !info.Root {
		if err := system.EnsurePrivileges(ctx); err != nil {
			return err
		}
	}

	resolve := command.ResolveOptions{AsRoot: info.Root, DNF: dnfArgv}

	cats := catalog.Catalog(catalog.Options{
		ReleaseVer: system.ReleaseVer(info.OSVersion),
	})

	// The journal is best effort. A broken database never blocks the
	// wizard itself.
	var journal tui.Recorder
	if cfg.History.Enabled {
		j, jerr := openJournal(cfg)
		if jerr != nil {
			logger.Warn("history journal unavailable", "err", jerr)
		} else {
			defer j.Close()
			if _, perr := j.Prune(cfg.History.RetentionDays); perr != nil {
				logger.Warn("history prune failed", "err", perr)
			}
			journal = j
		}
	}

	return tui.Run(tui.Options{
		Catalog:  cats,
		Info:     info,
		Resolve:  resolve,
		Executor: runner.New(),
		Journal:  journal,
		Logger:   logger,
		Version:  Version,
	})
}

func openJournal(cfg config.Config) (*history.Journal, error) {
	path := cfg.History.DatabasePath
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return history.Open(path)
}
