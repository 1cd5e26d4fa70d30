package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"guestgate/cmd/guestgate/ui"
	"guestgate/internal/catalog"
	"guestgate/internal/config"
	"guestgate/internal/haptics"
	"guestgate/internal/i18n"
	"guestgate/internal/logging"
	"guestgate/internal/session"
	"guestgate/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	localeFlag string
	workspace  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "guestgate",
	Short: "guestgate - guest mode session state for the marketplace client",
	Long: `guestgate holds the client's guest-mode session state: a persisted
unauthenticated-browsing flag, the sign-up prompt raised when a restricted
feature is touched, and the catalog of restricted features.

Run without arguments to open the interactive session view.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI).
		// The root command is the only one without a parent.
		if cmd.Parent() == nil {
			return nil
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// app bundles the wired collaborators behind one Close.
type app struct {
	cfg        *config.Config
	settings   *store.LocalStore
	translator *i18n.Translator
	session    *session.Store
}

func (a *app) Close() {
	if a.settings != nil {
		a.settings.Close()
	}
}

// openApp loads config, brings up logging, opens the settings store, and
// builds the guest session.
func openApp() (*app, error) {
	root := workspace
	if root == "" {
		var err error
		root, err = config.FindWorkspaceRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve workspace: %w", err)
		}
	}

	if err := logging.Initialize(root); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	cfg, err := config.Load(filepath.Join(root, ".guestgate", "config.json"))
	if err != nil {
		return nil, err
	}

	locale := cfg.GetLocale()
	if localeFlag != "" {
		locale = localeFlag
	}
	translator, err := i18n.NewTranslator(locale)
	if err != nil {
		return nil, err
	}

	settings, err := store.NewLocalStore(filepath.Join(cfg.GetDataDir(root), "settings.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	sess := session.NewStore(settings, haptics.New(cfg.GetHaptics()))

	return &app{
		cfg:        cfg,
		settings:   settings,
		translator: translator,
		session:    sess,
	}, nil
}

func runInteractive() error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	defer logging.CloseAll()

	// Hot-reload locale edits while the UI is up, if a locale dir is set.
	if a.cfg.LocaleDir != "" {
		watcher, err := i18n.NewLocaleWatcher(a.cfg.LocaleDir, a.translator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: locale watcher unavailable: %v\n", err)
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if err := watcher.Start(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: locale watcher failed to start: %v\n", err)
			} else {
				defer watcher.Stop()
			}
		}
	}

	return ui.Run(a.session, a.translator, a.cfg.GetTheme())
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current guest session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st := a.session.Snapshot()
		logger.Debug("Read session state",
			zap.Bool("guest_mode", st.GuestMode),
			zap.Bool("show_sign_up_prompt", st.ShowSignUpPrompt))

		fmt.Printf("guest mode:      %v\n", st.GuestMode)
		fmt.Printf("sign-up prompt:  %v\n", st.ShowSignUpPrompt)
		if st.RestrictedFeature != nil {
			fmt.Printf("touched feature: %s\n", *st.RestrictedFeature)
		}
		return nil
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enter guest mode (persisted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.EnableGuestMode()
		logger.Info("Guest mode enabled")
		fmt.Println(a.translator.Translate("guest.mode.enabled"))
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Leave guest mode (persisted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.DisableGuestMode()
		logger.Info("Guest mode disabled")
		fmt.Println(a.translator.Translate("guest.mode.disabled"))
		return nil
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the restricted feature catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		translate := a.translator.Translate
		for _, f := range catalog.All() {
			fmt.Printf("%-16s %-22s %s\n", f, catalog.LocalizedTitle(f, translate), catalog.LocalizedDescription(f, translate))
		}
		return nil
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <feature>",
	Short: "Simulate touching a feature; raises the sign-up prompt in guest mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := catalog.Parse(args[0])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.session.IsRestricted(f) {
			fmt.Printf("%s is available\n", catalog.LocalizedTitle(f, a.translator.Translate))
			return nil
		}

		a.session.PromptSignUp(f)
		logger.Info("Sign-up prompt raised", zap.String("feature", f.String()))
		fmt.Println(a.translator.Translate("guest.prompt.title"))
		fmt.Println(a.translator.Translate("guest.prompt.body"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "override the configured locale")
	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "workspace root (defaults to auto-detect)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(touchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
