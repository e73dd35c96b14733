package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pagesmith/internal/app"
	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/cachemanager"
	"github.com/zjrosen/pagesmith/internal/config"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/mode"
	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/templates"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".pagesmith/config.yaml"
	debugLogPath    = "debug.log"
	debugEnv        = "PAGESMITH_DEBUG"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pagesmith",
	Short: "A terminal block-based website builder",
	Long: `Build a website from blocks in the terminal.

Start from a built-in template or a YAML template file, arrange and edit
blocks on the canvas, and export the site as JSON.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/pagesmith/config.yaml)")
	rootCmd.Flags().StringP("template", "t", "",
		"built-in template to start from (see 'pagesmith templates')")
	rootCmd.Flags().StringP("file", "f", "",
		"YAML template file to edit; reloaded when it changes on disk")
	rootCmd.Flags().BoolP("debug", "d", false,
		"write debug.log and enable the log overlay (ctrl+l)")

	// Bind flags to viper
	_ = viper.BindPFlag("template", rootCmd.Flags().Lookup("template"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .pagesmith/config.yaml (current directory)
		// 2. ~/.config/pagesmith/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "pagesmith"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .pagesmith/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configPath returns the config file in use, falling back to the local one.
func configPath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return localConfigPath
}

func debugEnabled(cmd *cobra.Command) bool {
	if os.Getenv(debugEnv) != "" {
		return true
	}
	debug, _ := cmd.Flags().GetBool("debug")
	return debug
}

func runApp(cmd *cobra.Command, _ []string) error {
	debug := debugEnabled(cmd)
	if debug {
		cleanup, err := log.InitWithTeaLog(debugLogPath, "pagesmith")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	km, err := keys.DefaultKeyMap().WithOverrides(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key overrides: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatConfig, "tracing shutdown failed", err)
		}
	}()

	filePath, _ := cmd.Flags().GetString("file")
	if filePath != "" {
		if filePath, err = filepath.Abs(filePath); err != nil {
			return fmt.Errorf("resolving template file: %w", err)
		}
	}

	reg := blocks.NewRegistry()
	ids := shared.UUIDGenerator{}
	doc, err := openDocument(reg, ids, filePath, cfg.Template)
	if err != nil {
		return err
	}

	sess, err := newSession(doc, reg, ids, cfg.Editor, provider)
	if err != nil {
		return err
	}
	defer sess.Close()

	previews := cachemanager.NewInMemoryCacheManager[string, string](
		"previews", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	zone.NewGlobal()

	model := app.New(mode.Services{
		Session:      sess,
		Config:       &cfg,
		ConfigPath:   configPath(),
		Keys:         km,
		Clipboard:    shared.SystemClipboard{},
		Clock:        shared.RealClock{},
		IDs:          ids,
		Previews:     previews,
		TemplatePath: filePath,
	}, debug)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// openDocument builds the starting website from a template file, or from
// the named built-in template when filePath is empty.
func openDocument(reg *blocks.Registry, ids shared.IDGenerator, filePath, name string) (document.Website, error) {
	var (
		tpl templates.Template
		err error
	)
	if filePath != "" {
		tpl, err = templates.LoadFile(filePath)
	} else {
		tpl, err = templates.Load(name)
	}
	if err != nil {
		return document.Website{}, fmt.Errorf("loading template: %w", err)
	}

	doc, err := templates.Build(tpl, reg, ids)
	if err != nil {
		return document.Website{}, fmt.Errorf("building site: %w", err)
	}
	log.Info(log.CatTemplate, "opened template", "id", tpl.ID, "source", string(tpl.Source), "blocks", doc.Len())
	return doc, nil
}

func newSession(doc document.Website, reg *blocks.Registry, ids shared.IDGenerator, ed config.EditorConfig, provider *tracing.Provider) (*session.Session, error) {
	paste, err := session.ParsePastePosition(ed.PastePosition)
	if err != nil {
		return nil, fmt.Errorf("invalid paste position: %w", err)
	}
	return session.New(doc,
		session.WithRegistry(reg),
		session.WithIDGenerator(ids),
		session.WithHistoryLimit(ed.HistoryLimit),
		session.WithPastePosition(paste),
		session.WithTracer(provider.Tracer()),
	), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
