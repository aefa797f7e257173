package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/devlog/internal/db"
	"github.com/balkashynov/devlog/internal/output"
	"github.com/balkashynov/devlog/internal/report"
	"github.com/balkashynov/devlog/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Package-level shared dependencies, wired up by withStore
var (
	ui      = output.New()
	store   *db.Store
	manager *session.Manager
	reports *report.Builder
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "Track your coding sessions and productivity",
	Long: `devlog is a personal time tracker for the terminal.
Start named work sessions tagged with labels, stop them with notes,
then list, search and report on where your time went.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "devlog"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DEVLOG")
	viper.AutomaticEnv()

	viper.SetDefault("list.limit", 20)

	// A missing config file just means defaults
	_ = viper.ReadInConfig()
}

// initStore opens the database and builds the service layer on top of it
func initStore() error {
	path := viper.GetString("database.path")

	var err error
	if path == "" {
		store, err = db.OpenDefault()
	} else {
		store, err = db.Open(path)
	}
	if err != nil {
		return err
	}

	manager = session.NewManager(store)
	reports = report.NewBuilder(store)
	return nil
}

// withStore wraps a command function to open the database first and close
// it when the command finishes
func withStore(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := initStore(); err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}
		defer store.Close()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/devlog/config.yaml)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}
