// Command degrees finds the fewest movies linking two people in a
// film-credits dataset, either locally or through a degrees server.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/degrees/internal/config"
	"github.com/persistorai/degrees/internal/models"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	flagURL         string
	flagSource      string
	flagData        string
	flagSQLite      string
	flagDatabaseURL string
	flagFmt         string
	flagLogLevel    string
	flagMaxDepth    int
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("degrees version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("degrees version %s", config.Version)
}

type configFile struct {
	configProfile `yaml:",inline"`
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL         string `yaml:"url"`
	Source      string `yaml:"source"`
	Data        string `yaml:"data"`
	SQLite      string `yaml:"sqlite"`
	DatabaseURL string `yaml:"database_url"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "degrees",
		Short:   "Degrees of separation between actors, via the movies they starred in",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			resolveConfig(cmd.Flags().Changed)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flagURL, "url", "", "degrees server URL; empty searches locally (env: DEGREES_URL)")
	pf.StringVar(&flagSource, "source", config.SourceCSV, "local dataset source: csv|sqlite|postgres (env: DEGREES_SOURCE)")
	pf.StringVar(&flagData, "data", config.DefaultDataDir, "CSV dataset directory (env: DEGREES_DATA)")
	pf.StringVar(&flagSQLite, "sqlite", "", "SQLite dataset file (env: DEGREES_SQLITE)")
	pf.StringVar(&flagDatabaseURL, "database-url", "", "Postgres dataset URL (env: DEGREES_DATABASE_URL)")
	pf.StringVar(&flagFmt, "format", "text", "Output format: text|json")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level for local dataset loading")
	pf.IntVar(&flagMaxDepth, "max-depth", 0, "Give up beyond this many degrees (0 = unlimited)")

	root.AddCommand(newPathCmd())
	root.AddCommand(newPeopleCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			fmt.Fprintln(os.Stderr, "Person not found.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// resolveConfig fills every flag the user did not set, from the environment
// first and then from ~/.degrees/config.yaml.
func resolveConfig(changed func(flag string) bool) {
	file := loadConfigFile()

	settings := []struct {
		flag   string
		target *string
		env    string
		file   string
	}{
		{"url", &flagURL, "DEGREES_URL", file.URL},
		{"source", &flagSource, "DEGREES_SOURCE", file.Source},
		{"data", &flagData, "DEGREES_DATA", file.Data},
		{"sqlite", &flagSQLite, "DEGREES_SQLITE", file.SQLite},
		{"database-url", &flagDatabaseURL, "DEGREES_DATABASE_URL", file.DatabaseURL},
	}

	for _, s := range settings {
		if changed(s.flag) {
			continue
		}
		if v := os.Getenv(s.env); v != "" {
			*s.target = v
			continue
		}
		if s.file != "" {
			*s.target = s.file
		}
	}
}

// loadConfigFile returns the active profile merged over the flat settings.
// A missing or unreadable file yields an empty profile.
func loadConfigFile() configProfile {
	home, err := os.UserHomeDir()
	if err != nil {
		return configProfile{}
	}

	data, err := os.ReadFile(filepath.Join(home, ".degrees", "config.yaml"))
	if err != nil {
		return configProfile{}
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return configProfile{}
	}

	resolved := cfg.configProfile

	name := cfg.ActiveProfile
	if name == "" {
		name = "default"
	}

	if p, ok := cfg.Profiles[name]; ok {
		for _, f := range []struct{ dst *string; src string }{
			{&resolved.URL, p.URL},
			{&resolved.Source, p.Source},
			{&resolved.Data, p.Data},
			{&resolved.SQLite, p.SQLite},
			{&resolved.DatabaseURL, p.DatabaseURL},
		} {
			if f.src != "" {
				*f.dst = f.src
			}
		}
	}

	return resolved
}
