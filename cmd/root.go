package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	profilesCmd "github.com/virtualgrid/league-results-go/pkg/cmd/profiles"
	resultsCmd "github.com/virtualgrid/league-results-go/pkg/cmd/results"
	serverCmd "github.com/virtualgrid/league-results-go/pkg/cmd/server"
	standingsCmd "github.com/virtualgrid/league-results-go/pkg/cmd/standings"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/version"
)

const envPrefix = "LRS"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "lrs",
	Short:   "Computes league standings and race results from sim exports",
	Long:    ``,
	Version: version.FullVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.lrs.yml)")

	rootCmd.PersistentFlags().StringVar(&config.Catalog, "catalog",
		"data/catalog.json",
		"Path to the catalog file listing the event results")
	rootCmd.PersistentFlags().StringVar(&config.Roster, "roster",
		"",
		"Path to the roster file (driver name to team mapping)")
	rootCmd.PersistentFlags().StringVar(&config.PointsScheme, "points",
		"25,18,15,12,10,8,6,4,2,1",
		"Points per finish position, winner first")
	rootCmd.PersistentFlags().BoolVar(&config.PointsForDNF, "points-for-dnf",
		true,
		"Non-finishers still earn position based points")
	rootCmd.PersistentFlags().IntVar(&config.MaxLoads, "max-loads",
		8,
		"Max number of concurrently loaded result files")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format",
		"text",
		"controls the log output format (text, json)")

	// add commands here
	rootCmd.AddCommand(standingsCmd.NewStandingsCmd())
	rootCmd.AddCommand(resultsCmd.NewResultsCmd())
	rootCmd.AddCommand(profilesCmd.NewProfilesCmd())
	rootCmd.AddCommand(serverCmd.NewServerCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".lrs" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lrs")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to LRS_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
