// Package cli provides the command-line interface for pigment.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pigment/internal/version"
)

var (
	// Config file override (--config).
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pigment",
		Short: "Extract the dominant colours from an image",
		Long: `Pigment extracts a small set of perceptually distinct colours from an
image - the palette a person would call "the dominant colours".

Pixels are sampled, uniform backgrounds are suppressed, and the remaining
colours are clustered in CIE Lab space so the output reflects perceived
colour difference rather than raw RGB distance. Every emitted colour is an
exact pixel value from the image, never an average.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/pigment/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
}

// initConfig reads the optional config file and environment variables.
// A missing config file is not an error; flags always win over config.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pigment"))
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("pigment")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger the way the verbosity flags request it.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "pigment",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
