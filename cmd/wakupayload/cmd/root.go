package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// runID is a random identifier generated once per invocation. None of
	// the CLI's output or stderr lines include it.
	runID = uuid.New().String()
)

var rootCmd = &cobra.Command{
	Use:   "wakupayload",
	Short: "Encode and decode Waku v1 message payloads",
	Long: `wakupayload is a demonstration and operations CLI around the
go-waku-payload codec library. It is not part of the codec's tested
contract: it exists so the library has an operable entry point, the way
a command-line tool typically accompanies a signing/crypto library.

Configuration is read, in order of precedence, from command-line flags,
then WAKUPAYLOAD_* environment variables, then an optional --config YAML
file.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.wakupayload.yaml)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".wakupayload")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("WAKUPAYLOAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "wakupayload: using config file", viper.ConfigFileUsed())
	}
}
