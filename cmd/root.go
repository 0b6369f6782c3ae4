// Copyright © 2026 HydrusAPI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/HydrusAPI/HydrusAPI/lib"
)

var (
	version   bool
	cfgFile   string
	apiURL    string
	accessKey string
	debug     bool
)

// rootCmd represents the base command when called without any subcommands.
// The bare surface stays compatible with the original caller contract:
// a positional "api_ver" prints the service's reported API version, any
// other unrecognized argument prints "no", and both exit 0.
var rootCmd = &cobra.Command{
	Use:   lib.DistributionName,
	Short: "Client for the hydrus client API",
	Long: `HydrusAPI is a binding for the hydrus client API.
It imports files, manages tags and URL associations, searches
the client's files and fetches file and thumbnail content over
the documented HTTP endpoints.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if version {
			fmt.Fprintln(cmd.OutOrStdout(), lib.DistributionName+" (hydrus client API binding)")
			fmt.Fprintln(cmd.OutOrStdout(), "Compatible API version:", lib.ClientAPIVersion)
			return
		}
		if len(args) == 0 {
			cmd.Help()
			return
		}
		if args[0] == "api_ver" {
			cli, err := newClient()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				os.Exit(1)
			}
			reported, err := cli.APIVersion()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reported)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), "no")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolVarP(&version, "version", "v", false, "the version of "+lib.DistributionName)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file(json)")
	rootCmd.PersistentFlags().StringVarP(&apiURL, "url", "u", lib.DefaultAPIURL, "the hydrus client api url")
	rootCmd.PersistentFlags().StringVarP(&accessKey, "key", "k", "", "the access key for the client api")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug logging")
}

// newClient builds the library client from flags and config.
func newClient() (*lib.Client, error) {
	return lib.NewClient(accessKey, apiURL)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(lib.DefaultConfigPath)
		viper.SetConfigName(lib.DefaultConfigFilename)
		if _, err := os.Stat(path.Join(lib.DefaultConfigPath, lib.DefaultConfigFilename+".json")); os.IsNotExist(err) {
			if err := os.MkdirAll(lib.DefaultConfigPath, 0755); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			cf, err := os.Create(path.Join(lib.DefaultConfigPath, lib.DefaultConfigFilename+".json"))
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if _, err = cf.Write(initConfigJSON()); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			cf.Close()
		}
	}

	viper.SetConfigType("json")
	viper.SetEnvPrefix("hydrus")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// Flags win over config; config fills in what the caller left at the
	// defaults.
	if !rootCmd.PersistentFlags().Changed("url") {
		if url := viper.GetString("url"); url != "" {
			apiURL = url
		}
	}
	if !rootCmd.PersistentFlags().Changed("key") {
		if key := viper.GetString("access_key"); key != "" {
			accessKey = key
		}
	}
}

// initLogger config logger
func initLogger() {
	lib.Logger = logrus.New()
	lib.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})
	os.MkdirAll(lib.DefaultLogPath, 0755)
	logFile, err := os.OpenFile(path.Join(lib.DefaultLogPath, lib.DistributionName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		lib.Logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}
	if debug {
		lib.Logger.SetLevel(logrus.DebugLevel)
	} else {
		lib.Logger.SetLevel(logrus.WarnLevel)
	}
}

// init config in JSON format
func initConfigJSON() []byte {
	cfg := make(map[string]interface{})
	cfg["url"] = lib.DefaultAPIURL
	cfg["access_key"] = ""
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		panic(err)
	}
	return data
}
