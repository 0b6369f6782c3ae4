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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	urlPage      string
	urlHashes    []string
	urlsToAdd    []string
	urlsToDelete []string
)

// urlInfoCmd represents the url-info command
var urlInfoCmd = &cobra.Command{
	Use:   "url-info [url]",
	Short: "Ask the service to classify a URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		info, err := cli.GetURLInfo(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Type:", info.URLType)
		fmt.Println("Match:", info.MatchName)
		fmt.Println("Normalised:", info.NormalisedURL)
		fmt.Println("Parseable:", info.CanParse)
	},
}

// urlFilesCmd represents the url-files command
var urlFilesCmd = &cobra.Command{
	Use:   "url-files [url]",
	Short: "List the files the service already has for a URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		files, err := cli.GetURLFiles(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Normalised:", files.NormalisedURL)
		for _, fileStatus := range files.URLFileStatuses {
			fmt.Println(fileStatus.Status, fileStatus.Hash, fileStatus.Note)
		}
	},
}

// addURLCmd represents the add-url command
var addURLCmd = &cobra.Command{
	Use:   "add-url [url]",
	Short: "Tell the service to import a URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		result, err := cli.AddURL(args[0], urlPage, nil)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(result.HumanResultText)
	},
}

// associateURLCmd represents the associate-url command
var associateURLCmd = &cobra.Command{
	Use:   "associate-url",
	Short: "Add or remove URL associations on files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(urlHashes) == 0 {
			fmt.Println("at least one --hash is required")
			os.Exit(1)
		}
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := cli.AssociateURLs(urlHashes, urlsToAdd, urlsToDelete); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(urlInfoCmd)
	rootCmd.AddCommand(urlFilesCmd)
	rootCmd.AddCommand(addURLCmd)
	rootCmd.AddCommand(associateURLCmd)

	addURLCmd.Flags().StringVar(&urlPage, "page", "", "destination page name")
	associateURLCmd.Flags().StringSliceVar(&urlHashes, "hash", nil, "SHA256 hex digests of the target files")
	associateURLCmd.Flags().StringSliceVar(&urlsToAdd, "add", nil, "urls to associate")
	associateURLCmd.Flags().StringSliceVar(&urlsToDelete, "delete", nil, "urls to disassociate")
}
