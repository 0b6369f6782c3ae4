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
	"gitlab.com/HydrusAPI/HydrusAPI/lib"
)

var (
	tagHashes  []string
	tagService string
	tagAction  int
)

// cleanTagsCmd represents the clean-tags command
var cleanTagsCmd = &cobra.Command{
	Use:   "clean-tags [tags...]",
	Short: "Show how the service would normalise the given tags",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		tags, err := cli.CleanTags(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		for _, tag := range tags {
			fmt.Println(tag)
		}
	},
}

// tagServicesCmd represents the tag-services command
var tagServicesCmd = &cobra.Command{
	Use:   "tag-services",
	Short: "List the service's tag services",
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		services, err := cli.GetTagServices()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Local tags:")
		for _, name := range services.LocalTags {
			fmt.Println("-", name)
		}
		fmt.Println("Tag repositories:")
		for _, name := range services.TagRepositories {
			fmt.Println("-", name)
		}
	},
}

// addTagsCmd represents the add-tags command
var addTagsCmd = &cobra.Command{
	Use:   "add-tags [tags...]",
	Short: "Apply a tag action to files",
	Long: `Apply tags to the files given by hash within one tag service.
The action defaults to add (0); see the tag action values of the
client API documentation for the full set.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(tagHashes) == 0 {
			fmt.Println("at least one --hash is required")
			os.Exit(1)
		}
		action, err := lib.TagActionFromInt(tagAction)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		err = cli.AddTags(tagHashes, nil, map[string]map[lib.TagAction][]string{
			tagService: {action: args},
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Applied", action, "of", len(args), "tags on", len(tagHashes), "files.")
	},
}

func init() {
	rootCmd.AddCommand(cleanTagsCmd)
	rootCmd.AddCommand(tagServicesCmd)
	rootCmd.AddCommand(addTagsCmd)

	addTagsCmd.Flags().StringSliceVar(&tagHashes, "hash", nil, "SHA256 hex digests of the target files")
	addTagsCmd.Flags().StringVar(&tagService, "service", "my tags", "tag service name")
	addTagsCmd.Flags().IntVar(&tagAction, "action", 0, "tag action value")
}
