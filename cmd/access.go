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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/HydrusAPI/HydrusAPI/lib"
)

var permissionNames = map[string]lib.Permission{
	"import-urls":  lib.PermissionImportURLs,
	"import-files": lib.PermissionImportFiles,
	"add-tags":     lib.PermissionAddTags,
	"search-files": lib.PermissionSearchFiles,
}

func parsePermissions(input string) ([]lib.Permission, error) {
	var permissions []lib.Permission
	for _, field := range strings.Split(input, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		permission, ok := permissionNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown permission: %v", name)
		}
		permissions = append(permissions, permission)
	}
	if len(permissions) == 0 {
		return nil, errors.New("at least one permission is required")
	}
	return permissions, nil
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Request a new access key from the service",
	Long: `Request a new access key scoped to a set of basic permissions.
The "add from api request" dialog under services->review services
has to be open on the service side, otherwise the request is refused.`,
	Run: func(cmd *cobra.Command, args []string) {
		namePrompt := &promptui.Prompt{
			Label:     "Access name ",
			Templates: commandTemplates,
			Default:   lib.DistributionName,
		}
		name, err := namePrompt.Run()
		if err != nil {
			fmt.Println(err)
			return
		}
		permissionsPrompt := &promptui.Prompt{
			Label:     "Permissions (comma separated: import-urls,import-files,add-tags,search-files) ",
			Templates: commandTemplates,
			Default:   "import-urls,import-files,add-tags,search-files",
			Validate: func(s string) error {
				_, err := parsePermissions(s)
				return err
			},
		}
		input, err := permissionsPrompt.Run()
		if err != nil {
			fmt.Println(err)
			return
		}
		permissions, err := parsePermissions(input)
		if err != nil {
			fmt.Println(err)
			return
		}
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		key, err := cli.RequestNewPermissions(name, permissions)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Access key:", key)
		savePrompt := &promptui.Prompt{
			Label:     "Save access key to config? [Y/n]",
			Templates: commandTemplates,
			Default:   "y",
		}
		result, err := savePrompt.Run()
		if err != nil {
			fmt.Println(err)
			return
		}
		switch result {
		case "y", "Y":
			viper.Set("access_key", key)
			if err := viper.WriteConfig(); err != nil {
				fmt.Println(err)
			}
		}
	},
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the configured access key and list its permissions",
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		info, err := cli.VerifyAccessKey()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(info.HumanDescription)
		for _, permission := range info.BasicPermissions {
			fmt.Println("-", permission)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
}
