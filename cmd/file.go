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
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/HydrusAPI/HydrusAPI/lib"
)

var (
	searchInbox   bool
	searchArchive bool

	metaHashes      []string
	metaFileIDs     []uint
	metaIdentifiers bool

	fetchHash   string
	fetchFileID uint64
	fetchOutput string

	addData bool
)

// fileSelection builds the identity set from the --hashes / --ids flags.
// Supplying both is refused here, before any client call.
func fileSelection() (lib.FileSelection, error) {
	if len(metaHashes) > 0 && len(metaFileIDs) > 0 {
		return nil, errors.New("hashes (exclusive) or file_ids required")
	}
	if len(metaHashes) > 0 {
		return lib.ByHashes(metaHashes), nil
	}
	if len(metaFileIDs) > 0 {
		ids := make([]uint64, 0, len(metaFileIDs))
		for _, id := range metaFileIDs {
			ids = append(ids, uint64(id))
		}
		return lib.ByFileIDs(ids), nil
	}
	return nil, nil
}

func fileIdentity() (lib.FileIdentity, error) {
	if fetchHash != "" && fetchFileID != 0 {
		return nil, errors.New("hash (exclusive) or file_id required")
	}
	if fetchHash != "" {
		return lib.FileHash(fetchHash), nil
	}
	if fetchFileID != 0 {
		return lib.FileID(fetchFileID), nil
	}
	return nil, nil
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [tags...]",
	Short: "Search the client's files by tags",
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fileIDs, err := cli.SearchFiles(args, searchInbox, searchArchive)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Total", len(fileIDs), "files.")
		for _, id := range fileIDs {
			fmt.Println(id)
		}
	},
}

// metaCmd represents the meta command
var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Fetch metadata for files by hashes or ids",
	Run: func(cmd *cobra.Command, args []string) {
		selection, err := fileSelection()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if metaIdentifiers {
			identifiers, err := cli.GetFileIdentifiers(selection)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			for _, identifier := range identifiers {
				fmt.Println(identifier.FileID, identifier.Hash)
			}
			return
		}
		records, err := cli.GetFileMetadata(selection)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		w := new(tabwriter.Writer)
		w.Init(os.Stdout, 0, 8, 2, '\t', 0)
		for _, record := range records {
			fmt.Fprintln(w, strings.Join([]string{
				strconv.FormatUint(record.FileID, 10),
				record.Hash,
				strconv.FormatInt(record.Size, 10),
				record.MIME,
				fmt.Sprintf("%dx%d", record.Width, record.Height),
			}, "\t"))
			for service, statusToTags := range record.ServiceTags {
				for status, tags := range statusToTags {
					fmt.Fprintf(w, "\t%s\t%s\t%s\n", service, status, strings.Join(tags, ", "))
				}
			}
		}
		if err := w.Flush(); err != nil {
			fmt.Println(err)
		}
	},
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a file's raw bytes",
	Run:   func(cmd *cobra.Command, args []string) { fetchContent(false) },
}

// thumbnailCmd represents the thumbnail command
var thumbnailCmd = &cobra.Command{
	Use:   "thumbnail",
	Short: "Fetch a file's thumbnail",
	Run:   func(cmd *cobra.Command, args []string) { fetchContent(true) },
}

func fetchContent(thumbnail bool) {
	id, err := fileIdentity()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cli, err := newClient()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var data []byte
	if thumbnail {
		data, err = cli.GetThumbnail(id)
	} else {
		data, err = cli.GetFile(id)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	output := fetchOutput
	if output == "" {
		if fetchHash != "" {
			output = fetchHash
		} else {
			output = strconv.FormatUint(fetchFileID, 10)
		}
		if thumbnail {
			output += ".thumbnail"
		}
	}
	if err := lib.WriteFile(output, data); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("Saved", len(data), "bytes to", output)
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Import a file, by path or as raw bytes",
	Long: `Import a file into the client. By default the path is handed to
the service, which reads it itself. With --data the file is read
locally and uploaded as an octet stream.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli, err := newClient()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		var result *lib.AddFileResult
		if addData {
			result, err = lib.UploadFile(cli, args[0])
		} else {
			result, err = cli.AddFile(args[0])
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Status:", result.Status)
		fmt.Println("Hash:", result.Hash)
		if result.Note != "" {
			fmt.Println("Note:", result.Note)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(thumbnailCmd)
	rootCmd.AddCommand(addCmd)

	searchCmd.Flags().BoolVar(&searchInbox, "inbox", false, "restrict the search to the inbox")
	searchCmd.Flags().BoolVar(&searchArchive, "archive", false, "restrict the search to the archive")

	metaCmd.Flags().StringSliceVar(&metaHashes, "hashes", nil, "SHA256 hex digests")
	metaCmd.Flags().UintSliceVar(&metaFileIDs, "ids", nil, "numeric file ids")
	metaCmd.Flags().BoolVar(&metaIdentifiers, "identifiers", false, "only return file id and hash")

	getCmd.Flags().StringVar(&fetchHash, "hash", "", "SHA256 hex digest")
	getCmd.Flags().Uint64Var(&fetchFileID, "id", 0, "numeric file id")
	getCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output path")
	thumbnailCmd.Flags().StringVar(&fetchHash, "hash", "", "SHA256 hex digest")
	thumbnailCmd.Flags().Uint64Var(&fetchFileID, "id", 0, "numeric file id")
	thumbnailCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output path")

	addCmd.Flags().BoolVar(&addData, "data", false, "upload the file bytes instead of the path")
}
