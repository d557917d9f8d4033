/*
   Copyright 2025 The Railists Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"railists.dev/railists/railcore/datasource"
	"railists.dev/railists/railcore/export"
	"railists.dev/railists/railcore/model/collecting"
	"railists.dev/railists/railcore/tables"
)

var (
	collectionFile string
	csvOutputFile  string
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Work with a collection document",
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the collection as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := loadCollection()
		if err != nil {
			return err
		}
		tables.RenderCollection(cmd.OutOrStdout(), collection)
		return nil
	},
}

var collectionCsvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the collection as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := loadCollection()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if csvOutputFile != "" {
			f, err := os.Create(csvOutputFile)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return export.WriteCollectionCSV(out, collection)
	},
}

var collectionStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-year purchase statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := loadCollection()
		if err != nil {
			return err
		}

		stats := collecting.NewCollectionStats(collection)
		out := cmd.OutOrStdout()
		tables.RenderStats(out, stats)
		fmt.Fprintf(out, "Total value........... %s EUR\n", stats.TotalValue().StringFixed(2))
		fmt.Fprintf(out, "Rolling stocks/sets... %d\n", stats.TotalCount())
		return nil
	},
}

var collectionDepotCmd = &cobra.Command{
	Use:   "depot",
	Short: "Print the locomotive depot roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := loadCollection()
		if err != nil {
			return err
		}

		depot := collecting.NewDepot(collection)
		out := cmd.OutOrStdout()
		tables.RenderDepot(out, depot)
		fmt.Fprintf(out, "%d locomotive(s)\n", depot.Len())
		return nil
	},
}

func loadCollection() (*collecting.Collection, error) {
	slog.Debug("loading collection document", "file", collectionFile)
	collection, err := datasource.LoadCollectionFile(collectionFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("collection loaded", "items", collection.Len())
	return collection, nil
}

func init() {
	collectionCmd.PersistentFlags().StringVarP(&collectionFile, "file", "f", "",
		"path to the collection YAML document")
	collectionCmd.MarkPersistentFlagRequired("file")

	collectionCsvCmd.Flags().StringVarP(&csvOutputFile, "output", "o", "",
		"write the CSV to a file instead of stdout")

	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionCsvCmd)
	collectionCmd.AddCommand(collectionStatsCmd)
	collectionCmd.AddCommand(collectionDepotCmd)
	rootCmd.AddCommand(collectionCmd)
}
