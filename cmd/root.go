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

// Package cmd defines the railists command line interface.
//
// The command tree is:
//
//	railists
//	├── collection (list | csv | stats | depot)
//	├── wishlist   (list | budget)
//	└── version
//
// Every data command reads one YAML document given with --file and writes
// one view of it. A document that fails to load aborts the command with
// the loader's error; no partial output is produced.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// verbose switches the logger to debug level.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "railists",
	Short: "Manage a model railway collection from YAML documents",
	Long: `railists keeps a personal model railway collection and wish list in
plain YAML documents and derives views from them: tabular listings,
per-year purchase statistics, a locomotive depot roster, CSV exports
and wish list budgets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output")
}
