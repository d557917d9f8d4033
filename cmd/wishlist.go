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

	"github.com/spf13/cobra"
	"railists.dev/railists/railcore/datasource"
	"railists.dev/railists/railcore/model/collecting"
	"railists.dev/railists/railcore/tables"
)

var wishListFile string

var wishListCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Work with a wish list document",
}

var wishListListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the wish list as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		wishList, err := loadWishList()
		if err != nil {
			return err
		}
		tables.RenderWishList(cmd.OutOrStdout(), wishList)
		return nil
	},
}

var wishListBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Print the estimated budget by priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		wishList, err := loadWishList()
		if err != nil {
			return err
		}

		budget := collecting.NewWishListBudget(wishList)
		out := cmd.OutOrStdout()
		for _, p := range []collecting.Priority{
			collecting.PriorityHigh,
			collecting.PriorityNormal,
			collecting.PriorityLow,
		} {
			fmt.Fprintf(out, "%-8s %s EUR\n", p.String(), budget.ByPriority(p).StringFixed(2))
		}
		fmt.Fprintf(out, "%-8s %s EUR\n", "TOTAL", budget.Total().StringFixed(2))
		return nil
	},
}

func loadWishList() (*collecting.WishList, error) {
	slog.Debug("loading wish list document", "file", wishListFile)
	wishList, err := datasource.LoadWishListFile(wishListFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("wish list loaded", "items", wishList.Len())
	return wishList, nil
}

func init() {
	wishListCmd.PersistentFlags().StringVarP(&wishListFile, "file", "f", "",
		"path to the wish list YAML document")
	wishListCmd.MarkPersistentFlagRequired("file")

	wishListCmd.AddCommand(wishListListCmd)
	wishListCmd.AddCommand(wishListBudgetCmd)
	rootCmd.AddCommand(wishListCmd)
}
