/*
   Copyright 2025 The DIRPX Authors.

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

	"github.com/spf13/cobra"

	"dirpx.dev/ofx"
	"dirpx.dev/ofx/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <kind> <text>...",
	Short: "Parse text into a numeric kind",
	Long: `Parses every text argument as the given kind and prints the value.

Kinds: int8, int16, int32, int64, float32, float64.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConvert,
}

var checkCmd = &cobra.Command{
	Use:   "check <kind> <text>...",
	Short: "Report whether text parses as a numeric kind",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCheck,
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported numeric kinds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range convert.Kinds() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d bits\n", k, k.Bits())
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd, checkCmd, kindsCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	kind, err := convert.ParseKind(args[0])
	if err != nil {
		return err
	}

	bad := 0
	for _, text := range args[1:] {
		v, err := ofx.Convert(text, kind.Type())
		if err != nil {
			printError(cmd, fmt.Sprintf("convert %q", text), err)
			bad++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", text, v)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d values could not be converted to %s", bad, len(args)-1, kind)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := convert.ParseKind(args[0])
	if err != nil {
		return err
	}

	bad := 0
	for _, text := range args[1:] {
		ok := ofx.CanConvert(text, kind.Type())
		if !ok {
			bad++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", text, ok)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d values are not valid %s", bad, len(args)-1, kind)
	}
	return nil
}
