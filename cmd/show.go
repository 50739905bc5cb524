/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

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
	"io"

	"github.com/bgallie/enigma/machine"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showYAML bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured machine",
	Long: `Show the plugboard, each rotor's wiring, turnover and position, and the reflector
of the configured machine.  With --yaml the resolved configuration is written in
the form used by the "machine" section of the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(show(cmd.OutOrStdout(), newMachine()))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "write the configuration as YAML")
}

func show(w io.Writer, m *machine.Machine) error {
	if !showYAML {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
		if !m.Plugged() {
			_, err := fmt.Fprintln(w, "(no plugboard cables)")
			return err
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]machine.Config{"machine": m.Config()}); err != nil {
		return err
	}
	return enc.Close()
}
