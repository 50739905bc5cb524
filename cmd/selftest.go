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
	"github.com/bgallie/enigma/wirings"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// selftestCmd represents the selftest command
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the default machine against known test vectors",
	Long: `Build the default machine (rotors III, II, I at offset a, reflector B, no plugboard),
print its state and encrypt each test vector from the reset position, reporting pass or fail.`,
	Run: func(cmd *cobra.Command, args []string) {
		failed, err := selftest(cmd.OutOrStdout())
		cobra.CheckErr(err)
		if failed > 0 {
			cobra.CheckErr(fmt.Sprintf("%d of %d test vectors failed.", failed, len(wirings.TestVectors)))
		}
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

// selftest writes the default machine and the result of each test vector to
// w and returns the number of vectors that failed.
func selftest(w io.Writer) (int, error) {
	m, err := machine.New(machine.DefaultConfig())
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(w, m)

	var failed int
	for _, tv := range wirings.TestVectors {
		m.Reset()
		result := m.EncryptText(tv.Plaintext)
		status := "pass"
		if result != tv.Ciphertext {
			status = "fail"
			failed++
		}
		fmt.Fprintf(w, "%s: %s\n", result, status)
		log.Debug().
			Str("plaintext", tv.Plaintext).
			Str("expected", tv.Ciphertext).
			Str("result", result).
			Msg("test vector " + status)
	}

	return failed, nil
}
