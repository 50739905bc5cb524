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
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bgallie/enigma/machine"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	useASCII85       bool
	usePem           bool
	useText          bool
	compression      bool
	encryptGroupSize int
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "Encrypt a message",
	Long: `Encrypt a message with the rotor cipher machine.
The message is taken from the command line, the input file, the terminal or stdin.
The ciphertext is written as letter groups unless ASCII85 or PEM encoding is selected.`,
	Run: func(cmd *cobra.Command, args []string) {
		useText = !(useASCII85 || usePem)
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate (ASCII85 or PEM encoding only)")
	encryptCmd.Flags().IntVarP(&encryptGroupSize, "group", "g", 5, "letters per group in text output (0 for no grouping)")
}

func encrypt(args []string) {
	if compression && useText {
		cobra.CheckErr("Compression requires ASCII85 or PEM encoding.")
	}

	session := machine.NewSession(newMachine())
	fin := getInputFile(args)
	var defaultName string
	if len(args) == 0 && len(inputFileName) > 0 && inputFileName != "-" {
		defaultName = inputFileName + enigmaFileSuffix
	}
	fout := getOutputFile(defaultName)
	defer fout.Close()

	encOut := cipherHelper(fin, session)
	var err error
	if useText {
		_, err = io.Copy(fout, groupHelper(encOut, encryptGroupSize))
	} else {
		if compression {
			encOut = flate.ToFlate(encOut)
		}
		if useASCII85 {
			headerLine := fmt.Sprintf("+ENIGMA|%d|", enigmaApiLevel)
			if len(args) == 0 && len(inputFileName) > 0 && inputFileName != "-" {
				headerLine += inputFileName
			}
			headerLine += fmt.Sprintf("|a|%v\n", compression)
			_, err = fout.WriteString(headerLine)
			checkError(err)
			_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(encOut)))
		} else {
			var blck pem.Block
			blck.Type = "ENIGMA Encrypted Message"
			blck.Headers = make(map[string]string)
			blck.Headers["ApiLevel"] = strconv.Itoa(enigmaApiLevel)
			blck.Headers["Compression"] = fmt.Sprintf("%v", compression)
			if len(args) == 0 && len(inputFileName) > 0 && inputFileName != "-" {
				blck.Headers["FileName"] = inputFileName
			}
			_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encOut), blck))
		}
	}
	checkError(err)
	wg.Wait()
	session.Close()
	log.Debug().Str("session_id", session.ID().String()).Msg("encryption finished")
}
