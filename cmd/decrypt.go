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
	"strings"

	"github.com/bgallie/enigma/machine"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var decryptGroupSize int

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [message]",
	Short: "Decrypt a message",
	Long: `Decrypt a message encrypted by the rotor cipher machine.
PEM and ASCII85 encoded messages are recognized by their headers; anything
else is treated as ciphertext letters.  The machine must be configured with
the rotors, offsets, reflector and plugboard used to encrypt the message.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().IntVarP(&decryptGroupSize, "group", "g", 0, "letters per group in the output (0 for no grouping)")
}

// armor describes how an encrypted message is encoded.
type armor struct {
	apiLevel    int
	fileName    string
	compression bool
	rdr         *io.PipeReader // Decoded ciphertext, nil for plain letters.
}

// readArmor detects PEM and ASCII85 encoded messages at the start of bRdr.
func readArmor(bRdr *bufio.Reader) (armor, error) {
	a := armor{apiLevel: enigmaApiLevel}
	b, err := bRdr.Peek(7)
	if err != nil && err != io.EOF {
		return a, err
	}

	switch {
	case strings.HasPrefix(string(b), "-----"):
		var blck pem.Block
		a.rdr, blck = pem.FromPem(bRdr)
		fal, exists := blck.Headers["ApiLevel"]
		if !exists {
			fal = "-1"
		}
		a.apiLevel, _ = strconv.Atoi(fal)
		a.fileName = blck.Headers["FileName"]
		a.compression = blck.Headers["Compression"] == "true"
	case string(b) == "+ENIGMA":
		line, err := bRdr.ReadString('\n')
		if err != nil {
			return a, fmt.Errorf("reading the ASCII85 header: %w", err)
		}
		fields, ok := splitHeader(strings.TrimRight(line, "\r\n"))
		if !ok || fields[3] != "a" {
			return a, fmt.Errorf("malformed ASCII85 header: [%s]", strings.TrimSpace(line))
		}
		a.apiLevel, _ = strconv.Atoi(fields[1])
		a.fileName = fields[2]
		a.compression = fields[4] == "true"
		a.rdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
	}

	if a.apiLevel != enigmaApiLevel {
		return a, fmt.Errorf("API Level mismatch. FileApiLevel: %d, EnigmaApiLevel: %d", a.apiLevel, enigmaApiLevel)
	}
	return a, nil
}

// splitHeader splits "+ENIGMA|api|file name|a|compression" into its five
// fields.  The file name may itself contain '|'.
func splitHeader(line string) ([5]string, bool) {
	var fields [5]string
	head := strings.SplitN(line, "|", 3)
	if len(head) != 3 {
		return fields, false
	}
	fields[0], fields[1] = head[0], head[1]
	rest := head[2]
	for i := 4; i >= 3; i-- {
		j := strings.LastIndex(rest, "|")
		if j < 0 {
			return fields, false
		}
		fields[i] = rest[j+1:]
		rest = rest[:j]
	}
	fields[2] = rest
	return fields, true
}

func decrypt(args []string) {
	session := machine.NewSession(newMachine())
	bRdr := bufio.NewReader(getInputFile(args))
	a, err := readArmor(bRdr)
	cobra.CheckErr(err)

	defaultName := a.fileName
	if len(defaultName) == 0 && len(args) == 0 && strings.HasSuffix(inputFileName, enigmaFileSuffix) {
		defaultName = strings.TrimSuffix(inputFileName, enigmaFileSuffix)
	}
	fout := getOutputFile(defaultName)
	defer fout.Close()

	var encIn io.Reader = bRdr
	if a.rdr != nil {
		encIn = a.rdr
		if a.compression {
			encIn = flate.FromFlate(a.rdr)
		}
	}

	_, err = io.Copy(fout, groupHelper(cipherHelper(encIn, session), decryptGroupSize))
	checkError(err)
	wg.Wait() // Wait for the helpers to finish their clean up.
	session.Close()
	log.Debug().Str("session_id", session.ID().String()).Msg("decryption finished")
}
