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
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/machine"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const groupsPerLine = 10

/*
getInputFile returns the reader holding the message to encrypt/decrypt.
The message is taken from, in order:
1. The command line arguments.
2. The named input file.
3. The terminal, without echo, when stdin is a terminal.
4. stdin.
*/
func getInputFile(args []string) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err := os.Open(inputFileName)
		cobra.CheckErr(err)
		return fin
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the message: ")
		msg, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		return bytes.NewReader(msg)
	}

	return os.Stdin
}

// getOutputFile returns the file named by the outputFile flag or, if that is
// not given, defaultName.  stdout is used when neither names a file.
func getOutputFile(defaultName string) *os.File {
	name := outputFileName
	if len(name) == 0 {
		name = defaultName
	}

	if len(name) == 0 || name == "-" {
		return os.Stdout
	}

	fout, err := os.Create(name)
	cobra.CheckErr(err)
	return fout
}

// checkError checks for errors that are not io.EOF and io.ErrUnexpectedEOF and reports them.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}

// cipherHelper sends the letters read from rdr through the session in
// blocks and returns a reader for the resulting letters.  Characters other
// than the letters a-z are dropped.
func cipherHelper(rdr io.Reader, s *machine.Session) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)

	go func() {
		defer wg.Done()
		var blk machine.SymbolBlock
		out := make([]byte, 0, machine.BlockSymbols)
		flush := func() error {
			if blk.Length == 0 {
				return nil
			}
			s.Left() <- blk
			blk = <-s.Right()
			if blk.Err != nil {
				return blk.Err
			}
			out = out[:0]
			for _, c := range blk.Symbols[:blk.Length] {
				out = append(out, alphabet.Letter(c))
			}
			blk.Length = 0
			_, err := rWrtr.Write(out)
			return err
		}

		b := make([]byte, 2048)
		for {
			cnt, err := rdr.Read(b)
			for _, ch := range b[:cnt] {
				c, ok := alphabet.Symbol(ch)
				if !ok {
					continue
				}
				blk.Symbols[blk.Length] = c
				blk.Length++
				if blk.Length == machine.BlockSymbols {
					if err := flush(); err != nil {
						rWrtr.CloseWithError(err)
						return
					}
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rWrtr.CloseWithError(err)
				return
			}
		}

		rWrtr.CloseWithError(flush())
	}()

	return rRdr
}

// groupHelper copies the letters read from rdr, separated into groups of
// size letters with groupsPerLine groups on each line.  A size of zero or
// less copies the letters unchanged.  Non-empty output ends with a newline.
func groupHelper(rdr io.Reader, size int) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)

	go func() {
		defer wg.Done()
		bRdr := bufio.NewReader(rdr)
		bWrtr := bufio.NewWriter(rWrtr)
		var cnt int
		var err error

		for {
			var ch byte
			ch, err = bRdr.ReadByte()
			if err != nil {
				break
			}
			if size > 0 && cnt > 0 && cnt%size == 0 {
				if cnt%(size*groupsPerLine) == 0 {
					bWrtr.WriteByte('\n')
				} else {
					bWrtr.WriteByte(' ')
				}
			}
			bWrtr.WriteByte(ch)
			cnt++
		}

		if err == io.EOF {
			if cnt > 0 {
				bWrtr.WriteByte('\n')
			}
			err = bWrtr.Flush()
		}
		rWrtr.CloseWithError(err)
	}()

	return rRdr
}
