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
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/bgallie/enigma/machine"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	verbose        bool
	wg             sync.WaitGroup
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	enigmaApiLevel   = 1
	enigmaConfigName = ".enigma"
	enigmaFileSuffix = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "A rotor cipher machine",
	Long: `enigma encrypts and decrypts text with a simulated rotor cipher machine.
Only the letters a-z are enciphered; everything else is dropped.  Encryption
and decryption are the same operation when started from the same rotor offsets.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted text.")
	pf.BoolVar(&verbose, "verbose", false, "log debug information to stderr")
	pf.StringSlice("rotors", nil, "rotor names (I-V) or wirings in stepping order, separated by commas or spaces (default III,II,I)")
	pf.String("offsets", "", "initial rotor offset letters in stepping order, eg. \"aaa\"")
	pf.String("reflector", "", "reflector name (A, B, C) or wiring (default B)")
	pf.String("plugboard", "", "plugboard cables as letter pairs, eg. \"ab cd ef\"")
	for _, name := range []string{"rotors", "offsets", "reflector", "plugboard"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}
}

func initLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(enigmaConfigName)
	}

	viper.SetEnvPrefix("enigma")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		cobra.CheckErr(err)
	}
}

// machineConfig returns the machine configuration from the "machine" section
// of the config file (or the default machine), overridden by any of the
// rotors, offsets, reflector and plugboard settings.
func machineConfig() (machine.Config, error) {
	cfg := machine.DefaultConfig()
	if viper.IsSet("machine") {
		cfg = machine.Config{}
		if err := viper.UnmarshalKey("machine", &cfg); err != nil {
			return cfg, fmt.Errorf("reading the machine configuration: %w", err)
		}
	}

	if viper.IsSet("rotors") {
		names := rotorNames(viper.GetStringSlice("rotors"))
		cfg.Rotors = make([]machine.RotorConfig, len(names))
		for i, name := range names {
			cfg.Rotors[i] = machine.RotorConfig{Wiring: name}
		}
	}
	if viper.IsSet("offsets") {
		if err := cfg.SetOffsets(viper.GetString("offsets")); err != nil {
			return cfg, err
		}
	}
	if viper.IsSet("reflector") {
		cfg.Reflector = viper.GetString("reflector")
	}
	if viper.IsSet("plugboard") {
		cfg.Plugboard = ""
		cfg.PlugboardPairs = viper.GetString("plugboard")
	}

	return cfg, nil
}

// rotorNames splits rotor lists on commas and white space.  The flag form
// arrives already split on commas; ENIGMA_ROTORS arrives as one string.
func rotorNames(values []string) []string {
	return strings.FieldsFunc(strings.Join(values, ","), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// newMachine builds the configured machine, exiting on a bad configuration.
func newMachine() *machine.Machine {
	cfg, err := machineConfig()
	cobra.CheckErr(err)
	m, err := machine.New(cfg)
	cobra.CheckErr(err)
	log.Debug().
		Int("rotors", m.Rotors()).
		Str("offsets", m.Config().Offsets()).
		Msg("machine built")
	return m
}
