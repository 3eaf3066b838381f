/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/cli"
	"github.com/catrobat/catroweb-auth/pkg/constants"
	"github.com/catrobat/catroweb-auth/pkg/preferences"
	"github.com/unikorn-cloud/core/pkg/options"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, "catroweb-auth", "preferences.db")
}

func main() {
	var coreOptions options.CoreOptions

	var clientOptions auth.Options

	var preferencesPath string

	coreOptions.AddFlags(pflag.CommandLine)
	clientOptions.AddFlags(pflag.CommandLine)
	pflag.StringVar(&preferencesPath, "preferences", defaultPreferencesPath(), "Where to persist the token.")

	// Command flags follow the command name.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	coreOptions.SetupLogging()

	logger := log.Log.WithName("init")
	logger.V(1).Info("client starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log)

	if err := os.MkdirAll(filepath.Dir(preferencesPath), 0o700); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	store, err := preferences.Open(ctx, preferencesPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	runner := cli.New(auth.New(&clientOptions), store, os.Stdout)

	err = runner.Run(ctx, pflag.Args())

	if closeErr := store.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		fmt.Println(err)

		if cli.IsUsageError(err) {
			fmt.Printf("usage: %s [flags] <command> [command flags], commands: %v\n", constants.Application, runner.Commands())
			pflag.PrintDefaults()
		}

		os.Exit(1)
	}
}
