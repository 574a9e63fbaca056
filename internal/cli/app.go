// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-service-template/internal/adapter"
	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
)

type command struct {
	usage string
	auth  bool
	run   func(ctx context.Context, a *App, args []string) error
}

// App runs one client command per invocation.
type App struct {
	adapter adapter.ServerAdapter
	creds   config.ClientCredentials
	out     io.Writer
	logger  *logger.Logger

	commands map[string]command
}

// NewApp builds an App printing to out. With no token in creds, commands
// that need authentication log in with creds first.
func NewApp(serverAdapter adapter.ServerAdapter, creds config.ClientCredentials, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || out == nil || logger == nil {
		return nil, fmt.Errorf("%w: adapter, output and logger are required", ErrInvalidArguments)
	}

	return &App{
		adapter: serverAdapter,
		creds:   creds,
		out:     out,
		logger:  logger,
		commands: map[string]command{
			"version":  {usage: "version", run: runVersion},
			"register": {usage: "register -login L -password P", run: runRegister},
			"login":    {usage: "login -login L -password P", run: runLogin},
			"list":     {usage: "list [-page N]", auth: true, run: runList},
			"get":      {usage: "get ID", auth: true, run: runGet},
			"create":   {usage: "create -name N [-description D] [-active=false]", auth: true, run: runCreate},
			"update":   {usage: "update ID [-name N] [-description D] [-active=true|false]", auth: true, run: runUpdate},
			"delete":   {usage: "delete ID", auth: true, run: runDelete},
		},
	}, nil
}

// Run parses the global flags, then dispatches the subcommand in args.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := a.newFlagSet("client")
	fs.StringVar(&a.creds.Token, "token", a.creds.Token, "bearer token")
	fs.StringVar(&a.creds.Login, "login", a.creds.Login, "login used when no token is given")
	fs.StringVar(&a.creds.Password, "password", a.creds.Password, "password used when no token is given")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(a.out, a.usage())
		return ErrNoCommand
	}

	name := fs.Arg(0)
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintln(a.out, a.usage())
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	if cmd.auth {
		if err := a.authenticate(ctx); err != nil {
			return err
		}
	}

	return cmd.run(ctx, a, fs.Args()[1:])
}

func (a *App) authenticate(ctx context.Context) error {
	if a.creds.Token != "" {
		a.adapter.SetToken(a.creds.Token)
		return nil
	}
	if a.creds.Login == "" || a.creds.Password == "" {
		return ErrNotAuthenticated
	}
	if err := a.adapter.Login(ctx, a.loginUser()); err != nil {
		return fmt.Errorf("error logging in: %w", err)
	}
	return nil
}

func (a *App) usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "client [-token T] "+a.commands[name].usage)
	}
	return renderPage("Usage", strings.Join(lines, "\n"), "credentials also come from ADAPTER_TOKEN, ADAPTER_LOGIN, ADAPTER_PASSWORD")
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

// parseArgs parses fs and returns the positional arguments. Flags may come
// before or after positionals.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// visited reports whether the flag name was set explicitly.
func visited(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

