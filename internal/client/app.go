package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/atotto/clipboard"
)

type command struct {
	usage  string
	authed bool
	run    func(ctx context.Context, args []string) error
}

// App is the wlctl runtime.
type App struct {
	server adapter.ServerAdapter
	ui     Prompter
	tokens TokenStore
	build  models.BuildInfoResponse

	in  io.Reader
	out io.Writer
	loc *time.Location

	readFile  func(name string) ([]byte, error)
	writeFile func(name string, data []byte) error
	copyText  func(text string) error

	commands map[string]command
	logger   *logger.Logger
}

// NewApp wires wlctl to the server adapter, the prompter and the token store.
// Command output is written to out; "-" file arguments read from in.
func NewApp(server adapter.ServerAdapter, ui Prompter, tokens TokenStore, build models.AppBuildInfo,
	in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if server == nil || ui == nil || tokens == nil {
		return nil, errors.New("client app: server adapter, prompter and token store are required")
	}

	a := &App{
		server:   server,
		ui:       ui,
		tokens:   tokens,
		build:    build.Response(),
		in:       in,
		out:      out,
		loc:      time.Local,
		readFile: os.ReadFile,
		writeFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
	a.commands = a.registerCommands()

	return a, nil
}

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		"login":         {usage: "login [-actor NAME]", run: a.login},
		"logout":        {usage: "logout", run: a.logout},
		"list":          {usage: "list", authed: true, run: a.list},
		"add":           {usage: "add NAME", authed: true, run: a.add},
		"remove":        {usage: "remove NAME", authed: true, run: a.remove},
		"remote":        {usage: "remote", authed: true, run: a.remote},
		"diff":          {usage: "diff [-remove-extras=BOOL]", authed: true, run: a.diff},
		"sync":          {usage: "sync [-remove-extras=BOOL] [-yes]", authed: true, run: a.sync},
		"import":        {usage: "import [-apply-remote] FILE|-", authed: true, run: a.importNames},
		"export":        {usage: "export [-csv] [-o FILE] [-clipboard]", authed: true, run: a.export},
		"status":        {usage: "status", authed: true, run: a.status},
		"audit":         {usage: "audit [-limit N]", authed: true, run: a.audit},
		"hash-password": {usage: "hash-password", run: a.hashPassword},
		"version":       {usage: "version", run: a.version},
	}
}

// Run executes args[0] with the remaining arguments. Commands that talk to
// the admin API load the stored token first.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if cmd.authed {
		if err := a.restoreToken(); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("command", name).Msg("command failed")
		return err
	}
	return nil
}

func (a *App) restoreToken() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: no stored token", adapter.ErrUnauthorized)
	}
	a.server.SetToken(token)
	return nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		fmt.Fprintf(a.out, "usage: wlctl %s\n", a.commands[name].usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and checks the number of positional arguments.
func (a *App) parseFlags(fs *flag.FlagSet, args []string, positional int) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != positional {
		fs.Usage()
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrUsage, fs.Name(), positional, fs.NArg())
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: wlctl [-a ADDRESS] [-c CONFIG] [-timeout DURATION] [-token-file PATH] COMMAND")
	fmt.Fprintln(a.out)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, strings.TrimPrefix(a.commands[name].usage, name))
	}
	tw.Flush()
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}
