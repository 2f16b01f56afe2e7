// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/tui"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	actor := fs.String("actor", os.Getenv("USER"), "operator name recorded in the audit log")
	if err := a.parseFlags(fs, args, 0); err != nil {
		return err
	}

	req, err := a.ui.Credentials(*actor)
	if err != nil {
		return err
	}

	resp, err := a.server.Login(ctx, req)
	if err != nil {
		return err
	}

	token := resp.Token
	if token == "" {
		token = a.server.Token()
	}
	if err = a.tokens.Save(token); err != nil {
		return err
	}

	a.print(fmt.Sprintf("logged in as %s until %s\n", resp.Actor, resp.ExpiresAt.In(a.loc).Format("2006-01-02 15:04")))
	return nil
}

func (a *App) logout(_ context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("logout"), args, 0); err != nil {
		return err
	}
	if err := a.tokens.Delete(); err != nil {
		return err
	}
	a.print("logged out\n")
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("list"), args, 0); err != nil {
		return err
	}

	names, err := a.server.List(ctx)
	if err != nil {
		return err
	}
	a.print(tui.RenderNames("Local whitelist", names))
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	if err := a.parseFlags(fs, args, 1); err != nil {
		return err
	}

	change, err := a.server.Add(ctx, strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		return err
	}
	a.print(tui.RenderChange("added", change))
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	fs := a.newFlagSet("remove")
	if err := a.parseFlags(fs, args, 1); err != nil {
		return err
	}

	change, err := a.server.Remove(ctx, strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		return err
	}
	a.print(tui.RenderChange("removed", change))
	return nil
}

func (a *App) remote(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("remote"), args, 0); err != nil {
		return err
	}

	resp, err := a.server.RemoteList(ctx)
	if err != nil {
		return err
	}
	a.print(tui.RenderNames("Game server whitelist", resp.Names))
	return nil
}

func (a *App) diff(ctx context.Context, args []string) error {
	fs := a.newFlagSet("diff")
	var removeExtras optionalBool
	fs.Var(&removeExtras, "remove-extras", "remove names that exist only on the game server (default: server setting)")
	if err := a.parseFlags(fs, args, 0); err != nil {
		return err
	}

	plan, err := a.server.Diff(ctx, removeExtras.value)
	if err != nil {
		return err
	}
	a.print(tui.RenderPlan(plan))
	return nil
}

// sync previews the plan, asks for confirmation unless -yes is given, and
// then triggers the run. A partially applied run is printed and returned as
// an error.
func (a *App) sync(ctx context.Context, args []string) error {
	fs := a.newFlagSet("sync")
	var removeExtras optionalBool
	fs.Var(&removeExtras, "remove-extras", "remove names that exist only on the game server (default: server setting)")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := a.parseFlags(fs, args, 0); err != nil {
		return err
	}

	if !*yes {
		plan, err := a.server.Diff(ctx, removeExtras.value)
		if err != nil {
			return err
		}

		if !plan.Empty() {
			ok, err := a.ui.Confirm("Apply sync plan?", tui.RenderPlan(plan))
			if err != nil {
				return err
			}
			if !ok {
				return ErrAborted
			}
		}
	}

	var result models.ReconciliationResult
	err := a.ui.Spin(ctx, "reconciling with the game server", func(ctx context.Context) error {
		var err error
		result, err = a.server.Sync(ctx, removeExtras.value)
		return err
	})
	if err != nil {
		return err
	}

	a.print(tui.RenderResult(result))
	return result.Err()
}

func (a *App) importNames(ctx context.Context, args []string) error {
	fs := a.newFlagSet("import")
	applyRemote := fs.Bool("apply-remote", false, "also add new names on the game server")
	if err := a.parseFlags(fs, args, 1); err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := a.readInput(path)
	if err != nil {
		return err
	}

	fileName := path
	if path == "-" {
		fileName = "stdin.txt"
	}

	var result models.ImportResult
	err = a.ui.Spin(ctx, "importing names", func(ctx context.Context) error {
		var err error
		result, err = a.server.Import(ctx, fileName, data, *applyRemote)
		return err
	})
	if err != nil {
		return err
	}

	a.print(tui.RenderImport(result))
	return nil
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := a.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return data, nil
}

// export writes the rendered whitelist to stdout unless -o or -clipboard
// redirects it.
func (a *App) export(ctx context.Context, args []string) error {
	fs := a.newFlagSet("export")
	asCSV := fs.Bool("csv", false, "export one name per line instead of JSON")
	output := fs.String("o", "", "write the export to this file")
	toClipboard := fs.Bool("clipboard", false, "copy the export to the clipboard")
	if err := a.parseFlags(fs, args, 0); err != nil {
		return err
	}

	format := models.ExportJSON
	if *asCSV {
		format = models.ExportCSV
	}

	data, err := a.server.Export(ctx, format)
	if err != nil {
		return err
	}

	switch {
	case *output != "":
		if err = a.writeFile(*output, data); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		a.print(fmt.Sprintf("exported to %s\n", *output))
	case *toClipboard:
		if err = a.copyText(string(data)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.print("export copied to the clipboard\n")
	default:
		_, err = a.out.Write(data)
		return err
	}
	return nil
}

func (a *App) status(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("status"), args, 0); err != nil {
		return err
	}

	status, err := a.server.Status(ctx)
	if err != nil {
		return err
	}
	a.print(tui.RenderStatus(status, a.loc))
	return nil
}

func (a *App) audit(ctx context.Context, args []string) error {
	fs := a.newFlagSet("audit")
	limit := fs.Int("limit", 0, "number of entries to show (default: server setting)")
	if err := a.parseFlags(fs, args, 0); err != nil {
		return err
	}
	if *limit < 0 {
		return fmt.Errorf("%w: -limit must not be negative", ErrUsage)
	}

	entries, err := a.server.Audit(ctx, *limit)
	if err != nil {
		return err
	}
	a.print(tui.RenderAudit(entries, a.loc))
	return nil
}

// hashPassword prints a bcrypt hash suitable for APP_ADMIN_PASSWORD_HASH.
func (a *App) hashPassword(_ context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("hash-password"), args, 0); err != nil {
		return err
	}

	password, err := a.ui.NewPassword()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: password is longer than 72 bytes", ErrUsage)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	a.print(string(hash) + "\n")
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("version"), args, 0); err != nil {
		return err
	}

	server, err := a.server.Version(ctx)
	if err != nil {
		a.print(tui.RenderBuildInfo(a.build, models.BuildInfoResponse{}))
		return err
	}
	a.print(tui.RenderBuildInfo(a.build, server))
	return nil
}
