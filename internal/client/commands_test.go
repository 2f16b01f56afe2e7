package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func boolPtr(v bool) *bool { return &v }

func TestLogin(t *testing.T) {
	a := newTestApp(t)
	a.tokens.token = ""
	a.ui.creds = models.TokenRequest{Actor: "ops", Password: "secret"}

	a.server.EXPECT().
		Login(gomock.Any(), models.TokenRequest{Actor: "ops", Password: "secret"}).
		Return(models.TokenResponse{
			Token:     "new-token",
			Actor:     "ops",
			ExpiresAt: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC),
		}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"login", "-actor", "ops"}))

	assert.Equal(t, "ops", a.ui.actor)
	assert.Equal(t, "new-token", a.tokens.token)
	assert.Contains(t, a.out.String(), "logged in as ops until 2026-10-20 12:00")
}

func TestLogin_TokenFromHeader(t *testing.T) {
	a := newTestApp(t)
	a.ui.creds = models.TokenRequest{Actor: "ops", Password: "secret"}

	a.server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.TokenResponse{Actor: "ops"}, nil)
	a.server.EXPECT().Token().Return("header-token")

	require.NoError(t, a.Run(context.Background(), []string{"login"}))
	assert.Equal(t, "header-token", a.tokens.token)
}

func TestLogin_Rejected(t *testing.T) {
	a := newTestApp(t)
	a.ui.creds = models.TokenRequest{Actor: "ops", Password: "wrong"}

	a.server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.TokenResponse{}, adapter.ErrUnauthorized)

	err := a.Run(context.Background(), []string{"login"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "stored-token", a.tokens.token)
}

func TestLogout(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.Run(context.Background(), []string{"logout"}))

	assert.True(t, a.tokens.deleted)
	assert.Empty(t, a.tokens.token)
}

func TestAddAndRemove(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any()).Times(2)

	a.server.EXPECT().Add(gomock.Any(), "Alice").
		Return(models.NameChange{Name: "Alice", Changed: true, RemoteAttempted: true, RemoteResponse: "Added Alice to the whitelist"}, nil)
	a.server.EXPECT().Remove(gomock.Any(), "Bob").
		Return(models.NameChange{Name: "Bob"}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"add", " Alice "}))
	require.NoError(t, a.Run(context.Background(), []string{"remove", "Bob"}))

	out := a.out.String()
	assert.Contains(t, out, "added Alice")
	assert.Contains(t, out, "Added Alice to the whitelist")
	assert.Contains(t, out, "Bob: nothing to do")
}

func TestRemote(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().RemoteList(gomock.Any()).
		Return(models.RemoteListResponse{Names: []string{"Alice", "Carol"}, Length: 2}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"remote"}))
	assert.Contains(t, a.out.String(), "Game server whitelist (2)")
}

func TestDiff_RemoveExtrasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *bool
	}{
		{name: "server default", args: []string{"diff"}, want: nil},
		{name: "bare flag", args: []string{"diff", "-remove-extras"}, want: boolPtr(true)},
		{name: "explicit false", args: []string{"diff", "-remove-extras=false"}, want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.server.EXPECT().SetToken(gomock.Any())
			a.server.EXPECT().Diff(gomock.Any(), tt.want).
				Return(models.ReconciliationPlan{ToAdd: []string{"Dave"}}, nil)

			require.NoError(t, a.Run(context.Background(), tt.args))
			assert.Contains(t, a.out.String(), "Dave")
		})
	}
}

func TestSync_ConfirmedRun(t *testing.T) {
	a := newTestApp(t)
	a.ui.confirm = true
	a.server.EXPECT().SetToken(gomock.Any())

	gomock.InOrder(
		a.server.EXPECT().Diff(gomock.Any(), boolPtr(true)).
			Return(models.ReconciliationPlan{ToAdd: []string{"Dave"}, RemoveExtras: true}, nil),
		a.server.EXPECT().Sync(gomock.Any(), boolPtr(true)).
			Return(models.ReconciliationResult{RunID: "run-1", Status: models.RunStatusCompleted, Added: 1}, nil),
	)

	require.NoError(t, a.Run(context.Background(), []string{"sync", "-remove-extras"}))

	assert.Equal(t, []string{"Apply sync plan?"}, a.ui.confirmed)
	assert.Len(t, a.ui.spun, 1)
	assert.Contains(t, a.out.String(), "run-1")
}

func TestSync_Declined(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Diff(gomock.Any(), nil).
		Return(models.ReconciliationPlan{ToAdd: []string{"Dave"}}, nil)

	err := a.Run(context.Background(), []string{"sync"})

	assert.ErrorIs(t, err, ErrAborted)
}

func TestSync_EmptyPlanSkipsConfirmation(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Diff(gomock.Any(), nil).Return(models.ReconciliationPlan{}, nil)
	a.server.EXPECT().Sync(gomock.Any(), nil).
		Return(models.ReconciliationResult{Status: models.RunStatusCompleted}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"sync"}))
	assert.Empty(t, a.ui.confirmed)
}

func TestSync_YesSkipsPreview(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Sync(gomock.Any(), nil).
		Return(models.ReconciliationResult{Status: models.RunStatusCompleted}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"sync", "-yes"}))
}

func TestSync_PartialResult(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())

	result := models.ReconciliationResult{Status: models.RunStatusCompleted, Added: 1}
	result.RecordAddFailure("Eve", errors.New("timeout"))
	a.server.EXPECT().Sync(gomock.Any(), nil).Return(result, nil)

	err := a.Run(context.Background(), []string{"sync", "-yes"})

	assert.ErrorIs(t, err, models.ErrPartialApply)
	assert.Contains(t, a.out.String(), "Eve")
}

func TestSync_Cooldown(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Sync(gomock.Any(), nil).
		Return(models.ReconciliationResult{}, &adapter.TooManyRequestsError{RetryAfterSeconds: 30})

	err := a.Run(context.Background(), []string{"sync", "-yes"})

	var tooMany *adapter.TooManyRequestsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 30, tooMany.RetryAfterSeconds)
}

func TestImport(t *testing.T) {
	a := newTestApp(t)
	a.readFile = func(name string) ([]byte, error) {
		require.Equal(t, "players.txt", name)
		return []byte("Alice\nBob\n"), nil
	}

	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Import(gomock.Any(), "players.txt", []byte("Alice\nBob\n"), true).
		Return(models.ImportResult{Parsed: 2, Added: 2, ApplyRemote: true, RemoteApplied: 2}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"import", "-apply-remote", "players.txt"}))
	assert.Contains(t, a.out.String(), "remote applied:   2")
}

func TestImport_Stdin(t *testing.T) {
	a := newTestApp(t)
	a.in = stringsReader("Carol\n")

	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Import(gomock.Any(), "stdin.txt", []byte("Carol\n"), false).
		Return(models.ImportResult{Parsed: 1, Added: 1}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"import", "-"}))
}

func TestImport_ReadError(t *testing.T) {
	a := newTestApp(t)
	a.readFile = func(string) ([]byte, error) { return nil, errors.New("no such file") }
	a.server.EXPECT().SetToken(gomock.Any())

	err := a.Run(context.Background(), []string{"import", "missing.txt"})

	assert.ErrorContains(t, err, "read import file")
}

func TestExport(t *testing.T) {
	t.Run("stdout json", func(t *testing.T) {
		a := newTestApp(t)
		a.server.EXPECT().SetToken(gomock.Any())
		a.server.EXPECT().Export(gomock.Any(), models.ExportJSON).Return([]byte("[\n  \"Alice\"\n]\n"), nil)

		require.NoError(t, a.Run(context.Background(), []string{"export"}))
		assert.Equal(t, "[\n  \"Alice\"\n]\n", a.out.String())
	})

	t.Run("csv to file", func(t *testing.T) {
		a := newTestApp(t)
		var written string
		a.writeFile = func(name string, data []byte) error {
			written = name + ":" + string(data)
			return nil
		}
		a.server.EXPECT().SetToken(gomock.Any())
		a.server.EXPECT().Export(gomock.Any(), models.ExportCSV).Return([]byte("Alice\n"), nil)

		require.NoError(t, a.Run(context.Background(), []string{"export", "-csv", "-o", "out.csv"}))
		assert.Equal(t, "out.csv:Alice\n", written)
		assert.Contains(t, a.out.String(), "exported to out.csv")
	})

	t.Run("clipboard", func(t *testing.T) {
		a := newTestApp(t)
		var copied string
		a.copyText = func(text string) error {
			copied = text
			return nil
		}
		a.server.EXPECT().SetToken(gomock.Any())
		a.server.EXPECT().Export(gomock.Any(), models.ExportJSON).Return([]byte("[]\n"), nil)

		require.NoError(t, a.Run(context.Background(), []string{"export", "-clipboard"}))
		assert.Equal(t, "[]\n", copied)
	})
}

func TestStatus(t *testing.T) {
	a := newTestApp(t)
	remote := 3
	next := time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC)

	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Status(gomock.Any()).Return(models.Status{
		LocalCount:       4,
		RemoteEnabled:    true,
		RemoteCount:      &remote,
		NextScheduledRun: &next,
	}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"status"}))

	out := a.out.String()
	assert.Contains(t, out, "local names:     4")
	assert.Contains(t, out, "remote names:    3")
	assert.Contains(t, out, "2026-10-20 03:00:00")
}

func TestAudit(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())
	a.server.EXPECT().Audit(gomock.Any(), 5).Return([]models.AuditEntry{
		{Kind: "add", Actor: "ops", Status: "completed", Added: 1, CreatedAt: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)},
	}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"audit", "-limit", "5"}))
	assert.Contains(t, a.out.String(), "Audit log (1)")
}

func TestAudit_NegativeLimit(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().SetToken(gomock.Any())

	err := a.Run(context.Background(), []string{"audit", "-limit", "-1"})

	assert.ErrorIs(t, err, ErrUsage)
}

func TestHashPassword(t *testing.T) {
	a := newTestApp(t)
	a.ui.password = "correct horse"

	require.NoError(t, a.Run(context.Background(), []string{"hash-password"}))

	hash := a.out.Bytes()[:len(a.out.Bytes())-1]
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("correct horse")))
}

func TestVersion(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().Version(gomock.Any()).
		Return(models.BuildInfoResponse{Version: "v1.1.0", Date: "2026-09-01", Commit: "def456"}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"version"}))

	out := a.out.String()
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "v1.1.0")
}

func TestVersion_ServerDown(t *testing.T) {
	a := newTestApp(t)
	a.server.EXPECT().Version(gomock.Any()).Return(models.BuildInfoResponse{}, errors.New("dial tcp: connection refused"))

	err := a.Run(context.Background(), []string{"version"})

	assert.Error(t, err)
	assert.Contains(t, a.out.String(), "v1.2.0")
}
