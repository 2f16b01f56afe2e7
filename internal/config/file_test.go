package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := writeTempFile(t, "config.json", `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"admin_password_hash": "hash"
		},
		"remote": {"host": "mc.local", "port": 25575, "enabled": true, "timeout": "5s"},
		"sync": {"hour": 0, "minute": 45, "cooldown": "10s"},
		"storage": {
			"whitelist_path": "/srv/wl.json",
			"backup": {"enabled": false, "dir": "/srv/bk", "max_keep": 2},
			"audit": {"dsn": "audit.db"}
		},
		"import": {"max_bytes": 100, "propagate_new_only": true},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"}
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "hash", cfg.App.AdminPasswordHash)

	assert.Equal(t, "mc.local", cfg.Remote.Host)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)

	hour, minute := cfg.Sync.At()
	assert.Equal(t, 0, hour)
	assert.Equal(t, 45, minute)
	assert.Equal(t, 10*time.Second, cfg.Sync.CooldownWindow())

	assert.Equal(t, "/srv/wl.json", cfg.Storage.WhitelistPath)
	require.NotNil(t, cfg.Storage.Backup.Enabled)
	assert.False(t, *cfg.Storage.Backup.Enabled)
	assert.Equal(t, 2, cfg.Storage.Backup.Keep())
	assert.Equal(t, "audit.db", cfg.Storage.Audit.DSN)

	assert.Equal(t, int64(100), cfg.Import.MaxBytes)
	assert.True(t, cfg.Import.PropagateNewOnly)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_TOML(t *testing.T) {
	p := writeTempFile(t, "config.toml", `
[remote]
host = "10.1.1.1"
port = 25575
enabled = true
timeout = "2s"

[sync]
schedule_enabled = true
hour = 5

[storage.backup]
max_keep = 0

[adapter]
http_address = "http://10.1.1.2:8080"
request_timeout = "3s"
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "10.1.1.1", cfg.Remote.Host)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.True(t, cfg.Sync.ScheduleEnabled)
	require.NotNil(t, cfg.Sync.Hour)
	assert.Equal(t, 5, *cfg.Sync.Hour)
	assert.Nil(t, cfg.Sync.Minute)
	require.NotNil(t, cfg.Storage.Backup.MaxKeep)
	assert.Equal(t, 0, *cfg.Storage.Backup.MaxKeep)
	assert.Equal(t, "http://10.1.1.2:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "malformed json", file: "c.json", body: "{"},
		{name: "bad json duration", file: "c.json", body: `{"remote": {"timeout": "later"}}`},
		{name: "malformed toml", file: "c.toml", body: "[remote\nhost ="},
		{name: "bad toml duration", file: "c.toml", body: "[sync]\ncooldown = \"never\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeTempFile(t, tt.file, tt.body))
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile("/nonexistent/config.toml")
	assert.Error(t, err)

	_, err = parseFile("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000`, want: time.Microsecond},
		{name: "invalid string", input: `"x"`, wantErr: true},
		{name: "invalid json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
