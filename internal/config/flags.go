package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalInt is a flag.Value that remembers whether it was set, so that an
// explicit zero can be told apart from "not given".
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// optionalDuration is the time.Duration counterpart of optionalInt.
type optionalDuration struct {
	value *time.Duration
}

func (o *optionalDuration) String() string {
	if o.value == nil {
		return ""
	}
	return o.value.String()
}

func (o *optionalDuration) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// parseServerFlags parses the whitelistd flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json or toml file path with configs
//	-w whitelist file path
//	-backup-dir backup directory
//	-backup-keep number of backups to keep
//	-d audit database DSN
//	-remote-host RCON host
//	-remote-port RCON port
//	-remote-password RCON password
//	-remote-enabled enable the RCON integration
//	-remote-timeout RCON call timeout (e.g., "10s")
//	-sync-hour / -sync-minute scheduled run time
//	-sync-schedule enable the daily scheduled run
//	-sync-remove-extras remove names found only on the game server
//	-sync-cooldown manual sync cooldown (e.g., "30s")
//	-import-max-bytes maximum import size in bytes
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-admin-password-hash bcrypt hash of the admin password
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseServerFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress                             NetAddress
		configPath, whitelistPath, backupDir, dsn string
		remoteHost, remotePassword                string
		remotePort                                int
		remoteEnabled, syncSchedule, removeExtras bool
		remoteTimeout                             time.Duration
		syncCooldown                              optionalDuration
		tokenSignKey, tokenIssuer, adminHash      string
		tokenDuration, requestTimeout             time.Duration
		importMaxBytes                            int64
		backupKeep, syncHour, syncMinute          optionalInt
	)

	fs := flag.NewFlagSet("whitelistd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&whitelistPath, "w", "", "Whitelist file path")
	fs.StringVar(&backupDir, "backup-dir", "", "Backup directory")
	fs.Var(&backupKeep, "backup-keep", "Number of backups to keep")
	fs.StringVar(&dsn, "d", "", "Audit database DSN")
	fs.StringVar(&remoteHost, "remote-host", "", "RCON host")
	fs.IntVar(&remotePort, "remote-port", 0, "RCON port")
	fs.StringVar(&remotePassword, "remote-password", "", "RCON password")
	fs.BoolVar(&remoteEnabled, "remote-enabled", false, "Enable RCON integration")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "RCON call timeout")
	fs.BoolVar(&syncSchedule, "sync-schedule", false, "Enable daily scheduled sync")
	fs.Var(&syncHour, "sync-hour", "Scheduled sync hour (0-23)")
	fs.Var(&syncMinute, "sync-minute", "Scheduled sync minute (0-59)")
	fs.BoolVar(&removeExtras, "sync-remove-extras", false, "Remove names found only on the game server")
	fs.Var(&syncCooldown, "sync-cooldown", "Manual sync cooldown, 0 disables it")
	fs.Int64Var(&importMaxBytes, "import-max-bytes", 0, "Maximum import size in bytes")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&adminHash, "admin-password-hash", "", "Bcrypt hash of the admin password")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			AdminPasswordHash: adminHash,
		},
		Remote: Remote{
			Host:     remoteHost,
			Port:     remotePort,
			Password: remotePassword,
			Enabled:  remoteEnabled,
			Timeout:  remoteTimeout,
		},
		Sync: Sync{
			ScheduleEnabled: syncSchedule,
			Hour:            syncHour.value,
			Minute:          syncMinute.value,
			RemoveExtras:    removeExtras,
			Cooldown:        syncCooldown.value,
		},
		Storage: Storage{
			WhitelistPath: whitelistPath,
			Backup: Backup{
				Dir:     backupDir,
				MaxKeep: backupKeep.value,
			},
			Audit: Audit{DSN: dsn},
		},
		Import: Import{MaxBytes: importMaxBytes},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
	}, nil
}

// parseClientFlags parses the global wlctl flags that precede the
// subcommand and returns the remaining arguments.
//
// Flags:
//
//	-a server URL (e.g., "http://localhost:8080")
//	-c/-config json or toml file path with configs
//	-timeout request timeout
//	-token-file path of the stored bearer token
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	var address, configPath, tokenFile string
	var timeout time.Duration

	fs := flag.NewFlagSet("wlctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Server URL")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout")
	fs.StringVar(&tokenFile, "token-file", "", "Stored token path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
			TokenFile:      tokenFile,
		},
		FilePath: configPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
