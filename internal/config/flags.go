package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a vault API base URL
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-d session SQLite file
//	-handoff-ttl handoff cache entry lifetime (e.g., "10m")
//	-oauth-path OAuth initiation path
//	-callback-address loopback callback listener address in format [host]:[port]
//	-no-browser do not open the OAuth page in the system browser
//	-log-file log file path
//	-log-level log level
//	-open start location (e.g. a pasted OAuth callback URL)
//	-incognito keep the session in memory only
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault-keeper", flag.ContinueOnError)

	var callbackAddress NetAddress
	var apiAddress string
	var requestTimeout time.Duration
	var sessionDSN string
	var handoffTTL time.Duration
	var oauthPath string
	var noBrowser bool
	var logFile string
	var logLevel string
	var startURL string
	var incognito bool
	var jsonConfigPath string

	fs.StringVar(&apiAddress, "a", "", "Vault API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&sessionDSN, "d", "", "Session SQLite file")
	fs.DurationVar(&handoffTTL, "handoff-ttl", 0, "Handoff cache entry lifetime (e.g., 10m)")
	fs.StringVar(&oauthPath, "oauth-path", "", "OAuth initiation path")
	fs.Var(&callbackAddress, "callback-address", "Callback listener address host:port")
	fs.BoolVar(&noBrowser, "no-browser", false, "Do not open the OAuth page in the browser")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&startURL, "open", "", "Start location, e.g. an OAuth callback URL")
	fs.BoolVar(&incognito, "incognito", false, "Keep the session in memory only")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			StartURL:  startURL,
			Incognito: incognito,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Session: Session{DSN: sessionDSN},
			Handoff: Handoff{TTL: handoffTTL},
		},
		Auth: Auth{
			OAuthPath:       oauthPath,
			CallbackAddress: callbackAddress.String(),
			NoBrowser:       noBrowser,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
