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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-lookup-url remote account lookup endpoint
//	-lookup-timeout single outbound lookup timeout
//	-max-concurrent-lookups in-flight lookups per batch, negative for no cap
//	-session-ttl idle form session lifetime
//	-banks-file JSON file replacing the built-in bank list
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout, lookupTimeout, sessionTTL time.Duration
	var lookupURL, banksFile, jsonConfigPath string
	var maxConcurrentLookups int

	fs := flag.NewFlagSet("account-checker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&lookupURL, "lookup-url", "", "Account lookup API URL")
	fs.DurationVar(&lookupTimeout, "lookup-timeout", 0, "Single lookup timeout (e.g., 10s)")
	fs.IntVar(&maxConcurrentLookups, "max-concurrent-lookups", 0, "Max in-flight lookups per batch")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle form session lifetime")
	fs.StringVar(&banksFile, "banks-file", "", "JSON bank list file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			BanksFile: banksFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			LookupURL:      lookupURL,
			RequestTimeout: lookupTimeout,
		},
		Workers: Workers{
			MaxConcurrentLookups: maxConcurrentLookups,
			SessionTTL:           sessionTTL,
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
