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

// parseFlags parses the host flags from args.
//
// Flags:
//
//	-id deployment identifier
//	-p base properties file
//	-r bundled resource directory
//	-o output file for the merged properties
//	-version-tag version reported by the HTTP view
//	-fetch-timeout URL fetch timeout (e.g., "10s")
//	-a HTTP view address in format [host]:[port]
//	-request-timeout HTTP view request timeout (e.g., "30s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var deploymentID, propertiesPath, resourceDir, outputPath, version string
	var jsonConfigPath string
	var fetchTimeout, requestTimeout time.Duration

	fs := flag.NewFlagSet("extconfig", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&deploymentID, "id", "", "Deployment identifier")
	fs.StringVar(&propertiesPath, "p", "", "Base properties file")
	fs.StringVar(&resourceDir, "r", "", "Bundled resource directory")
	fs.StringVar(&outputPath, "o", "", "Output file for the merged properties")
	fs.StringVar(&version, "version-tag", "", "Version reported by the HTTP view")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "URL fetch timeout (e.g., 10s)")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeploymentID:   deploymentID,
			PropertiesPath: propertiesPath,
			ResourceDir:    resourceDir,
			OutputPath:     outputPath,
			Version:        version,
		},
		Adapter: Adapter{
			RequestTimeout: fetchTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// An empty host binds all interfaces; otherwise the host must be "localhost"
// or an IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
