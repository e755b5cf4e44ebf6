// Package config reads process-level settings for the server binaries.
package config

import (
	"net"
	"os"
)

// GetEnv returns the value of the environment variable key, or fallback when
// it is unset. A variable set to the empty string is returned as is.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ListenAddr joins the host and port read from hostKey and portKey into a
// dialable address. IPv6 hosts come back bracketed, e.g. "[::]:2222".
func ListenAddr(hostKey, portKey, defaultHost, defaultPort string) string {
	return net.JoinHostPort(GetEnv(hostKey, defaultHost), GetEnv(portKey, defaultPort))
}
