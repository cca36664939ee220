package serverapi

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
)

// DefaultListenAddr is what ResolveListenAddr returns when --listen is not
// given and PORT is unset; an empty --listen is treated as the bare IP
// 127.0.0.1, so a valid PORT replaces the port.
const DefaultListenAddr = "127.0.0.1:3000"

const defaultPort = "3000"

// ResolveListenAddr interprets the --listen flag value the way the server
// CLI does: a bare port number binds 127.0.0.1:<port>; a bare IP binds
// <ip>:3000, or <ip>:$PORT if PORT is set to a valid port number; anything
// else is parsed as host:port directly. An invalid $PORT is ignored with a
// warning, never treated as fatal.
func ResolveListenAddr(listen string) (string, error) {
	if listen == "" {
		listen = "127.0.0.1"
	}

	if _, err := strconv.ParseUint(listen, 10, 16); err == nil {
		return net.JoinHostPort("127.0.0.1", listen), nil
	}

	if ip := net.ParseIP(listen); ip != nil {
		port := defaultPort
		if envPort := os.Getenv("PORT"); envPort != "" {
			if _, err := strconv.ParseUint(envPort, 10, 16); err == nil {
				port = envPort
			} else {
				log.Printf("invalid PORT environment variable %q, ignoring", envPort)
			}
		}
		return net.JoinHostPort(listen, port), nil
	}

	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return "", fmt.Errorf("invalid --listen value %q: %w", listen, err)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return "", fmt.Errorf("invalid port in --listen value %q", listen)
	}
	return net.JoinHostPort(host, port), nil
}
