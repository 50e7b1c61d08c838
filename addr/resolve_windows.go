//go:build windows

package addr

import "net"

const defaultPort = "7777"

func resolve(id string) (network, address string) {
	if id == "" {
		id = defaultPort
	}
	return "tcp", net.JoinHostPort("localhost", id)
}
