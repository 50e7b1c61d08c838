//go:build !windows

package addr

import (
	"fmt"
	"os"
)

func resolve(id string) (network, address string) {
	if id == "" {
		id = DefaultID
	}
	if path := os.Getenv(EnvSockFile); path != "" {
		return "unix", path
	}
	return "unix", fmt.Sprintf("/tmp/replink-server-%s.sock", id)
}
