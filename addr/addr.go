// Package addr resolves interpreter-server instance identifiers to
// dialable network endpoints.
//
// On Windows the server listens on a TCP loopback port, and the instance
// identifier is the port number (default 7777). On all other platforms the
// server listens on a Unix-domain socket whose path is derived from the
// identifier, unless the REPLINK_SOCK_FILE environment variable supplies
// an explicit path.
package addr

// DefaultID is the instance identifier selected by the empty string on
// platforms that address servers by name rather than by port.
const DefaultID = "default"

// EnvSockFile is the name of the environment variable that overrides the
// socket path on platforms using Unix-domain sockets.
const EnvSockFile = "REPLINK_SOCK_FILE"

// Resolve maps a server instance identifier to a network and address
// suitable for dialing. An empty id selects the platform default.
func Resolve(id string) (network, address string) { return resolve(id) }
