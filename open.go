package replink

import "github.com/creachadair/replink/addr"

// Dial resolves the endpoint for the named server instance and returns a
// connected socket channel. The empty string selects the platform default
// instance. Endpoint resolution is platform-specific; see the addr
// package.
func Dial(id string, opts *SocketOptions) (*Socket, error) {
	network, address := addr.Resolve(id)
	return NewSocket(network, address, opts)
}
