// Package replink implements transport channels for exchanging textual
// request/response messages with a single long-lived interpreter server
// process.
//
// A channel carries opaque string payloads; it does not interpret the
// command language inside them. Two variants are provided: Socket, which
// speaks a length-prefixed framing protocol over a TCP loopback or
// Unix-domain stream socket and can recover a broken connection, and Pipe,
// which exchanges single lines over a pair of byte streams shared with a
// co-located subprocess.
//
// Exchanges are strictly synchronous: Send blocks the caller until the
// server's reply has been decoded or an unrecoverable error occurs. The
// protocol carries no message identifiers, so a channel must not have more
// than one exchange in flight at a time, and the methods of a channel are
// not safe for concurrent use.
//
// Use Dial to construct a socket channel for a named server instance with
// platform-appropriate addressing (see the addr package), or NewSocket
// when the endpoint is already resolved.
package replink
