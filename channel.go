package replink

// A Channel represents the ability to exchange request/response messages
// with an interpreter server. A channel does not interpret the contents of
// a message. The methods of a Channel are not safe for concurrent use, and
// a channel carries at most one exchange in flight at a time.
type Channel interface {
	// Send transmits data to the server and blocks until its reply has
	// been received, returning the reply body.
	Send(data string) (string, error)

	// Close signals the server that no further requests will arrive and
	// releases the transport. Closing an already-closed channel is a
	// no-op.
	Close() error

	// Flush discards replies the server has already sent but that no call
	// consumed. It never blocks indefinitely and never reports an error.
	Flush()

	// TryRepair attempts to recover one pending reply after a failed
	// exchange. The error, if any, is returned as an ordinary value and
	// the caller chooses how to react; the channel cannot itself tell
	// whether the stream is still aligned on a frame boundary.
	TryRepair() (string, error)

	// MaxTransmissionLength reports the maximum payload size in bytes
	// accepted by Send.
	MaxTransmissionLength() int

	// SetMaxTransmissionLength changes the maximum payload size in bytes
	// accepted by Send. It panics if n < 1.
	SetMaxTransmissionLength(n int)
}
