package replink

import (
	"errors"
	"fmt"
)

// ErrPeerTerminated is reported when the server hung up without sending a
// reply. The exchange cannot be recovered by reconnecting, since the reply
// died with the server.
var ErrPeerTerminated = errors.New("the server unexpectedly terminated")

// ErrReceiveAborted is reported when an interrupt arrived while a reply
// was being read. The stream may be desynchronized; if the caller is sure
// the reply is still forthcoming, TryRepair may recover it.
var ErrReceiveAborted = errors.New("receive aborted; call TryRepair if the reply is still expected")

// ErrRemoteTimeout is reported when the server gave up waiting on a
// command. Restart the server with a larger timeout setting to allow
// longer-running commands.
var ErrRemoteTimeout = errors.New("the server reported a timeout; restart it with a larger timeout setting")

// An OversizedError reports a payload that exceeds the channel's maximum
// transmission length. It is returned before any bytes reach the wire.
type OversizedError struct {
	Size  int // the actual payload size in bytes
	Limit int // the configured maximum
}

func (e *OversizedError) Error() string {
	return fmt.Sprintf("payload size %d exceeds max transmission length %d", e.Size, e.Limit)
}

// A RemoteError is a failure the server itself reported in its reply. It
// is not a transport problem; the channel remains usable.
type RemoteError struct {
	Message string // the failure body, verbatim from the server
}

func (e *RemoteError) Error() string { return "server reported failure: " + e.Message }

// A ProtocolError indicates that the byte stream no longer parses as
// frames or as a valid status line. The channel is likely desynchronized
// and is not automatically recovered.
type ProtocolError struct {
	Detail string
}

func (e *ProtocolError) Error() string { return "protocol violation: " + e.Detail }

// protoErrorf returns a *ProtocolError with a formatted detail message.
func protoErrorf(msg string, args ...any) error {
	return &ProtocolError{Detail: fmt.Sprintf(msg, args...)}
}
