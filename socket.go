package replink

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/creachadair/replink/metrics"
	"github.com/creachadair/replink/wire"
)

// A Socket is a Channel connected to the server over a stream socket,
// using the length-prefixed framing defined by the wire package. If a
// transmit fails at the transport level, the socket reconnects to the same
// endpoint and retries the transmit once; a failure while reading a reply
// is never retried, since the protocol cannot match a reply to a resent
// request.
type Socket struct {
	network string
	address string

	dial      func(network, address string) (net.Conn, error)
	setup     func(net.Conn) error
	logf      func(string, ...any)
	interrupt <-chan struct{}
	stats     *metrics.M

	maxLen    int
	conn      net.Conn
	connected bool
}

var _ Channel = (*Socket)(nil)

// NewSocket connects to the server at the resolved endpoint and returns a
// channel ready for use. Connection establishment is bounded by the dial
// timeout; once connected, the channel reads and writes without deadlines.
// The caller must call Close when the channel is no longer needed; the
// error from a deferred Close may be discarded.
func NewSocket(network, address string, opts *SocketOptions) (*Socket, error) {
	s := &Socket{
		network:   network,
		address:   address,
		dial:      opts.dialer(),
		setup:     opts.configure(),
		logf:      opts.logger(),
		interrupt: opts.interrupt(),
		stats:     opts.metrics(),
		maxLen:    opts.maxLength(),
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// start opens a fresh connection to the channel's endpoint and installs it
// as the live transport handle.
func (s *Socket) start() error {
	conn, err := s.dial(s.network, s.address)
	if err != nil {
		return err
	}
	if err := s.setup(conn); err != nil {
		conn.Close()
		return err
	}
	s.conn = conn
	s.connected = true
	return nil
}

// reconnect discards the current connection and dials the same endpoint
// again. It is used only to recover a failed transmit, never while a reply
// is pending.
func (s *Socket) reconnect() error {
	s.conn.Close() // best effort; the handle may already be dead
	s.stats.CountReconnect()
	return s.start()
}

// Send transmits data to the server and blocks until its reply has been
// received and decoded, returning the reply body.
func (s *Socket) Send(data string) (string, error) {
	if err := s.sendOnly([]byte(data)); err != nil {
		return "", err
	}
	return s.receiveOnly()
}

// sendOnly frames and transmits one request payload. On a transport error
// it reconnects and retransmits the whole frame once.
func (s *Socket) sendOnly(payload []byte) error {
	if len(payload) > s.maxLen {
		return &OversizedError{Size: len(payload), Limit: s.maxLen}
	}
	if err := wire.WriteFrame(s.conn, payload); err != nil {
		s.logf("Transmit failed (%v), attempting to reconnect", err)
		if rerr := s.reconnect(); rerr != nil {
			return rerr
		}
		if err := wire.WriteFrame(s.conn, payload); err != nil {
			return err
		}
	}
	s.stats.CountSend()
	return nil
}

// receiveOnly reads and decodes one reply frame.
func (s *Socket) receiveOnly() (string, error) {
	hdr := make([]byte, wire.LengthSize)
	if err := s.readFull(hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", ErrPeerTerminated
		}
		return "", err
	}
	size, err := wire.ParseLength(hdr)
	if err != nil {
		return "", &ProtocolError{Detail: err.Error()}
	}
	body := make([]byte, size)
	if err := s.readFull(body); err != nil {
		return "", err
	}
	s.stats.CountReceive()
	return DecodeResponse(string(body))
}

// readFull fills buf from the connection, accumulating partial reads until
// the length is satisfied. If the channel's interrupt fires while the read
// is blocked, the read is unblocked with a transient deadline and
// ErrReceiveAborted is returned; the deadline is cleared again so that a
// later TryRepair can still collect the reply.
func (s *Socket) readFull(buf []byte) error {
	if s.interrupt == nil {
		_, err := io.ReadFull(s.conn, buf)
		return err
	}
	stop := make(chan struct{})
	fired := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-s.interrupt:
			close(fired)
			s.conn.SetReadDeadline(time.Now())
		case <-stop:
		}
	}()
	_, err := io.ReadFull(s.conn, buf)
	close(stop)
	<-done
	select {
	case <-fired:
		s.conn.SetReadDeadline(time.Time{})
		return ErrReceiveAborted
	default:
		return err
	}
}

// Close tells the server that no further requests will arrive, then
// releases the transport. Closing an already-closed channel is a no-op.
// The transport handle is released even if the goodbye frame cannot be
// written, so the error from a deferred Close may safely be discarded.
func (s *Socket) Close() error {
	if !s.connected {
		return nil
	}
	s.connected = false
	_, werr := s.conn.Write(wire.CloseFrame())
	cerr := s.conn.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Flush drains reply frames the server has already sent but that no call
// consumed, such as a stray reply left behind by an aborted exchange. It
// polls the connection with a short deadline, discarding whole frames
// until the connection goes quiet, and never reports an error. Flush stops
// early if the stream does not parse as frames, since the frame boundaries
// can no longer be trusted.
func (s *Socket) Flush() {
	var drained int64
	defer func() {
		s.conn.SetReadDeadline(time.Time{})
		s.stats.CountFlushed(drained)
	}()
	hdr := make([]byte, wire.LengthSize)
	for {
		s.conn.SetReadDeadline(time.Now().Add(flushPollInterval))
		if _, err := io.ReadFull(s.conn, hdr); err != nil {
			return
		}
		size, err := wire.ParseLength(hdr)
		if err != nil {
			return
		}
		if _, err := io.CopyN(io.Discard, s.conn, int64(size)); err != nil {
			return
		}
		drained++
	}
}

// TryRepair attempts to read one pending reply frame after a failed
// exchange, on the theory that the server may yet deliver it. It performs
// a single frame read with no timeout and no retry, and returns the raw
// reply payload or the error encountered as a value. The channel cannot
// tell whether the stream is still aligned on a frame boundary, so the
// caller decides whether to keep using it; pass a successful result to
// DecodeResponse to interpret it.
func (s *Socket) TryRepair() (string, error) {
	payload, err := wire.ReadFrame(s.conn)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// MaxTransmissionLength reports the maximum payload size in bytes accepted
// by Send.
func (s *Socket) MaxTransmissionLength() int { return s.maxLen }

// SetMaxTransmissionLength changes the maximum payload size in bytes
// accepted by Send. It panics if n < 1.
func (s *Socket) SetMaxTransmissionLength(n int) {
	if n < 1 {
		panic("max transmission length must be positive")
	}
	s.maxLen = n
}
