package replink

import (
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/creachadair/replink/metrics"
)

const logFlags = log.LstdFlags | log.Lshortfile

// Default transmission limits and timing for the channel variants.
const (
	defaultSocketLimit = 1_000_000
	defaultPipeLimit   = 10_000

	defaultDialTimeout = 1 * time.Second
	flushPollInterval  = 100 * time.Millisecond
)

// SocketOptions control the behaviour of a channel created by NewSocket or
// Dial. A nil *SocketOptions provides sensible defaults.
type SocketOptions struct {
	// If not nil, send debug logs to this writer.
	LogWriter io.Writer

	// Bounds connection establishment, for the initial connect and for
	// each reconnect. A value less than or equal to zero uses one second.
	// The bound applies to the connect phase only; reads and writes on an
	// established channel do not time out.
	DialTimeout time.Duration

	// If not nil, this function is called to open the transport
	// connection. By default a net.Dialer bounded by DialTimeout is used.
	Dial func(network, address string) (net.Conn, error)

	// If not nil, this function is called on each newly-opened connection
	// before it is used, for platform-specific socket tuning. An error
	// aborts the connect.
	Configure func(conn net.Conn) error

	// If not nil, a value received on (or a close of) this channel while a
	// reply is being read aborts the read with ErrReceiveAborted.
	Interrupt <-chan struct{}

	// Maximum payload size in bytes accepted by Send. A value less than 1
	// uses the default of 1000000.
	MaxTransmissionLength int

	// If not nil, transfer statistics are recorded here.
	Metrics *metrics.M
}

func (o *SocketOptions) logger() func(string, ...any) {
	if o == nil || o.LogWriter == nil {
		return func(string, ...any) {}
	}
	logger := log.New(o.LogWriter, "[replink.Socket] ", logFlags)
	return func(msg string, args ...any) { logger.Output(2, fmt.Sprintf(msg, args...)) }
}

func (o *SocketOptions) dialTimeout() time.Duration {
	if o == nil || o.DialTimeout <= 0 {
		return defaultDialTimeout
	}
	return o.DialTimeout
}

func (o *SocketOptions) dialer() func(network, address string) (net.Conn, error) {
	if o == nil || o.Dial == nil {
		d := &net.Dialer{Timeout: o.dialTimeout()}
		return d.Dial
	}
	return o.Dial
}

func (o *SocketOptions) configure() func(net.Conn) error {
	if o == nil || o.Configure == nil {
		return func(net.Conn) error { return nil }
	}
	return o.Configure
}

func (o *SocketOptions) interrupt() <-chan struct{} {
	if o == nil {
		return nil
	}
	return o.Interrupt
}

func (o *SocketOptions) maxLength() int {
	if o == nil || o.MaxTransmissionLength < 1 {
		return defaultSocketLimit
	}
	return o.MaxTransmissionLength
}

func (o *SocketOptions) metrics() *metrics.M {
	if o == nil {
		return nil
	}
	return o.Metrics
}
