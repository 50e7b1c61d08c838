// Package wire implements the length-prefixed framing used to exchange
// messages with an interpreter server over a stream socket.
//
// Each frame is sent in the format:
//
//	<length><payload>
//
// where <length> is the payload size in bytes as ASCII decimal digits,
// right-justified in a fixed field of 10 bytes and padded with leading
// spaces. For example, the message "hello" is transmitted as:
//
//	"         5hello"
//
// The fixed-width header lets the receiver locate the next frame boundary
// with two exact-length reads and no delimiter escaping, at the cost of
// bounding a single frame to fewer than 10^10 bytes.
package wire

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LengthSize is the exact width in bytes of a frame length header.
const LengthSize = 10

// CloseToken is the reserved payload that tells the peer no further
// requests will arrive on this connection.
const CloseToken = "$close"

// EncodeLength renders n as a frame length header: ASCII decimal,
// right-justified in LengthSize bytes, padded with leading spaces.
func EncodeLength(n int) []byte { return fmt.Appendf(nil, "%*d", LengthSize, n) }

// ParseLength decodes a frame length header produced by EncodeLength.
func ParseLength(hdr []byte) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(string(hdr)))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid length header %q", hdr)
	}
	return n, nil
}

// CloseFrame returns the exact encoding of the close control frame.
func CloseFrame() []byte { return append(EncodeLength(len(CloseToken)), CloseToken...) }

// WriteFrame transmits payload on w preceded by its length header. The
// header and the payload are issued as two sequential writes, so a failure
// may leave a partial frame on the wire; the caller decides whether the
// connection can be reused.
func WriteFrame(w io.Writer, payload []byte) error {
	if _, err := w.Write(EncodeLength(len(payload))); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one frame from r: exactly LengthSize header bytes, then
// exactly the declared number of payload bytes, accumulating partial reads
// until the length is satisfied. An io.EOF means the stream ended before
// any header bytes arrived.
func ReadFrame(r io.Reader) ([]byte, error) {
	hdr := make([]byte, LengthSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, err
	}
	size, err := ParseLength(hdr)
	if err != nil {
		return nil, err
	}

	// We need ReadFull here because the payload may arrive across several
	// reads from the underlying source.
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
