package replink

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// A Pipe is a Channel that exchanges messages with a server sharing the
// host's standard streams. Messages are framed by line: each request is
// written as a single line with embedded newlines escaped as "\n", and
// each reply is read as a single line. A pipe owns no transport of its
// own, so Close and Flush do nothing and no reconnection is possible.
type Pipe struct {
	w      io.Writer
	rd     *bufio.Reader
	maxLen int
}

var _ Channel = (*Pipe)(nil)

// NewPipe returns a pipe channel that writes requests to w and reads
// replies from r.
func NewPipe(r io.Reader, w io.Writer) *Pipe {
	return &Pipe{w: w, rd: bufio.NewReader(r), maxLen: defaultPipeLimit}
}

// Send implements part of the Channel interface.
func (p *Pipe) Send(data string) (string, error) {
	if len(data) > p.maxLen {
		return "", &OversizedError{Size: len(data), Limit: p.maxLen}
	}
	line := strings.ReplaceAll(data, "\n", `\n`) + "\n"
	if _, err := io.WriteString(p.w, line); err != nil {
		return "", err
	}
	reply, err := p.rd.ReadString('\n')
	if err == io.EOF && reply == "" {
		return "", ErrPeerTerminated
	} else if err != nil && err != io.EOF {
		return "", err
	}
	return DecodeResponse(strings.TrimSuffix(reply, "\n"))
}

// Close implements part of the Channel interface. A pipe does not own its
// underlying streams, so there is nothing to release.
func (p *Pipe) Close() error { return nil }

// Flush implements part of the Channel interface. It is a no-op: a pipe
// reply is consumed by the same call that sent its request.
func (p *Pipe) Flush() {}

var errPipeRepair = errors.New("a pipe channel keeps no frame boundaries to repair")

// TryRepair implements part of the Channel interface. Repair is not
// possible on a pipe; the error is reported as a value per the Channel
// contract.
func (p *Pipe) TryRepair() (string, error) { return "", errPipeRepair }

// MaxTransmissionLength reports the maximum payload size in bytes accepted
// by Send.
func (p *Pipe) MaxTransmissionLength() int { return p.maxLen }

// SetMaxTransmissionLength changes the maximum payload size in bytes
// accepted by Send. It panics if n < 1.
func (p *Pipe) SetMaxTransmissionLength(n int) {
	if n < 1 {
		panic("max transmission length must be positive")
	}
	p.maxLen = n
}
