package replink_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/replink"
	"github.com/google/go-cmp/cmp"
)

func TestPipe(t *testing.T) {
	in := strings.NewReader("success pong\nfailure <timeout>\n")
	var out bytes.Buffer
	p := replink.NewPipe(in, &out)

	got, err := p.Send("ping\nover two lines")
	if err != nil {
		t.Errorf("Send: unexpected error: %v", err)
	}
	if got != "pong" {
		t.Errorf("Send: got %#q, want %#q", got, "pong")
	}

	// Embedded newlines must be escaped so the request stays one line.
	if diff := cmp.Diff(`ping\nover two lines`+"\n", out.String()); diff != "" {
		t.Errorf("Transmitted line: (-want, +got)\n%s", diff)
	}

	if _, err := p.Send("again"); !errors.Is(err, replink.ErrRemoteTimeout) {
		t.Errorf("Send: got error %v, want %v", err, replink.ErrRemoteTimeout)
	}

	// The input is exhausted, so the peer is gone.
	if _, err := p.Send("anyone home"); !errors.Is(err, replink.ErrPeerTerminated) {
		t.Errorf("Send: got error %v, want %v", err, replink.ErrPeerTerminated)
	}
}

func TestPipeLimit(t *testing.T) {
	var out bytes.Buffer
	p := replink.NewPipe(strings.NewReader(""), &out)
	if got := p.MaxTransmissionLength(); got != 10_000 {
		t.Errorf("MaxTransmissionLength: got %d, want 10000", got)
	}

	p.SetMaxTransmissionLength(4)
	_, err := p.Send("hello")
	var oe *replink.OversizedError
	if !errors.As(err, &oe) {
		t.Fatalf("Send: got error %v, want an *OversizedError", err)
	}
	if oe.Size != 5 || oe.Limit != 4 {
		t.Errorf("OversizedError: got size %d limit %d, want 5 and 4", oe.Size, oe.Limit)
	}
	if out.Len() != 0 {
		t.Errorf("Transport saw %d bytes, wanted none", out.Len())
	}
}

func TestPipeLifecycle(t *testing.T) {
	p := replink.NewPipe(strings.NewReader(""), new(bytes.Buffer))

	// A pipe owns no transport: Close and Flush do nothing, and repair is
	// reported as impossible without panicking.
	if err := p.Close(); err != nil {
		t.Errorf("Close: unexpected error: %v", err)
	}
	p.Flush()
	if got, err := p.TryRepair(); err == nil {
		t.Errorf("TryRepair: got %#q, wanted error", got)
	}
}
