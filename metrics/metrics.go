// Package metrics defines a collector for channel transfer statistics.
//
// An *M records counts of protocol events observed by a channel. A nil *M
// is valid, and discards all events. The methods of an *M are safe for
// concurrent use by multiple goroutines.
package metrics

import "sync/atomic"

// An M counts transfer events for a channel.
type M struct {
	sends      atomic.Int64
	receives   atomic.Int64
	reconnects atomic.Int64
	flushed    atomic.Int64
}

// New creates a new, empty collector.
func New() *M { return new(M) }

// CountSend records one fully-transmitted request frame.
func (m *M) CountSend() {
	if m != nil {
		m.sends.Add(1)
	}
}

// CountReceive records one fully-received reply frame.
func (m *M) CountReceive() {
	if m != nil {
		m.receives.Add(1)
	}
}

// CountReconnect records one reconnect of the underlying transport.
func (m *M) CountReconnect() {
	if m != nil {
		m.reconnects.Add(1)
	}
}

// CountFlushed records n unclaimed frames discarded by a drain pass.
func (m *M) CountFlushed(n int64) {
	if m != nil {
		m.flushed.Add(n)
	}
}

// A Snapshot is a point-in-time copy of the counts collected by an M.
type Snapshot struct {
	Sends      int64 // request frames fully transmitted
	Receives   int64 // reply frames fully received
	Reconnects int64 // transport reconnects during sends
	Flushed    int64 // stray frames discarded by drain passes
}

// Snapshot returns a copy of the current counts. A nil *M reports zeroes.
func (m *M) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		Sends:      m.sends.Load(),
		Receives:   m.receives.Load(),
		Reconnects: m.reconnects.Load(),
		Flushed:    m.flushed.Load(),
	}
}
