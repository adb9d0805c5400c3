// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// LayeredDuplexer adapts a duplex resource (Reader + Writer) to implement
// both ReadLayered and WriteLayered over the single wrapped value.
//
// The read-side end latch and the write-side CloseState are independent,
// modeling the half-close semantics of pipes and sockets: Close or Abandon
// on the write side does not change the Status sequence of subsequent
// reads, and reaching StatusEnd on the read side does not change the
// CloseState. A transport error latches only the side it occurred on.
//
// The adapter owns its wrapped resource exclusively for its lifetime;
// ownership moves back to the caller via CloseIntoInner or
// AbandonIntoInner, which invalidate both sides.
type LayeredDuplexer[Inner ReadWriter] struct {
	inner      Inner
	readEnded  bool
	state      CloseState
	eofAsPush  bool
	lineByLine bool
}

// NewLayeredDuplexer returns a LayeredDuplexer wrapping inner with default
// settings.
func NewLayeredDuplexer[Inner ReadWriter](inner Inner) *LayeredDuplexer[Inner] {
	return &LayeredDuplexer[Inner]{inner: inner}
}

// NewLayeredDuplexerEOFAsPush returns a LayeredDuplexer whose read side
// reports io.EOF from inner as StatusPush and keeps the stream open,
// continuing to read data on it.
func NewLayeredDuplexerEOFAsPush[Inner ReadWriter](inner Inner) *LayeredDuplexer[Inner] {
	return &LayeredDuplexer[Inner]{inner: inner, eofAsPush: true}
}

// NewLayeredDuplexerLineByLine returns a LayeredDuplexer whose read side
// produces input line by line, such as an interactive terminal: a read
// whose last byte is '\n' reports StatusPush.
func NewLayeredDuplexerLineByLine[Inner ReadWriter](inner Inner) *LayeredDuplexer[Inner] {
	return &LayeredDuplexer[Inner]{inner: inner, lineByLine: true}
}

// ReadWithStatus implements ReadLayered with the same mapping as
// LayeredReader. The write-side CloseState has no effect here.
func (d *LayeredDuplexer[Inner]) ReadWithStatus(p []byte) (int, Status, error) {
	if d.readEnded {
		return 0, StatusEnd, nil
	}
	n, err := d.inner.Read(p)
	switch {
	case err == nil:
		if n > 0 && d.lineByLine && p[n-1] == '\n' {
			return n, StatusPush, nil
		}
		return n, StatusActive, nil
	case err == EOF:
		if d.eofAsPush {
			return n, StatusPush, nil
		}
		d.readEnded = true
		return n, StatusEnd, nil
	default:
		d.readEnded = true
		return n, StatusActive, err
	}
}

// MinimumBufferSize implements ReadLayered.
func (d *LayeredDuplexer[Inner]) MinimumBufferSize() int { return 1 }

// Read implements the plain Reader contract in terms of ReadWithStatus.
func (d *LayeredDuplexer[Inner]) Read(p []byte) (int, error) {
	n, s, err := d.ReadWithStatus(p)
	if err != nil {
		return n, err
	}
	return readResult(n, s)
}

// Write forwards to the wrapped resource while the write side is Open and
// fails with ErrStreamClosed otherwise. The read-side latch has no effect
// here.
func (d *LayeredDuplexer[Inner]) Write(p []byte) (int, error) {
	if !d.state.IsOpen() {
		return 0, ErrStreamClosed
	}
	n, err := d.inner.Write(p)
	if err != nil {
		d.state = CloseStateAbandoned
	}
	return n, err
}

// Flush implements WriteLayered with LayeredWriter semantics.
func (d *LayeredDuplexer[Inner]) Flush() error {
	if !d.state.IsOpen() {
		return nil
	}
	if err := flushIfPossible(d.inner); err != nil {
		d.state = CloseStateAbandoned
		return err
	}
	return nil
}

// Close implements WriteLayered: flush, then latch the write side Closed.
// The read side is unaffected and may continue to produce bytes.
func (d *LayeredDuplexer[Inner]) Close() error {
	switch d.state {
	case CloseStateClosed:
		return nil
	case CloseStateAbandoned:
		return ErrStreamClosed
	}
	if err := flushIfPossible(d.inner); err != nil {
		d.state = CloseStateAbandoned
		return err
	}
	d.state = CloseStateClosed
	return nil
}

// Abandon implements WriteLayered: latch the write side Abandoned without
// flushing. The read side is unaffected.
func (d *LayeredDuplexer[Inner]) Abandon() error {
	switch d.state {
	case CloseStateAbandoned:
		return nil
	case CloseStateClosed:
		return ErrStreamClosed
	}
	d.state = CloseStateAbandoned
	return nil
}

// CloseState implements WriteLayered. It reports the write side only.
func (d *LayeredDuplexer[Inner]) CloseState() CloseState { return d.state }

// Inner returns the wrapped resource for pass-through introspection.
func (d *LayeredDuplexer[Inner]) Inner() Inner { return d.inner }

// CloseIntoInner invalidates both sides and returns the wrapped resource,
// flushing it first if the write side is still Open.
func (d *LayeredDuplexer[Inner]) CloseIntoInner() (Inner, error) {
	d.readEnded = true
	if d.state.IsOpen() {
		if err := flushIfPossible(d.inner); err != nil {
			d.state = CloseStateAbandoned
			return d.inner, err
		}
		d.state = CloseStateClosed
	}
	return d.inner, nil
}

// AbandonIntoInner invalidates both sides and returns the wrapped resource
// without flushing, regardless of CloseState.
func (d *LayeredDuplexer[Inner]) AbandonIntoInner() Inner {
	d.readEnded = true
	if d.state.IsOpen() {
		d.state = CloseStateAbandoned
	}
	return d.inner
}
