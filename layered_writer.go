// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// LayeredWriter adapts a plain Writer to implement WriteLayered.
//
// The adapter is pure pass-through: it performs no buffering of its own, so
// every accepted Write has already been forwarded to the wrapped resource.
// Flush forwards to the wrapped resource when it implements Flusher (as
// bufio.Writer does) and is a no-op otherwise.
//
// A transport error from the wrapped resource's Write or Flush abandons the
// stream: the adapter transitions to CloseStateAbandoned and subsequent
// writes fail with ErrStreamClosed.
//
// The adapter owns its wrapped resource exclusively for its lifetime;
// ownership moves back to the caller via CloseIntoInner or
// AbandonIntoInner, which invalidate the adapter.
type LayeredWriter[Inner Writer] struct {
	inner Inner
	state CloseState
}

// NewLayeredWriter returns a LayeredWriter wrapping inner.
func NewLayeredWriter[Inner Writer](inner Inner) *LayeredWriter[Inner] {
	return &LayeredWriter[Inner]{inner: inner}
}

// Write forwards to the wrapped resource while the stream is Open and fails
// with ErrStreamClosed otherwise.
func (w *LayeredWriter[Inner]) Write(p []byte) (int, error) {
	if !w.state.IsOpen() {
		return 0, ErrStreamClosed
	}
	n, err := w.inner.Write(p)
	if err != nil {
		w.state = CloseStateAbandoned
	}
	return n, err
}

// Flush implements WriteLayered. While Open it forwards to the wrapped
// resource's Flush; after Close or Abandon it is a no-op success, since
// nothing can be pending.
func (w *LayeredWriter[Inner]) Flush() error {
	if !w.state.IsOpen() {
		return nil
	}
	if err := flushIfPossible(w.inner); err != nil {
		w.state = CloseStateAbandoned
		return err
	}
	return nil
}

// Close implements WriteLayered: flush the wrapped resource, then latch
// Closed. The flush effect completes before Close returns. Idempotent when
// already Closed; ErrStreamClosed when Abandoned.
func (w *LayeredWriter[Inner]) Close() error {
	switch w.state {
	case CloseStateClosed:
		return nil
	case CloseStateAbandoned:
		return ErrStreamClosed
	}
	if err := flushIfPossible(w.inner); err != nil {
		w.state = CloseStateAbandoned
		return err
	}
	w.state = CloseStateClosed
	return nil
}

// Abandon implements WriteLayered: latch Abandoned without flushing.
// Idempotent when already Abandoned; ErrStreamClosed when Closed.
func (w *LayeredWriter[Inner]) Abandon() error {
	switch w.state {
	case CloseStateAbandoned:
		return nil
	case CloseStateClosed:
		return ErrStreamClosed
	}
	w.state = CloseStateAbandoned
	return nil
}

// CloseState implements WriteLayered.
func (w *LayeredWriter[Inner]) CloseState() CloseState { return w.state }

// Inner returns the wrapped resource for pass-through introspection
// (terminal capability, raw descriptors). Writing to it directly while the
// adapter is in use is inadvisable.
func (w *LayeredWriter[Inner]) Inner() Inner { return w.inner }

// CloseIntoInner invalidates the adapter and returns the wrapped resource,
// flushing it first if the stream is still Open. Callers needing flushed
// semantics on an already-terminated adapter are responsible for having
// called Close before the terminal transition.
func (w *LayeredWriter[Inner]) CloseIntoInner() (Inner, error) {
	if w.state.IsOpen() {
		if err := flushIfPossible(w.inner); err != nil {
			w.state = CloseStateAbandoned
			return w.inner, err
		}
		w.state = CloseStateClosed
	}
	return w.inner, nil
}

// AbandonIntoInner invalidates the adapter and returns the wrapped resource
// without flushing, regardless of CloseState.
func (w *LayeredWriter[Inner]) AbandonIntoInner() Inner {
	if w.state.IsOpen() {
		w.state = CloseStateAbandoned
	}
	return w.inner
}
