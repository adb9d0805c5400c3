// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// WriteLayered is the write-side capability of the layered protocol: a
// Writer whose termination is explicit and two-moded. Close flushes pending
// output and then ends the stream; Abandon ends the stream without
// flushing, so that error-recovery paths do not push corrupt or partial
// output downstream.
//
// Contract: any Write while CloseState() != CloseStateOpen fails with
// ErrStreamClosed.
type WriteLayered interface {
	Writer

	// Flush pushes buffered-but-unflushed bytes to the wrapped resource.
	// It does not change the CloseState and does not signal structural
	// end. Flushing after Close or Abandon is a no-op success, since
	// nothing can be pending.
	Flush() error

	// Close flushes any pending output, then transitions the CloseState
	// to Closed. The flush effect completes before Close returns, so the
	// flushed bytes are observable downstream before the stream reads as
	// Closed. Idempotent: Close on an already Closed stream succeeds
	// trivially. Close on an Abandoned stream fails with ErrStreamClosed.
	Close() error

	// Abandon discards any pending output without flushing and
	// transitions the CloseState to Abandoned. Idempotent when already
	// Abandoned; fails with ErrStreamClosed when already Closed.
	Abandon() error

	// CloseState reports the current write-side state.
	CloseState() CloseState
}

// Flusher is the interface wrapped writers implement to expose a buffer
// flush, in the manner of bufio.Writer. Layered adapters forward Flush to
// the wrapped resource when it implements Flusher and treat it as a no-op
// otherwise.
type Flusher interface {
	Flush() error
}

// FlushWithStatus applies a read-side Status to the write side of a relay:
//
//   - StatusActive: do nothing
//   - StatusPush: flush any buffers and transmit all data
//   - StatusEnd: flush any buffers and declare the end of the stream
//
// Passing StatusPush makes this behave the same as w.Flush().
func FlushWithStatus(w WriteLayered, status Status) error {
	switch {
	case status.IsEnd():
		return w.Close()
	case status.IsPush():
		return w.Flush()
	default:
		return nil
	}
}

// flushIfPossible forwards to v's Flush when it implements Flusher.
func flushIfPossible(v any) error {
	if f, ok := v.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
