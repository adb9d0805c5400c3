// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// LayeredReader adapts a plain Reader to implement ReadLayered.
//
// The wrapped resource signals ordinary end of stream with io.EOF; the
// adapter translates that into StatusEnd and latches: once StatusEnd has
// been reported, subsequent calls return (0, StatusEnd) directly without
// re-invoking the wrapped resource.
//
// The adapter owns its wrapped resource exclusively for its lifetime;
// ownership moves back to the caller via AbandonIntoInner, which
// invalidates the adapter.
type LayeredReader[Inner Reader] struct {
	inner      Inner
	released   bool
	eofAsPush  bool
	lineByLine bool
}

// NewLayeredReader returns a LayeredReader wrapping inner with default
// settings.
func NewLayeredReader[Inner Reader](inner Inner) *LayeredReader[Inner] {
	return &LayeredReader[Inner]{inner: inner}
}

// NewLayeredReaderEOFAsPush returns a LayeredReader wrapping inner that
// reports io.EOF from inner as StatusPush and keeps the stream open,
// continuing to read data on it.
//
// For example, when reading a file, a consumer may wish to keep reading
// past the current end in case additional data is appended.
func NewLayeredReaderEOFAsPush[Inner Reader](inner Inner) *LayeredReader[Inner] {
	return &LayeredReader[Inner]{inner: inner, eofAsPush: true}
}

// NewLayeredReaderLineByLine returns a LayeredReader wrapping an inner that
// produces its input line by line, such as stdin on a terminal. A read
// whose last byte is '\n' reports StatusPush, so buffering consumers act
// on complete lines.
func NewLayeredReaderLineByLine[Inner Reader](inner Inner) *LayeredReader[Inner] {
	return &LayeredReader[Inner]{inner: inner, lineByLine: true}
}

// ReadWithStatus implements ReadLayered.
//
// Mapping: (n, nil) from inner yields (n, StatusActive), or (n, StatusPush)
// in line-by-line mode when the read ends in '\n'; io.EOF yields StatusEnd
// (or StatusPush in EOF-as-push mode, without latching). Transport errors
// release the wrapped resource and propagate unchanged; the stream then
// reads as ended.
func (r *LayeredReader[Inner]) ReadWithStatus(p []byte) (int, Status, error) {
	if r.released {
		return 0, StatusEnd, nil
	}
	n, err := r.inner.Read(p)
	switch {
	case err == nil:
		if n > 0 && r.lineByLine && p[n-1] == '\n' {
			return n, StatusPush, nil
		}
		return n, StatusActive, nil
	case err == EOF:
		if r.eofAsPush {
			return n, StatusPush, nil
		}
		r.released = true
		return n, StatusEnd, nil
	default:
		r.released = true
		return n, StatusActive, err
	}
}

// MinimumBufferSize implements ReadLayered. Nothing structural is known
// about a plain Reader, so any non-empty buffer can make progress.
func (r *LayeredReader[Inner]) MinimumBufferSize() int { return 1 }

// Read implements the plain Reader contract in terms of ReadWithStatus,
// reporting StatusEnd as io.EOF.
func (r *LayeredReader[Inner]) Read(p []byte) (int, error) {
	n, s, err := r.ReadWithStatus(p)
	if err != nil {
		return n, err
	}
	return readResult(n, s)
}

// Abandon releases the wrapped resource; subsequent reads report
// (0, StatusEnd).
func (r *LayeredReader[Inner]) Abandon() {
	r.released = true
}

// AbandonIntoInner invalidates the adapter and returns the wrapped
// resource. Subsequent reads on the adapter report (0, StatusEnd).
func (r *LayeredReader[Inner]) AbandonIntoInner() Inner {
	r.released = true
	return r.inner
}
