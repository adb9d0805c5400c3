// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

import "io"

// ReadLayered is the read-side capability of the layered protocol: a Reader
// that additionally reports a Status with every read, so that a layer's
// logical end of content can be observed without overloading the byte count
// or assuming the transport below has closed.
type ReadLayered interface {
	Reader

	// ReadWithStatus is like Read, but also returns a Status, and zero is
	// not special-cased: (0, StatusActive, nil) means no progress was made
	// on this call, not end of stream. StatusEnd is returned exactly when
	// no further bytes will ever be produced by this logical stream; after
	// the first (0, StatusEnd) result, every subsequent call must return
	// (0, StatusEnd) again.
	ReadWithStatus(p []byte) (n int, status Status, err error)

	// MinimumBufferSize hints the smallest buffer the layer needs to make
	// progress decoding one unit. Callers sizing buffers should respect it
	// to avoid needless partial-unit reads. Layers with no structural
	// constraint return 1.
	MinimumBufferSize() int
}

// maxConsecutiveEmptyReads bounds how many (0, StatusActive) results in a
// row the fixed-length helpers tolerate before reporting ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// ReadFullWithStatus reads exactly len(buf) bytes from r using the status
// protocol, avoiding the extra terminating read a plain io.ReadFull needs.
//
// The returned status is StatusEnd if the stream ended on the call that
// completed the buffer, StatusActive otherwise (pushes observed mid-buffer
// are not reported). If StatusEnd arrives before the buffer is full, the
// bytes read so far and ErrUnexpectedEOF are returned.
func ReadFullWithStatus(r ReadLayered, buf []byte) (n int, status Status, err error) {
	status = StatusActive
	empty := 0
	for n < len(buf) {
		nn, s, er := r.ReadWithStatus(buf[n:])
		n += nn
		if er != nil {
			return n, status, er
		}
		if s.IsEnd() {
			if n < len(buf) {
				return n, StatusEnd, ErrUnexpectedEOF
			}
			return n, StatusEnd, nil
		}
		if nn == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return n, status, ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return n, status, nil
}

// ReadAllWithStatus reads from r until StatusEnd and returns all bytes read.
// Buffer growth is guided by the source's SuggestedBufferSize (when it
// implements Bufferable) and never leaves less spare capacity than its
// MinimumBufferSize.
//
// Unlike io.ReadAll, a successful result carries no error: StatusEnd is the
// end signal, not EOF.
func ReadAllWithStatus(r ReadLayered) ([]byte, error) {
	min := r.MinimumBufferSize()
	if min < 1 {
		min = 1
	}
	size := suggestedBufferSize(r)
	if size < min {
		size = min
	}

	buf := make([]byte, 0, size)
	for {
		if cap(buf)-len(buf) < min {
			grown := make([]byte, len(buf), 2*cap(buf)+min)
			copy(grown, buf)
			buf = grown
		}
		n, s, err := r.ReadWithStatus(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			return buf, err
		}
		if s.IsEnd() {
			return buf, nil
		}
	}
}

// readResult translates a ReadWithStatus result into a plain io.Reader
// result, where end of stream is reported as io.EOF. A (0, StatusActive)
// result stays (0, nil); pushes are not reported.
func readResult(n int, status Status) (int, error) {
	if status.IsEnd() {
		return n, io.EOF
	}
	return n, nil
}
