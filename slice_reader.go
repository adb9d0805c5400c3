// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// SliceReader adapts a byte slice to implement ReadLayered.
//
// Unlike bytes.Reader, which needs one extra read to report io.EOF, a
// SliceReader reports StatusEnd on the same call that drains the slice.
type SliceReader struct {
	s []byte
}

// NewSliceReader returns a SliceReader reading from b.
func NewSliceReader(b []byte) *SliceReader {
	return &SliceReader{s: b}
}

// ReadWithStatus implements ReadLayered.
func (r *SliceReader) ReadWithStatus(p []byte) (int, Status, error) {
	n := copy(p, r.s)
	r.s = r.s[n:]
	if len(r.s) == 0 {
		return n, StatusEnd, nil
	}
	return n, StatusActive, nil
}

// MinimumBufferSize implements ReadLayered.
func (r *SliceReader) MinimumBufferSize() int { return 1 }

// SuggestedBufferSize implements Bufferable. Reads are memory copies, so
// there is no need to buffer.
func (r *SliceReader) SuggestedBufferSize() int { return 0 }

// Read implements the plain Reader contract.
func (r *SliceReader) Read(p []byte) (int, error) {
	if len(r.s) == 0 {
		return 0, EOF
	}
	n := copy(p, r.s)
	r.s = r.s[n:]
	return n, nil
}

// Abandon drops the remaining bytes; subsequent reads report
// (0, StatusEnd).
func (r *SliceReader) Abandon() {
	r.s = nil
}

// Len returns the number of bytes not yet read.
func (r *SliceReader) Len() int { return len(r.s) }
