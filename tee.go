// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// TeeReader returns a ReadLayered that writes to w what it reads from r.
// It mirrors io.TeeReader but propagates the layered status:
//   - Every (n, status) result from r is delivered unchanged after the
//     mirrored bytes have been written to w.
//   - If writing to w fails, that error is returned.
//   - Short writes to w are reported as io.ErrShortWrite.
//
// The tee adds no buffering and does not translate statuses; w observes
// exactly the bytes the consumer observes.
func TeeReader(r ReadLayered, w Writer) ReadLayered {
	return teeReader{r: r, w: w}
}

// TeeReaderPolicy is like TeeReader but additionally applies status
// boundaries to the side writer w, as decided by policy:
//   - StatusPush with PolicyFlush: w is flushed (when it implements
//     Flusher) before the result is delivered.
//   - StatusEnd with PolicyClose: w is closed (when it implements Closer)
//     before the final result is delivered.
//
// A nil policy is identical to TeeReader.
func TeeReaderPolicy(r ReadLayered, w Writer, policy StatusPolicy) ReadLayered {
	if policy == nil {
		return TeeReader(r, w)
	}
	return &teeReaderWithPolicy{r: r, w: w, p: policy}
}

type teeReader struct {
	r ReadLayered
	w Writer
}

func (t teeReader) ReadWithStatus(p []byte) (int, Status, error) {
	n, s, err := t.r.ReadWithStatus(p)
	if n > 0 {
		if nw, ew := t.w.Write(p[:n]); ew != nil {
			return nw, s, ew
		} else if nw != n {
			return nw, s, ErrShortWrite
		}
	}
	return n, s, err
}

func (t teeReader) MinimumBufferSize() int { return t.r.MinimumBufferSize() }

func (t teeReader) Read(p []byte) (int, error) {
	n, s, err := t.ReadWithStatus(p)
	if err != nil {
		return n, err
	}
	return readResult(n, s)
}

type teeReaderWithPolicy struct {
	r ReadLayered
	w Writer
	p StatusPolicy

	// ended latches after the first StatusEnd so the side writer is not
	// closed twice when callers keep observing the idempotent end state.
	ended bool
}

func (t *teeReaderWithPolicy) ReadWithStatus(p []byte) (int, Status, error) {
	n, s, err := t.r.ReadWithStatus(p)
	if n > 0 {
		if nw, ew := t.w.Write(p[:n]); ew != nil {
			return nw, s, ew
		} else if nw != n {
			return nw, s, ErrShortWrite
		}
	}
	if err != nil {
		return n, s, err
	}

	switch {
	case s.IsEnd():
		if !t.ended {
			t.ended = true
			if t.p.OnEnd(OpTeeEnd) == PolicyClose {
				if c, ok := t.w.(Closer); ok {
					if ce := c.Close(); ce != nil {
						return n, s, ce
					}
				}
			}
		}
	case s.IsPush():
		if t.p.OnPush(OpTeePush) == PolicyFlush {
			if fe := flushIfPossible(t.w); fe != nil {
				return n, s, fe
			}
		}
	}
	return n, s, nil
}

func (t *teeReaderWithPolicy) MinimumBufferSize() int { return t.r.MinimumBufferSize() }

func (t *teeReaderWithPolicy) Read(p []byte) (int, error) {
	n, s, err := t.ReadWithStatus(p)
	if err != nil {
		return n, err
	}
	return readResult(n, s)
}
