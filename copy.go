// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// Copy copies from src to dst until src reports StatusEnd or an error
// occurs.
//
// layerio semantics:
//   - StatusPush: dst.Flush() is called at the boundary, so actionable
//     data is not held back by buffering layers.
//   - StatusEnd: Copy returns (written, nil) leaving dst Open; the caller
//     decides between Close and Abandon. Use CopyPolicy with
//     PushThroughPolicy to close dst automatically.
//   - A (0, StatusActive) read means "no progress now"; Copy returns
//     (written, nil) rather than spinning inside a helper.
//
// Transport errors from either side are returned unchanged; a failed
// dst.Write already transitioned dst to Abandoned per the WriteLayered
// contract of the layered adapters.
func Copy(dst WriteLayered, src ReadLayered) (written int64, err error) {
	return copyBuffer(dst, src, nil, nil)
}

// CopyPolicy is like Copy but consults policy at status boundaries.
//
//   - nil policy: identical to Copy (flush on push, leave dst open at end)
//   - non-nil: OnPush may flush (PolicyFlush), return early (PolicyReturn)
//     or skip the boundary; OnEnd may close dst (PolicyClose) before the
//     final return.
func CopyPolicy(dst WriteLayered, src ReadLayered, policy StatusPolicy) (written int64, err error) {
	return copyBuffer(dst, src, nil, policy)
}

// CopyBuffer is like Copy but stages through buf.
// If buf is nil, a stack buffer is used.
// If buf has zero length, CopyBuffer panics.
// If buf is shorter than src's MinimumBufferSize, ErrShortBuffer is
// returned: the source could not be guaranteed to make progress.
func CopyBuffer(dst WriteLayered, src ReadLayered, buf []byte) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf, nil)
}

// CopyBufferPolicy is like CopyBuffer but consults policy at status
// boundaries.
//
//   - nil policy: identical to CopyBuffer
func CopyBufferPolicy(dst WriteLayered, src ReadLayered, buf []byte, policy StatusPolicy) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBufferPolicy")
	}
	return copyBuffer(dst, src, buf, policy)
}

// Buffer is the default stack buffer used by Copy when none is supplied.
type Buffer [32 * 1024]byte

func copyBuffer(dst WriteLayered, src ReadLayered, buf []byte, policy StatusPolicy) (written int64, err error) {
	var local Buffer
	if buf == nil {
		buf = local[:]
	}
	if len(buf) < src.MinimumBufferSize() {
		return 0, ErrShortBuffer
	}

	for {
		nr, s, er := src.ReadWithStatus(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			if nw > 0 {
				written += int64(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nw != nr {
				return written, ErrShortWrite
			}
		}
		if er != nil {
			return written, er
		}

		switch {
		case s.IsEnd():
			if onEnd(policy, OpCopyEnd) == PolicyClose {
				if ce := dst.Close(); ce != nil {
					return written, ce
				}
			}
			return written, nil
		case s.IsPush():
			switch onPush(policy, OpCopyPush) {
			case PolicyFlush:
				if fe := dst.Flush(); fe != nil {
					return written, fe
				}
			case PolicyReturn:
				return written, nil
			}
			// A zero-progress push is a pure delivery boundary; return
			// rather than spin on a source that keeps reporting it.
			if nr == 0 {
				return written, nil
			}
		default:
			if nr == 0 {
				return written, nil
			}
		}
	}
}

// onPush consults policy at a push boundary; nil policy flushes.
func onPush(policy StatusPolicy, op Op) PolicyAction {
	if policy == nil {
		return PolicyFlush
	}
	return policy.OnPush(op)
}

// onEnd consults policy at an end boundary; nil policy leaves the
// destination open.
func onEnd(policy StatusPolicy, op Op) PolicyAction {
	if policy == nil {
		return PolicyContinue
	}
	return policy.OnEnd(op)
}
