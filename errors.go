// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

import "errors"

// layerio introduces one terminal error for the write-side state machine.
//
// Mental model:
//   - ErrStreamClosed: the write side has left the Open state (Closed or
//     Abandoned) or the adapter has been unwrapped; the call can never
//     succeed and must not be retried.
//
// Notes:
//   - Transport errors originating in the wrapped resource are propagated
//     unchanged; layerio never retries or suppresses them.
//   - An early StatusEnd inside a fixed-length read surfaces as
//     io.ErrUnexpectedEOF (re-exported as ErrUnexpectedEOF).

// ErrStreamClosed means "this stream has already ended".
// It is returned by writes and flushes-with-intent after Close or Abandon,
// and by state transitions that would leave a terminal CloseState.
var ErrStreamClosed = errors.New("io: stream closed")

// IsStreamClosed reports whether err carries the write-after-close semantic.
// It returns true for ErrStreamClosed and wrappers (via errors.Is).
func IsStreamClosed(err error) bool { return errors.Is(err, ErrStreamClosed) }

// IsUnexpectedEnd reports whether err indicates that StatusEnd was observed
// before a fixed-length operation was satisfied. It returns true for
// io.ErrUnexpectedEOF and wrappers (via errors.Is).
func IsUnexpectedEnd(err error) bool { return errors.Is(err, ErrUnexpectedEOF) }
