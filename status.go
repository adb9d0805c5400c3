// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// Status describes what is known about the future of a logical stream.
//
// StatusActive:  the stream is open; more data may arrive, and a read of
//                zero bytes carries no end-of-stream meaning.
// StatusPush:    the stream is open, and the producer has finished writing
//                something actionable; buffering layers should flush at
//                this point. Similar to the PSH flag in TCP. Consumers that
//                do no buffering can treat it like StatusActive.
// StatusEnd:     the stream has permanently concluded; no more bytes will
//                ever be produced by it.
//
// Once a read-side instance has reported (0, StatusEnd), every subsequent
// read on that instance reports (0, StatusEnd) again without touching the
// wrapped resource.
type Status uint8

const (
	StatusActive Status = iota
	StatusPush
	StatusEnd
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusPush:
		return "Push"
	case StatusEnd:
		return "End"
	default:
		return "Status(unknown)"
	}
}

// IsEnd reports whether s is StatusEnd.
func (s Status) IsEnd() bool { return s == StatusEnd }

// IsPush reports whether s is StatusPush.
func (s Status) IsPush() bool { return s == StatusPush }

// IsOpen reports whether the stream may still produce bytes:
// true for StatusActive and StatusPush.
func (s Status) IsOpen() bool { return s != StatusEnd }

// CloseState describes the write-side state machine of a layered stream.
//
// Transitions are monotone and terminal: Open → Closed (via Close, which
// flushes first) or Open → Abandoned (via Abandon, which discards instead
// of flushing). No transition leaves Closed or Abandoned. Writes are only
// accepted while Open.
type CloseState uint8

const (
	CloseStateOpen CloseState = iota
	CloseStateClosed
	CloseStateAbandoned
)

func (c CloseState) String() string {
	switch c {
	case CloseStateOpen:
		return "Open"
	case CloseStateClosed:
		return "Closed"
	case CloseStateAbandoned:
		return "Abandoned"
	default:
		return "CloseState(unknown)"
	}
}

// IsOpen reports whether writes are still accepted.
func (c CloseState) IsOpen() bool { return c == CloseStateOpen }

// IsTerminal reports whether c is Closed or Abandoned.
func (c CloseState) IsTerminal() bool { return c != CloseStateOpen }
