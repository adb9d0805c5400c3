// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// Package layerio extends Go's standard io read/write contracts with an
// explicit stream-status protocol for composing I/O layers (framing,
// compression, encryption, transcoding) over a single transport.
//
// Extended result semantics
//   - Status: every ReadWithStatus call reports whether the logical stream
//     is still open (StatusActive), has completed something actionable that
//     buffering layers should flush (StatusPush), or has permanently ended
//     (StatusEnd). Zero bytes read is not special-cased: (0, StatusActive)
//     means "no progress yet", not end of stream.
//   - CloseState: every write-side instance carries an Open/Closed/Abandoned
//     state. Close flushes and then terminates the stream; Abandon terminates
//     without flushing, for error-recovery paths where flushing would push
//     corrupt or partial output downstream.
//
// A layer's logical stream may end (StatusEnd) while the transport below it
// stays open; the two directions of a duplex transport may terminate
// independently (half-close). LayeredReader, LayeredWriter and
// LayeredDuplexer lift plain io.Reader/io.Writer/io.ReadWriter values into
// this protocol; the Copy family and TeeReader propagate it.
//
// Note: Copy treats a (0, StatusActive) read as “stop copying now” and
// returns (written, nil) to avoid hidden spinning inside a helper.
