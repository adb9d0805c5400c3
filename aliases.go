// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// IDE note: layerio re-exports (aliases) the io interfaces and sentinels it
// builds on so that users can stay in the "layerio" namespace while reading
// documentation and navigating types. The contracts below mirror the
// standard io expectations; layerio-specific behavior is documented on the
// layered types themselves.
package layerio

import (
	"io"
)

// Reader is implemented by types that can read bytes into p.
//
// Callers should treat a return of (0, nil) as "no progress": it does not
// mean end-of-stream. The layered protocol makes this explicit via Status.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by types that can write bytes from p.
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Closer is implemented by types that can release resources.
//
// Closer is an alias of io.Closer.
type Closer = io.Closer

// ReadWriter groups the basic Read and Write methods. A duplex resource
// wrapped by LayeredDuplexer satisfies ReadWriter.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// ReadCloser groups Read and Close.
//
// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// WriteCloser groups Write and Close.
//
// WriteCloser is an alias of io.WriteCloser.
type WriteCloser = io.WriteCloser

// ReadWriteCloser groups Read, Write, and Close.
//
// ReadWriteCloser is an alias of io.ReadWriteCloser.
type ReadWriteCloser = io.ReadWriteCloser

// Common sentinel errors re-exported for convenience.
//
// Note: layerio also defines ErrStreamClosed for the write-side state
// machine; that one is not part of the standard io set.
var (
	// EOF is returned by plain Read when no more input is available.
	// The layered protocol reports the same condition as StatusEnd.
	EOF = io.EOF

	// ErrClosedPipe is returned on write to a closed pipe.
	ErrClosedPipe = io.ErrClosedPipe

	// ErrNoProgress reports that a Reader returned no data and no error
	// after multiple Read calls; helpers use it to detect broken Readers.
	ErrNoProgress = io.ErrNoProgress

	// ErrShortBuffer means a provided buffer was too small to complete the
	// operation. Copy returns it when the staging buffer is smaller than
	// the source's MinimumBufferSize.
	ErrShortBuffer = io.ErrShortBuffer

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error.
	ErrShortWrite = io.ErrShortWrite

	// ErrUnexpectedEOF means the stream ended earlier than expected.
	// ReadFullWithStatus returns it when StatusEnd arrives mid-buffer.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF
)
