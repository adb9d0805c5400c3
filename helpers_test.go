// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio_test

import (
	"errors"

	"code.hybscloud.com/layerio"
)

// scriptedReader replays a fixed sequence of (bytes, err) read results,
// then returns EOF.
type scriptedReader struct {
	steps []struct {
		b   []byte
		err error
	}
	i int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	if s.i >= len(s.steps) {
		return 0, layerio.EOF
	}
	st := s.steps[s.i]
	s.i++
	if len(st.b) > 0 {
		n := copy(p, st.b)
		return n, st.err
	}
	return 0, st.err
}

func scripted(steps ...any) *scriptedReader {
	r := &scriptedReader{}
	for _, step := range steps {
		switch v := step.(type) {
		case nil:
			// a (0, nil) no-progress read
			r.steps = append(r.steps, struct {
				b   []byte
				err error
			}{})
		case string:
			r.steps = append(r.steps, struct {
				b   []byte
				err error
			}{b: []byte(v)})
		case error:
			r.steps = append(r.steps, struct {
				b   []byte
				err error
			}{err: v})
		default:
			panic("scripted: step must be string or error")
		}
	}
	return r
}

// recordWriter accumulates writes and records flushes interleaved with the
// written bytes, so tests can assert flush ordering.
type recordWriter struct {
	data    []byte
	events  []string // "write:<bytes>" and "flush" in call order
	flushes int

	writeErr error
	flushErr error
}

func (w *recordWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	w.data = append(w.data, p...)
	w.events = append(w.events, "write:"+string(p))
	return len(p), nil
}

func (w *recordWriter) Flush() error {
	if w.flushErr != nil {
		return w.flushErr
	}
	w.flushes++
	w.events = append(w.events, "flush")
	return nil
}

// plainWriter is a writer without a Flush method.
type plainWriter struct{ data []byte }

func (w *plainWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

// shortWriter accepts at most limit bytes per call and reports no error.
type shortWriter struct{ limit int }

func (w shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := w.limit
	if n > len(p) {
		n = len(p)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// loopback is a duplex fake: reads replay the scripted inbound side while
// writes accumulate in the outbound recordWriter.
type loopback struct {
	in  *scriptedReader
	out recordWriter
}

func (l *loopback) Read(p []byte) (int, error)  { return l.in.Read(p) }
func (l *loopback) Write(p []byte) (int, error) { return l.out.Write(p) }
func (l *loopback) Flush() error                { return l.out.Flush() }

// minReader wraps a ReadLayered overriding MinimumBufferSize.
type minReader struct {
	layerio.ReadLayered
	min int
}

func (m minReader) MinimumBufferSize() int { return m.min }

var errBoom = errors.New("boom")
