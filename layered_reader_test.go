// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/layerio"
)

func TestLayeredReader_StatusMapping(t *testing.T) {
	r := layerio.NewLayeredReader(scripted("ping", "pon"))
	buf := make([]byte, 8)

	n, s, err := r.ReadWithStatus(buf)
	if n != 4 || s != layerio.StatusActive || err != nil {
		t.Fatalf("first: got (%d, %v, %v)", n, s, err)
	}
	n, s, err = r.ReadWithStatus(buf)
	if n != 3 || s != layerio.StatusActive || err != nil {
		t.Fatalf("second: got (%d, %v, %v)", n, s, err)
	}
	n, s, err = r.ReadWithStatus(buf)
	if n != 0 || s != layerio.StatusEnd || err != nil {
		t.Fatalf("third: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_EndIdempotence(t *testing.T) {
	inner := scripted("x")
	r := layerio.NewLayeredReader(inner)
	buf := make([]byte, 4)

	if _, _, err := r.ReadWithStatus(buf); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if _, s, _ := r.ReadWithStatus(buf); s != layerio.StatusEnd {
		t.Fatalf("want End got %v", s)
	}
	callsAtEnd := inner.i
	for i := 0; i < 3; i++ {
		n, s, err := r.ReadWithStatus(buf)
		if n != 0 || s != layerio.StatusEnd || err != nil {
			t.Fatalf("latched read %d: got (%d, %v, %v)", i, n, s, err)
		}
	}
	if inner.i != callsAtEnd {
		t.Fatalf("inner re-invoked after End")
	}
}

func TestLayeredReader_ImmediateEnd(t *testing.T) {
	// Inner signals end before any bytes have ever been read; identical to
	// the idempotent-end case thereafter.
	r := layerio.NewLayeredReader(scripted())
	buf := make([]byte, 4)
	for i := 0; i < 2; i++ {
		n, s, err := r.ReadWithStatus(buf)
		if n != 0 || s != layerio.StatusEnd || err != nil {
			t.Fatalf("read %d: got (%d, %v, %v)", i, n, s, err)
		}
	}
}

func TestLayeredReader_DataWithEOFSameCall(t *testing.T) {
	r := layerio.NewLayeredReader(&scriptedReader{steps: []struct {
		b   []byte
		err error
	}{{b: []byte("tail"), err: layerio.EOF}}})
	buf := make([]byte, 8)

	n, s, err := r.ReadWithStatus(buf)
	if n != 4 || s != layerio.StatusEnd || err != nil {
		t.Fatalf("got (%d, %v, %v)", n, s, err)
	}
	if n, s, _ := r.ReadWithStatus(buf); n != 0 || s != layerio.StatusEnd {
		t.Fatalf("latch: got (%d, %v)", n, s)
	}
}

func TestLayeredReader_ZeroActiveIsNotEnd(t *testing.T) {
	r := layerio.NewLayeredReader(scripted(nil, "ok"))
	buf := make([]byte, 4)

	n, s, err := r.ReadWithStatus(buf)
	if n != 0 || s != layerio.StatusActive || err != nil {
		t.Fatalf("zero read: got (%d, %v, %v)", n, s, err)
	}
	n, s, err = r.ReadWithStatus(buf)
	if n != 2 || s != layerio.StatusActive || err != nil {
		t.Fatalf("after zero read: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_TransportError(t *testing.T) {
	r := layerio.NewLayeredReader(scripted(errBoom, "never"))
	buf := make([]byte, 4)

	_, _, err := r.ReadWithStatus(buf)
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom got %v", err)
	}
	// The adapter released its inner on the error; the stream reads as ended.
	n, s, err := r.ReadWithStatus(buf)
	if n != 0 || s != layerio.StatusEnd || err != nil {
		t.Fatalf("after error: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_EOFAsPush(t *testing.T) {
	inner := scripted("a")
	r := layerio.NewLayeredReaderEOFAsPush(inner)
	buf := make([]byte, 4)

	if _, _, err := r.ReadWithStatus(buf); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	// End of the file is reported as a push, and the stream stays open.
	for i := 0; i < 2; i++ {
		n, s, err := r.ReadWithStatus(buf)
		if n != 0 || s != layerio.StatusPush || err != nil {
			t.Fatalf("push read %d: got (%d, %v, %v)", i, n, s, err)
		}
	}
	// Appended data is still delivered.
	inner.steps = append(inner.steps, struct {
		b   []byte
		err error
	}{b: []byte("more")})
	n, s, err := r.ReadWithStatus(buf)
	if n != 4 || s != layerio.StatusActive || err != nil {
		t.Fatalf("appended: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_LineByLine(t *testing.T) {
	r := layerio.NewLayeredReaderLineByLine(scripted("hello\n", "wor", "ld\n"))
	buf := make([]byte, 16)

	n, s, err := r.ReadWithStatus(buf)
	if n != 6 || s != layerio.StatusPush || err != nil {
		t.Fatalf("line: got (%d, %v, %v)", n, s, err)
	}
	n, s, err = r.ReadWithStatus(buf)
	if n != 3 || s != layerio.StatusActive || err != nil {
		t.Fatalf("partial: got (%d, %v, %v)", n, s, err)
	}
	n, s, err = r.ReadWithStatus(buf)
	if n != 3 || s != layerio.StatusPush || err != nil {
		t.Fatalf("line end: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_PlainRead(t *testing.T) {
	r := layerio.NewLayeredReader(scripted("abc"))
	buf := make([]byte, 8)

	n, err := r.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("got (%d, %v)", n, err)
	}
	n, err = r.Read(buf)
	if n != 0 || err != layerio.EOF {
		t.Fatalf("want EOF got (%d, %v)", n, err)
	}
	n, err = r.Read(buf)
	if n != 0 || err != layerio.EOF {
		t.Fatalf("EOF not sticky: got (%d, %v)", n, err)
	}
}

func TestLayeredReader_AbandonIntoInner(t *testing.T) {
	inner := scripted("abc")
	r := layerio.NewLayeredReader(inner)

	got := r.AbandonIntoInner()
	if got != inner {
		t.Fatalf("unwrap did not return the wrapped resource")
	}
	// The adapter is invalidated; reads report End without touching inner.
	n, s, err := r.ReadWithStatus(make([]byte, 4))
	if n != 0 || s != layerio.StatusEnd || err != nil {
		t.Fatalf("after unwrap: got (%d, %v, %v)", n, s, err)
	}
	if inner.i != 0 {
		t.Fatalf("inner touched after unwrap")
	}
}

func TestLayeredReader_Abandon(t *testing.T) {
	r := layerio.NewLayeredReader(scripted("abc"))
	r.Abandon()
	if n, s, err := r.ReadWithStatus(make([]byte, 4)); n != 0 || s != layerio.StatusEnd || err != nil {
		t.Fatalf("after abandon: got (%d, %v, %v)", n, s, err)
	}
}

func TestLayeredReader_MinimumBufferSize(t *testing.T) {
	r := layerio.NewLayeredReader(scripted())
	if got := r.MinimumBufferSize(); got != 1 {
		t.Fatalf("want 1 got %d", got)
	}
}
