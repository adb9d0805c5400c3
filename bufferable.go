// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// DefaultBufferSize is the suggested buffer size assumed for layers that do
// not implement Bufferable. It matches the default buffer size of bufio.
const DefaultBufferSize = 8192

// Bufferable is an optional capability for layers sitting under a buffering
// consumer: a hint for how much to buffer for performance. Layers for which
// buffering brings nothing (e.g. in-memory slices) return 0.
type Bufferable interface {
	SuggestedBufferSize() int
}

// suggestedBufferSize returns v's buffering hint, or DefaultBufferSize when
// v does not implement Bufferable or suggests nothing.
func suggestedBufferSize(v any) int {
	if b, ok := v.(Bufferable); ok {
		if n := b.SuggestedBufferSize(); n > 0 {
			return n
		}
	}
	return DefaultBufferSize
}
