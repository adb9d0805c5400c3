// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layerio

// Op identifies where a status boundary (StatusPush / StatusEnd) was
// observed.
//
// This is intentionally coarse-grained: it lets a StatusPolicy distinguish
// the copy engine from a tee's side channel (e.g., flushing the primary
// destination on a push while leaving the mirror untouched).
type Op uint8

const (
	OpCopyPush Op = iota
	OpCopyEnd

	OpTeePush
	OpTeeEnd
)

func (op Op) String() string {
	switch op {
	case OpCopyPush:
		return "CopyPush"
	case OpCopyEnd:
		return "CopyEnd"
	case OpTeePush:
		return "TeePush"
	case OpTeeEnd:
		return "TeeEnd"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells an engine what to do at a status boundary.
type PolicyAction uint8

const (
	// PolicyContinue means: ignore the boundary and keep going.
	PolicyContinue PolicyAction = iota

	// PolicyFlush means: flush the destination at this boundary, then
	// keep going. Honored at push boundaries.
	PolicyFlush

	// PolicyClose means: close the destination at this boundary. Honored
	// at end boundaries (the engine returns afterwards in any case).
	PolicyClose

	// PolicyReturn means: return to the caller at this boundary without
	// acting on the destination. Use for "delivery boundaries" where the
	// caller wants control back after each actionable unit.
	PolicyReturn
)

// StatusPolicy customizes how an engine reacts to status boundaries
// observed on the source stream.
//
// Contract expectations:
//   - OnPush / OnEnd are only called for the matching status.
//   - At a push boundary the engine honors PolicyFlush and PolicyReturn;
//     any other action is treated as PolicyContinue.
//   - At an end boundary the engine honors PolicyClose; any other action
//     leaves the destination open for the caller to Close or Abandon.
//
// Note: keep this interface narrow; it should remain usable for both Copy
// and Tee.
type StatusPolicy interface {
	OnPush(op Op) PolicyAction
	OnEnd(op Op) PolicyAction
}

// PolicyFunc is a convenience implementation for callers that want to
// inject behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - PushFunc: returns PolicyFlush (propagate pushes as flushes)
//   - EndFunc: returns PolicyContinue (leave the destination open)
type PolicyFunc struct {
	PushFunc func(op Op) PolicyAction
	EndFunc  func(op Op) PolicyAction
}

func (p PolicyFunc) OnPush(op Op) PolicyAction {
	if p.PushFunc != nil {
		return p.PushFunc(op)
	}
	return PolicyFlush
}

func (p PolicyFunc) OnEnd(op Op) PolicyAction {
	if p.EndFunc != nil {
		return p.EndFunc(op)
	}
	return PolicyContinue
}

// TransparentPolicy ignores every boundary: pushes are not translated into
// flushes and the destination is left open at end of stream. Use when the
// destination does no buffering and termination is the caller's business.
type TransparentPolicy struct{}

func (TransparentPolicy) OnPush(Op) PolicyAction { return PolicyContinue }

func (TransparentPolicy) OnEnd(Op) PolicyAction { return PolicyContinue }

// PushThroughPolicy is a ready-to-use policy with the common relay mapping:
//
//   - StatusPush: flush the destination, preserving interactivity
//   - StatusEnd: close the destination, completing the relay
//
// This matches relays where the destination buffers and the source's
// structural signals should drive the destination's lifecycle.
type PushThroughPolicy struct{}

func (PushThroughPolicy) OnPush(Op) PolicyAction { return PolicyFlush }

func (PushThroughPolicy) OnEnd(Op) PolicyAction { return PolicyClose }
