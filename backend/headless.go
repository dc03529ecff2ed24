package backend

import (
	"fmt"
	"sort"

	"github.com/gogpu/gla/glcore"
)

// init registers the headless driver on package import.
func init() {
	Register(DriverHeadless, func() glcore.Driver {
		return NewHeadless()
	})
}

// Call records one driver entry point invocation. Op is the entry
// point name ("BindBuffer", "EnableVertexAttrib", ...); the remaining
// fields are set only where the entry point takes them.
type Call struct {
	Op         string
	Target     glcore.Enum
	Buffer     uint32
	Index      uint32
	Components int32
	Type       glcore.Enum
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Headless is an in-memory driver. It simulates the GL vertex-attribute
// state machine (buffer bindings, enabled slots, device limit) and
// records every issued call, making driver traffic observable without a
// GPU. It backs the gla test suite and is usable in CI.
//
// The zero value is not ready for use; create instances with
// [NewHeadless]. Like real drivers, Headless is not safe for
// concurrent use.
type Headless struct {
	// MaxAttribs is the limit reported by MaxVertexAttribs.
	// NewHeadless sets it to 16, the floor the GL spec guarantees.
	// Tests may lower it or set it negative to simulate a broken query.
	MaxAttribs int

	// QueryErr, when set, is returned by MaxVertexAttribs in place of
	// a value, simulating a failed device-limit query.
	QueryErr error

	calls      []Call
	nextBuffer uint32
	buffers    map[uint32]bool
	bound      map[glcore.Enum]uint32
	enabled    map[uint32]bool
}

// NewHeadless creates a headless driver with the spec-guaranteed
// 16-slot attribute limit.
func NewHeadless() *Headless {
	return &Headless{
		MaxAttribs: 16,
		nextBuffer: 1,
		buffers:    make(map[uint32]bool),
		bound:      make(map[glcore.Enum]uint32),
		enabled:    make(map[uint32]bool),
	}
}

// Name returns the driver identifier.
func (h *Headless) Name() string { return DriverHeadless }

// Init is a no-op; the headless driver has no context to load.
func (h *Headless) Init() error { return nil }

// MaxVertexAttribs returns MaxAttribs, or QueryErr if set.
func (h *Headless) MaxVertexAttribs() (int, error) {
	h.record(Call{Op: "MaxVertexAttribs"})
	if h.QueryErr != nil {
		return -1, h.QueryErr
	}
	return h.MaxAttribs, nil
}

// CreateBuffer allocates the next buffer name.
func (h *Headless) CreateBuffer() (uint32, error) {
	id := h.nextBuffer
	h.nextBuffer++
	h.buffers[id] = true
	h.record(Call{Op: "CreateBuffer", Buffer: id})
	return id, nil
}

// DeleteBuffer releases a buffer name and drops any binding of it.
func (h *Headless) DeleteBuffer(id uint32) {
	h.record(Call{Op: "DeleteBuffer", Buffer: id})
	delete(h.buffers, id)
	for target, bound := range h.bound {
		if bound == id {
			delete(h.bound, target)
		}
	}
}

// BindBuffer binds id to target; id 0 unbinds.
func (h *Headless) BindBuffer(target glcore.Enum, id uint32) error {
	h.record(Call{Op: "BindBuffer", Target: target, Buffer: id})
	if id == 0 {
		delete(h.bound, target)
		return nil
	}
	if !h.buffers[id] {
		return fmt.Errorf("headless: bind of unknown buffer %d", id)
	}
	h.bound[target] = id
	return nil
}

// EnableVertexAttrib enables a slot.
func (h *Headless) EnableVertexAttrib(index uint32) error {
	h.record(Call{Op: "EnableVertexAttrib", Index: index})
	h.enabled[index] = true
	return nil
}

// DisableVertexAttrib disables a slot.
func (h *Headless) DisableVertexAttrib(index uint32) error {
	h.record(Call{Op: "DisableVertexAttrib", Index: index})
	delete(h.enabled, index)
	return nil
}

// VertexAttribPointer records a float-interpretation binding. The GL
// state machine requires a buffer bound to the array-buffer target.
func (h *Headless) VertexAttribPointer(index uint32, components int32, typ glcore.Enum, normalized bool, stride int32, offset uintptr) error {
	h.record(Call{
		Op:         "VertexAttribPointer",
		Index:      index,
		Components: components,
		Type:       typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
	if h.bound[glcore.TargetArrayBuffer] == 0 {
		return fmt.Errorf("headless: no buffer bound to array-buffer target")
	}
	return nil
}

// VertexAttribIPointer records an integer-interpretation binding.
func (h *Headless) VertexAttribIPointer(index uint32, components int32, typ glcore.Enum, stride int32, offset uintptr) error {
	h.record(Call{
		Op:         "VertexAttribIPointer",
		Index:      index,
		Components: components,
		Type:       typ,
		Stride:     stride,
		Offset:     offset,
	})
	if h.bound[glcore.TargetArrayBuffer] == 0 {
		return fmt.Errorf("headless: no buffer bound to array-buffer target")
	}
	return nil
}

func (h *Headless) record(c Call) {
	h.calls = append(h.calls, c)
}

// Calls returns every call issued so far, oldest first. The returned
// slice is a copy.
func (h *Headless) Calls() []Call {
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// CallsTo returns the recorded calls for one entry point, oldest first.
func (h *Headless) CallsTo(op string) []Call {
	var out []Call
	for _, c := range h.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log without touching driver state.
func (h *Headless) ResetCalls() {
	h.calls = h.calls[:0]
}

// EnabledSlots returns the currently enabled attribute slot indices in
// ascending order.
func (h *Headless) EnabledSlots() []uint32 {
	out := make([]uint32, 0, len(h.enabled))
	for idx := range h.enabled {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BoundBuffer returns the buffer bound to target, or 0.
func (h *Headless) BoundBuffer(target glcore.Enum) uint32 {
	return h.bound[target]
}
