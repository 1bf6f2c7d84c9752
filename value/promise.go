package value

import (
	"fmt"
	"sync"
)

// Thenable is the capability of an object that settles later and
// notifies subscribers. Objects declare it at construction time.
type Thenable interface {
	Then(onFulfilled, onRejected func(*Value))
}

// PromiseState is the settlement state of a Deferred.
type PromiseState uint8

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

// String returns the state name.
func (s PromiseState) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Deferred is a settle-once Thenable. Callbacks registered before
// settlement run on the settling goroutine; later ones run immediately.
type Deferred struct {
	mu        sync.Mutex
	state     PromiseState
	result    *Value
	fulfilled []func(*Value)
	rejected  []func(*Value)
}

// Then registers settlement callbacks. Either may be nil.
func (d *Deferred) Then(onFulfilled, onRejected func(*Value)) {
	d.mu.Lock()
	switch d.state {
	case Pending:
		if onFulfilled != nil {
			d.fulfilled = append(d.fulfilled, onFulfilled)
		}
		if onRejected != nil {
			d.rejected = append(d.rejected, onRejected)
		}
		d.mu.Unlock()
		return
	}
	state, result := d.state, d.result
	d.mu.Unlock()

	if state == Fulfilled && onFulfilled != nil {
		onFulfilled(result)
	}
	if state == Rejected && onRejected != nil {
		onRejected(result)
	}
}

// Resolve fulfils the deferred. It returns false if already settled.
func (d *Deferred) Resolve(v *Value) bool {
	return d.settle(Fulfilled, v)
}

// Reject rejects the deferred. It returns false if already settled.
func (d *Deferred) Reject(reason *Value) bool {
	return d.settle(Rejected, reason)
}

// State returns the current state and result.
func (d *Deferred) State() (PromiseState, *Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.result
}

func (d *Deferred) settle(state PromiseState, v *Value) bool {
	d.mu.Lock()
	if d.state != Pending {
		d.mu.Unlock()
		return false
	}
	d.state, d.result = state, v
	callbacks := d.fulfilled
	if state == Rejected {
		callbacks = d.rejected
	}
	d.fulfilled, d.rejected = nil, nil
	d.mu.Unlock()

	for _, cb := range callbacks {
		cb(v)
	}
	return true
}

// NewPromise creates a Promise object backed by a fresh Deferred.
func NewPromise() (*Object, *Deferred) {
	d := &Deferred{}
	o := newObject(ClassPromise, intrinsics().protos[ClassPromise])
	o.thenable = d
	return o, d
}

// DeclareThenable marks o as promise-like.
func (o *Object) DeclareThenable(t Thenable) error {
	if o.frozen {
		return fmt.Errorf("value: declare thenable: %w", ErrFrozen)
	}
	o.thenable = t
	return nil
}

// Thenable returns the nearest declared Thenable on the chain, or nil.
func (o *Object) Thenable() Thenable {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.thenable != nil {
			return cur.thenable
		}
	}
	return nil
}
