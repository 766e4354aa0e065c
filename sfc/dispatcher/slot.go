// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatcher

import (
	"time"

	"github.com/sfcgate/sfcgate/sfc/policy"
)

// State is the state of a call slot.
type State int

const (
	// Awaiting means the slot is registered with the transport and waits for
	// an RPC.
	Awaiting State = iota
	// Evaluating means the RPC was received and the policy is applied. A
	// delayed slot stays in this state until its timer fires.
	Evaluating
	// Responding means the status was handed to the transport.
	Responding
	// Done means the slot is retired.
	Done
)

func (s State) String() string {
	switch s {
	case Awaiting:
		return "awaiting"
	case Evaluating:
		return "evaluating"
	case Responding:
		return "responding"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Status is the final status of a call.
type Status int

const (
	StatusOK Status = iota
	// StatusCancelled means the policy refused the call.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Responder delivers the final status of a call to its client. Respond must
// not block.
type Responder interface {
	Respond(Status)
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(Status)

func (f ResponderFunc) Respond(s Status) {
	f(s)
}

// Slot is the state machine of one call. A slot is owned by whoever holds it:
// the transport until it posts the slot, afterwards exactly one worker per
// posted event. Slots are never shared between calls.
type Slot struct {
	id     uint64
	method policy.Method
	state  State

	filter    policy.RequestFilter
	responder Responder
	accepted  time.Time
	decision  policy.Decision
	status    Status
}

// ID is unique per dispatcher.
func (s *Slot) ID() uint64 {
	return s.id
}

// Method is the RPC method the slot accepts.
func (s *Slot) Method() policy.Method {
	return s.method
}

// Accept hands the received request to the slot. It must be called once by the
// transport before the slot is posted to the queue.
func (s *Slot) Accept(filter policy.RequestFilter, r Responder) {
	s.filter = filter
	s.responder = r
	s.accepted = time.Now()
}

// Transport is the RPC layer the dispatcher serves.
type Transport interface {
	// RequestCall registers the slot to receive the next RPC of its method.
	// When the RPC arrives, the transport calls Accept and posts the slot to
	// the queue. After the queue is shut down, pending registrations are
	// abandoned.
	RequestCall(s *Slot, q *Queue)
}
