/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package protocol

import "fmt"

// SessionParams is the caller-configured state (C5) the message framer (C4)
// consults on every build and parse: addressing for outgoing requests, the
// dialect responses are resolved against, and how incoming signaling TLVs
// are filtered. It is copied by value; there is no shared mutable session
// object underneath it.
type SessionParams struct {
	TransportSpecific uint8
	DomainNumber      uint8
	BoundaryHops      uint8
	IsUnicast         bool
	Dialect           Dialect
	Target            PortIdentity
	Self              PortIdentity
	RcvSignaling      bool
	FilterSignaling   bool
	AllowSigTlvs      map[TLVType]bool
}

// DefaultSessionParams returns the spec-mandated defaults: wildcard target,
// zero self identity, domain 0, boundaryHops 1, unicast false, dialect
// default.
func DefaultSessionParams() SessionParams {
	return SessionParams{
		BoundaryHops: DefaultBoundaryHops,
		Dialect:      DialectDefault,
		Target:       DefaultTargetPortIdentity,
	}
}

// Validate rejects a domainNumber outside PTP's legal 0-127 range.
// boundaryHops has no illegal values within its uint8 range.
func (s SessionParams) Validate() error {
	if s.DomainNumber > 127 {
		return fmt.Errorf("domainNumber %d exceeds the maximum legal value 127", s.DomainNumber)
	}
	return nil
}

// SetAllClocks points Target at the all-ones wildcard PortIdentity, the
// "all clocks" setter the session parameters section calls for.
func (s *SessionParams) SetAllClocks() {
	s.Target = DefaultTargetPortIdentity
}

// applyTo stamps the framer's build-time header fields (C4 step 4-5) from
// the session: transportSpecific, domainNumber, the unicast flag bit,
// source/target identities, and boundaryHops.
func (s SessionParams) applyTo(h *ManagementMsgHead) {
	h.SdoIDAndMsgType = NewSdoIDAndMsgType(MessageManagement, s.TransportSpecific)
	h.DomainNumber = s.DomainNumber
	if s.IsUnicast {
		h.FlagField |= FlagUnicast
	} else {
		h.FlagField &^= FlagUnicast
	}
	h.SourcePortIdentity = s.Self
	h.TargetPortIdentity = s.Target
	h.StartingBoundaryHops = s.BoundaryHops
	h.BoundaryHops = s.BoundaryHops
}
