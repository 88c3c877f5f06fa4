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

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MgmtClient sends management requests over a Connection (typically a UNIX
// datagram socket to ptp4l/phc2sys) and parses the responses.
type MgmtClient struct {
	Sequence   uint16
	Connection io.ReadWriter
	// Params is the session parameters (C5) Communicate stamps onto every
	// outgoing request's header and uses to resolve every response's
	// managementId. The zero value's Dialect field, DialectDefault, rejects
	// the implementation-specific range; callers that need linuxptp's NP
	// IDs must set Params explicitly (DefaultSessionParams gives sane
	// defaults for everything else).
	Params SessionParams
}

// Communicate sends req over c.Connection and returns the parsed response.
// If the response is a MANAGEMENT_ERROR_STATUS message, it returns an error
// describing the managementErrorId.
func (c *MgmtClient) Communicate(req *Management) (*Management, error) {
	c.Params.applyTo(&req.ManagementMsgHead)
	c.Sequence++
	req.SetSequence(c.Sequence)

	b, err := req.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if _, err := c.Connection.Write(b); err != nil {
		return nil, err
	}

	buf := make([]byte, 1500)
	n, err := c.Connection.Read(buf)
	if err != nil {
		return nil, err
	}

	p, err := c.decodeResponse(buf[:n])
	if err != nil {
		return nil, err
	}
	switch resp := p.(type) {
	case *ManagementMsgErrorStatus:
		return nil, fmt.Errorf("got Management Error in response: %s", resp.ManagementErrorID)
	case *Management:
		return resp, nil
	default:
		return nil, fmt.Errorf("got unexpected packet %T in response to management request", p)
	}
}

// ReceiveSignaling reads one Signaling message off c.Connection and decodes
// it under c.Params: FilterSignaling/AllowSigTlvs restrict which TLVs come
// back in the decoded list. It fails if the session has not opted into
// receiving signaling traffic via Params.RcvSignaling.
func (c *MgmtClient) ReceiveSignaling() (*Signaling, error) {
	if !c.Params.RcvSignaling {
		return nil, fmt.Errorf("session is not configured to receive signaling messages")
	}
	buf := make([]byte, 1500)
	n, err := c.Connection.Read(buf)
	if err != nil {
		return nil, err
	}
	p := &Signaling{Params: c.Params}
	if err := p.UnmarshalBinary(buf[:n]); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeResponse mirrors decodeMgmtPacket but threads c.Params.Dialect
// through the Management branch, since the generic DecodePacket dispatcher
// has no session context to consult.
func (c *MgmtClient) decodeResponse(b []byte) (Packet, error) {
	const tlvTypeOffset = headerSize + mgmtMsgHeadBodySize
	if len(b) < tlvTypeOffset+2 {
		return nil, fmt.Errorf("not enough data to decode management TLV type")
	}
	tlvType := TLVType(binary.BigEndian.Uint16(b[tlvTypeOffset:]))
	if tlvType == TLVManagementErrorStatus {
		p := &ManagementMsgErrorStatus{}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return p, nil
	}
	p := &Management{Dialect: c.Params.Dialect}
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return p, nil
}

// BuildManagementRequest validates action against the ID registry (C2) before
// constructing a management request for id. It fails with ErrInvalidID for an
// unknown managementId and ErrInvalidAction when action is not a member of
// the ID's allowed-action bitmask.
func BuildManagementRequest(id ManagementID, action Action) (*Management, error) {
	if err := ValidateAction(id, action); err != nil {
		return nil, err
	}
	return newMgmtRequest(id, action), nil
}

func newMgmtRequest(id ManagementID, action Action) *Management {
	hSize := uint16(binary.Size(ManagementMsgHead{}))
	tSize := uint16(binary.Size(TLVHead{}))
	return &Management{
		ManagementMsgHead: ManagementMsgHead{
			Header: Header{
				SdoIDAndMsgType:    NewSdoIDAndMsgType(MessageManagement, 0),
				Version:            MajorVersion,
				MessageLength:      hSize + tSize + 2,
				SourcePortIdentity: identity,
				LogMessageInterval: MgmtLogMessageInterval,
			},
			TargetPortIdentity:   DefaultTargetPortIdentity,
			StartingBoundaryHops: DefaultBoundaryHops,
			BoundaryHops:         DefaultBoundaryHops,
			ActionField:          action,
		},
		TLV: &ManagementTLVHead{
			TLVHead: TLVHead{
				TLVType:     TLVManagement,
				LengthField: 2,
			},
			ManagementID: id,
		},
	}
}

// CurrentDataSetRequest prepares request packet for CURRENT_DATA_SET request
func CurrentDataSetRequest() *Management {
	return newMgmtRequest(IDCurrentDataSet, GET)
}

// CurrentDataSet sends CURRENT_DATA_SET request and returns response
func (c *MgmtClient) CurrentDataSet() (*CurrentDataSetTLV, error) {
	req := CurrentDataSetRequest()
	p, err := c.Communicate(req)
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*CurrentDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// ParentDataSetRequest prepares request packet for PARENT_DATA_SET request
func ParentDataSetRequest() *Management {
	return newMgmtRequest(IDParentDataSet, GET)
}

// ParentDataSet sends PARENT_DATA_SET request and returns response
func (c *MgmtClient) ParentDataSet() (*ParentDataSetTLV, error) {
	req := ParentDataSetRequest()
	p, err := c.Communicate(req)
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*ParentDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// DefaultDataSetRequest prepares request packet for DEFAULT_DATA_SET request
func DefaultDataSetRequest() *Management {
	return newMgmtRequest(IDDefaultDataSet, GET)
}

// DefaultDataSet sends DEFAULT_DATA_SET request and returns response
func (c *MgmtClient) DefaultDataSet() (*DefaultDataSetTLV, error) {
	req := DefaultDataSetRequest()
	p, err := c.Communicate(req)
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*DefaultDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// ClockAccuracyRequest prepares request packet for CLOCK_ACCURACY request
func ClockAccuracyRequest() *Management {
	return newMgmtRequest(IDClockAccuracy, GET)
}

// ClockAccuracy sends CLOCK_ACCURACY request and returns response
func (c *MgmtClient) ClockAccuracy() (*ClockAccuracyTLV, error) {
	req := ClockAccuracyRequest()
	p, err := c.Communicate(req)
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*ClockAccuracyTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}
