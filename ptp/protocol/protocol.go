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

// all references are given for IEEE 1588-2019 Standard

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
)

// Version is what version of PTP protocol we implement, packed with minorVersionPTP into one byte
// (minorVersionPTP 1 in the high nibble, versionPTP 2 in the low nibble: 0x12)
const Version uint8 = 1<<4 | MajorVersion

// MajorVersion is versionPTP alone (minorVersionPTP 0); the management request
// builders in this package write it as the header's version byte
const MajorVersion uint8 = 2

const headerSize = 34

/* UDP port numbers
The UDP destination port of a PTP event message shall be 319.
The UDP destination port of a multicast PTP general message shall be 320.
The UDP destination port of a unicast PTP general message that is addressed to a PTP Instance shall be 320.
The UDP destination port of a unicast PTP general message that is addressed to a manager shall be the UDP source
port value of the PTP message to which this is a response.
*/
const (
	PortEvent   = 319
	PortGeneral = 320
)

// Header Table 35 Common PTP message header
type Header struct {
	SdoIDAndMsgType     SdoIDAndMsgType // first 4 bits is SdoId, next 4 bits are msgtype
	Version             uint8
	MessageLength       uint16
	DomainNumber        uint8
	MinorSdoID          uint8
	FlagField           uint16
	CorrectionField     Correction
	MessageTypeSpecific uint32
	SourcePortIdentity  PortIdentity
	SequenceID          uint16
	ControlField        uint8       // the use of this field is obsolete according to IEEE, unless it's ipv4
	LogMessageInterval  LogInterval // see Table 42 Values of logMessageInterval field
}

// MessageType returns MessageType
func (p *Header) MessageType() MessageType {
	return p.SdoIDAndMsgType.MsgType()
}

// SetSequence populates sequence field
func (p *Header) SetSequence(sequence uint16) {
	p.SequenceID = sequence
}

// flags used in FlagField as per Table 37 Values of flagField
const (
	// first octet
	FlagAlternateMaster  uint16 = 1 << (8 + 0)
	FlagTwoStep          uint16 = 1 << (8 + 1)
	FlagUnicast          uint16 = 1 << (8 + 2)
	FlagProfileSpecific1 uint16 = 1 << (8 + 5)
	FlagProfileSpecific2 uint16 = 1 << (8 + 6)
	// second octet
	FlagLeap61                   uint16 = 1 << 0
	FlagLeap59                   uint16 = 1 << 1
	FlagCurrentUtcOffsetValid    uint16 = 1 << 2
	FlagPTPTimescale             uint16 = 1 << 3
	FlagTimeTraceable            uint16 = 1 << 4
	FlagFrequencyTraceable       uint16 = 1 << 5
	FlagSynchronizationUncertain uint16 = 1 << 6
)

func headerMarshalBinaryTo(h *Header, b []byte) int {
	b[0] = byte(h.SdoIDAndMsgType)
	b[1] = h.Version
	binary.BigEndian.PutUint16(b[2:], h.MessageLength)
	b[4] = h.DomainNumber
	b[5] = h.MinorSdoID
	binary.BigEndian.PutUint16(b[6:], h.FlagField)
	binary.BigEndian.PutUint64(b[8:], uint64(h.CorrectionField))
	binary.BigEndian.PutUint32(b[16:], h.MessageTypeSpecific)
	binary.BigEndian.PutUint64(b[20:], uint64(h.SourcePortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[28:], h.SourcePortIdentity.PortNumber)
	binary.BigEndian.PutUint16(b[30:], h.SequenceID)
	b[32] = h.ControlField
	b[33] = byte(h.LogMessageInterval)
	return headerSize
}

// unmarshalHeader parses the common 34-byte header. Callers must have already
// verified len(b) >= headerSize.
func unmarshalHeader(h *Header, b []byte) {
	h.SdoIDAndMsgType = SdoIDAndMsgType(b[0])
	h.Version = b[1]
	h.MessageLength = binary.BigEndian.Uint16(b[2:])
	h.DomainNumber = b[4]
	h.MinorSdoID = b[5]
	h.FlagField = binary.BigEndian.Uint16(b[6:])
	h.CorrectionField = Correction(binary.BigEndian.Uint64(b[8:]))
	h.MessageTypeSpecific = binary.BigEndian.Uint32(b[16:])
	h.SourcePortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[20:]))
	h.SourcePortIdentity.PortNumber = binary.BigEndian.Uint16(b[28:])
	h.SequenceID = binary.BigEndian.Uint16(b[30:])
	h.ControlField = b[32]
	h.LogMessageInterval = LogInterval(b[33])
}

// putUint48 writes the low 48 bits of v into b[0:6] big-endian. Callers must
// range-check v against [0, 2^48-1] first; putUint48 only truncates.
func putUint48(b []byte, v uint64) {
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

// getUint48 reads b[0:6] as a zero-extended 48-bit unsigned integer.
func getUint48(b []byte) uint64 {
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// getInt48 reads b[0:6] as a 48-bit two's-complement integer, sign-extended
// from bit 47.
func getInt48(b []byte) int64 {
	v := getUint48(b)
	if v&(1<<47) != 0 {
		mask := ^uint64(0)
		v |= mask << 48
	}
	return int64(v)
}

// putInt48 range-checks v against the signed 48-bit interval
// [-2^47, 2^47-1] and writes its two's-complement low 48 bits into b[0:6]
// big-endian.
func putInt48(b []byte, v int64) error {
	const (
		minInt48 = -(int64(1) << 47)
		maxInt48 = int64(1)<<47 - 1
	)
	if v < minInt48 || v > maxInt48 {
		return fmt.Errorf("value %d is out of range for a signed 48-bit integer", v)
	}
	putUint48(b, uint64(v)&0xffffffffffff)
	return nil
}

// checkPacketLength verifies that the bytes we actually received cover what
// the header claims the message occupies, so that later fixed-offset and
// TLV-window reads can trust their bounds.
func checkPacketLength(h *Header, l int) error {
	if l < headerSize {
		return fmt.Errorf("not enough data to decode header: got %d bytes, need at least %d", l, headerSize)
	}
	if l < int(h.MessageLength) {
		return fmt.Errorf("header declares messageLength %d but only %d bytes are available", h.MessageLength, l)
	}
	return nil
}

// General PTP messages

// All packets are split in two parts: Header (which is common) and body that is unique
// for most packets (both in length and structure).
// The idea is that anything using this library to read packets will have to do roughly this:
// * receive raw packets as bytes, create bytes.Reader from it
// * use binary.Read to parse Header from this reader
// * analyze header fields and switch on MessageType
// * parse rest of the data into one of Body structs, with exact struct being chosen according to header MessageType.

// AnnounceBody Table 43 Announce message fields
type AnnounceBody struct {
	OriginTimestamp         Timestamp
	CurrentUTCOffset        int16
	Reserved                uint8
	GrandmasterPriority1    uint8
	GrandmasterClockQuality ClockQuality
	GrandmasterPriority2    uint8
	GrandmasterIdentity     ClockIdentity
	StepsRemoved            uint16
	TimeSource              TimeSource
}

// Announce is a full Announce packet. As of IEEE 1588-2019 it may carry a
// trailing sequence of TLVs (PATH_TRACE, ALTERNATE_TIME_OFFSET_INDICATOR, ...).
type Announce struct {
	Header
	AnnounceBody
	TLVs []TLV
}

// SyncDelayReqBody Table 44 Sync and Delay_Req message fields
type SyncDelayReqBody struct {
	OriginTimestamp Timestamp
}

// SyncDelayReq is a full Sync/Delay_Req packet, optionally followed by TLVs
// such as ALTERNATE_RESPONSE_PORT.
type SyncDelayReq struct {
	Header
	SyncDelayReqBody
	TLVs []TLV
}

// FollowUpBody Table 45 Follow_Up message fields
type FollowUpBody struct {
	PreciseOriginTimestamp Timestamp
}

// FollowUp is a full Follow_Up packet
type FollowUp struct {
	Header
	FollowUpBody
	TLVs []TLV
}

// DelayRespBody Table 46 Delay_Resp message fields
type DelayRespBody struct {
	ReceiveTimestamp       Timestamp
	RequestingPortIdentity PortIdentity
}

// DelayResp is a full Delay_Resp packet
type DelayResp struct {
	Header
	DelayRespBody
	TLVs []TLV
}

// PDelayReqBody Table 47 Pdelay_Req message fields
type PDelayReqBody struct {
	OriginTimestamp Timestamp
	Reserved        [10]uint8
}

// PDelayReq is a full Pdelay_Req packet
type PDelayReq struct {
	Header
	PDelayReqBody
	TLVs []TLV
}

// PDelayRespBody Table 48 Pdelay_Resp message fields
type PDelayRespBody struct {
	RequestReceiptTimestamp Timestamp
	RequestingPortIdentity  PortIdentity
}

// PDelayResp is a full Pdelay_Resp packet
type PDelayResp struct {
	Header
	PDelayRespBody
	TLVs []TLV
}

// PDelayRespFollowUpBody Table 49 Pdelay_Resp_Follow_Up message fields
type PDelayRespFollowUpBody struct {
	ResponseOriginTimestamp Timestamp
	RequestingPortIdentity  PortIdentity
}

// PDelayRespFollowUp is a full Pdelay_Resp_Follow_Up packet
type PDelayRespFollowUp struct {
	Header
	PDelayRespFollowUpBody
	TLVs []TLV
}

// Packet is an interface to abstract all different packets
type Packet interface {
	MessageType() MessageType
	SetSequence(uint16)
}

// BinaryMarshalerTo is like encoding.BinaryMarshaler, but writes into a
// caller-supplied buffer instead of allocating one. Implementing it lets
// BytesTo skip an allocation for the hot path.
type BinaryMarshalerTo interface {
	MarshalBinaryTo(b []byte) (int, error)
}

// bodyMarshalBinaryTo writes the header, then a fixed-size body via
// binary.Write, then any trailing TLVs, returning the total bytes written.
func bodyMarshalBinaryTo(h *Header, body interface{}, tlvs []TLV, b []byte) (int, error) {
	if need := headerSize + binary.Size(body); len(b) < need {
		return 0, fmt.Errorf("buffer too small: need at least %d bytes, got %d", need, len(b))
	}
	n := headerMarshalBinaryTo(h, b)
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.BigEndian, body); err != nil {
		return 0, err
	}
	bb := buf.Bytes()
	copy(b[n:], bb)
	pos := n + len(bb)
	tlvLen, err := writeTLVs(tlvs, b[pos:])
	return pos + tlvLen, err
}

// bodyUnmarshalBinary reads the header, then a fixed-size body, then any
// trailing TLVs bounded by h.MessageLength.
func bodyUnmarshalBinary(h *Header, body interface{}, tlvs *[]TLV, b []byte, msgType MessageType, name string) error {
	if len(b) < headerSize {
		return fmt.Errorf("not enough data to decode %s header", name)
	}
	unmarshalHeader(h, b)
	if err := checkPacketLength(h, len(b)); err != nil {
		return err
	}
	if h.MessageType() != msgType {
		return fmt.Errorf("not a %s message", name)
	}
	bodySize := binary.Size(body)
	if bodySize < 0 {
		return fmt.Errorf("cannot determine size of %s body", name)
	}
	if len(b) < headerSize+bodySize {
		return fmt.Errorf("not enough data to decode %s body", name)
	}
	if err := binary.Read(bytes.NewReader(b[headerSize:headerSize+bodySize]), binary.BigEndian, body); err != nil {
		return err
	}
	pos := headerSize + bodySize
	if int(h.MessageLength) > pos {
		var err error
		*tlvs, err = readTLVs(*tlvs, int(h.MessageLength)-pos, b[pos:])
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinaryTo marshals Announce into b without allocating
func (p *Announce) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.AnnounceBody, p.TLVs, b)
}

// MarshalBinary converts Announce to []byte
func (p *Announce) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into Announce
func (p *Announce) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.AnnounceBody, &p.TLVs, b, MessageAnnounce, "Announce")
}

// MarshalBinaryTo marshals SyncDelayReq into b without allocating
func (p *SyncDelayReq) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.SyncDelayReqBody, p.TLVs, b)
}

// MarshalBinary converts SyncDelayReq to []byte
func (p *SyncDelayReq) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into SyncDelayReq
func (p *SyncDelayReq) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize {
		return fmt.Errorf("not enough data to decode SyncDelayReq header")
	}
	unmarshalHeader(&p.Header, b)
	if err := checkPacketLength(&p.Header, len(b)); err != nil {
		return err
	}
	mt := p.Header.MessageType()
	if mt != MessageSync && mt != MessageDelayReq {
		return fmt.Errorf("not a Sync/Delay_Req message")
	}
	bodySize := binary.Size(p.SyncDelayReqBody)
	if len(b) < headerSize+bodySize {
		return fmt.Errorf("not enough data to decode SyncDelayReq body")
	}
	if err := binary.Read(bytes.NewReader(b[headerSize:headerSize+bodySize]), binary.BigEndian, &p.SyncDelayReqBody); err != nil {
		return err
	}
	pos := headerSize + bodySize
	if int(p.MessageLength) > pos {
		var err error
		p.TLVs, err = readTLVs(p.TLVs, int(p.MessageLength)-pos, b[pos:])
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinaryTo marshals FollowUp into b without allocating
func (p *FollowUp) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.FollowUpBody, p.TLVs, b)
}

// MarshalBinary converts FollowUp to []byte
func (p *FollowUp) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into FollowUp
func (p *FollowUp) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.FollowUpBody, &p.TLVs, b, MessageFollowUp, "Follow_Up")
}

// MarshalBinaryTo marshals DelayResp into b without allocating
func (p *DelayResp) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.DelayRespBody, p.TLVs, b)
}

// MarshalBinary converts DelayResp to []byte
func (p *DelayResp) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into DelayResp
func (p *DelayResp) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.DelayRespBody, &p.TLVs, b, MessageDelayResp, "Delay_Resp")
}

// MarshalBinaryTo marshals PDelayReq into b without allocating
func (p *PDelayReq) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.PDelayReqBody, p.TLVs, b)
}

// MarshalBinary converts PDelayReq to []byte
func (p *PDelayReq) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into PDelayReq
func (p *PDelayReq) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.PDelayReqBody, &p.TLVs, b, MessagePDelayReq, "Pdelay_Req")
}

// MarshalBinaryTo marshals PDelayResp into b without allocating
func (p *PDelayResp) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.PDelayRespBody, p.TLVs, b)
}

// MarshalBinary converts PDelayResp to []byte
func (p *PDelayResp) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into PDelayResp
func (p *PDelayResp) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.PDelayRespBody, &p.TLVs, b, MessagePDelayResp, "Pdelay_Resp")
}

// MarshalBinaryTo marshals PDelayRespFollowUp into b without allocating
func (p *PDelayRespFollowUp) MarshalBinaryTo(b []byte) (int, error) {
	return bodyMarshalBinaryTo(&p.Header, &p.PDelayRespFollowUpBody, p.TLVs, b)
}

// MarshalBinary converts PDelayRespFollowUp to []byte
func (p *PDelayRespFollowUp) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// UnmarshalBinary parses []byte into PDelayRespFollowUp
func (p *PDelayRespFollowUp) UnmarshalBinary(b []byte) error {
	return bodyUnmarshalBinary(&p.Header, &p.PDelayRespFollowUpBody, &p.TLVs, b, MessagePDelayRespFollowUp, "Pdelay_Resp_Follow_Up")
}

// Bytes converts any packet to []bytes
// PTP over UDPv6 requires adding extra two bytes that
// may be modified by the initiator or an intermediate PTP Instance to ensure that the UDP checksum
// remains uncompromised after any modification of PTP fields.
// We simply always add them - in worst case they add extra 2 unused bytes when used over UDPv4.
func Bytes(p Packet) ([]byte, error) {
	// interface smuggling
	if pp, ok := p.(encoding.BinaryMarshaler); ok {
		b, err := pp.MarshalBinary()
		return append(b, []byte{0, 0}...), err
	}
	var bytes bytes.Buffer
	var err error
	err = binary.Write(&bytes, binary.BigEndian, p)
	if err != nil {
		return nil, err
	}
	err = binary.Write(&bytes, binary.BigEndian, []byte{0, 0})
	return bytes.Bytes(), err
}

// BytesTo writes a packet into the caller-supplied buffer, avoiding the
// allocation Bytes() incurs, and reports how many bytes were written.
func BytesTo(p Packet, buf []byte) (int, error) {
	if pp, ok := p.(BinaryMarshalerTo); ok {
		n, err := pp.MarshalBinaryTo(buf)
		if err != nil {
			return 0, err
		}
		if n+2 > len(buf) {
			return 0, fmt.Errorf("buffer too small: need at least %d bytes, got %d", n+2, len(buf))
		}
		buf[n] = 0
		buf[n+1] = 0
		return n + 2, nil
	}
	b, err := Bytes(p)
	if err != nil {
		return 0, err
	}
	if len(b) > len(buf) {
		return 0, fmt.Errorf("buffer too small: need at least %d bytes, got %d", len(b), len(buf))
	}
	copy(buf, b)
	return len(b), nil
}

// FromBytes parses []byte into any packet
func FromBytes(rawBytes []byte, p Packet) error {
	// interface smuggling
	if pp, ok := p.(encoding.BinaryUnmarshaler); ok {
		return pp.UnmarshalBinary(rawBytes)
	}
	reader := bytes.NewReader(rawBytes)
	return binary.Read(reader, binary.BigEndian, p)
}

// DecodePacket provides single entry point to try and decode any []bytes to PTPv2 packet.
// It can be used for easy integration with anything that provides UDP packet payload as bytes.
// Resulting Packet user can then either switch based on MessageType(), or just with type switch.
func DecodePacket(b []byte) (Packet, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("not enough data to decode PTP header")
	}
	head := &Header{}
	unmarshalHeader(head, b)
	msgType := head.MessageType()
	var p Packet
	switch msgType {
	case MessageSync, MessageDelayReq:
		p = &SyncDelayReq{}
	case MessagePDelayReq:
		p = &PDelayReq{}
	case MessagePDelayResp:
		p = &PDelayResp{}
	case MessageFollowUp:
		p = &FollowUp{}
	case MessageDelayResp:
		p = &DelayResp{}
	case MessagePDelayRespFollowUp:
		p = &PDelayRespFollowUp{}
	case MessageAnnounce:
		p = &Announce{}
	case MessageSignaling:
		p = &Signaling{}
	case MessageManagement:
		return decodeMgmtPacket(b)
	default:
		return nil, fmt.Errorf("unsupported type %s", msgType)
	}

	if err := FromBytes(b, p); err != nil {
		return nil, err
	}
	return p, nil
}
