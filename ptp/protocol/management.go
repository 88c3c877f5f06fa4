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
)

// ManagementID identifies the managementId field of a management TLV, Table 58
type ManagementID uint16

// managementId values, IEEE 1588-2019 Table 58 plus linuxptp implementation-specific IDs
const (
	IDNullPTPManagement                  ManagementID = 0x0000
	IDClockDescription                   ManagementID = 0x0001
	IDUserDescription                    ManagementID = 0x0002
	IDSaveInNonVolatileStorage           ManagementID = 0x0003
	IDResetNonVolatileStorage            ManagementID = 0x0004
	IDInitialize                         ManagementID = 0x0005
	IDFaultLog                           ManagementID = 0x0006
	IDFaultLogReset                      ManagementID = 0x0007
	IDDefaultDataSet                     ManagementID = 0x2000
	IDCurrentDataSet                     ManagementID = 0x2001
	IDParentDataSet                      ManagementID = 0x2002
	IDTimePropertiesDataSet              ManagementID = 0x2003
	IDPortDataSet                        ManagementID = 0x2004
	IDPriority1                          ManagementID = 0x2005
	IDPriority2                          ManagementID = 0x2006
	IDDomain                             ManagementID = 0x2007
	IDSlaveOnly                          ManagementID = 0x2008
	IDLogAnnounceInterval                ManagementID = 0x2009
	IDAnnounceReceiptTimeout             ManagementID = 0x200A
	IDLogSyncInterval                    ManagementID = 0x200B
	IDVersionNumber                      ManagementID = 0x200C
	IDEnablePort                         ManagementID = 0x200D
	IDDisablePort                        ManagementID = 0x200E
	IDTime                               ManagementID = 0x200F
	IDClockAccuracy                      ManagementID = 0x2010
	IDUtcProperties                      ManagementID = 0x2011
	IDTraceabilityProperties             ManagementID = 0x2012
	IDTimescaleProperties                ManagementID = 0x2013
	IDUnicastNegotiationEnable           ManagementID = 0x2014
	IDPathTraceList                      ManagementID = 0x2015
	IDPathTraceEnable                    ManagementID = 0x2016
	IDGrandmasterClusterTable            ManagementID = 0x2017
	IDUnicastMasterTable                 ManagementID = 0x2018
	IDUnicastMasterMaxTableSize          ManagementID = 0x2019
	IDAcceptableMasterTable              ManagementID = 0x201A
	IDAcceptableMasterTableEnabled       ManagementID = 0x201B
	IDAcceptableMasterMaxTableSize       ManagementID = 0x201C
	IDAlternateMaster                    ManagementID = 0x201D
	IDAlternateTimeOffsetEnable          ManagementID = 0x201E
	IDAlternateTimeOffsetName            ManagementID = 0x201F
	IDAlternateTimeOffsetMaxKey          ManagementID = 0x2020
	IDAlternateTimeOffsetProperties      ManagementID = 0x2021
	IDExternalPortConfigurationEnabled   ManagementID = 0x3000
	IDMasterOnly                         ManagementID = 0x3001
	IDHoldoverUpgradeEnable              ManagementID = 0x3002
	IDExtPortConfigPortDataSet           ManagementID = 0x3003
	IDTransparentClockDefaultDataSet     ManagementID = 0x4000
	IDTransparentClockPortDataSet        ManagementID = 0x4001
	IDPrimaryDomain                      ManagementID = 0x4002
	IDDelayMechanism                     ManagementID = 0x6000
	IDLogMinPdelayReqInterval            ManagementID = 0x6001
	// IDTimeStatusNP, IDPortPropertiesNP, IDPortStatsNP, IDPortServiceStatsNP, IDUnicastMasterTableNP
	// are declared in ptp4l.go.
	IDGrandmasterSettingsNP      ManagementID = 0xC001
	IDPortDataSetNP              ManagementID = 0xC002
	IDSubscribeEventsNP          ManagementID = 0xC003
	IDSynchronizationUncertainNP ManagementID = 0xC006
)

// ManagementIDToString is a map from ManagementID to string for logging
var ManagementIDToString = map[ManagementID]string{
	IDNullPTPManagement:                "NULL_PTP_MANAGEMENT",
	IDClockDescription:                 "CLOCK_DESCRIPTION",
	IDUserDescription:                  "USER_DESCRIPTION",
	IDSaveInNonVolatileStorage:         "SAVE_IN_NON_VOLATILE_STORAGE",
	IDResetNonVolatileStorage:          "RESET_NON_VOLATILE_STORAGE",
	IDInitialize:                       "INITIALIZE",
	IDFaultLog:                         "FAULT_LOG",
	IDFaultLogReset:                    "FAULT_LOG_RESET",
	IDDefaultDataSet:                   "DEFAULT_DATA_SET",
	IDCurrentDataSet:                   "CURRENT_DATA_SET",
	IDParentDataSet:                    "PARENT_DATA_SET",
	IDTimePropertiesDataSet:            "TIME_PROPERTIES_DATA_SET",
	IDPortDataSet:                      "PORT_DATA_SET",
	IDPriority1:                        "PRIORITY1",
	IDPriority2:                        "PRIORITY2",
	IDDomain:                           "DOMAIN",
	IDSlaveOnly:                        "SLAVE_ONLY",
	IDLogAnnounceInterval:              "LOG_ANNOUNCE_INTERVAL",
	IDAnnounceReceiptTimeout:           "ANNOUNCE_RECEIPT_TIMEOUT",
	IDLogSyncInterval:                  "LOG_SYNC_INTERVAL",
	IDVersionNumber:                    "VERSION_NUMBER",
	IDEnablePort:                       "ENABLE_PORT",
	IDDisablePort:                      "DISABLE_PORT",
	IDTime:                             "TIME",
	IDClockAccuracy:                    "CLOCK_ACCURACY",
	IDUtcProperties:                    "UTC_PROPERTIES",
	IDTraceabilityProperties:           "TRACEABILITY_PROPERTIES",
	IDTimescaleProperties:              "TIMESCALE_PROPERTIES",
	IDUnicastNegotiationEnable:         "UNICAST_NEGOTIATION_ENABLE",
	IDPathTraceList:                    "PATH_TRACE_LIST",
	IDPathTraceEnable:                  "PATH_TRACE_ENABLE",
	IDGrandmasterClusterTable:          "GRANDMASTER_CLUSTER_TABLE",
	IDUnicastMasterTable:               "UNICAST_MASTER_TABLE",
	IDUnicastMasterMaxTableSize:        "UNICAST_MASTER_MAX_TABLE_SIZE",
	IDAcceptableMasterTable:            "ACCEPTABLE_MASTER_TABLE",
	IDAcceptableMasterTableEnabled:     "ACCEPTABLE_MASTER_TABLE_ENABLED",
	IDAcceptableMasterMaxTableSize:     "ACCEPTABLE_MASTER_MAX_TABLE_SIZE",
	IDAlternateMaster:                  "ALTERNATE_MASTER",
	IDAlternateTimeOffsetEnable:        "ALTERNATE_TIME_OFFSET_ENABLE",
	IDAlternateTimeOffsetName:          "ALTERNATE_TIME_OFFSET_NAME",
	IDAlternateTimeOffsetMaxKey:        "ALTERNATE_TIME_OFFSET_MAX_KEY",
	IDAlternateTimeOffsetProperties:    "ALTERNATE_TIME_OFFSET_PROPERTIES",
	IDExternalPortConfigurationEnabled: "EXTERNAL_PORT_CONFIGURATION_ENABLED",
	IDMasterOnly:                       "MASTER_ONLY",
	IDHoldoverUpgradeEnable:            "HOLDOVER_UPGRADE_ENABLE",
	IDExtPortConfigPortDataSet:         "EXT_PORT_CONFIG_PORT_DATA_SET",
	IDTransparentClockDefaultDataSet:   "TRANSPARENT_CLOCK_DEFAULT_DATA_SET",
	IDTransparentClockPortDataSet:      "TRANSPARENT_CLOCK_PORT_DATA_SET",
	IDPrimaryDomain:                    "PRIMARY_DOMAIN",
	IDDelayMechanism:                   "DELAY_MECHANISM",
	IDLogMinPdelayReqInterval:          "LOG_MIN_PDELAY_REQ_INTERVAL",
	IDTimeStatusNP:                     "TIME_STATUS_NP",
	IDGrandmasterSettingsNP:            "GRANDMASTER_SETTINGS_NP",
	IDPortDataSetNP:                    "PORT_DATA_SET_NP",
	IDSubscribeEventsNP:                "SUBSCRIBE_EVENTS_NP",
	IDPortPropertiesNP:                 "PORT_PROPERTIES_NP",
	IDPortStatsNP:                      "PORT_STATS_NP",
	IDSynchronizationUncertainNP:       "SYNCHRONIZATION_UNCERTAIN_NP",
	IDPortServiceStatsNP:               "PORT_SERVICE_STATS_NP",
	IDUnicastMasterTableNP:             "UNICAST_MASTER_TABLE_NP",
}

func (i ManagementID) String() string {
	if v, ok := ManagementIDToString[i]; ok {
		return v
	}
	return fmt.Sprintf("UNKNOWN_MANAGEMENT_ID=0x%04x", uint16(i))
}

// ManagementIDFromString resolves the stable token produced by
// ManagementID.String (e.g. "PRIORITY1") back to a ManagementID, for CLI
// and config front-ends that name IDs by their text token.
func ManagementIDFromString(name string) (ManagementID, bool) {
	for id, s := range ManagementIDToString {
		if s == name {
			return id, true
		}
	}
	return 0, false
}

// Action is the actionField of a management message, Table 57
type Action uint8

// actionField values
const (
	GET Action = iota
	SET
	RESPONSE
	COMMAND
	ACKNOWLEDGE
)

var actionToString = map[Action]string{
	GET:         "GET",
	SET:         "SET",
	RESPONSE:    "RESPONSE",
	COMMAND:     "COMMAND",
	ACKNOWLEDGE: "ACKNOWLEDGE",
}

func (a Action) String() string {
	if v, ok := actionToString[a]; ok {
		return v
	}
	return fmt.Sprintf("UNKNOWN_ACTION=%d", uint8(a))
}

// ManagementErrorID is the managementErrorId field of MANAGEMENT_ERROR_STATUS, Table 71
type ManagementErrorID uint16

// managementErrorId values
const (
	ErrorResponseTooBig ManagementErrorID = 0x0001
	ErrorNoSuchID       ManagementErrorID = 0x0002
	ErrorWrongLength    ManagementErrorID = 0x0003
	ErrorWrongValue     ManagementErrorID = 0x0004
	ErrorNotSetable     ManagementErrorID = 0x0005
	ErrorNotSupported   ManagementErrorID = 0x0006
	ErrorUnpopulated    ManagementErrorID = 0x0007
	ErrorGeneralError   ManagementErrorID = 0xFFFE
)

var managementErrorIDToString = map[ManagementErrorID]string{
	ErrorResponseTooBig: "RESPONSE_TOO_BIG",
	ErrorNoSuchID:       "NO_SUCH_ID",
	ErrorWrongLength:    "WRONG_LENGTH",
	ErrorWrongValue:     "WRONG_VALUE",
	ErrorNotSetable:     "NOT_SETABLE",
	ErrorNotSupported:   "NOT_SUPPORTED",
	ErrorUnpopulated:    "UNPOPULATED",
	ErrorGeneralError:   "GENERAL_ERROR",
}

func (e ManagementErrorID) String() string {
	if v, ok := managementErrorIDToString[e]; ok {
		return v
	}
	return fmt.Sprintf("UNKNOWN_ERROR_ID=%d", uint16(e))
}

const mgmtTLVHeadSize = 6

// ManagementTLVHead is the head of every management TLV: a TLVHead plus managementId
type ManagementTLVHead struct {
	TLVHead
	ManagementID ManagementID
}

// MgmtID returns the managementId of the TLV
func (h *ManagementTLVHead) MgmtID() ManagementID {
	return h.ManagementID
}

// MarshalBinaryTo marshals a bare ManagementTLVHead (empty dataField), as used by GET requests
func (h *ManagementTLVHead) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(h, b)
	return mgmtTLVHeadSize, nil
}

// MarshalBinary converts a bare ManagementTLVHead to []bytes
func (h *ManagementTLVHead) MarshalBinary() ([]byte, error) {
	b := make([]byte, mgmtTLVHeadSize)
	_, err := h.MarshalBinaryTo(b)
	return b, err
}

func mgmtTLVHeadMarshalBinaryTo(h *ManagementTLVHead, b []byte) {
	tlvHeadMarshalBinaryTo(&h.TLVHead, b)
	binary.BigEndian.PutUint16(b[4:], uint16(h.ManagementID))
}

func unmarshalMgmtTLVHeader(h *ManagementTLVHead, b []byte) error {
	if len(b) < mgmtTLVHeadSize {
		return fmt.Errorf("not enough data to decode ManagementTLVHead")
	}
	if err := unmarshalTLVHeader(&h.TLVHead, b); err != nil {
		return err
	}
	h.ManagementID = ManagementID(binary.BigEndian.Uint16(b[4:]))
	return nil
}

// ManagementTLV is implemented by every concrete management TLV payload
type ManagementTLV interface {
	TLV
	MgmtID() ManagementID
}

// ManagementMsgHead is the head of a management message, Table 56
type ManagementMsgHead struct {
	Header
	TargetPortIdentity   PortIdentity
	StartingBoundaryHops uint8
	BoundaryHops         uint8
	ActionField          Action
	reserved             uint8
}

// Action returns the actionField of the management message
func (h *ManagementMsgHead) Action() Action {
	return h.ActionField
}

const mgmtMsgHeadBodySize = 14 // TargetPortIdentity(10) + StartingBoundaryHops(1) + BoundaryHops(1) + ActionField(1) + reserved(1)

func mgmtMsgHeadMarshalBinaryTo(h *ManagementMsgHead, b []byte) int {
	pos := headerMarshalBinaryTo(&h.Header, b)
	binary.BigEndian.PutUint64(b[pos:], uint64(h.TargetPortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], h.TargetPortIdentity.PortNumber)
	b[pos+10] = h.StartingBoundaryHops
	b[pos+11] = h.BoundaryHops
	b[pos+12] = uint8(h.ActionField)
	b[pos+13] = 0
	return pos + mgmtMsgHeadBodySize
}

func unmarshalMgmtMsgHead(h *ManagementMsgHead, b []byte) error {
	if len(b) < headerSize+mgmtMsgHeadBodySize {
		return fmt.Errorf("not enough data to decode ManagementMsgHead")
	}
	unmarshalHeader(&h.Header, b)
	pos := headerSize
	h.TargetPortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	h.TargetPortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	h.StartingBoundaryHops = b[pos+10]
	h.BoundaryHops = b[pos+11]
	h.ActionField = Action(b[pos+12])
	return nil
}

// Management is a complete Management message: head plus a single tagged-union TLV
type Management struct {
	ManagementMsgHead
	TLV ManagementTLV
	// Dialect selects which managementId codes UnmarshalBinary resolves.
	// The zero value, DialectDefault, rejects the implementation-specific range.
	Dialect Dialect
}

// MessageType implements Packet
func (p *Management) MessageType() MessageType {
	return p.SdoIDAndMsgType.MsgType()
}

// MarshalBinaryTo marshals Management directly into b, returning bytes written
func (p *Management) MarshalBinaryTo(b []byte) (int, error) {
	pos := mgmtMsgHeadMarshalBinaryTo(&p.ManagementMsgHead, b)
	if p.TLV == nil {
		return pos, nil
	}
	if bmt, ok := p.TLV.(BinaryMarshalerTo); ok {
		n, err := bmt.MarshalBinaryTo(b[pos:])
		if err != nil {
			return 0, err
		}
		return pos + n, nil
	}
	bm, ok := p.TLV.(interface{ MarshalBinary() ([]byte, error) })
	if !ok {
		return 0, fmt.Errorf("management TLV %T does not support marshaling", p.TLV)
	}
	tb, err := bm.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return pos + copy(b[pos:], tb), nil
}

// MarshalBinary converts Management to []bytes
func (p *Management) MarshalBinary() ([]byte, error) {
	b := make([]byte, 2048)
	n, err := p.MarshalBinaryTo(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// MarshalBinaryToBuf writes the marshaled message to w in a single Write call
func (p *Management) MarshalBinaryToBuf(w interface {
	Write(p []byte) (n int, err error)
}) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UnmarshalBinary parses []byte into Management
func (p *Management) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtMsgHead(&p.ManagementMsgHead, b); err != nil {
		return err
	}
	if err := checkPacketLength(&p.Header, len(b)); err != nil {
		return err
	}
	if p.MessageType() != MessageManagement {
		return fmt.Errorf("got message type %q instead of %q", p.MessageType(), MessageManagement)
	}
	pos := headerSize + mgmtMsgHeadBodySize
	if len(b) < pos+tlvHeadSize {
		return fmt.Errorf("not enough data to decode management TLV head")
	}
	var th TLVHead
	if err := unmarshalTLVHeader(&th, b[pos:]); err != nil {
		return err
	}
	if th.TLVType != TLVManagement {
		return fmt.Errorf("got TLV type %q (0x%02x) instead of %q (0x%02x)", th.TLVType, uint16(th.TLVType), TLVManagement, uint16(TLVManagement))
	}
	if len(b) < pos+mgmtTLVHeadSize {
		return fmt.Errorf("not enough data to decode managementId")
	}
	code := binary.BigEndian.Uint16(b[pos+4:])
	mgmtID, ok := IDOf(code, p.Dialect)
	if !ok {
		return fmt.Errorf("%w: managementId 0x%04x not known in %s dialect", ErrInvalidID, code, p.Dialect)
	}
	tlv, err := parseMgmtTLV(mgmtID, b[pos:])
	if err != nil {
		return err
	}
	p.TLV = tlv
	return nil
}

// decodeMgmtPacket dispatches a raw MANAGEMENT message to either Management or
// ManagementMsgErrorStatus depending on the embedded TLV type.
func decodeMgmtPacket(b []byte) (Packet, error) {
	const tlvTypeOffset = headerSize + mgmtMsgHeadBodySize
	if len(b) < tlvTypeOffset+2 {
		return nil, fmt.Errorf("not enough data to decode management TLV type")
	}
	tlvType := TLVType(binary.BigEndian.Uint16(b[tlvTypeOffset:]))
	switch tlvType {
	case TLVManagementErrorStatus:
		p := &ManagementMsgErrorStatus{}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return p, nil
	default:
		p := &Management{}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return p, nil
	}
}

// ManagementErrorStatusTLV is the MANAGEMENT_ERROR_STATUS TLV, Table 70.
//
// Quirk: the wire LengthField is fixed at 8 (managementErrorId + managementId +
// 4 bytes reserved) regardless of whether DisplayData is populated, and
// DisplayData (when present) is not padded to an even length the way PTPText
// normally is. On the wire the fixed 8-byte portion is always present; any
// remaining bytes up to the enclosing message's MessageLength are DisplayData.
type ManagementErrorStatusTLV struct {
	TLVHead
	ManagementErrorID ManagementErrorID
	ManagementID      ManagementID
	DisplayData       PTPText
}

// Type implements TLV
func (t *ManagementErrorStatusTLV) Type() TLVType {
	return t.TLVHead.TLVType
}

const mgmtErrorFixedSize = 8 // managementErrorId(2) + managementId(2) + reserved(4)

// MarshalBinaryTo marshals ManagementErrorStatusTLV into b
func (t *ManagementErrorStatusTLV) MarshalBinaryTo(b []byte) (int, error) {
	th := t.TLVHead
	th.LengthField = mgmtErrorFixedSize
	tlvHeadMarshalBinaryTo(&th, b)
	binary.BigEndian.PutUint16(b[4:], uint16(t.ManagementErrorID))
	binary.BigEndian.PutUint16(b[6:], uint16(t.ManagementID))
	for i := 8; i < tlvHeadSize+mgmtErrorFixedSize; i++ {
		b[i] = 0
	}
	pos := tlvHeadSize + mgmtErrorFixedSize
	if len(t.DisplayData) == 0 {
		return pos, nil
	}
	text := []byte(t.DisplayData)
	b[pos] = byte(len(text))
	pos++
	pos += copy(b[pos:], text)
	return pos, nil
}

// MarshalBinary converts ManagementErrorStatusTLV to []bytes
func (t *ManagementErrorStatusTLV) MarshalBinary() ([]byte, error) {
	b := make([]byte, tlvHeadSize+mgmtErrorFixedSize+1+len(t.DisplayData))
	n, err := t.MarshalBinaryTo(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// unmarshalBinaryBounded parses a MANAGEMENT_ERROR_STATUS TLV bounded by maxLen, the
// number of bytes available from the enclosing message.
func (t *ManagementErrorStatusTLV) unmarshalBinaryBounded(b []byte, maxLen int) error {
	if err := unmarshalTLVHeader(&t.TLVHead, b); err != nil {
		return err
	}
	if len(b) < tlvHeadSize+mgmtErrorFixedSize {
		return fmt.Errorf("not enough data to decode ManagementErrorStatusTLV")
	}
	t.ManagementErrorID = ManagementErrorID(binary.BigEndian.Uint16(b[4:]))
	t.ManagementID = ManagementID(binary.BigEndian.Uint16(b[6:]))
	pos := tlvHeadSize + mgmtErrorFixedSize
	if maxLen <= pos {
		t.DisplayData = ""
		return nil
	}
	if len(b) <= pos {
		t.DisplayData = ""
		return nil
	}
	textLen := int(b[pos])
	end := pos + 1 + textLen
	if end > len(b) || end > maxLen {
		return fmt.Errorf("not enough data to decode ManagementErrorStatusTLV DisplayData")
	}
	t.DisplayData = PTPText(b[pos+1 : end])
	return nil
}

// UnmarshalBinary parses []byte into ManagementErrorStatusTLV
func (t *ManagementErrorStatusTLV) UnmarshalBinary(b []byte) error {
	return t.unmarshalBinaryBounded(b, len(b))
}

// ManagementMsgErrorStatus is a complete MANAGEMENT_ERROR_STATUS message
type ManagementMsgErrorStatus struct {
	ManagementMsgHead
	ManagementErrorStatusTLV
}

// MessageType implements Packet
func (p *ManagementMsgErrorStatus) MessageType() MessageType {
	return p.SdoIDAndMsgType.MsgType()
}

// MarshalBinaryTo marshals ManagementMsgErrorStatus directly into b
func (p *ManagementMsgErrorStatus) MarshalBinaryTo(b []byte) (int, error) {
	pos := mgmtMsgHeadMarshalBinaryTo(&p.ManagementMsgHead, b)
	n, err := p.ManagementErrorStatusTLV.MarshalBinaryTo(b[pos:])
	if err != nil {
		return 0, err
	}
	return pos + n, nil
}

// MarshalBinary converts ManagementMsgErrorStatus to []bytes
func (p *ManagementMsgErrorStatus) MarshalBinary() ([]byte, error) {
	b := make([]byte, headerSize+mgmtMsgHeadBodySize+tlvHeadSize+mgmtErrorFixedSize+1+len(p.DisplayData))
	n, err := p.MarshalBinaryTo(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// MarshalBinaryToBuf writes the marshaled message to w in a single Write call
func (p *ManagementMsgErrorStatus) MarshalBinaryToBuf(w interface {
	Write(p []byte) (n int, err error)
}) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UnmarshalBinary parses []byte into ManagementMsgErrorStatus
func (p *ManagementMsgErrorStatus) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtMsgHead(&p.ManagementMsgHead, b); err != nil {
		return err
	}
	if err := checkPacketLength(&p.Header, len(b)); err != nil {
		return err
	}
	pos := headerSize + mgmtMsgHeadBodySize
	if len(b) < pos+tlvHeadSize {
		return fmt.Errorf("not enough data to decode management-error TLV head")
	}
	maxLen := len(b) - pos
	if int(p.MessageLength) > headerSize && int(p.MessageLength)-headerSize-mgmtMsgHeadBodySize < maxLen {
		maxLen = int(p.MessageLength) - headerSize - mgmtMsgHeadBodySize
	}
	return p.ManagementErrorStatusTLV.unmarshalBinaryBounded(b[pos:], maxLen)
}

// identity is the PortIdentity this process uses as SourcePortIdentity when
// building management requests.
var identity PortIdentity

// DefaultTargetPortIdentity is the wildcard target used for requests that
// address every port of every clock.
var DefaultTargetPortIdentity = PortIdentity{
	ClockIdentity: 0xffffffffffffffff,
	PortNumber:    0xffff,
}

// MgmtLogMessageInterval is the logMessageInterval used for management requests
const MgmtLogMessageInterval LogInterval = 0x7f

// DefaultBoundaryHops is the startingBoundaryHops/boundaryHops value used for
// requests built by this package, matching the reference pmc tool's default.
const DefaultBoundaryHops = 1
