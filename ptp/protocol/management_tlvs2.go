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

// DefaultDataSetTLV Table 63 DEFAULT_DATA_SET management TLV
type DefaultDataSetTLV struct {
	ManagementTLVHead
	SoTSC         uint8 // bit0 twoStepFlag, bit1 slaveOnly
	NumberPorts   uint16
	Priority1     uint8
	ClockQuality  ClockQuality
	Priority2     uint8
	ClockIdentity ClockIdentity
	DomainNumber  uint8
}

// MarshalBinaryTo marshals DefaultDataSetTLV into b
func (t *DefaultDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	b[pos] = t.SoTSC
	b[pos+1] = 0 // reserved
	binary.BigEndian.PutUint16(b[pos+2:], t.NumberPorts)
	b[pos+4] = t.Priority1
	b[pos+5] = byte(t.ClockQuality.ClockClass)
	b[pos+6] = byte(t.ClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+7:], t.ClockQuality.OffsetScaledLogVariance)
	b[pos+9] = t.Priority2
	binary.BigEndian.PutUint64(b[pos+10:], uint64(t.ClockIdentity))
	b[pos+18] = t.DomainNumber
	b[pos+19] = 0 // reserved, pads dataField to even length
	return pos + 20, nil
}

// UnmarshalBinary parses []byte into DefaultDataSetTLV
func (t *DefaultDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+20 {
		return fmt.Errorf("not enough data to decode DefaultDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.SoTSC = b[pos]
	t.NumberPorts = binary.BigEndian.Uint16(b[pos+2:])
	t.Priority1 = b[pos+4]
	t.ClockQuality.ClockClass = ClockClass(b[pos+5])
	t.ClockQuality.ClockAccuracy = ClockAccuracy(b[pos+6])
	t.ClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+7:])
	t.Priority2 = b[pos+9]
	t.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos+10:]))
	t.DomainNumber = b[pos+18]
	return nil
}

// CurrentDataSetTLV Table 64 CURRENT_DATA_SET management TLV
type CurrentDataSetTLV struct {
	ManagementTLVHead
	StepsRemoved     uint16
	OffsetFromMaster TimeInterval
	MeanPathDelay    TimeInterval
}

// MarshalBinaryTo marshals CurrentDataSetTLV into b
func (t *CurrentDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.StepsRemoved)
	binary.BigEndian.PutUint64(b[pos+2:], uint64(t.OffsetFromMaster))
	binary.BigEndian.PutUint64(b[pos+10:], uint64(t.MeanPathDelay))
	return pos + 18, nil
}

// UnmarshalBinary parses []byte into CurrentDataSetTLV
func (t *CurrentDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+18 {
		return fmt.Errorf("not enough data to decode CurrentDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.StepsRemoved = binary.BigEndian.Uint16(b[pos:])
	t.OffsetFromMaster = TimeInterval(binary.BigEndian.Uint64(b[pos+2:]))
	t.MeanPathDelay = TimeInterval(binary.BigEndian.Uint64(b[pos+10:]))
	return nil
}

// ParentDataSetTLV Table 65 PARENT_DATA_SET management TLV
type ParentDataSetTLV struct {
	ManagementTLVHead
	ParentPortIdentity                    PortIdentity
	Flags                                  uint8 // bit0 parentStats
	ObservedParentOffsetScaledLogVariance uint16
	ObservedParentClockPhaseChangeRate    int32
	GrandmasterPriority1                  uint8
	GrandmasterClockQuality               ClockQuality
	GrandmasterPriority2                  uint8
	GrandmasterIdentity                   ClockIdentity
}

// MarshalBinaryTo marshals ParentDataSetTLV into b
func (t *ParentDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.ParentPortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.ParentPortIdentity.PortNumber)
	b[pos+10] = t.Flags & 0x1
	b[pos+11] = 0 // reserved
	binary.BigEndian.PutUint16(b[pos+12:], t.ObservedParentOffsetScaledLogVariance)
	binary.BigEndian.PutUint32(b[pos+14:], uint32(t.ObservedParentClockPhaseChangeRate))
	b[pos+18] = t.GrandmasterPriority1
	b[pos+19] = byte(t.GrandmasterClockQuality.ClockClass)
	b[pos+20] = byte(t.GrandmasterClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+21:], t.GrandmasterClockQuality.OffsetScaledLogVariance)
	b[pos+23] = t.GrandmasterPriority2
	binary.BigEndian.PutUint64(b[pos+24:], uint64(t.GrandmasterIdentity))
	return pos + 32, nil
}

// UnmarshalBinary parses []byte into ParentDataSetTLV
func (t *ParentDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+32 {
		return fmt.Errorf("not enough data to decode ParentDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.ParentPortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.ParentPortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	t.Flags = b[pos+10] & 0x1
	t.ObservedParentOffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+12:])
	t.ObservedParentClockPhaseChangeRate = int32(binary.BigEndian.Uint32(b[pos+14:]))
	t.GrandmasterPriority1 = b[pos+18]
	t.GrandmasterClockQuality.ClockClass = ClockClass(b[pos+19])
	t.GrandmasterClockQuality.ClockAccuracy = ClockAccuracy(b[pos+20])
	t.GrandmasterClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+21:])
	t.GrandmasterPriority2 = b[pos+23]
	t.GrandmasterIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos+24:]))
	return nil
}

// TimePropertiesDataSetTLV Table 66 TIME_PROPERTIES_DATA_SET management TLV
type TimePropertiesDataSetTLV struct {
	ManagementTLVHead
	CurrentUtcOffset int16
	FlagField        uint8
	TimeSource       TimeSource
}

// MarshalBinaryTo marshals TimePropertiesDataSetTLV into b
func (t *TimePropertiesDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], uint16(t.CurrentUtcOffset))
	b[pos+2] = t.FlagField
	b[pos+3] = byte(t.TimeSource)
	return pos + 4, nil
}

// UnmarshalBinary parses []byte into TimePropertiesDataSetTLV
func (t *TimePropertiesDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+4 {
		return fmt.Errorf("not enough data to decode TimePropertiesDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.CurrentUtcOffset = int16(binary.BigEndian.Uint16(b[pos:]))
	t.FlagField = b[pos+2]
	t.TimeSource = TimeSource(b[pos+3])
	return nil
}

// PortDataSetTLV Table 67 PORT_DATA_SET management TLV
type PortDataSetTLV struct {
	ManagementTLVHead
	PortIdentity             PortIdentity
	PortState                PortState
	LogMinDelayReqInterval   LogInterval
	PeerMeanPathDelay        TimeInterval
	LogAnnounceInterval      LogInterval
	AnnounceReceiptTimeout   uint8
	LogSyncInterval          LogInterval
	DelayMechanism           uint8
	LogMinPdelayReqInterval  LogInterval
	VersionNumber            uint8 // low nibble
}

// MarshalBinaryTo marshals PortDataSetTLV into b
func (t *PortDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.PortIdentity.PortNumber)
	b[pos+10] = byte(t.PortState)
	b[pos+11] = byte(t.LogMinDelayReqInterval)
	binary.BigEndian.PutUint64(b[pos+12:], uint64(t.PeerMeanPathDelay))
	b[pos+20] = byte(t.LogAnnounceInterval)
	b[pos+21] = t.AnnounceReceiptTimeout
	b[pos+22] = byte(t.LogSyncInterval)
	b[pos+23] = t.DelayMechanism
	b[pos+24] = byte(t.LogMinPdelayReqInterval)
	b[pos+25] = t.VersionNumber & 0xf
	return pos + 26, nil
}

// UnmarshalBinary parses []byte into PortDataSetTLV
func (t *PortDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+26 {
		return fmt.Errorf("not enough data to decode PortDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	t.PortState = PortState(b[pos+10])
	t.LogMinDelayReqInterval = LogInterval(b[pos+11])
	t.PeerMeanPathDelay = TimeInterval(binary.BigEndian.Uint64(b[pos+12:]))
	t.LogAnnounceInterval = LogInterval(b[pos+20])
	t.AnnounceReceiptTimeout = b[pos+21]
	t.LogSyncInterval = LogInterval(b[pos+22])
	t.DelayMechanism = b[pos+23]
	t.LogMinPdelayReqInterval = LogInterval(b[pos+24])
	t.VersionNumber = b[pos+25] & 0xf
	return nil
}

// PathTraceListTLV Table 79 PATH_TRACE_LIST management TLV, a run of ClockIdentity values
type PathTraceListTLV struct {
	ManagementTLVHead
	PathSequence []ClockIdentity
}

// MarshalBinaryTo marshals PathTraceListTLV into b
func (t *PathTraceListTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	for _, ci := range t.PathSequence {
		binary.BigEndian.PutUint64(b[pos:], uint64(ci))
		pos += 8
	}
	return pos, nil
}

// UnmarshalBinary parses []byte into PathTraceListTLV
func (t *PathTraceListTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	n := int(t.LengthField) - 2 // minus managementId
	if n < 0 || n%8 != 0 {
		return fmt.Errorf("unexpected PathTraceListTLV dataField length %d", t.LengthField)
	}
	if len(b) < mgmtTLVHeadSize+n {
		return fmt.Errorf("not enough data to decode PathTraceListTLV")
	}
	t.PathSequence = nil
	pos := mgmtTLVHeadSize
	for i := 0; i < n/8; i++ {
		t.PathSequence = append(t.PathSequence, ClockIdentity(binary.BigEndian.Uint64(b[pos:])))
		pos += 8
	}
	return nil
}

// GrandmasterClusterTableTLV Table 93 GRANDMASTER_CLUSTER_TABLE management TLV
type GrandmasterClusterTableTLV struct {
	ManagementTLVHead
	LogQueryInterval LogInterval
	ActualTableSize  uint8
	PortAddress      []PortAddress
}

// MarshalBinaryTo marshals GrandmasterClusterTableTLV into b
func (t *GrandmasterClusterTableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	b[pos] = byte(t.LogQueryInterval)
	b[pos+1] = uint8(len(t.PortAddress))
	pos += 2
	for _, pa := range t.PortAddress {
		pab, err := pa.MarshalBinary()
		if err != nil {
			return 0, err
		}
		pos += copy(b[pos:], pab)
	}
	return pos, nil
}

// UnmarshalBinary parses []byte into GrandmasterClusterTableTLV
func (t *GrandmasterClusterTableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode GrandmasterClusterTableTLV")
	}
	pos := mgmtTLVHeadSize
	t.LogQueryInterval = LogInterval(b[pos])
	t.ActualTableSize = b[pos+1]
	pos += 2
	end := tlvHeadSize + int(t.LengthField)
	if end > len(b) {
		end = len(b)
	}
	t.PortAddress = nil
	for i := 0; i < int(t.ActualTableSize) && pos < end; i++ {
		var pa PortAddress
		if err := pa.UnmarshalBinary(b[pos:]); err != nil {
			return err
		}
		t.PortAddress = append(t.PortAddress, pa)
		pos += pa.Size()
	}
	return nil
}

// UnicastMasterTableTLV Table 90 UNICAST_MASTER_TABLE management TLV
type UnicastMasterTableTLV struct {
	ManagementTLVHead
	LogQueryInterval LogInterval
	ActualTableSize  uint16
	PortAddress      []PortAddress
}

// MarshalBinaryTo marshals UnicastMasterTableTLV into b
func (t *UnicastMasterTableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	b[pos] = byte(t.LogQueryInterval)
	binary.BigEndian.PutUint16(b[pos+1:], uint16(len(t.PortAddress)))
	pos += 3
	for _, pa := range t.PortAddress {
		pab, err := pa.MarshalBinary()
		if err != nil {
			return 0, err
		}
		pos += copy(b[pos:], pab)
	}
	return pos, nil
}

// UnmarshalBinary parses []byte into UnicastMasterTableTLV
func (t *UnicastMasterTableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+3 {
		return fmt.Errorf("not enough data to decode UnicastMasterTableTLV")
	}
	pos := mgmtTLVHeadSize
	t.LogQueryInterval = LogInterval(b[pos])
	t.ActualTableSize = binary.BigEndian.Uint16(b[pos+1:])
	pos += 3
	end := tlvHeadSize + int(t.LengthField)
	if end > len(b) {
		end = len(b)
	}
	t.PortAddress = nil
	for i := 0; i < int(t.ActualTableSize) && pos < end; i++ {
		var pa PortAddress
		if err := pa.UnmarshalBinary(b[pos:]); err != nil {
			return err
		}
		t.PortAddress = append(t.PortAddress, pa)
		pos += pa.Size()
	}
	return nil
}

// AcceptableMasterTableTLV Table 82 ACCEPTABLE_MASTER_TABLE management TLV
type AcceptableMasterTableTLV struct {
	ManagementTLVHead
	ActualTableSize  int16
	AcceptableMaster []AcceptableMaster
}

// MarshalBinaryTo marshals AcceptableMasterTableTLV into b
func (t *AcceptableMasterTableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], uint16(len(t.AcceptableMaster)))
	pos += 2
	for _, am := range t.AcceptableMaster {
		amb, err := am.MarshalBinary()
		if err != nil {
			return 0, err
		}
		pos += copy(b[pos:], amb)
	}
	return pos, nil
}

// UnmarshalBinary parses []byte into AcceptableMasterTableTLV
func (t *AcceptableMasterTableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AcceptableMasterTableTLV")
	}
	pos := mgmtTLVHeadSize
	t.ActualTableSize = int16(binary.BigEndian.Uint16(b[pos:]))
	pos += 2
	end := tlvHeadSize + int(t.LengthField)
	if end > len(b) {
		end = len(b)
	}
	t.AcceptableMaster = nil
	for i := 0; i < int(t.ActualTableSize) && pos+11 <= end; i++ {
		var am AcceptableMaster
		if err := am.UnmarshalBinary(b[pos:]); err != nil {
			return err
		}
		t.AcceptableMaster = append(t.AcceptableMaster, am)
		pos += 11
	}
	return nil
}

// TransparentClockDefaultDataSetTLV Table 91 TRANSPARENT_CLOCK_DEFAULT_DATA_SET management TLV
type TransparentClockDefaultDataSetTLV struct {
	ManagementTLVHead
	ClockIdentity  ClockIdentity
	NumberPorts    uint16
	DelayMechanism uint8
	PrimaryDomain  uint8
}

// MarshalBinaryTo marshals TransparentClockDefaultDataSetTLV into b
func (t *TransparentClockDefaultDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.NumberPorts)
	b[pos+10] = t.DelayMechanism
	b[pos+11] = t.PrimaryDomain
	return pos + 12, nil
}

// UnmarshalBinary parses []byte into TransparentClockDefaultDataSetTLV
func (t *TransparentClockDefaultDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+12 {
		return fmt.Errorf("not enough data to decode TransparentClockDefaultDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.NumberPorts = binary.BigEndian.Uint16(b[pos+8:])
	t.DelayMechanism = b[pos+10]
	t.PrimaryDomain = b[pos+11]
	return nil
}

// TransparentClockPortDataSetTLV Table 92 TRANSPARENT_CLOCK_PORT_DATA_SET management TLV
type TransparentClockPortDataSetTLV struct {
	ManagementTLVHead
	PortIdentity            PortIdentity
	FlagField               uint8
	LogMinPdelayReqInterval LogInterval
	PeerMeanPathDelay       TimeInterval
}

// MarshalBinaryTo marshals TransparentClockPortDataSetTLV into b
func (t *TransparentClockPortDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.PortIdentity.PortNumber)
	b[pos+10] = t.FlagField
	b[pos+11] = byte(t.LogMinPdelayReqInterval)
	binary.BigEndian.PutUint64(b[pos+12:], uint64(t.PeerMeanPathDelay))
	return pos + 20, nil
}

// UnmarshalBinary parses []byte into TransparentClockPortDataSetTLV
func (t *TransparentClockPortDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+20 {
		return fmt.Errorf("not enough data to decode TransparentClockPortDataSetTLV")
	}
	pos := mgmtTLVHeadSize
	t.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	t.FlagField = b[pos+10]
	t.LogMinPdelayReqInterval = LogInterval(b[pos+11])
	t.PeerMeanPathDelay = TimeInterval(binary.BigEndian.Uint64(b[pos+12:]))
	return nil
}

// GrandmasterSettingsNPTLV linuxptp GRANDMASTER_SETTINGS_NP management TLV
type GrandmasterSettingsNPTLV struct {
	ManagementTLVHead
	ClockQuality     ClockQuality
	CurrentUtcOffset int16
	FlagField        uint8
	TimeSource       TimeSource
}

// MarshalBinaryTo marshals GrandmasterSettingsNPTLV into b
func (t *GrandmasterSettingsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	b[pos] = byte(t.ClockQuality.ClockClass)
	b[pos+1] = byte(t.ClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+2:], t.ClockQuality.OffsetScaledLogVariance)
	binary.BigEndian.PutUint16(b[pos+4:], uint16(t.CurrentUtcOffset))
	b[pos+6] = t.FlagField
	b[pos+7] = byte(t.TimeSource)
	return pos + 8, nil
}

// UnmarshalBinary parses []byte into GrandmasterSettingsNPTLV
func (t *GrandmasterSettingsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+8 {
		return fmt.Errorf("not enough data to decode GrandmasterSettingsNPTLV")
	}
	pos := mgmtTLVHeadSize
	t.ClockQuality.ClockClass = ClockClass(b[pos])
	t.ClockQuality.ClockAccuracy = ClockAccuracy(b[pos+1])
	t.ClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+2:])
	t.CurrentUtcOffset = int16(binary.BigEndian.Uint16(b[pos+4:]))
	t.FlagField = b[pos+6]
	t.TimeSource = TimeSource(b[pos+7])
	return nil
}

// PortDataSetNPTLV linuxptp PORT_DATA_SET_NP management TLV
type PortDataSetNPTLV struct {
	ManagementTLVHead
	NeighborPropDelayThresh uint32
	AsCapable               int32
}

// MarshalBinaryTo marshals PortDataSetNPTLV into b
func (t *PortDataSetNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint32(b[pos:], t.NeighborPropDelayThresh)
	binary.BigEndian.PutUint32(b[pos+4:], uint32(t.AsCapable))
	return pos + 8, nil
}

// UnmarshalBinary parses []byte into PortDataSetNPTLV
func (t *PortDataSetNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+8 {
		return fmt.Errorf("not enough data to decode PortDataSetNPTLV")
	}
	pos := mgmtTLVHeadSize
	t.NeighborPropDelayThresh = binary.BigEndian.Uint32(b[pos:])
	t.AsCapable = int32(binary.BigEndian.Uint32(b[pos+4:]))
	return nil
}

// SubscribeEventsNPTLV linuxptp SUBSCRIBE_EVENTS_NP management TLV
type SubscribeEventsNPTLV struct {
	ManagementTLVHead
	Duration uint16
	Bitmask  [64]byte
}

// MarshalBinaryTo marshals SubscribeEventsNPTLV into b
func (t *SubscribeEventsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.Duration)
	copy(b[pos+2:], t.Bitmask[:])
	return pos + 2 + len(t.Bitmask), nil
}

// UnmarshalBinary parses []byte into SubscribeEventsNPTLV
func (t *SubscribeEventsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	need := mgmtTLVHeadSize + 2 + len(t.Bitmask)
	if len(b) < need {
		return fmt.Errorf("not enough data to decode SubscribeEventsNPTLV")
	}
	pos := mgmtTLVHeadSize
	t.Duration = binary.BigEndian.Uint16(b[pos:])
	copy(t.Bitmask[:], b[pos+2:pos+2+len(t.Bitmask)])
	return nil
}
