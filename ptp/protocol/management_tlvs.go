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

// parseMgmtTLV dispatches on managementId to build and parse the correct
// concrete ManagementTLV from b, which starts at the TLV's TLVHead.
func parseMgmtTLV(id ManagementID, b []byte) (ManagementTLV, error) {
	var tlv ManagementTLV
	switch id {
	case IDNullPTPManagement, IDSaveInNonVolatileStorage, IDResetNonVolatileStorage,
		IDFaultLogReset, IDEnablePort, IDDisablePort:
		tlv = &ManagementTLVHead{}
	case IDClockDescription:
		tlv = &ClockDescriptionTLV{}
	case IDUserDescription:
		tlv = &UserDescriptionTLV{}
	case IDInitialize:
		tlv = &InitializeTLV{}
	case IDFaultLog:
		tlv = &FaultLogTLV{}
	case IDDefaultDataSet:
		tlv = &DefaultDataSetTLV{}
	case IDCurrentDataSet:
		tlv = &CurrentDataSetTLV{}
	case IDParentDataSet:
		tlv = &ParentDataSetTLV{}
	case IDTimePropertiesDataSet:
		tlv = &TimePropertiesDataSetTLV{}
	case IDPortDataSet:
		tlv = &PortDataSetTLV{}
	case IDPriority1:
		tlv = &Priority1TLV{}
	case IDPriority2:
		tlv = &Priority2TLV{}
	case IDDomain:
		tlv = &DomainTLV{}
	case IDSlaveOnly:
		tlv = &SlaveOnlyTLV{}
	case IDLogAnnounceInterval:
		tlv = &LogAnnounceIntervalTLV{}
	case IDAnnounceReceiptTimeout:
		tlv = &AnnounceReceiptTimeoutTLV{}
	case IDLogSyncInterval:
		tlv = &LogSyncIntervalTLV{}
	case IDVersionNumber:
		tlv = &VersionNumberTLV{}
	case IDTime:
		tlv = &TimeTLV{}
	case IDClockAccuracy:
		tlv = &ClockAccuracyTLV{}
	case IDUtcProperties:
		tlv = &UtcPropertiesTLV{}
	case IDTraceabilityProperties:
		tlv = &TraceabilityPropertiesTLV{}
	case IDTimescaleProperties:
		tlv = &TimescalePropertiesTLV{}
	case IDUnicastNegotiationEnable:
		tlv = &UnicastNegotiationEnableTLV{}
	case IDPathTraceList:
		tlv = &PathTraceListTLV{}
	case IDPathTraceEnable:
		tlv = &PathTraceEnableTLV{}
	case IDGrandmasterClusterTable:
		tlv = &GrandmasterClusterTableTLV{}
	case IDUnicastMasterTable:
		tlv = &UnicastMasterTableTLV{}
	case IDUnicastMasterMaxTableSize:
		tlv = &UnicastMasterMaxTableSizeTLV{}
	case IDAcceptableMasterTable:
		tlv = &AcceptableMasterTableTLV{}
	case IDAcceptableMasterTableEnabled:
		tlv = &AcceptableMasterTableEnabledTLV{}
	case IDAcceptableMasterMaxTableSize:
		tlv = &AcceptableMasterMaxTableSizeTLV{}
	case IDAlternateMaster:
		tlv = &AlternateMasterTLV{}
	case IDAlternateTimeOffsetEnable:
		tlv = &AlternateTimeOffsetEnableTLV{}
	case IDAlternateTimeOffsetName:
		tlv = &AlternateTimeOffsetNameTLV{}
	case IDAlternateTimeOffsetMaxKey:
		tlv = &AlternateTimeOffsetMaxKeyTLV{}
	case IDAlternateTimeOffsetProperties:
		tlv = &AlternateTimeOffsetPropertiesTLV{}
	case IDExternalPortConfigurationEnabled:
		tlv = &ExternalPortConfigurationEnabledTLV{}
	case IDMasterOnly:
		tlv = &MasterOnlyTLV{}
	case IDHoldoverUpgradeEnable:
		tlv = &HoldoverUpgradeEnableTLV{}
	case IDExtPortConfigPortDataSet:
		tlv = &ExtPortConfigPortDataSetTLV{}
	case IDTransparentClockDefaultDataSet:
		tlv = &TransparentClockDefaultDataSetTLV{}
	case IDTransparentClockPortDataSet:
		tlv = &TransparentClockPortDataSetTLV{}
	case IDPrimaryDomain:
		tlv = &PrimaryDomainTLV{}
	case IDDelayMechanism:
		tlv = &DelayMechanismTLV{}
	case IDLogMinPdelayReqInterval:
		tlv = &LogMinPdelayReqIntervalTLV{}
	case IDTimeStatusNP:
		tlv = &TimeStatusNPTLV{}
	case IDGrandmasterSettingsNP:
		tlv = &GrandmasterSettingsNPTLV{}
	case IDPortDataSetNP:
		tlv = &PortDataSetNPTLV{}
	case IDSubscribeEventsNP:
		tlv = &SubscribeEventsNPTLV{}
	case IDPortPropertiesNP:
		tlv = &PortPropertiesNPTLV{}
	case IDPortStatsNP:
		tlv = &PortStatsNPTLV{}
	case IDSynchronizationUncertainNP:
		tlv = &SynchronizationUncertainNPTLV{}
	case IDPortServiceStatsNP:
		tlv = &PortServiceStatsNPTLV{}
	case IDUnicastMasterTableNP:
		tlv = &UnicastMasterTableNPTLV{}
	default:
		return nil, fmt.Errorf("parsing management TLV %s (0x%04x) is not yet implemented", id, uint16(id))
	}
	u, ok := tlv.(interface{ UnmarshalBinary([]byte) error })
	if !ok {
		return nil, fmt.Errorf("management TLV %T does not support unmarshaling", tlv)
	}
	if err := u.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return tlv, nil
}

// simple fixed-size two-field TLVs of the form "value(1) + reserved(1)"

// Priority1TLV Table 65 PRIORITY1 management TLV
type Priority1TLV struct {
	ManagementTLVHead
	Priority1 uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals Priority1TLV into b
func (t *Priority1TLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.Priority1
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into Priority1TLV
func (t *Priority1TLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode Priority1TLV")
	}
	t.Priority1 = b[mgmtTLVHeadSize]
	return nil
}

// Priority2TLV Table 66 PRIORITY2 management TLV
type Priority2TLV struct {
	ManagementTLVHead
	Priority2 uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals Priority2TLV into b
func (t *Priority2TLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.Priority2
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into Priority2TLV
func (t *Priority2TLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode Priority2TLV")
	}
	t.Priority2 = b[mgmtTLVHeadSize]
	return nil
}

// DomainTLV Table 67 DOMAIN management TLV
type DomainTLV struct {
	ManagementTLVHead
	DomainNumber uint8
	Reserved     uint8
}

// MarshalBinaryTo marshals DomainTLV into b
func (t *DomainTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.DomainNumber
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into DomainTLV
func (t *DomainTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode DomainTLV")
	}
	t.DomainNumber = b[mgmtTLVHeadSize]
	return nil
}

// SlaveOnlyTLV Table 68 SLAVE_ONLY management TLV
type SlaveOnlyTLV struct {
	ManagementTLVHead
	SO       uint8 // bit 0
	Reserved uint8
}

// MarshalBinaryTo marshals SlaveOnlyTLV into b
func (t *SlaveOnlyTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.SO & 0x1
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into SlaveOnlyTLV
func (t *SlaveOnlyTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode SlaveOnlyTLV")
	}
	t.SO = b[mgmtTLVHeadSize] & 0x1
	return nil
}

// LogAnnounceIntervalTLV Table 69 LOG_ANNOUNCE_INTERVAL management TLV
type LogAnnounceIntervalTLV struct {
	ManagementTLVHead
	LogAnnounceInterval LogInterval
	Reserved            uint8
}

// MarshalBinaryTo marshals LogAnnounceIntervalTLV into b
func (t *LogAnnounceIntervalTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = byte(t.LogAnnounceInterval)
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into LogAnnounceIntervalTLV
func (t *LogAnnounceIntervalTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode LogAnnounceIntervalTLV")
	}
	t.LogAnnounceInterval = LogInterval(b[mgmtTLVHeadSize])
	return nil
}

// AnnounceReceiptTimeoutTLV Table 70 ANNOUNCE_RECEIPT_TIMEOUT management TLV
type AnnounceReceiptTimeoutTLV struct {
	ManagementTLVHead
	AnnounceReceiptTimeout uint8
	Reserved               uint8
}

// MarshalBinaryTo marshals AnnounceReceiptTimeoutTLV into b
func (t *AnnounceReceiptTimeoutTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.AnnounceReceiptTimeout
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into AnnounceReceiptTimeoutTLV
func (t *AnnounceReceiptTimeoutTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AnnounceReceiptTimeoutTLV")
	}
	t.AnnounceReceiptTimeout = b[mgmtTLVHeadSize]
	return nil
}

// LogSyncIntervalTLV Table 71 LOG_SYNC_INTERVAL management TLV
type LogSyncIntervalTLV struct {
	ManagementTLVHead
	LogSyncInterval LogInterval
	Reserved        uint8
}

// MarshalBinaryTo marshals LogSyncIntervalTLV into b
func (t *LogSyncIntervalTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = byte(t.LogSyncInterval)
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into LogSyncIntervalTLV
func (t *LogSyncIntervalTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode LogSyncIntervalTLV")
	}
	t.LogSyncInterval = LogInterval(b[mgmtTLVHeadSize])
	return nil
}

// VersionNumberTLV Table 72 VERSION_NUMBER management TLV
type VersionNumberTLV struct {
	ManagementTLVHead
	VersionNumber uint8 // low nibble
	Reserved      uint8
}

// MarshalBinaryTo marshals VersionNumberTLV into b
func (t *VersionNumberTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.VersionNumber & 0xf
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into VersionNumberTLV
func (t *VersionNumberTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode VersionNumberTLV")
	}
	t.VersionNumber = b[mgmtTLVHeadSize] & 0xf
	return nil
}

// ClockAccuracyTLV Table 73 CLOCK_ACCURACY management TLV
type ClockAccuracyTLV struct {
	ManagementTLVHead
	ClockAccuracy ClockAccuracy
	Reserved      uint8
}

// MarshalBinaryTo marshals ClockAccuracyTLV into b
func (t *ClockAccuracyTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = byte(t.ClockAccuracy)
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into ClockAccuracyTLV
func (t *ClockAccuracyTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode ClockAccuracyTLV")
	}
	t.ClockAccuracy = ClockAccuracy(b[mgmtTLVHeadSize])
	return nil
}

// TraceabilityPropertiesTLV Table 75 TRACEABILITY_PROPERTIES management TLV
type TraceabilityPropertiesTLV struct {
	ManagementTLVHead
	FlagField uint8 // bit0 FTRA, bit1 TTRA
	Reserved  uint8
}

// MarshalBinaryTo marshals TraceabilityPropertiesTLV into b
func (t *TraceabilityPropertiesTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into TraceabilityPropertiesTLV
func (t *TraceabilityPropertiesTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode TraceabilityPropertiesTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// TimescalePropertiesTLV Table 76 TIMESCALE_PROPERTIES management TLV
type TimescalePropertiesTLV struct {
	ManagementTLVHead
	FlagField  uint8
	TimeSource TimeSource
}

// MarshalBinaryTo marshals TimescalePropertiesTLV into b
func (t *TimescalePropertiesTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = byte(t.TimeSource)
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into TimescalePropertiesTLV
func (t *TimescalePropertiesTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode TimescalePropertiesTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	t.TimeSource = TimeSource(b[mgmtTLVHeadSize+1])
	return nil
}

// UnicastNegotiationEnableTLV is a linuxptp-style 2-byte flag TLV
type UnicastNegotiationEnableTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals UnicastNegotiationEnableTLV into b
func (t *UnicastNegotiationEnableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into UnicastNegotiationEnableTLV
func (t *UnicastNegotiationEnableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode UnicastNegotiationEnableTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// PathTraceEnableTLV Table 78 PATH_TRACE_ENABLE management TLV
type PathTraceEnableTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals PathTraceEnableTLV into b
func (t *PathTraceEnableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into PathTraceEnableTLV
func (t *PathTraceEnableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode PathTraceEnableTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// AcceptableMasterTableEnabledTLV Table 81 ACCEPTABLE_MASTER_TABLE_ENABLED management TLV
type AcceptableMasterTableEnabledTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals AcceptableMasterTableEnabledTLV into b
func (t *AcceptableMasterTableEnabledTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into AcceptableMasterTableEnabledTLV
func (t *AcceptableMasterTableEnabledTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AcceptableMasterTableEnabledTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// AlternateTimeOffsetEnableTLV Table 85 ALTERNATE_TIME_OFFSET_ENABLE management TLV
type AlternateTimeOffsetEnableTLV struct {
	ManagementTLVHead
	KeyField  uint8
	FlagField uint8
}

// MarshalBinaryTo marshals AlternateTimeOffsetEnableTLV into b
func (t *AlternateTimeOffsetEnableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.KeyField
	b[mgmtTLVHeadSize+1] = t.FlagField
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into AlternateTimeOffsetEnableTLV
func (t *AlternateTimeOffsetEnableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AlternateTimeOffsetEnableTLV")
	}
	t.KeyField = b[mgmtTLVHeadSize]
	t.FlagField = b[mgmtTLVHeadSize+1]
	return nil
}

// AlternateTimeOffsetMaxKeyTLV Table 87 ALTERNATE_TIME_OFFSET_MAX_KEY management TLV
type AlternateTimeOffsetMaxKeyTLV struct {
	ManagementTLVHead
	MaxKey   uint8
	Reserved uint8
}

// MarshalBinaryTo marshals AlternateTimeOffsetMaxKeyTLV into b
func (t *AlternateTimeOffsetMaxKeyTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.MaxKey
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into AlternateTimeOffsetMaxKeyTLV
func (t *AlternateTimeOffsetMaxKeyTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AlternateTimeOffsetMaxKeyTLV")
	}
	t.MaxKey = b[mgmtTLVHeadSize]
	return nil
}

// ExternalPortConfigurationEnabledTLV linuxptp EXTERNAL_PORT_CONFIGURATION_ENABLED management TLV
type ExternalPortConfigurationEnabledTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals ExternalPortConfigurationEnabledTLV into b
func (t *ExternalPortConfigurationEnabledTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into ExternalPortConfigurationEnabledTLV
func (t *ExternalPortConfigurationEnabledTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode ExternalPortConfigurationEnabledTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// MasterOnlyTLV linuxptp MASTER_ONLY management TLV
type MasterOnlyTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals MasterOnlyTLV into b
func (t *MasterOnlyTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into MasterOnlyTLV
func (t *MasterOnlyTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode MasterOnlyTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// HoldoverUpgradeEnableTLV linuxptp HOLDOVER_UPGRADE_ENABLE management TLV
type HoldoverUpgradeEnableTLV struct {
	ManagementTLVHead
	FlagField uint8
	Reserved  uint8
}

// MarshalBinaryTo marshals HoldoverUpgradeEnableTLV into b
func (t *HoldoverUpgradeEnableTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into HoldoverUpgradeEnableTLV
func (t *HoldoverUpgradeEnableTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode HoldoverUpgradeEnableTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	return nil
}

// ExtPortConfigPortDataSetTLV linuxptp EXT_PORT_CONFIG_PORT_DATA_SET management TLV
type ExtPortConfigPortDataSetTLV struct {
	ManagementTLVHead
	FlagField    uint8
	DesiredState PortState
}

// MarshalBinaryTo marshals ExtPortConfigPortDataSetTLV into b
func (t *ExtPortConfigPortDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = byte(t.DesiredState)
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into ExtPortConfigPortDataSetTLV
func (t *ExtPortConfigPortDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode ExtPortConfigPortDataSetTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	t.DesiredState = PortState(b[mgmtTLVHeadSize+1])
	return nil
}

// PrimaryDomainTLV Table 94 PRIMARY_DOMAIN management TLV
type PrimaryDomainTLV struct {
	ManagementTLVHead
	PrimaryDomain uint8
	Reserved      uint8
}

// MarshalBinaryTo marshals PrimaryDomainTLV into b
func (t *PrimaryDomainTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.PrimaryDomain
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into PrimaryDomainTLV
func (t *PrimaryDomainTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode PrimaryDomainTLV")
	}
	t.PrimaryDomain = b[mgmtTLVHeadSize]
	return nil
}

// DelayMechanismTLV Table 95 DELAY_MECHANISM management TLV
type DelayMechanismTLV struct {
	ManagementTLVHead
	DelayMechanism uint8
	Reserved       uint8
}

// MarshalBinaryTo marshals DelayMechanismTLV into b
func (t *DelayMechanismTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.DelayMechanism
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into DelayMechanismTLV
func (t *DelayMechanismTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode DelayMechanismTLV")
	}
	t.DelayMechanism = b[mgmtTLVHeadSize]
	return nil
}

// LogMinPdelayReqIntervalTLV Table 96 LOG_MIN_PDELAY_REQ_INTERVAL management TLV
type LogMinPdelayReqIntervalTLV struct {
	ManagementTLVHead
	LogMinPdelayReqInterval LogInterval
	Reserved                uint8
}

// MarshalBinaryTo marshals LogMinPdelayReqIntervalTLV into b
func (t *LogMinPdelayReqIntervalTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = byte(t.LogMinPdelayReqInterval)
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into LogMinPdelayReqIntervalTLV
func (t *LogMinPdelayReqIntervalTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode LogMinPdelayReqIntervalTLV")
	}
	t.LogMinPdelayReqInterval = LogInterval(b[mgmtTLVHeadSize])
	return nil
}

// SynchronizationUncertainNPTLV linuxptp SYNCHRONIZATION_UNCERTAIN_NP management TLV
type SynchronizationUncertainNPTLV struct {
	ManagementTLVHead
	Val      uint8
	Reserved uint8
}

// MarshalBinaryTo marshals SynchronizationUncertainNPTLV into b
func (t *SynchronizationUncertainNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.Val
	b[mgmtTLVHeadSize+1] = 0
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into SynchronizationUncertainNPTLV
func (t *SynchronizationUncertainNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode SynchronizationUncertainNPTLV")
	}
	t.Val = b[mgmtTLVHeadSize]
	return nil
}

// InitializeTLV Table 62 INITIALIZE management TLV
type InitializeTLV struct {
	ManagementTLVHead
	InitializationKey uint16
}

// MarshalBinaryTo marshals InitializeTLV into b
func (t *InitializeTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	binary.BigEndian.PutUint16(b[mgmtTLVHeadSize:], t.InitializationKey)
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into InitializeTLV
func (t *InitializeTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode InitializeTLV")
	}
	t.InitializationKey = binary.BigEndian.Uint16(b[mgmtTLVHeadSize:])
	return nil
}

// TimeTLV Table 74 TIME management TLV
type TimeTLV struct {
	ManagementTLVHead
	CurrentTime Timestamp
}

// MarshalBinaryTo marshals TimeTLV into b
func (t *TimeTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	copy(b[mgmtTLVHeadSize:], t.CurrentTime.Seconds[:])
	binary.BigEndian.PutUint32(b[mgmtTLVHeadSize+6:], t.CurrentTime.Nanoseconds)
	return mgmtTLVHeadSize + 10, nil
}

// UnmarshalBinary parses []byte into TimeTLV
func (t *TimeTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+10 {
		return fmt.Errorf("not enough data to decode TimeTLV")
	}
	copy(t.CurrentTime.Seconds[:], b[mgmtTLVHeadSize:mgmtTLVHeadSize+6])
	t.CurrentTime.Nanoseconds = binary.BigEndian.Uint32(b[mgmtTLVHeadSize+6:])
	return nil
}

// UtcPropertiesTLV Table 77 UTC_PROPERTIES management TLV (linuxptp implementation-specific alias of TIME_PROPERTIES fields)
type UtcPropertiesTLV struct {
	ManagementTLVHead
	CurrentUtcOffset int16
	FlagField        uint8
	Reserved         uint8
}

// MarshalBinaryTo marshals UtcPropertiesTLV into b
func (t *UtcPropertiesTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	binary.BigEndian.PutUint16(b[mgmtTLVHeadSize:], uint16(t.CurrentUtcOffset))
	b[mgmtTLVHeadSize+2] = t.FlagField
	b[mgmtTLVHeadSize+3] = 0
	return mgmtTLVHeadSize + 4, nil
}

// UnmarshalBinary parses []byte into UtcPropertiesTLV
func (t *UtcPropertiesTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+4 {
		return fmt.Errorf("not enough data to decode UtcPropertiesTLV")
	}
	t.CurrentUtcOffset = int16(binary.BigEndian.Uint16(b[mgmtTLVHeadSize:]))
	t.FlagField = b[mgmtTLVHeadSize+2]
	return nil
}

// UnicastMasterMaxTableSizeTLV Table 80 UNICAST_MASTER_MAX_TABLE_SIZE management TLV
type UnicastMasterMaxTableSizeTLV struct {
	ManagementTLVHead
	MaxTableSize uint16
}

// MarshalBinaryTo marshals UnicastMasterMaxTableSizeTLV into b
func (t *UnicastMasterMaxTableSizeTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	binary.BigEndian.PutUint16(b[mgmtTLVHeadSize:], t.MaxTableSize)
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into UnicastMasterMaxTableSizeTLV
func (t *UnicastMasterMaxTableSizeTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode UnicastMasterMaxTableSizeTLV")
	}
	t.MaxTableSize = binary.BigEndian.Uint16(b[mgmtTLVHeadSize:])
	return nil
}

// AcceptableMasterMaxTableSizeTLV Table 83 ACCEPTABLE_MASTER_MAX_TABLE_SIZE management TLV
type AcceptableMasterMaxTableSizeTLV struct {
	ManagementTLVHead
	MaxTableSize uint16
}

// MarshalBinaryTo marshals AcceptableMasterMaxTableSizeTLV into b
func (t *AcceptableMasterMaxTableSizeTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	binary.BigEndian.PutUint16(b[mgmtTLVHeadSize:], t.MaxTableSize)
	return mgmtTLVHeadSize + 2, nil
}

// UnmarshalBinary parses []byte into AcceptableMasterMaxTableSizeTLV
func (t *AcceptableMasterMaxTableSizeTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode AcceptableMasterMaxTableSizeTLV")
	}
	t.MaxTableSize = binary.BigEndian.Uint16(b[mgmtTLVHeadSize:])
	return nil
}

// AlternateMasterTLV Table 84a ALTERNATE_MASTER management TLV
type AlternateMasterTLV struct {
	ManagementTLVHead
	FlagField                            uint8
	LogAlternateMulticastSyncInterval    int8
	NumberOfAlternateMasters             uint8
	Reserved                             uint8
}

// MarshalBinaryTo marshals AlternateMasterTLV into b
func (t *AlternateMasterTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.FlagField
	b[mgmtTLVHeadSize+1] = byte(t.LogAlternateMulticastSyncInterval)
	b[mgmtTLVHeadSize+2] = t.NumberOfAlternateMasters
	b[mgmtTLVHeadSize+3] = 0
	return mgmtTLVHeadSize + 4, nil
}

// UnmarshalBinary parses []byte into AlternateMasterTLV
func (t *AlternateMasterTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+4 {
		return fmt.Errorf("not enough data to decode AlternateMasterTLV")
	}
	t.FlagField = b[mgmtTLVHeadSize]
	t.LogAlternateMulticastSyncInterval = int8(b[mgmtTLVHeadSize+1])
	t.NumberOfAlternateMasters = b[mgmtTLVHeadSize+2]
	return nil
}

// AlternateTimeOffsetNameTLV Table 86 ALTERNATE_TIME_OFFSET_NAME management TLV
type AlternateTimeOffsetNameTLV struct {
	ManagementTLVHead
	KeyField    uint8
	DisplayName PTPText
}

// MarshalBinaryTo marshals AlternateTimeOffsetNameTLV into b
func (t *AlternateTimeOffsetNameTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.KeyField
	nameBytes, err := t.DisplayName.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n := copy(b[mgmtTLVHeadSize+1:], nameBytes)
	return mgmtTLVHeadSize + 1 + n, nil
}

// UnmarshalBinary parses []byte into AlternateTimeOffsetNameTLV
func (t *AlternateTimeOffsetNameTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+1 {
		return fmt.Errorf("not enough data to decode AlternateTimeOffsetNameTLV")
	}
	t.KeyField = b[mgmtTLVHeadSize]
	return t.DisplayName.UnmarshalBinary(b[mgmtTLVHeadSize+1:])
}

// AlternateTimeOffsetPropertiesTLV Table 88 ALTERNATE_TIME_OFFSET_PROPERTIES management TLV
type AlternateTimeOffsetPropertiesTLV struct {
	ManagementTLVHead
	KeyField      uint8
	Reserved      uint8
	CurrentOffset int32
	JumpSeconds   int32
	TimeOfNextJump PTPSeconds
}

// MarshalBinaryTo marshals AlternateTimeOffsetPropertiesTLV into b
func (t *AlternateTimeOffsetPropertiesTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	b[mgmtTLVHeadSize] = t.KeyField
	b[mgmtTLVHeadSize+1] = 0
	binary.BigEndian.PutUint32(b[mgmtTLVHeadSize+2:], uint32(t.CurrentOffset))
	binary.BigEndian.PutUint32(b[mgmtTLVHeadSize+6:], uint32(t.JumpSeconds))
	copy(b[mgmtTLVHeadSize+10:], t.TimeOfNextJump[:])
	return mgmtTLVHeadSize + 16, nil
}

// UnmarshalBinary parses []byte into AlternateTimeOffsetPropertiesTLV
func (t *AlternateTimeOffsetPropertiesTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+16 {
		return fmt.Errorf("not enough data to decode AlternateTimeOffsetPropertiesTLV")
	}
	t.KeyField = b[mgmtTLVHeadSize]
	t.CurrentOffset = int32(binary.BigEndian.Uint32(b[mgmtTLVHeadSize+2:]))
	t.JumpSeconds = int32(binary.BigEndian.Uint32(b[mgmtTLVHeadSize+6:]))
	copy(t.TimeOfNextJump[:], b[mgmtTLVHeadSize+10:mgmtTLVHeadSize+16])
	return nil
}

// UserDescriptionTLV Table 61 USER_DESCRIPTION management TLV
type UserDescriptionTLV struct {
	ManagementTLVHead
	UserDescription PTPText
}

// MarshalBinaryTo marshals UserDescriptionTLV into b
func (t *UserDescriptionTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	db, err := t.UserDescription.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n := copy(b[mgmtTLVHeadSize:], db)
	return mgmtTLVHeadSize + n, nil
}

// UnmarshalBinary parses []byte into UserDescriptionTLV
func (t *UserDescriptionTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize {
		return fmt.Errorf("not enough data to decode UserDescriptionTLV")
	}
	return t.UserDescription.UnmarshalBinary(b[mgmtTLVHeadSize:])
}

// FaultLogTLV Table 62a FAULT_LOG management TLV
type FaultLogTLV struct {
	ManagementTLVHead
	NumberOfFaultRecords uint16
	FaultRecords         []FaultRecord
}

// MarshalBinaryTo marshals FaultLogTLV into b
func (t *FaultLogTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	binary.BigEndian.PutUint16(b[mgmtTLVHeadSize:], uint16(len(t.FaultRecords)))
	pos := mgmtTLVHeadSize + 2
	for _, fr := range t.FaultRecords {
		rb, err := fr.MarshalBinary()
		if err != nil {
			return 0, err
		}
		pos += copy(b[pos:], rb)
	}
	return pos, nil
}

// UnmarshalBinary parses []byte into FaultLogTLV
func (t *FaultLogTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode FaultLogTLV")
	}
	t.NumberOfFaultRecords = binary.BigEndian.Uint16(b[mgmtTLVHeadSize:])
	pos := mgmtTLVHeadSize + 2
	end := tlvHeadSize + int(t.LengthField)
	if end > len(b) {
		end = len(b)
	}
	t.FaultRecords = nil
	for i := 0; i < int(t.NumberOfFaultRecords) && pos < end; i++ {
		var fr FaultRecord
		n, err := fr.UnmarshalBinary(b[pos:])
		if err != nil {
			return err
		}
		t.FaultRecords = append(t.FaultRecords, fr)
		pos += n
	}
	return nil
}

// ClockDescriptionTLV Table 60 CLOCK_DESCRIPTION management TLV
type ClockDescriptionTLV struct {
	ManagementTLVHead
	ClockType               uint16
	PhysicalLayerProtocol   PTPText
	PhysicalAddress         []byte
	ProtocolAddress         PortAddress
	ManufacturerIdentity    [3]byte
	ProductDescription      PTPText
	RevisionData            PTPText
	UserDescription         PTPText
	ProfileIdentity         [6]byte
}

// MarshalBinaryTo marshals ClockDescriptionTLV into b
func (t *ClockDescriptionTLV) MarshalBinaryTo(b []byte) (int, error) {
	mgmtTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := mgmtTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.ClockType)
	pos += 2
	plp, err := t.PhysicalLayerProtocol.MarshalBinary()
	if err != nil {
		return 0, err
	}
	pos += copy(b[pos:], plp)
	binary.BigEndian.PutUint16(b[pos:], uint16(len(t.PhysicalAddress)))
	pos += 2
	pos += copy(b[pos:], t.PhysicalAddress)
	if len(t.PhysicalAddress)%2 != 0 {
		b[pos] = 0
		pos++
	}
	pab, err := t.ProtocolAddress.MarshalBinary()
	if err != nil {
		return 0, err
	}
	pos += copy(b[pos:], pab)
	pos += copy(b[pos:], t.ManufacturerIdentity[:])
	b[pos] = 0 // reserved
	pos++
	for _, text := range []PTPText{t.ProductDescription, t.RevisionData, t.UserDescription} {
		tb, err := text.MarshalBinary()
		if err != nil {
			return 0, err
		}
		pos += copy(b[pos:], tb)
	}
	pos += copy(b[pos:], t.ProfileIdentity[:])
	return pos, nil
}

// UnmarshalBinary parses []byte into ClockDescriptionTLV
func (t *ClockDescriptionTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalMgmtTLVHeader(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if len(b) < mgmtTLVHeadSize+2 {
		return fmt.Errorf("not enough data to decode ClockDescriptionTLV")
	}
	pos := mgmtTLVHeadSize
	t.ClockType = binary.BigEndian.Uint16(b[pos:])
	pos += 2
	if err := t.PhysicalLayerProtocol.UnmarshalBinary(b[pos:]); err != nil {
		return err
	}
	pos += 1 + len(t.PhysicalLayerProtocol)
	if len(t.PhysicalLayerProtocol)%2 != 0 {
		pos++
	}
	if len(b) < pos+2 {
		return fmt.Errorf("not enough data to decode ClockDescriptionTLV physicalAddressLength")
	}
	physAddrLen := int(binary.BigEndian.Uint16(b[pos:]))
	pos += 2
	if len(b) < pos+physAddrLen {
		return fmt.Errorf("not enough data to decode ClockDescriptionTLV physicalAddress")
	}
	t.PhysicalAddress = append([]byte{}, b[pos:pos+physAddrLen]...)
	pos += physAddrLen
	if physAddrLen%2 != 0 {
		pos++
	}
	if err := t.ProtocolAddress.UnmarshalBinary(b[pos:]); err != nil {
		return err
	}
	pos += t.ProtocolAddress.Size()
	if len(b) < pos+4 {
		return fmt.Errorf("not enough data to decode ClockDescriptionTLV manufacturerIdentity")
	}
	copy(t.ManufacturerIdentity[:], b[pos:pos+3])
	pos += 4 // 3 bytes OUI + 1 byte reserved
	for _, dst := range []*PTPText{&t.ProductDescription, &t.RevisionData, &t.UserDescription} {
		if err := dst.UnmarshalBinary(b[pos:]); err != nil {
			return err
		}
		pos += 1 + len(*dst)
		if len(*dst)%2 != 0 {
			pos++
		}
	}
	if len(b) < pos+6 {
		return fmt.Errorf("not enough data to decode ClockDescriptionTLV profileIdentity")
	}
	copy(t.ProfileIdentity[:], b[pos:pos+6])
	return nil
}
