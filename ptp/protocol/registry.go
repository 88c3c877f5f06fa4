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
	"errors"
	"fmt"
)

// Dialect selects which managementId codes a parser is willing to resolve.
// DialectDefault (the zero value) restricts resolution to the IEEE 1588
// codes only, rejecting the implementation-specific range as an unknown
// managementId; DialectLinuxPTP additionally accepts the linuxptp
// implementation-specific range 0xC000-0xDFFF.
type Dialect uint8

const (
	DialectDefault Dialect = iota
	DialectLinuxPTP
)

func (d Dialect) String() string {
	if d == DialectDefault {
		return "default"
	}
	return "linuxptp"
}

// Scope is where a management ID's data set lives: the clock as a whole or
// one of its ports.
type Scope uint8

const (
	ScopeClock Scope = iota
	ScopePort
)

type actionMask uint8

const (
	maskGET actionMask = 1 << iota
	maskSET
	maskCOMMAND
)

func maskFor(a Action) actionMask {
	switch a {
	case GET:
		return maskGET
	case SET:
		return maskSET
	case COMMAND:
		return maskCOMMAND
	default:
		return 0
	}
}

// sizePolicy values for managementRow.Size: zero means an empty dataField,
// a positive value is the fixed dataField size in bytes (managementId not
// included), sizeVariable means the marshaller reports its own size.
const sizeVariable = -2

// managementRow is one entry of the static ID registry (C2): numeric code,
// scope, allowed-action bitmask, and size policy.
type managementRow struct {
	Scope   Scope
	Allowed actionMask
	Size    int
}

// managementRegistry is the declarative, total table backing the codec's
// per-ID scope/action/size policy. Every ManagementID constant has exactly
// one row. Implementation-specific (linuxptp) rows are marked via their
// 0xC000-0xDFFF code, checked by IDOf against the active Dialect.
var managementRegistry = map[ManagementID]managementRow{
	IDNullPTPManagement:                {ScopePort, maskGET | maskSET | maskCOMMAND, 0},
	IDClockDescription:                 {ScopePort, maskGET, sizeVariable},
	IDUserDescription:                  {ScopeClock, maskGET | maskSET, sizeVariable},
	IDSaveInNonVolatileStorage:         {ScopeClock, maskCOMMAND, 0},
	IDResetNonVolatileStorage:          {ScopeClock, maskCOMMAND, 0},
	IDInitialize:                       {ScopeClock, maskCOMMAND, 2},
	IDFaultLog:                         {ScopeClock, maskGET, sizeVariable},
	IDFaultLogReset:                    {ScopeClock, maskCOMMAND, 0},
	IDDefaultDataSet:                   {ScopeClock, maskGET, 20},
	IDCurrentDataSet:                   {ScopeClock, maskGET, 18},
	IDParentDataSet:                    {ScopeClock, maskGET, 32},
	IDTimePropertiesDataSet:            {ScopeClock, maskGET, 4},
	IDPortDataSet:                      {ScopePort, maskGET, 26},
	IDPriority1:                        {ScopeClock, maskGET | maskSET, 2},
	IDPriority2:                        {ScopeClock, maskGET | maskSET, 2},
	IDDomain:                           {ScopeClock, maskGET | maskSET, 2},
	IDSlaveOnly:                        {ScopeClock, maskGET | maskSET, 2},
	IDLogAnnounceInterval:              {ScopePort, maskGET | maskSET, 2},
	IDAnnounceReceiptTimeout:           {ScopePort, maskGET | maskSET, 2},
	IDLogSyncInterval:                  {ScopePort, maskGET | maskSET, 2},
	IDVersionNumber:                    {ScopePort, maskGET | maskSET, 2},
	IDEnablePort:                       {ScopePort, maskCOMMAND, 0},
	IDDisablePort:                      {ScopePort, maskCOMMAND, 0},
	IDTime:                             {ScopeClock, maskGET | maskSET, 10},
	IDClockAccuracy:                    {ScopeClock, maskGET | maskSET, 2},
	IDUtcProperties:                    {ScopeClock, maskGET | maskSET, 4},
	IDTraceabilityProperties:           {ScopeClock, maskGET | maskSET, 2},
	IDTimescaleProperties:              {ScopeClock, maskGET | maskSET, 2},
	IDUnicastNegotiationEnable:         {ScopePort, maskGET | maskSET, 2},
	IDPathTraceList:                    {ScopeClock, maskGET, sizeVariable},
	IDPathTraceEnable:                  {ScopeClock, maskGET | maskSET, 2},
	IDGrandmasterClusterTable:          {ScopeClock, maskGET | maskSET, sizeVariable},
	IDUnicastMasterTable:               {ScopePort, maskGET | maskSET, sizeVariable},
	IDUnicastMasterMaxTableSize:        {ScopePort, maskGET, 2},
	IDAcceptableMasterTable:            {ScopeClock, maskGET | maskSET, sizeVariable},
	IDAcceptableMasterTableEnabled:     {ScopePort, maskGET | maskSET, 2},
	IDAcceptableMasterMaxTableSize:     {ScopeClock, maskGET, 2},
	IDAlternateMaster:                  {ScopePort, maskGET | maskSET, 4},
	IDAlternateTimeOffsetEnable:        {ScopeClock, maskGET | maskSET, 2},
	IDAlternateTimeOffsetName:          {ScopeClock, maskGET | maskSET, sizeVariable},
	IDAlternateTimeOffsetMaxKey:        {ScopeClock, maskGET, 2},
	IDAlternateTimeOffsetProperties:    {ScopeClock, maskGET | maskSET, 16},
	IDExternalPortConfigurationEnabled: {ScopeClock, maskGET | maskSET, 2},
	IDMasterOnly:                       {ScopePort, maskGET | maskSET, 2},
	IDHoldoverUpgradeEnable:            {ScopeClock, maskGET | maskSET, 2},
	IDExtPortConfigPortDataSet:         {ScopePort, maskGET | maskSET, 2},
	IDTransparentClockDefaultDataSet:   {ScopeClock, maskGET, 12},
	IDTransparentClockPortDataSet:      {ScopePort, maskGET, 20},
	IDPrimaryDomain:                    {ScopeClock, maskGET | maskSET, 2},
	IDDelayMechanism:                   {ScopePort, maskGET | maskSET, 2},
	IDLogMinPdelayReqInterval:          {ScopePort, maskGET | maskSET, 2},
	IDGrandmasterSettingsNP:            {ScopeClock, maskGET | maskSET, 8},
	IDPortDataSetNP:                    {ScopePort, maskGET | maskSET, 8},
	IDSubscribeEventsNP:                {ScopeClock, maskGET | maskSET, 66},
	IDSynchronizationUncertainNP:       {ScopeClock, maskGET | maskSET, 2},
	IDTimeStatusNP:                     {ScopeClock, maskGET, 50},
	IDPortPropertiesNP:                 {ScopePort, maskGET, sizeVariable},
	IDPortStatsNP:                      {ScopePort, maskGET, 266},
	IDPortServiceStatsNP:               {ScopePort, maskGET, 90},
	IDUnicastMasterTableNP:             {ScopeClock, maskGET, sizeVariable},
}

// ErrInvalidID is returned when a managementId code is not present in the
// registry for the requested dialect.
var ErrInvalidID = errors.New("invalid-id")

// ErrInvalidAction is returned when an action is not a member of a
// management ID's allowed-action bitmask.
var ErrInvalidAction = errors.New("invalid-action")

// isImplementationSpecific reports whether code falls in the linuxptp
// implementation-specific managementId range, IEEE 1588-2019 Table 58.
func isImplementationSpecific(code uint16) bool {
	return code >= 0xC000 && code <= 0xDFFF
}

// RowOf returns the registry row for id.
func RowOf(id ManagementID) (scope Scope, allowed []Action, size int, ok bool) {
	row, ok := managementRegistry[id]
	if !ok {
		return 0, nil, 0, false
	}
	var actions []Action
	for _, a := range []Action{GET, SET, COMMAND} {
		if row.Allowed&maskFor(a) != 0 {
			actions = append(actions, a)
		}
	}
	return row.Scope, actions, row.Size, true
}

// CodeOf returns the numeric managementId code for id.
func CodeOf(id ManagementID) uint16 {
	return uint16(id)
}

// IDOf resolves a wire managementId code to a ManagementID, honoring dialect:
// DialectDefault rejects codes in the 0xC000-0xDFFF implementation-specific
// range even if the registry otherwise knows them.
func IDOf(code uint16, dialect Dialect) (ManagementID, bool) {
	if dialect == DialectDefault && isImplementationSpecific(code) {
		return 0, false
	}
	id := ManagementID(code)
	if _, ok := managementRegistry[id]; !ok {
		return 0, false
	}
	return id, true
}

// actionAllowed reports whether action is a member of id's allowed-action
// bitmask. An unknown id never allows any action.
func actionAllowed(id ManagementID, action Action) bool {
	row, ok := managementRegistry[id]
	if !ok {
		return false
	}
	return row.Allowed&maskFor(action) != 0
}

// ValidateAction enforces the registry's allowed-action policy for a build
// call: GET and COMMAND never carry a payload (size is treated as zero even
// for variable entries); SET is only legal for entries with positive or
// variable size, and only when SET is in the allowed mask.
func ValidateAction(id ManagementID, action Action) error {
	row, ok := managementRegistry[id]
	if !ok {
		return fmt.Errorf("%w: managementId 0x%04x", ErrInvalidID, uint16(id))
	}
	if row.Allowed&maskFor(action) == 0 {
		return fmt.Errorf("%w: action %s not allowed for %s", ErrInvalidAction, action, id)
	}
	if action == SET && row.Size == 0 {
		return fmt.Errorf("%w: %s has no settable dataField", ErrInvalidAction, id)
	}
	return nil
}
