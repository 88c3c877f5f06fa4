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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDOfLinuxPTPDialectAcceptsImplementationSpecificCode(t *testing.T) {
	id, ok := IDOf(uint16(IDTimeStatusNP), DialectLinuxPTP)
	require.True(t, ok)
	require.Equal(t, IDTimeStatusNP, id)
}

func TestIDOfDefaultDialectRejectsImplementationSpecificCode(t *testing.T) {
	_, ok := IDOf(uint16(IDTimeStatusNP), DialectDefault)
	require.False(t, ok)
}

func TestIDOfDefaultDialectAcceptsIEEECode(t *testing.T) {
	id, ok := IDOf(uint16(IDPriority1), DialectDefault)
	require.True(t, ok)
	require.Equal(t, IDPriority1, id)
}

func TestIDOfUnknownCode(t *testing.T) {
	_, ok := IDOf(0x9999, DialectLinuxPTP)
	require.False(t, ok)
}

func TestRowOf(t *testing.T) {
	scope, allowed, size, ok := RowOf(IDPriority1)
	require.True(t, ok)
	require.Equal(t, ScopeClock, scope)
	require.Equal(t, 2, size)
	require.ElementsMatch(t, []Action{GET, SET}, allowed)
}

func TestRowOfUnknown(t *testing.T) {
	_, _, _, ok := RowOf(ManagementID(0x9999))
	require.False(t, ok)
}

// TestRowOfAgainstIDSDotH locks in the rows corrected against ids.h's
// A(NAME, code, scope, action-macro, size, func-macro) table, guarding
// against regressing back to the incorrect values.
func TestRowOfAgainstIDSDotH(t *testing.T) {
	cases := []struct {
		id      ManagementID
		scope   Scope
		allowed []Action
		size    int
	}{
		{IDNullPTPManagement, ScopePort, []Action{GET, SET, COMMAND}, 0},
		{IDTimePropertiesDataSet, ScopeClock, []Action{GET}, 4},
		{IDUnicastMasterTable, ScopePort, []Action{GET, SET}, sizeVariable},
		{IDAcceptableMasterTable, ScopeClock, []Action{GET, SET}, sizeVariable},
		{IDAlternateTimeOffsetMaxKey, ScopeClock, []Action{GET}, 2},
		{IDTransparentClockPortDataSet, ScopePort, []Action{GET}, 20},
		{IDGrandmasterSettingsNP, ScopeClock, []Action{GET, SET}, 8},
		{IDSubscribeEventsNP, ScopeClock, []Action{GET, SET}, 66},
	}
	for _, c := range cases {
		scope, allowed, size, ok := RowOf(c.id)
		require.True(t, ok, "id %s", c.id)
		require.Equal(t, c.scope, scope, "id %s", c.id)
		require.Equal(t, c.size, size, "id %s", c.id)
		require.ElementsMatch(t, c.allowed, allowed, "id %s", c.id)
	}
}

func TestValidateActionAllowed(t *testing.T) {
	require.NoError(t, ValidateAction(IDPriority1, GET))
	require.NoError(t, ValidateAction(IDPriority1, SET))
}

func TestValidateActionRejectsDisallowedAction(t *testing.T) {
	err := ValidateAction(IDClockDescription, COMMAND)
	require.True(t, errors.Is(err, ErrInvalidAction))
}

func TestValidateActionRejectsUnknownID(t *testing.T) {
	err := ValidateAction(ManagementID(0x9999), GET)
	require.True(t, errors.Is(err, ErrInvalidID))
}

func TestValidateActionRejectsSetOnEmptyID(t *testing.T) {
	err := ValidateAction(IDEnablePort, SET)
	require.True(t, errors.Is(err, ErrInvalidAction))
}

func TestBuildManagementRequestRejectsInvalidAction(t *testing.T) {
	req, err := BuildManagementRequest(IDClockDescription, COMMAND)
	require.Nil(t, req)
	require.True(t, errors.Is(err, ErrInvalidAction))
}

func TestBuildManagementRequestOK(t *testing.T) {
	req, err := BuildManagementRequest(IDPriority1, GET)
	require.NoError(t, err)
	require.Equal(t, IDPriority1, req.TLV.MgmtID())
	require.Equal(t, GET, req.Action())
}

func TestManagementIDFromString(t *testing.T) {
	id, ok := ManagementIDFromString("PRIORITY1")
	require.True(t, ok)
	require.Equal(t, IDPriority1, id)

	_, ok = ManagementIDFromString("NOT_A_REAL_ID")
	require.False(t, ok)
}

// timeStatusNPResponse builds a full TIME_STATUS_NP response, since parseMgmtTLV
// always decodes the concrete payload and a bare GET request carries none.
func timeStatusNPResponse(t *testing.T) []byte {
	req, err := BuildManagementRequest(IDTimeStatusNP, GET)
	require.NoError(t, err)
	req.TLV = &TimeStatusNPTLV{
		ManagementTLVHead: ManagementTLVHead{
			TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: uint16(2 + 50)},
			ManagementID: IDTimeStatusNP,
		},
		MasterOffsetNS: 42,
	}
	b, err := req.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestManagementUnmarshalBinaryRejectsImplementationSpecificIDInDefaultDialect(t *testing.T) {
	b := timeStatusNPResponse(t)

	p := &Management{Dialect: DialectDefault}
	err := p.UnmarshalBinary(b)
	require.True(t, errors.Is(err, ErrInvalidID))
}

func TestManagementUnmarshalBinaryAcceptsImplementationSpecificIDInLinuxPTPDialect(t *testing.T) {
	b := timeStatusNPResponse(t)

	p := &Management{Dialect: DialectLinuxPTP}
	require.NoError(t, p.UnmarshalBinary(b))
	require.Equal(t, IDTimeStatusNP, p.TLV.MgmtID())
}
