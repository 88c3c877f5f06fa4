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

package cmd

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ptp "github.com/comio/libpmc/ptp/protocol"
)

var setCmd = &cobra.Command{
	Use:   "set <MANAGEMENT-ID> <VALUE>",
	Short: "Send a SET management request for one of the single-byte data sets",
	Long: "set supports the small scalar data sets whose payload is a single byte " +
		"plus reserved padding: PRIORITY1, PRIORITY2, DOMAIN. Other data sets need a " +
		"structured payload and are not reachable from this CLI.",
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		if err := runSet(args[0], args[1]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(setCmd)
}

func scalarSetPayload(id ptp.ManagementID, value uint8) (ptp.ManagementTLV, error) {
	head := ptp.ManagementTLVHead{
		TLVHead:      ptp.TLVHead{TLVType: ptp.TLVManagement, LengthField: 4},
		ManagementID: id,
	}
	switch id {
	case ptp.IDPriority1:
		return &ptp.Priority1TLV{ManagementTLVHead: head, Priority1: value}, nil
	case ptp.IDPriority2:
		return &ptp.Priority2TLV{ManagementTLVHead: head, Priority2: value}, nil
	case ptp.IDDomain:
		return &ptp.DomainTLV{ManagementTLVHead: head, DomainNumber: value}, nil
	default:
		return nil, fmt.Errorf("%s does not have a single-byte settable payload", id)
	}
}

func runSet(name, valueStr string) error {
	id, ok := ptp.ManagementIDFromString(name)
	if !ok {
		return fmt.Errorf("unknown management id %q", name)
	}
	value, err := strconv.ParseUint(valueStr, 10, 8)
	if err != nil {
		return fmt.Errorf("parsing value %q: %w", valueStr, err)
	}

	req, err := ptp.BuildManagementRequest(id, ptp.SET)
	if err != nil {
		return fmt.Errorf("validating SET for %s: %w", id, err)
	}
	req.TLV, err = scalarSetPayload(id, uint8(value))
	if err != nil {
		return err
	}
	// the payload adds the value byte and its reserved byte to the message
	req.MessageLength += 2

	c, cleanup, err := dialClient()
	defer cleanup()
	if err != nil {
		return fmt.Errorf("dialing management socket: %w", err)
	}

	resp, err := communicate(c, req)
	if err != nil {
		return fmt.Errorf("setting %s: %w", id, err)
	}
	fmt.Printf("%s: %+v\n", id, resp.TLV)
	return nil
}
