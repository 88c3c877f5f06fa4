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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ptp "github.com/comio/libpmc/ptp/protocol"
)

var getCmd = &cobra.Command{
	Use:   "get <MANAGEMENT-ID>",
	Short: "Send a GET management request and print the decoded response TLV",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		if err := runGet(args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}

func runGet(name string) error {
	id, ok := ptp.ManagementIDFromString(name)
	if !ok {
		return fmt.Errorf("unknown management id %q", name)
	}
	req, err := ptp.BuildManagementRequest(id, ptp.GET)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", id, err)
	}

	c, cleanup, err := dialClient()
	defer cleanup()
	if err != nil {
		return fmt.Errorf("dialing management socket: %w", err)
	}

	resp, err := communicate(c, req)
	if err != nil {
		return fmt.Errorf("getting %s: %w", id, err)
	}
	fmt.Printf("%s: %+v\n", id, resp.TLV)
	return nil
}
