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

// Package cmd implements the pmc command-line front-end: a thin wrapper
// around ptp/protocol's management codec and transport's UNIX socket
// dialer. It owns no codec logic of its own.
package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ptp "github.com/comio/libpmc/ptp/protocol"
	"github.com/comio/libpmc/transport"
)

// RootCmd is pmc's entry point, exported so it can be extended without
// touching the get/set subcommands.
var RootCmd = &cobra.Command{
	Use:   "pmc",
	Short: "PTP Management Client: query and control a linuxptp instance over its management socket",
}

var (
	rootVerboseFlag bool
	rootSocketFlag  string
	rootDialectFlag string
	rootDomainFlag  uint8
	rootUnicastFlag bool
	rootTimeout     time.Duration
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootSocketFlag, "socket", "s", defaultSocket(), "UNIX management socket of the target ptp4l/phc2sys instance")
	RootCmd.PersistentFlags().StringVar(&rootDialectFlag, "dialect", "default", "implementation dialect to parse responses with: \"default\" or \"linuxptp\"")
	RootCmd.PersistentFlags().Uint8Var(&rootDomainFlag, "domain", 0, "PTP domainNumber to address")
	RootCmd.PersistentFlags().BoolVar(&rootUnicastFlag, "unicast", false, "set the unicast flag bit on outgoing requests")
	RootCmd.PersistentFlags().DurationVarP(&rootTimeout, "timeout", "t", 2*time.Second, "request timeout")
}

func defaultSocket() string {
	if s := os.Getenv("PTP_MGMT_SOCKET"); s != "" {
		return s
	}
	return "/var/run/ptp4l"
}

// ConfigureVerbosity sets logrus's level from the --verbose flag. Every
// subcommand's Run calls this first, matching the teacher's convention.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

func dialect() ptp.Dialect {
	if rootDialectFlag == "default" {
		return ptp.DialectDefault
	}
	return ptp.DialectLinuxPTP
}

// sessionParams builds the session (C5) the client stamps onto every
// request and uses to resolve every response, from the root flags.
func sessionParams() ptp.SessionParams {
	params := ptp.DefaultSessionParams()
	params.Dialect = dialect()
	params.DomainNumber = rootDomainFlag
	params.IsUnicast = rootUnicastFlag
	return params
}

// dialClient opens a management connection to the configured socket and
// applies --timeout once, as a deadline counted from the moment of dialing;
// every request made over the returned client shares that one deadline.
func dialClient() (client *ptp.MgmtClient, cleanup func(), err error) {
	conn, cleanup, err := transport.DialPTP4L(rootSocketFlag)
	if err != nil {
		return nil, cleanup, err
	}
	if err := transport.SetTimeout(conn, rootTimeout); err != nil {
		return nil, cleanup, err
	}
	return &ptp.MgmtClient{Connection: conn, Params: sessionParams()}, cleanup, nil
}

// maxCommunicateAttempts mirrors the reference pmc tool's request loop,
// which retries a bounded number of times when a response arrives for a
// different managementId than the one just requested (a stale reply from
// an earlier, timed-out request sharing the same socket).
const maxCommunicateAttempts = 3

// communicate sends req and retries on a managementId mismatch between
// request and response, and on any error Communicate returns (including a
// MANAGEMENT_ERROR_STATUS reply), up to maxCommunicateAttempts times in all;
// it returns the last error once the attempts are used up.
func communicate(c *ptp.MgmtClient, req *ptp.Management) (*ptp.Management, error) {
	var lastErr error
	for attempt := 0; attempt < maxCommunicateAttempts; attempt++ {
		resp, err := c.Communicate(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.TLV.MgmtID() != req.TLV.MgmtID() {
			log.Debugf("got response for %s, wanted %s, retrying", resp.TLV.MgmtID(), req.TLV.MgmtID())
			lastErr = fmt.Errorf("got response for %s, wanted %s", resp.TLV.MgmtID(), req.TLV.MgmtID())
			continue
		}
		return resp, nil
	}
	return nil, lastErr
}

// Execute is pmc's main entry point.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
