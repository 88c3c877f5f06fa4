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

// Package transport provides the UNIX datagram socket collaborator used to
// reach a linuxptp management socket (ptp4l, phc2sys). It is intentionally
// the only transport implemented here: UDPv4/UDPv6/raw-Ethernet transports
// are out of scope for this library.
package transport

import (
	"fmt"
	"net"
	"os"
	"path"
	"time"

	"golang.org/x/sys/unix"
)

// DialPTP4L opens a unixgram connection to a ptp4l/phc2sys management
// socket at address, binding an ephemeral local socket alongside it (the
// daemon replies to whatever address the request arrived from). The
// returned cleanup func closes the connection and removes the local socket
// file; callers must call it even on error when conn is non-nil.
func DialPTP4L(address string) (conn *net.UnixConn, cleanup func(), err error) {
	if address == "" {
		return nil, func() {}, fmt.Errorf("dialing ptp4l management socket: target address is empty")
	}
	base, _ := path.Split(address)
	local := path.Join(base, fmt.Sprintf("pmc.%d.sock", os.Getpid()))
	cleanup = func() {
		if conn != nil {
			_ = conn.Close()
		}
		_ = os.RemoveAll(local)
	}

	addr, err := net.ResolveUnixAddr("unixgram", address)
	if err != nil {
		return nil, cleanup, err
	}
	localAddr, err := net.ResolveUnixAddr("unixgram", local)
	if err != nil {
		return nil, cleanup, err
	}
	conn, err = net.DialUnix("unixgram", localAddr, addr)
	if err != nil {
		return nil, cleanup, err
	}
	if err := os.Chmod(local, 0666); err != nil {
		return nil, cleanup, err
	}
	return conn, cleanup, nil
}

// SetTimeout applies timeout as both the send and receive timeout on conn's
// underlying file descriptor via SO_SNDTIMEO/SO_RCVTIMEO, in addition to
// (not instead of) the Go-level deadline conn.SetDeadline offers: some
// management sockets are consumed through code paths that only look at the
// socket option, so both are set.
func SetTimeout(conn *net.UnixConn, timeout time.Duration) error {
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	rc, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	var sockErr error
	if err := rc.Control(func(fd uintptr) {
		if sockErr = unix.SetsockoptTimeval(int(fd), unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); sockErr != nil {
			return
		}
		sockErr = unix.SetsockoptTimeval(int(fd), unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
	}); err != nil {
		return err
	}
	return sockErr
}
