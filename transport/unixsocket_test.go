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

package transport

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDialPTP4LEmptyAddress(t *testing.T) {
	conn, cleanup, err := DialPTP4L("")
	require.EqualError(t, err, "dialing ptp4l management socket: target address is empty")
	require.Nil(t, conn)
	require.NotNil(t, cleanup)
}

func TestDialPTP4LNoListener(t *testing.T) {
	dir, err := os.MkdirTemp("", "pmc_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	conn, cleanup, err := DialPTP4L(filepath.Join(dir, "ptp4l"))
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, cleanup)
}

func TestDialPTP4L(t *testing.T) {
	dir, err := os.MkdirTemp("", "pmc_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	targetSocketPath := filepath.Join(dir, "ptp4l")

	addr, err := net.ResolveUnixAddr("unixgram", targetSocketPath)
	require.NoError(t, err)
	listener, err := net.ListenUnixgram("unixgram", addr)
	require.NoError(t, err)
	defer listener.Close()

	conn, cleanup, err := DialPTP4L(targetSocketPath)
	require.NoError(t, err)
	localFile := (conn.LocalAddr().(*net.UnixAddr)).Name
	require.NotEqual(t, "", localFile)
	stat, err := os.Stat(localFile)
	require.NoError(t, err)
	require.Equal(t, os.ModeSocket, stat.Mode().Type())

	cleanup()
	_, err = os.Stat(localFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetTimeout(t *testing.T) {
	dir, err := os.MkdirTemp("", "pmc_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	targetSocketPath := filepath.Join(dir, "ptp4l")

	addr, err := net.ResolveUnixAddr("unixgram", targetSocketPath)
	require.NoError(t, err)
	listener, err := net.ListenUnixgram("unixgram", addr)
	require.NoError(t, err)
	defer listener.Close()

	conn, cleanup, err := DialPTP4L(targetSocketPath)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, SetTimeout(conn, 50*time.Millisecond))

	buf := make([]byte, 16)
	_, err = conn.Read(buf)
	require.Error(t, err)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	require.True(t, netErr.Timeout())
}
