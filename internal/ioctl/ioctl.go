// Package ioctl issues raw ioctl system calls against device file descriptors.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
	"unsafe"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Do executes the ioctl call with a pointer argument, such as a pointer to a struct.
func Do(fd uintptr, command Command, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		p = v.Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p)
	if errno != 0 {
		return fmt.Errorf("ioctl %s failed: %w", command, errno)
	}
	return nil
}

// Buffer executes the ioctl call with buf as the in/out argument.
func Buffer(fd uintptr, command Command, buf []byte) error {
	if len(buf) == 0 {
		return Call(fd, uintptr(command), 0)
	}
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return fmt.Errorf("ioctl %s failed: %w", command, errno)
	}
	return nil
}

// Call does a plain ioctl system call, passing arg by value.
func Call(fd, command, arg uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, command, arg)
	if errno != 0 {
		return fmt.Errorf("ioctl %s failed: %w", Command(command), errno)
	}
	return nil
}
