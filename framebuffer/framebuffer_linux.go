package framebuffer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"syscall"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetFScreenInfo = 0x4602
)

var _ sensehat.Device = (*Device)(nil)

// Find opens the first framebuffer matching Pattern that identifies as ID. It returns
// sensehat.ErrMissingDevice if there is none.
func Find() (*Device, error) {
	names, err := filepath.Glob(Pattern)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		d, err := Open(name)
		if err == nil {
			return d, nil
		}
		if debug {
			log.Printf("framebuffer: skipping %s: %v", name, err)
		}
	}
	return nil, sensehat.ErrMissingDevice
}

// Open a framebuffer device by name, typically /dev/fb[0..x]. The device must identify as ID,
// otherwise an error wrapping sensehat.ErrMissingDevice is returned.
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	d := &Device{
		f:    f,
		fd:   f.Fd(),
		name: name,
	}

	var info linuxFrameBufferInfo
	if err = ioctl.Do(d.fd, fbioGetFScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if !matchID(info.ID[:]) {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s identifies as %q: %w", name, trimID(info.ID[:]), sensehat.ErrMissingDevice)
	}
	if info.SmemLen < sensehat.FrameSize {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s has %d bytes of memory, need %d", name, info.SmemLen, sensehat.FrameSize)
	}

	// Map pixel buffer.
	if d.mem, err = syscall.Mmap(int(d.fd), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	if debug {
		log.Printf("framebuffer: opened %s (%d bytes)", name, info.SmemLen)
	}
	return d, nil
}

// WriteFrame copies the frame into the pixel buffer; the driver picks it up from there.
func (d *Device) WriteFrame(frame *sensehat.Frame) error {
	if d.mem == nil {
		return ErrClosed
	}
	copy(d.mem, frame[:])
	return nil
}

// Control issues the request as an ioctl. ControlResetGamma takes its curve selector by value;
// all other requests take a pointer to arg.
func (d *Device) Control(code sensehat.ControlCode, arg []byte) error {
	if d.mem == nil {
		return ErrClosed
	}
	if code == sensehat.ControlResetGamma {
		var curve uintptr
		if len(arg) > 0 {
			curve = uintptr(arg[0])
		}
		return ioctl.Call(d.fd, uintptr(code), curve)
	}
	return ioctl.Buffer(d.fd, ioctl.Command(code), arg)
}

// Close the framebuffer device
func (d *Device) Close() error {
	if d.mem == nil {
		return ErrClosed
	}
	if err := syscall.Munmap(d.mem); err != nil {
		return err
	}
	d.mem = nil
	return d.f.Close()
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}
