package sensehat

import (
	"errors"
	"testing"
)

func TestGamma(t *testing.T) {
	d, dev := newTestDisplay(t)
	g, err := d.Gamma()
	if err != nil {
		t.Fatal(err)
	}
	if g != DefaultGammaTable {
		t.Errorf("expected %v, got %v", DefaultGammaTable, g)
	}
	if len(dev.calls) != 1 || dev.calls[0].code != ControlGetGamma || len(dev.calls[0].arg) != GammaSize {
		t.Errorf("expected a single get gamma call with a %d byte buffer, got %v", GammaSize, dev.calls)
	}
}

func TestSetGamma(t *testing.T) {
	d, dev := newTestDisplay(t)

	var reversed GammaTable
	for i, v := range DefaultGammaTable {
		reversed[GammaSize-1-i] = v
	}
	if err := d.SetGamma(reversed); err != nil {
		t.Fatal(err)
	}
	if dev.gamma != reversed {
		t.Errorf("expected device gamma %v, got %v", reversed, dev.gamma)
	}

	invalid := reversed
	invalid[7] = 32
	calls := len(dev.calls)
	if err := d.SetGamma(invalid); !errors.Is(err, ErrInvalidGamma) {
		t.Errorf("expected %v, got %v", ErrInvalidGamma, err)
	}
	if len(dev.calls) != calls {
		t.Errorf("expected no control call for an invalid table")
	}
	if g, _ := d.Gamma(); g != reversed {
		t.Errorf("expected gamma to be unchanged, got %v", g)
	}
}

func TestResetGamma(t *testing.T) {
	d, dev := newTestDisplay(t)
	dev.gamma = LowLightTable
	if err := d.ResetGamma(); err != nil {
		t.Fatal(err)
	}
	call := dev.calls[len(dev.calls)-1]
	if call.code != ControlResetGamma || len(call.arg) != 1 || call.arg[0] != GammaDefault {
		t.Errorf("expected reset gamma with the default selector, got %v", call)
	}
	if dev.gamma != DefaultGammaTable {
		t.Errorf("expected the default table, got %v", dev.gamma)
	}
}

func TestLowLight(t *testing.T) {
	d, dev := newTestDisplay(t)

	if err := d.SetLowLight(true); err != nil {
		t.Fatal(err)
	}
	if call := dev.calls[len(dev.calls)-1]; call.code != ControlResetGamma || call.arg[0] != GammaLow {
		t.Errorf("expected reset gamma with the low selector, got %v", call)
	}
	on, err := d.IsLowLight()
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Error("expected low light to be enabled")
	}

	if err = d.SetLowLight(false); err != nil {
		t.Fatal(err)
	}
	if on, _ = d.IsLowLight(); on {
		t.Error("expected low light to be disabled")
	}

	// Close to, but not exactly, the low light curve.
	almost := LowLightTable
	almost[31] = 11
	if err = d.SetGamma(almost); err != nil {
		t.Fatal(err)
	}
	if on, _ = d.IsLowLight(); on {
		t.Error("expected a near match not to count as low light")
	}
}

func TestControlErrors(t *testing.T) {
	d, dev := newTestDisplay(t)
	dev.ctrlErr = errors.New("inappropriate ioctl for device")

	var derr *DeviceError
	if err := d.ResetGamma(); !errors.As(err, &derr) || derr.Op != "reset gamma" {
		t.Errorf("expected a reset gamma DeviceError, got %v", err)
	}
	if _, err := d.Gamma(); !errors.Is(err, dev.ctrlErr) {
		t.Errorf("expected %v, got %v", dev.ctrlErr, err)
	}
	if _, err := d.IsLowLight(); err == nil {
		t.Error("expected IsLowLight to fail")
	}

	quiet, err := New(dev, &Config{IgnoreControlErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if err = quiet.SetLowLight(true); err != nil {
		t.Errorf("expected errors to be ignored, got %v", err)
	}
	if err = quiet.SetGamma(LowLightTable); err != nil {
		t.Errorf("expected errors to be ignored, got %v", err)
	}
	invalid := LowLightTable
	invalid[0] = 0xff
	if err = quiet.SetGamma(invalid); !errors.Is(err, ErrInvalidGamma) {
		t.Errorf("expected validation to still apply, got %v", err)
	}
}

func TestControlCodeString(t *testing.T) {
	for code, want := range map[ControlCode]string{
		ControlGetGamma:   "get gamma",
		ControlSetGamma:   "set gamma",
		ControlResetGamma: "reset gamma",
		0x4602:            "control 0x4602",
	} {
		if v := code.String(); v != want {
			t.Errorf("expected %q, got %q", want, v)
		}
	}
}

func TestCurves(t *testing.T) {
	c := NewCurves()

	var user GammaTable
	for i := range user {
		user[i] = uint8(i)
	}
	if err := c.Control(ControlSetGamma, user[:]); err != nil {
		t.Fatal(err)
	}
	if c.Active != user || c.User != user {
		t.Errorf("expected the user table to be active, got %v", c.Active)
	}
	if v := c.Level(0xffea); v != 10 {
		t.Errorf("expected level %d, got %d", 10, v)
	}

	tests := []struct {
		curve byte
		want  GammaTable
	}{
		{GammaLow, LowLightTable},
		{GammaUser, user},
		{GammaDefault, DefaultGammaTable},
	}
	for _, test := range tests {
		if err := c.Control(ControlResetGamma, []byte{test.curve}); err != nil {
			t.Fatal(err)
		}
		buf := make([]byte, GammaSize)
		if err := c.Control(ControlGetGamma, buf); err != nil {
			t.Fatal(err)
		}
		if string(buf) != string(test.want[:]) {
			t.Errorf("expected curve %d to be %v, got %v", test.curve, test.want, buf)
		}
	}

	invalid := user
	invalid[0] = 32
	if err := c.Control(ControlSetGamma, invalid[:]); !errors.Is(err, ErrControlArgument) {
		t.Errorf("expected %v, got %v", ErrControlArgument, err)
	}
	if err := c.Control(ControlCode(1), nil); !errors.Is(err, ErrUnknownControl) {
		t.Errorf("expected %v, got %v", ErrUnknownControl, err)
	}
	if c.Active != DefaultGammaTable || c.User != user {
		t.Error("expected failed requests to leave the curves alone")
	}
}
