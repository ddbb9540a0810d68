//go:build !gocv

package capture

import (
	"errors"
	"testing"
)

func TestOpenDeviceUnavailable(t *testing.T) {
	if _, err := Open("device:0"); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Open(device:0) error = %v, want ErrNoDevice", err)
	}
}
