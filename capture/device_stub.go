//go:build !gocv

package capture

import "fmt"

func openDevice(n int) (Source, error) {
	return nil, fmt.Errorf("%w: device %d (build with -tags gocv)", ErrNoDevice, n)
}
