//go:build gocv

package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/gogpu/ggcv"
)

// Device reads frames from a camera through OpenCV.
type Device struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

func openDevice(n int) (Source, error) {
	vc, err := gocv.OpenVideoCapture(n)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrNoDevice, n, err)
	}
	return &Device{vc: vc, mat: gocv.NewMat()}, nil
}

// Read implements Source.
func (d *Device) Read(dst *ggcv.Frame) bool {
	if ok := d.vc.Read(&d.mat); !ok || d.mat.Empty() {
		return false
	}
	img, err := d.mat.ToImage()
	if err != nil {
		ggcv.Logger().Debug("capture: frame not converted", "err", err)
		return false
	}
	dst.Load(img)
	return true
}

// Close implements Source.
func (d *Device) Close() error {
	_ = d.mat.Close()
	return d.vc.Close()
}
