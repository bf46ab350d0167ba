//go:build !opencl

package raycast

import "errors"

// NewOpenCLMarcher is unavailable without the opencl build tag.
func NewOpenCLMarcher() (BatchMarcher, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
