//go:build opencl

package raycast

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

const marchKernelSource = `__kernel void march_columns(
    const int width,
    const int height,
    const int columns,
    const float px,
    const float py,
    const float angle,
    const float fov,
    const float step,
    const float max_depth,
    __global const int* grid,
    __global float* out_dist,
    __global float* out_x,
    __global float* out_y,
    __global int* out_sym)
{
    int i = get_global_id(0);
    if (i >= columns) {
        return;
    }
    float theta = angle - fov * 0.5f + fov * ((float)i / (float)columns);
    float c = cos(theta);
    float s = sin(theta);
    out_sym[i] = 0;
    for (int n = 0; ; n++) {
        float d = (float)n * step;
        if (d >= max_depth) {
            return;
        }
        float hx = px + d * c;
        float hy = py + d * s;
        if (hx < 0.0f || hy < 0.0f) {
            continue;
        }
        int cx = (int)hx;
        int cy = (int)hy;
        if (cx >= width || cy >= height) {
            continue;
        }
        int sym = grid[cy * width + cx];
        if (sym != 32) {
            out_dist[i] = d;
            out_x[i] = hx;
            out_y[i] = hy;
            out_sym[i] = sym;
            return;
        }
    }
}`

type openCLMarcher struct {
	context *cl.Context
	queue   *cl.CommandQueue
	program *cl.Program
	kernel  *cl.Kernel

	gridBuf *cl.MemObject
	distBuf *cl.MemObject
	xBuf    *cl.MemObject
	yBuf    *cl.MemObject
	symBuf  *cl.MemObject

	gridWidth  int
	gridHeight int
	columns    int

	dist []float32
	hx   []float32
	hy   []float32
	sym  []int32

	deviceName string
}

// NewOpenCLMarcher compiles the march kernel on the first GPU found, falling
// back to a CPU device.
func NewOpenCLMarcher() (BatchMarcher, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	m := &openCLMarcher{deviceName: device.Name()}
	m.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	m.queue, err = m.context.CreateCommandQueue(device, 0)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	m.program, err = m.context.CreateProgramWithSource([]string{marchKernelSource})
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := m.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		m.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	m.kernel, err = m.program.CreateKernel("march_columns")
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return m, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// LoadGrid uploads the maze cells, one int per cell.
func (m *openCLMarcher) LoadGrid(cells []byte, width, height int) error {
	if len(cells) != width*height || len(cells) == 0 {
		return fmt.Errorf("grid %dx%d does not match %d cells", width, height, len(cells))
	}
	if m.gridBuf != nil {
		m.gridBuf.Release()
		m.gridBuf = nil
	}
	host := make([]int32, len(cells))
	for i, c := range cells {
		host[i] = int32(c)
	}
	byteLen := len(host) * int(unsafe.Sizeof(int32(0)))
	buf, err := m.context.CreateEmptyBuffer(cl.MemReadOnly, byteLen)
	if err != nil {
		return fmt.Errorf("allocating grid buffer: %w", err)
	}
	if _, err := m.queue.EnqueueWriteBuffer(buf, true, 0, byteLen, unsafe.Pointer(&host[0]), nil); err != nil {
		buf.Release()
		return fmt.Errorf("writing grid buffer: %w", err)
	}
	m.gridBuf = buf
	m.gridWidth, m.gridHeight = width, height
	return nil
}

func (m *openCLMarcher) ensureColumns(n int) error {
	if m.columns == n && m.distBuf != nil {
		return nil
	}
	m.releaseOutputs()
	f32 := n * int(unsafe.Sizeof(float32(0)))
	i32 := n * int(unsafe.Sizeof(int32(0)))
	var err error
	if m.distBuf, err = m.context.CreateEmptyBuffer(cl.MemWriteOnly, f32); err != nil {
		return fmt.Errorf("allocating distance buffer: %w", err)
	}
	if m.xBuf, err = m.context.CreateEmptyBuffer(cl.MemWriteOnly, f32); err != nil {
		m.releaseOutputs()
		return fmt.Errorf("allocating hit x buffer: %w", err)
	}
	if m.yBuf, err = m.context.CreateEmptyBuffer(cl.MemWriteOnly, f32); err != nil {
		m.releaseOutputs()
		return fmt.Errorf("allocating hit y buffer: %w", err)
	}
	if m.symBuf, err = m.context.CreateEmptyBuffer(cl.MemWriteOnly, i32); err != nil {
		m.releaseOutputs()
		return fmt.Errorf("allocating symbol buffer: %w", err)
	}
	m.columns = n
	m.dist = make([]float32, n)
	m.hx = make([]float32, n)
	m.hy = make([]float32, n)
	m.sym = make([]int32, n)
	return nil
}

// MarchColumns fills hits with one result per column.
func (m *openCLMarcher) MarchColumns(p Pose, cfg Config, hits []Hit) error {
	if m.gridBuf == nil {
		return errors.New("no grid uploaded")
	}
	n := len(hits)
	if n == 0 {
		return nil
	}
	if err := m.ensureColumns(n); err != nil {
		return err
	}
	if err := m.kernel.SetArgs(
		int32(m.gridWidth),
		int32(m.gridHeight),
		int32(n),
		float32(p.X),
		float32(p.Y),
		float32(p.Angle),
		float32(p.FOV),
		float32(cfg.Step),
		float32(cfg.MaxDepth),
		m.gridBuf,
		m.distBuf,
		m.xBuf,
		m.yBuf,
		m.symBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := m.queue.EnqueueNDRangeKernel(m.kernel, nil, []int{n}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := m.queue.EnqueueReadBufferFloat32(m.distBuf, true, 0, m.dist, nil); err != nil {
		return fmt.Errorf("reading distances: %w", err)
	}
	if _, err := m.queue.EnqueueReadBufferFloat32(m.xBuf, true, 0, m.hx, nil); err != nil {
		return fmt.Errorf("reading hit x: %w", err)
	}
	if _, err := m.queue.EnqueueReadBufferFloat32(m.yBuf, true, 0, m.hy, nil); err != nil {
		return fmt.Errorf("reading hit y: %w", err)
	}
	symBytes := n * int(unsafe.Sizeof(int32(0)))
	if _, err := m.queue.EnqueueReadBuffer(m.symBuf, true, 0, symBytes, unsafe.Pointer(&m.sym[0]), nil); err != nil {
		return fmt.Errorf("reading symbols: %w", err)
	}
	for i := range hits {
		if m.sym[i] == 0 {
			hits[i] = Hit{}
			continue
		}
		hits[i] = Hit{
			Hit:      true,
			Symbol:   byte(m.sym[i]),
			X:        float64(m.hx[i]),
			Y:        float64(m.hy[i]),
			Distance: float64(m.dist[i]),
		}
	}
	return nil
}

func (m *openCLMarcher) DeviceName() string { return m.deviceName }

func (m *openCLMarcher) releaseOutputs() {
	for _, b := range []**cl.MemObject{&m.distBuf, &m.xBuf, &m.yBuf, &m.symBuf} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}
	m.columns = 0
}

func (m *openCLMarcher) Close() {
	m.releaseOutputs()
	if m.gridBuf != nil {
		m.gridBuf.Release()
		m.gridBuf = nil
	}
	if m.kernel != nil {
		m.kernel.Release()
		m.kernel = nil
	}
	if m.program != nil {
		m.program.Release()
		m.program = nil
	}
	if m.queue != nil {
		m.queue.Release()
		m.queue = nil
	}
	if m.context != nil {
		m.context.Release()
		m.context = nil
	}
}
