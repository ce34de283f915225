// internal/bench/client.go
package bench

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/iotasat/adcs-supervisor/internal/actuator"
	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/status"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

// Client is a single Modbus TCP connection to the EGSE bench. It serves
// as both the telemetry provider and the actuator sink for
// hardware-in-the-loop runs. Requests are serialized because the
// underlying handler is not safe for concurrent use.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected bench client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("bench: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ---- telemetry.Provider ----

func (c *Client) AngularRate() (float64, error) {
	v, err := c.readInput(RegAngularRate)
	if err != nil {
		return 0, err
	}
	return float64(v) / AngleScale, nil
}

func (c *Client) SunError() (float64, error) {
	v, err := c.readInput(RegSunError)
	if err != nil {
		return 0, err
	}
	return float64(v) / AngleScale, nil
}

func (c *Client) PointingError() (float64, error) {
	v, err := c.readInput(RegPointingError)
	if err != nil {
		return 0, err
	}
	return float64(v) / AngleScale, nil
}

func (c *Client) PowerStatus() (telemetry.PowerStatus, error) {
	v, err := c.readInput(RegPowerFlags)
	if err != nil {
		return telemetry.PowerStatus{}, err
	}
	return telemetry.PowerStatus{
		OK:      v&PowerFlagOK != 0,
		Eclipse: v&PowerFlagEclipse != 0,
	}, nil
}

func (c *Client) SensorCheck() error {
	v, err := c.readInput(RegSensorStatus)
	if err != nil {
		return err
	}
	if v != 0 {
		return fmt.Errorf("bench: sensor self-test failed, code=%d", v)
	}
	return nil
}

// ---- actuator.Sink ----

// Apply delivers the commanded torque and the mode it was commanded in.
func (c *Client) Apply(m mode.Mode, r actuator.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.client.WriteSingleRegister(RegTorqueCommand, encodeTorque(r.TorqueNm)); err != nil {
		return err
	}
	_, err := c.client.WriteSingleRegister(RegModeReport, uint16(m))
	return err
}

// ---- status writeback ----

// WriteStatus publishes the supervisor status block to the bench.
func (c *Client) WriteStatus(s status.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	regs := status.Encode(s)
	_, err := c.client.WriteMultipleRegisters(RegStatusBase, uint16(len(regs)), packRegisters(regs))
	return err
}

// ---- helpers ----

func (c *Client) readInput(addr uint16) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.client.ReadInputRegisters(addr, 1)
	if err != nil {
		return 0, err
	}
	if len(data) < 2 {
		return 0, errors.New("bench: short register payload")
	}
	return binary.BigEndian.Uint16(data), nil
}

// encodeTorque converts Nm to an int16 milli-Nm register value.
func encodeTorque(nm float64) uint16 {
	scaled := math.Round(nm * TorqueScale)
	if scaled > math.MaxInt16 {
		scaled = math.MaxInt16
	}
	if scaled < math.MinInt16 {
		scaled = math.MinInt16
	}
	return uint16(int16(scaled))
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}
