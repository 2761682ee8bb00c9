package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// DefaultCommandTimeout bounds each diagnostic command.
const DefaultCommandTimeout = 15 * time.Second

// DefaultLogLines caps journal/dmesg output so the prompt stays bounded.
const DefaultLogLines = 200

type probe struct {
	section string
	cmd     string
	args    []string
}

// commandProbes are the fixed read-only diagnostic commands, in report order.
var commandProbes = []probe{
	{"CPU Info", "lscpu", nil},
	{"Memory Info", "free", []string{"-h"}},
	{"Disk Info", "lsblk", nil},
	{"PCI Devices", "lspci", nil},
	{"USB Devices", "lsusb", nil},
	{"Kernel Version", "uname", []string{"-a"}},
	{"Distro Info", "cat", []string{"/etc/os-release"}},
}

// Collector assembles a Report from structured probes and shell commands.
// A failing source never aborts collection; its section gets a placeholder.
type Collector struct {
	runner   Runner
	timeout  time.Duration
	logLines int

	// Overridable in tests.
	hostInfo  func(ctx context.Context) (*host.InfoStat, error)
	swapInfo  func() (*mem.SwapMemoryStat, error)
	cpuInfo   func() (*ghw.CPUInfo, error)
	memInfo   func() (*ghw.MemoryInfo, error)
	blockInfo func() (*ghw.BlockInfo, error)
}

type Option func(*Collector)

// WithTimeout sets the per-command timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) { c.timeout = d }
}

// WithLogLines caps the number of journal and dmesg lines collected.
func WithLogLines(n int) Option {
	return func(c *Collector) { c.logLines = n }
}

func New(runner Runner, opts ...Option) *Collector {
	c := &Collector{
		runner:    runner,
		timeout:   DefaultCommandTimeout,
		logLines:  DefaultLogLines,
		hostInfo:  host.InfoWithContext,
		swapInfo:  mem.SwapMemory,
		cpuInfo:   func() (*ghw.CPUInfo, error) { return ghw.CPU() },
		memInfo:   func() (*ghw.MemoryInfo, error) { return ghw.Memory() },
		blockInfo: func() (*ghw.BlockInfo, error) { return ghw.Block() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect gathers all diagnostic sources into a single Report. It never
// returns an error: every failed source is recorded as a placeholder so
// the remaining sources still make it into the report.
func (c *Collector) Collect(ctx context.Context) *Report {
	report := &Report{
		RunID:       uuid.New(),
		CollectedAt: time.Now().UTC(),
	}

	c.collectHost(ctx, report)
	c.collectHardware(report)

	for _, p := range commandProbes {
		report.Sections = append(report.Sections, Section{
			Name:    p.section,
			Content: c.runProbe(ctx, p.cmd, p.args...),
		})
	}

	lines := strconv.Itoa(c.logLines)
	report.Sections = append(report.Sections,
		Section{
			Name:    "Journal Errors",
			Content: c.runProbe(ctx, "journalctl", "-p", "3", "-xb", "--no-pager", "-n", lines),
		},
		Section{
			Name:    "Kernel Log",
			Content: c.runProbe(ctx, "dmesg", "--level=err,warn"),
		},
	)

	return report
}

func (c *Collector) runProbe(ctx context.Context, name string, args ...string) string {
	cmdCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.runner.Run(cmdCtx, name, args...)
	if err != nil {
		return placeholder(err)
	}
	if out == "" {
		return "(no output)"
	}
	return out
}

func (c *Collector) collectHost(ctx context.Context, report *Report) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		report.HostError = placeholder(err)
		return
	}
	report.Host = &HostFacts{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Distro:        info.Platform,
		DistroVersion: info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		Architecture:  info.KernelArch,
		UptimeSeconds: info.Uptime,
	}
}

func (c *Collector) collectHardware(report *Report) {
	hw := &HardwareFacts{}
	var failed error

	if cpu, err := c.cpuInfo(); err == nil {
		hw.Cores = cpu.TotalCores
		hw.Threads = cpu.TotalThreads
		if len(cpu.Processors) > 0 {
			hw.CPUModel = cpu.Processors[0].Model
		}
	} else {
		failed = err
	}

	if memory, err := c.memInfo(); err == nil {
		hw.MemoryTotal = uint64(memory.TotalPhysicalBytes)
		hw.MemoryUsable = uint64(memory.TotalUsableBytes)
	} else {
		failed = err
	}

	if swap, err := c.swapInfo(); err == nil {
		hw.SwapTotal = swap.Total
		hw.SwapUsed = swap.Used
	} else {
		failed = err
	}

	if block, err := c.blockInfo(); err == nil {
		hw.TotalBlockSize = block.TotalPhysicalBytes
		for _, disk := range block.Disks {
			hw.BlockDevices = append(hw.BlockDevices,
				fmt.Sprintf("%s (%d bytes)", disk.Name, disk.SizeBytes))
		}
	} else {
		failed = err
	}

	report.Hardware = hw
	if failed != nil {
		report.HWError = placeholder(failed)
	}
}

func placeholder(err error) string {
	return "unavailable: " + err.Error()
}
