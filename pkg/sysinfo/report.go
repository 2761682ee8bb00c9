package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Section is one named chunk of captured diagnostic output.
type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// HostFacts holds OS-level identity gathered from gopsutil.
type HostFacts struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Distro        string `json:"distro"`
	DistroVersion string `json:"distro_version"`
	KernelVersion string `json:"kernel_version"`
	Architecture  string `json:"architecture"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

// HardwareFacts holds CPU, memory, swap, and disk facts gathered from ghw
// and gopsutil.
type HardwareFacts struct {
	CPUModel       string   `json:"cpu_model"`
	Cores          uint32   `json:"cores"`
	Threads        uint32   `json:"threads"`
	MemoryTotal    uint64   `json:"memory_total_bytes"`
	MemoryUsable   uint64   `json:"memory_usable_bytes"`
	SwapTotal      uint64   `json:"swap_total_bytes"`
	SwapUsed       uint64   `json:"swap_used_bytes"`
	BlockDevices   []string `json:"block_devices"`
	TotalBlockSize uint64   `json:"total_block_size_bytes"`
}

// Report is the aggregated diagnostic snapshot sent to the advisor.
// It is assembled once per run and not modified afterwards.
type Report struct {
	RunID       uuid.UUID      `json:"run_id"`
	CollectedAt time.Time      `json:"collected_at"`
	Host        *HostFacts     `json:"host,omitempty"`
	HostError   string         `json:"host_error,omitempty"`
	Hardware    *HardwareFacts `json:"hardware,omitempty"`
	HWError     string         `json:"hardware_error,omitempty"`
	Sections    []Section      `json:"sections"`
}

// Section returns the content of the named section, or an empty string.
func (r *Report) Section(name string) string {
	for _, s := range r.Sections {
		if s.Name == name {
			return s.Content
		}
	}
	return ""
}

// Text renders the report as plain text, sections in collection order.
// The output is deterministic for a given set of section contents.
func (r *Report) Text() string {
	var b strings.Builder

	if r.Host != nil {
		fmt.Fprintf(&b, "Host: %s (%s %s, kernel %s, %s)\n",
			r.Host.Hostname, r.Host.Distro, r.Host.DistroVersion,
			r.Host.KernelVersion, r.Host.Architecture)
	} else if r.HostError != "" {
		fmt.Fprintf(&b, "Host: %s\n", r.HostError)
	}

	if r.Hardware != nil {
		fmt.Fprintf(&b, "CPU: %s (%d cores / %d threads)\n",
			r.Hardware.CPUModel, r.Hardware.Cores, r.Hardware.Threads)
		fmt.Fprintf(&b, "Memory: %d bytes total, swap %d bytes\n",
			r.Hardware.MemoryTotal, r.Hardware.SwapTotal)
	} else if r.HWError != "" {
		fmt.Fprintf(&b, "Hardware: %s\n", r.HWError)
	}

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n===== %s =====\n%s\n", s.Name, s.Content)
	}

	return b.String()
}
