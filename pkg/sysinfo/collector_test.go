package sysinfo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type mockRunner struct {
	outputs map[string]string
	fail    map[string]error
	calls   []string
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	m.calls = append(m.calls, name)
	if err, ok := m.fail[name]; ok {
		return "", err
	}
	if out, ok := m.outputs[name]; ok {
		return out, nil
	}
	return "", errors.New(name + ": command not found")
}

func newTestCollector(runner Runner) *Collector {
	c := New(runner)
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "testhost",
			OS:              "linux",
			Platform:        "debian",
			PlatformVersion: "12",
			KernelVersion:   "6.1.0",
			KernelArch:      "x86_64",
			Uptime:          3600,
		}, nil
	}
	c.swapInfo = func() (*mem.SwapMemoryStat, error) {
		return &mem.SwapMemoryStat{Total: 0, Used: 0}, nil
	}
	c.cpuInfo = func() (*ghw.CPUInfo, error) {
		return &ghw.CPUInfo{TotalCores: 4, TotalThreads: 8}, nil
	}
	c.memInfo = func() (*ghw.MemoryInfo, error) {
		return &ghw.MemoryInfo{Area: ghw.MemoryArea{TotalPhysicalBytes: 8 << 30, TotalUsableBytes: 7 << 30}}, nil
	}
	c.blockInfo = func() (*ghw.BlockInfo, error) {
		return &ghw.BlockInfo{TotalPhysicalBytes: 512 << 30}, nil
	}
	return c
}

func fullOutputs() map[string]string {
	return map[string]string{
		"lscpu":      "Architecture: x86_64",
		"free":       "Mem: 8Gi",
		"lsblk":      "sda 512G",
		"lspci":      "00:00.0 Host bridge",
		"lsusb":      "Bus 001 Device 001",
		"uname":      "Linux testhost 6.1.0",
		"cat":        "PRETTY_NAME=\"Debian GNU/Linux 12\"",
		"journalctl": "-- No entries --",
		"dmesg":      "[0.0] ok",
	}
}

func TestCollectSubstitutesPlaceholderForFailingCommand(t *testing.T) {
	runner := &mockRunner{
		outputs: fullOutputs(),
		fail:    map[string]error{"lsusb": errors.New("lsusb: not installed")},
	}

	report := newTestCollector(runner).Collect(context.Background())

	got := report.Section("USB Devices")
	if !strings.HasPrefix(got, "unavailable: ") {
		t.Fatalf("USB Devices section = %q; want unavailable placeholder", got)
	}

	// The failure must not stop later sections from being collected.
	if report.Section("Kernel Log") != "[0.0] ok" {
		t.Fatalf("Kernel Log section = %q; collection stopped early", report.Section("Kernel Log"))
	}
	if len(report.Sections) != len(commandProbes)+2 {
		t.Fatalf("got %d sections, want %d", len(report.Sections), len(commandProbes)+2)
	}
}

func TestCollectMissingCommandKeepsRunGoing(t *testing.T) {
	// Every command missing: the report still assembles fully.
	runner := &mockRunner{outputs: map[string]string{}}

	report := newTestCollector(runner).Collect(context.Background())

	if len(report.Sections) != len(commandProbes)+2 {
		t.Fatalf("got %d sections, want %d", len(report.Sections), len(commandProbes)+2)
	}
	for _, s := range report.Sections {
		if !strings.HasPrefix(s.Content, "unavailable: ") {
			t.Fatalf("section %q = %q; want placeholder", s.Name, s.Content)
		}
	}
}

func TestCollectDeterministicForFixedOutputs(t *testing.T) {
	first := newTestCollector(&mockRunner{outputs: fullOutputs()}).Collect(context.Background())
	second := newTestCollector(&mockRunner{outputs: fullOutputs()}).Collect(context.Background())

	if first.Text() != second.Text() {
		t.Fatalf("report text differs across runs with identical inputs:\n%s\n----\n%s", first.Text(), second.Text())
	}
	if len(first.Sections) != len(second.Sections) {
		t.Fatalf("section count differs: %d vs %d", len(first.Sections), len(second.Sections))
	}
	for i := range first.Sections {
		if first.Sections[i] != second.Sections[i] {
			t.Fatalf("section %d differs: %+v vs %+v", i, first.Sections[i], second.Sections[i])
		}
	}
}

func TestCollectStructuredProbeFailureDegrades(t *testing.T) {
	c := newTestCollector(&mockRunner{outputs: fullOutputs()})
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return nil, errors.New("host probe denied")
	}

	report := c.Collect(context.Background())

	if report.Host != nil {
		t.Fatal("expected no host facts after probe failure")
	}
	if !strings.HasPrefix(report.HostError, "unavailable: ") {
		t.Fatalf("HostError = %q; want placeholder", report.HostError)
	}
	if report.Hardware == nil {
		t.Fatal("hardware facts should still be collected")
	}
}

func TestCollectSwapFacts(t *testing.T) {
	c := newTestCollector(&mockRunner{outputs: fullOutputs()})
	c.swapInfo = func() (*mem.SwapMemoryStat, error) {
		return &mem.SwapMemoryStat{Total: 1 << 30, Used: 1 << 29}, nil
	}

	report := c.Collect(context.Background())

	if report.Hardware.SwapTotal != 1<<30 || report.Hardware.SwapUsed != 1<<29 {
		t.Fatalf("swap facts = %d/%d; want %d/%d",
			report.Hardware.SwapTotal, report.Hardware.SwapUsed, uint64(1<<30), uint64(1<<29))
	}
}
