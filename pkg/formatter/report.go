package formatter

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/systune/systune/pkg/sysinfo"
)

// DisplayReport renders a collected system report without analysis.
func DisplayReport(report *sysinfo.Report, format string) error {
	switch format {
	case "json":
		return displayJSON(report)
	case "yaml":
		return displayYAML(report)
	case "human":
		fallthrough
	default:
		displayReportHuman(report)
	}
	return nil
}

func displayReportHuman(report *sysinfo.Report) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Println("🖥️  SYSTEM REPORT")
	fmt.Printf("   Run ID: %s\n", report.RunID)
	fmt.Printf("   Collected: %s\n\n", report.CollectedAt.Format(time.RFC3339))

	if report.Host != nil {
		white.Println("HOST:")
		fmt.Printf("   %s — %s %s (kernel %s, %s)\n",
			report.Host.Hostname, report.Host.Distro, report.Host.DistroVersion,
			report.Host.KernelVersion, report.Host.Architecture)
		fmt.Printf("   Uptime: %s\n\n", (time.Duration(report.Host.UptimeSeconds) * time.Second).String())
	} else if report.HostError != "" {
		white.Println("HOST:")
		fmt.Printf("   %s\n\n", report.HostError)
	}

	if report.Hardware != nil {
		white.Println("HARDWARE:")
		fmt.Printf("   CPU: %s (%d cores / %d threads)\n",
			report.Hardware.CPUModel, report.Hardware.Cores, report.Hardware.Threads)
		fmt.Printf("   Memory: %s total, %s usable\n",
			formatBytes(report.Hardware.MemoryTotal), formatBytes(report.Hardware.MemoryUsable))
		fmt.Printf("   Swap: %s total, %s used\n",
			formatBytes(report.Hardware.SwapTotal), formatBytes(report.Hardware.SwapUsed))
		for _, dev := range report.Hardware.BlockDevices {
			fmt.Printf("   Disk: %s\n", dev)
		}
		fmt.Println()
	}
	if report.HWError != "" {
		fmt.Printf("   %s\n\n", report.HWError)
	}

	for _, section := range report.Sections {
		white.Printf("%s:\n", section.Name)
		fmt.Println(wrapText(section.Content, 100, "   "))
		fmt.Println()
	}
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
