package utils

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemStats is the snapshot served by the health endpoint.
type SystemStats struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

var processStart = time.Now()

// CollectSystemStats gathers current cpu/memory usage. Failures degrade to
// zero values rather than failing the health check.
func CollectSystemStats() SystemStats {
	stats := SystemStats{
		UptimeSeconds: time.Since(processStart).Seconds(),
	}

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		stats.CPUPercent = percentages[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	}

	return stats
}
