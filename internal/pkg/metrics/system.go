package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ExportDirFreeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "export_dir_free_bytes",
			Help: "Free space on the volume holding CSV exports",
		},
	)
)

// StartSystemMetricsCollector обновляет системные метрики до отмены ctx.
// exportDir - каталог выгрузки CSV; пустое значение отключает метрику свободного места.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration, exportDir string) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, exportDir)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, exportDir string) {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if exportDir == "" {
		return
	}
	usage, err := disk.UsageWithContext(ctx, exportDir)
	if err == nil {
		ExportDirFreeBytes.Set(float64(usage.Free))
	}
}
