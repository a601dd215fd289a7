package metrics

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
)

// SystemMetrics holds a snapshot of system load during an assembly run
type SystemMetrics struct {
	CPUPercent        float64 // System-wide CPU usage (0-100%)
	ProcessCPUPercent float64 // This process CPU usage (can exceed 100% on multi-core)
	MemoryUsedGB      float64
	MemoryPercent     float64
	ProcessRSSGB      float64
	Timestamp         time.Time
}

// Collector periodically collects and logs system metrics
type Collector struct {
	interval time.Duration
	logger   *zap.Logger
	proc     *process.Process

	mu          sync.RWMutex
	lastMetrics *SystemMetrics
}

// NewCollector creates a new metrics collector
func NewCollector(interval time.Duration, logger *zap.Logger) *Collector {
	if interval < time.Second {
		interval = 30 * time.Second
	}

	proc, _ := process.NewProcess(int32(os.Getpid()))

	return &Collector{
		interval: interval,
		logger:   logger,
		proc:     proc,
	}
}

// Start begins periodic metrics collection. Returns when context is cancelled.
func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.collect()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("Metrics collection stopped")
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

// GetMetrics returns the last collected metrics
func (c *Collector) GetMetrics() *SystemMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastMetrics
}

// collect gathers current system metrics and logs them
func (c *Collector) collect() {
	metrics := &SystemMetrics{
		Timestamp: time.Now(),
	}

	cpuPercent, err := cpu.Percent(0, false)
	if err == nil && len(cpuPercent) > 0 {
		metrics.CPUPercent = cpuPercent[0]
	}

	if c.proc != nil {
		if procCPU, err := c.proc.Percent(0); err == nil {
			metrics.ProcessCPUPercent = procCPU
		}
		if memInfo, err := c.proc.MemoryInfo(); err == nil {
			metrics.ProcessRSSGB = float64(memInfo.RSS) / (1024 * 1024 * 1024)
		}
	}

	vmem, err := mem.VirtualMemory()
	if err == nil {
		metrics.MemoryPercent = vmem.UsedPercent
		metrics.MemoryUsedGB = float64(vmem.Used) / (1024 * 1024 * 1024)
	}

	c.mu.Lock()
	c.lastMetrics = metrics
	c.mu.Unlock()

	c.logger.Info("System metrics",
		zap.Float64("sys_cpu", metrics.CPUPercent),
		zap.Float64("proc_cpu", metrics.ProcessCPUPercent),
		zap.Float64("mem_pct", metrics.MemoryPercent),
		zap.String("mem_used", fmt.Sprintf("%.1f GB", metrics.MemoryUsedGB)),
		zap.String("proc_rss", fmt.Sprintf("%.1f GB", metrics.ProcessRSSGB)),
	)
}
