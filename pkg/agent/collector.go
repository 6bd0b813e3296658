// Package agent implements the push agent: collect a resource
// snapshot, report it to the server.
package agent

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/statuskite/statuskite/pkg/models"
)

const cpuSampleWindow = time.Second

// Collector produces resource snapshots.
type Collector interface {
	Collect(ctx context.Context) (*models.AgentSnapshot, error)
}

// SystemCollector reads the host's actual resource usage.
type SystemCollector struct{}

func NewCollector() *SystemCollector {
	return &SystemCollector{}
}

// Collect gathers a snapshot of the current host. CPU usage is sampled
// over a one second window, so a call takes at least that long.
func (*SystemCollector) Collect(ctx context.Context) (*models.AgentSnapshot, error) {
	snapshot := &models.AgentSnapshot{}

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	snapshot.Hostname = hostInfo.Hostname
	snapshot.OS = hostInfo.OS
	snapshot.Version = fmt.Sprintf("%s %s (%s)",
		hostInfo.Platform, hostInfo.PlatformVersion, hostInfo.KernelVersion)
	snapshot.IPAddress = localIP()

	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu usage: %w", err)
	}

	if len(cpuPercent) > 0 {
		snapshot.CPUUsage = cpuPercent[0]
	}

	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory usage: %w", err)
	}

	snapshot.MemoryTotal = memInfo.Total
	snapshot.MemoryUsed = memInfo.Used

	if err := collectDisk(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := collectNetwork(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// collectDisk sums usage across physical partitions. Partitions that
// cannot be statted are skipped.
func collectDisk(ctx context.Context, snapshot *models.AgentSnapshot) error {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to read disk partitions: %w", err)
	}

	for _, partition := range partitions {
		usage, err := disk.UsageWithContext(ctx, partition.Mountpoint)
		if err != nil {
			continue
		}

		snapshot.DiskTotal += usage.Total
		snapshot.DiskUsed += usage.Used
	}

	return nil
}

func collectNetwork(ctx context.Context, snapshot *models.AgentSnapshot) error {
	counters, err := gopsnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to read network counters: %w", err)
	}

	if len(counters) > 0 {
		snapshot.NetworkRx = counters[0].BytesRecv
		snapshot.NetworkTx = counters[0].BytesSent
	}

	return nil
}

// localIP finds the address this host would use for outbound traffic.
// No packet is sent; UDP dial only resolves the route.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return ""
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}

	return addr.IP.String()
}
