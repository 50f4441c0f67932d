package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuUpdateInterval throttles the CPU usage sampling.
const cpuUpdateInterval = 500 * time.Millisecond

// ramUpdateInterval throttles the memory usage sampling.
const ramUpdateInterval = 2 * time.Second

// UpdateCPUHistory samples current CPU usage into the history buffer.
func (m *App) UpdateCPUHistory() {
	now := time.Now()
	if now.Sub(m.LastCPUUpdate) < cpuUpdateInterval {
		return
	}
	m.LastCPUUpdate = now

	usage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		usage = percents[0]
	}

	// Keep last 10 samples for a compact graph
	if len(m.CPUHistory) >= 10 {
		m.CPUHistory = m.CPUHistory[1:]
	}
	m.CPUHistory = append(m.CPUHistory, usage)
}

// UpdateRAMUsage refreshes the cached memory usage percentage.
func (m *App) UpdateRAMUsage() {
	now := time.Now()
	if now.Sub(m.LastRAMUpdate) < ramUpdateInterval {
		return
	}
	m.LastRAMUpdate = now

	if vm, err := mem.VirtualMemory(); err == nil {
		m.RAMUsage = vm.UsedPercent
	}
}

// GetCPUGraph returns a formatted string with CPU usage graph and percentage.
// Always returns a fixed-width string to prevent layout shifts.
func (m *App) GetCPUGraph() string {
	current := 0.0
	if len(m.CPUHistory) > 0 {
		current = m.CPUHistory[len(m.CPUHistory)-1]
	}

	// Create a mini bar graph - always exactly 10 characters
	graph := ""

	// If we have less than 10 samples, pad with spaces on the left
	startPadding := 10 - len(m.CPUHistory)
	if startPadding > 0 {
		graph = strings.Repeat(" ", startPadding)
	}

	for i, usage := range m.CPUHistory {
		if i >= 10 {
			break
		}
		// Convert to 0-8 scale for vertical bars
		height := min(
			// 100/8 = 12.5
			int(usage/12.5), 8)

		switch height {
		case 0:
			graph += "▁"
		case 1:
			graph += "▂"
		case 2:
			graph += "▃"
		case 3:
			graph += "▄"
		case 4:
			graph += "▅"
		case 5:
			graph += "▆"
		case 6:
			graph += "▇"
		case 7, 8:
			graph += "█"
		}
	}

	return fmt.Sprintf("CPU:%s %3.0f%%", graph, current)
}

// GetRAMUsage returns the formatted memory usage percentage.
func (m *App) GetRAMUsage() string {
	return fmt.Sprintf("RAM:%3.0f%%", m.RAMUsage)
}
