package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// @Summary Healthcheck
// @Tags health
// @Success 200
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte("ok"))
}

type systemStats struct {
	NumGoroutine int    `json:"num_goroutine"`
	Alloc        uint64 `json:"alloc_bytes"`
	Sys          uint64 `json:"sys_bytes"`
	NumGC        uint32 `json:"num_gc"`

	TotalRAM        uint64                 `json:"total_ram"`
	AvailableRAM    uint64                 `json:"available_ram"`
	UsedRAMPercent  float64                `json:"used_ram_percent"`
	TotalCPUCores   int                    `json:"total_cpu_cores"`
	CPUUsagePercent []float64              `json:"cpu_usage_percent"`
	CPUTemperatures []host.TemperatureStat `json:"cpu_temperatures"`
}

type monitoringStatus struct {
	Timestamp    time.Time   `json:"timestamp"`
	ModelVersion uint64      `json:"model_version"`
	ModelLoaded  bool        `json:"model_loaded"`
	System       systemStats `json:"system"`
}

// ModelInfo es lo mínimo que el monitoreo necesita saber del motor.
type ModelInfo interface {
	Version() uint64
	Loaded() bool
}

type MonitoringHandler struct {
	model ModelInfo
}

func NewMonitoringHandler(model ModelInfo) *MonitoringHandler {
	return &MonitoringHandler{model: model}
}

// @Summary Estado del proceso y del host
// @Tags health
// @Produce json
// @Success 200 {object} monitoringStatus
// @Router /monitoring [get]
func (h *MonitoringHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	vMem, _ := mem.VirtualMemory()
	cpuPercent, _ := cpu.Percent(0, true)
	temps, _ := host.SensorsTemperatures()

	sys := systemStats{
		NumGoroutine:    runtime.NumGoroutine(),
		Alloc:           memStats.Alloc,
		Sys:             memStats.Sys,
		NumGC:           memStats.NumGC,
		TotalCPUCores:   runtime.NumCPU(),
		CPUUsagePercent: cpuPercent,
		CPUTemperatures: temps,
	}
	if vMem != nil {
		sys.TotalRAM = vMem.Total
		sys.AvailableRAM = vMem.Available
		sys.UsedRAMPercent = vMem.UsedPercent
	}

	writeJSON(w, http.StatusOK, monitoringStatus{
		Timestamp:    time.Now(),
		ModelVersion: h.model.Version(),
		ModelLoaded:  h.model.Loaded(),
		System:       sys,
	})
}
