package workers

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a snapshot of the server's own resource usage.
type ProcessStats struct {
	RSS        uint64
	CPUPercent float64
	Status     string
}

type ProcessSampler interface {
	Sample() (ProcessStats, error)
}

// SelfSampler reads the current process through gopsutil.
type SelfSampler struct {
	p *process.Process
}

func NewSelfSampler() (*SelfSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &SelfSampler{p: p}, nil
}

func (s *SelfSampler) Sample() (ProcessStats, error) {
	memInfo, err := s.p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := s.p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := s.p.Status()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{RSS: memInfo.RSS, CPUPercent: cpuPercent, Status: status}, nil
}
