package shell

import "strings"

type process struct {
	pid     int
	user    string
	virt    string
	res     string
	shr     string
	state   string
	time    string
	command string
}

// processes is the fixed process list top pretends is running.
var processes = []process{
	{1, "root", "100m", "10m", "5m", "S", "00:00:10", "init"},
	{2, "root", "200m", "20m", "10m", "S", "00:00:20", "kthreadd"},
	{3, "user", "300m", "30m", "15m", "R", "00:00:30", "bash"},
	{4, "user", "400m", "40m", "20m", "S", "00:00:40", "python"},
	{5, "user", "500m", "50m", "25m", "S", "00:00:50", "top"},
}

const topHeader = "PID  USER      PR  NI  VIRT    RES     SHR     S %CPU %MEM     TIME+ COMMAND"

func runTop(s *Shell, _ []string) (string, error) {
	s.mode = ModeTop
	s.ui.Print("top - simulated process information")
	s.ui.Print("Type q to quit.")
	s.ui.Print("")
	s.showProcesses()
	return "Showing system process information", nil
}

func (s *Shell) topInput(line string) {
	if strings.TrimSpace(line) == "q" {
		s.mode = ModeCommand
		s.ui.Info("Leaving top")
		return
	}
	s.showProcesses()
}

// between returns a random integer in [lo, hi].
func (s *Shell) between(lo, hi int) int {
	return lo + s.opts.Rand.IntN(hi-lo+1)
}

func (s *Shell) showProcesses() {
	s.ui.Print(topHeader)
	for _, p := range processes {
		s.ui.Printf("%-4d %-9s %-3d %-3d %-7s %-7s %-7s %s %4d %4d %9s %s",
			p.pid, p.user, 20, 0, p.virt, p.res, p.shr, p.state,
			s.between(0, 5), s.between(1, 10), p.time, p.command)
	}

	s.ui.Print("")
	s.ui.Printf("Tasks: %d total, 1 running, %d sleeping, 0 stopped, 0 zombie", len(processes), len(processes)-1)
	s.ui.Printf("Cpu(s): %d%%us, %d%%sy, %d%%ni, %d%%id, %d%%wa, %d%%hi, %d%%si, %d%%st",
		s.between(1, 100), s.between(1, 50), s.between(0, 20), s.between(1, 50),
		s.between(0, 10), s.between(0, 5), s.between(0, 5), s.between(0, 5))
	s.ui.Printf("Mem: %dM total, %dM used, %dM free, %dM buffers",
		s.between(1000, 8000), s.between(500, 4000), s.between(500, 4000), s.between(100, 1000))
	s.ui.Printf("Swap: %dM total, %dM used, %dM free, %dM cached",
		s.between(1000, 4000), s.between(0, 1000), s.between(1000, 4000), s.between(500, 2000))
	s.ui.Print("")
}
