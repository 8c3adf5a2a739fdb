package runtimeinfo

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// PeakRSSMB returns the process's peak resident set size in megabytes, by
// reading VmHWM from /proc/self/status. Returns 0 on any platform or
// parsing failure (e.g. non-Linux), mirroring get_peak_memory_mb.
func PeakRSSMB() float64 {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmHWM:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0
		}
		return kb / 1024.0
	}
	return 0
}

// ReportLine formats the standard "[performance] runtime=…s peak_rss=…MB"
// line every edsctl subcommand writes to stderr on exit.
func ReportLine(t *Timer) string {
	return "[performance] runtime=" + strconv.FormatFloat(t.ElapsedSeconds(), 'f', 3, 64) +
		"s peak_rss=" + strconv.FormatFloat(PeakRSSMB(), 'f', 1, 64) + "MB\n"
}
