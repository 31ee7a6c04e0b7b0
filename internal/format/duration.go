package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d in microseconds below a millisecond, in
// milliseconds below a second and with time.Duration's own format otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatRate renders an operation rate such as "12.5M op/s".
func FormatRate(ops int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(ops) / d.Seconds()
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.1fG op/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.1fM op/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1fk op/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f op/s", rate)
	}
}

// FormatBytes renders a byte count with binary units, e.g. "1.5 MiB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
