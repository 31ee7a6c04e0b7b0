package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/wordcalc/internal/config"
)

const (
	// CurrentProfileVersion is bumped whenever the profile format or the
	// measurement method changes.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the profile file name in the home directory.
	DefaultProfileFileName = ".wordcalc_calibration.json"
	// MaxProfileAge is the age after which a cached profile is ignored.
	MaxProfileAge = 30 * 24 * time.Hour
)

// CalibrationProfile records the result of a calibration run together with
// the hardware it was measured on.
type CalibrationProfile struct {
	NumCPU         int      `json:"num_cpu"`
	GOARCH         string   `json:"goarch"`
	GOOS           string   `json:"goos"`
	GoVersion      string   `json:"go_version"`
	WordSize       int      `json:"word_size"`
	CPUFeatures    []string `json:"cpu_features,omitempty"`
	ProfileVersion int      `json:"profile_version"`

	OptimalKaratsubaThreshold int `json:"optimal_karatsuba_threshold"`
	// ProbeDigits is the operand length used for the measurement.
	ProbeDigits     int       `json:"probe_digits"`
	CalibrationTime string    `json:"calibration_time"`
	CalibratedAt    time.Time `json:"calibrated_at"`
}

// NewProfile returns an empty profile describing the current host.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       strconv.IntSize,
		CPUFeatures:    config.CPUFeatures(),
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
	}
}

// SaveProfile writes the profile as indented JSON, creating the parent
// directory if needed.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calibration profile: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding calibration profile %s: %w", path, err)
	}
	return &p, nil
}

// IsValid reports whether the profile was measured on hardware matching the
// current host with the current profile format.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == strconv.IntSize &&
		p.ProfileVersion == CurrentProfileVersion
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

func (p *CalibrationProfile) String() string {
	features := "none"
	if len(p.CPUFeatures) > 0 {
		features = strings.Join(p.CPUFeatures, ",")
	}
	return fmt.Sprintf("Calibration profile v%d (%s/%s, %d CPUs, %d-bit words, features: %s)\n"+
		"  Karatsuba threshold: %d digits (probe of %d digits)\n"+
		"  Calibrated at %s in %s",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.WordSize, features,
		p.OptimalKaratsubaThreshold, p.ProbeDigits,
		p.CalibratedAt.Format(time.RFC3339), p.CalibrationTime)
}

// LoadOrCreateProfile loads the profile at path. When it cannot be read a
// new profile is returned and loaded is false.
func LoadOrCreateProfile(path string) (profile *CalibrationProfile, loaded bool) {
	p, err := loadProfile(path)
	if err != nil {
		return NewProfile(), false
	}
	return p, true
}

// GetDefaultProfilePath returns the profile path in the user's home
// directory, or the bare file name when there is none.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadCachedCalibration applies the Karatsuba threshold of a valid, fresh
// profile to cfg. A threshold already set in cfg wins; loaded is false then.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if cfg.KaratsubaThreshold != 0 {
		return cfg, false
	}
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() || p.IsStale(MaxProfileAge) || p.OptimalKaratsubaThreshold < 2 {
		return cfg, false
	}
	cfg.KaratsubaThreshold = p.OptimalKaratsubaThreshold
	return cfg, true
}
