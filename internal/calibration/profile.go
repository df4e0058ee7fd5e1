// Package calibration measures the multiplication and division crossovers
// of the current machine and persists them as a profile.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/sysmon"
	"github.com/agbru/bignum/nat"
)

// CalibrationProfile stores the results of a calibration run together with
// the hardware it was measured on, so that a cached profile can be
// rejected on another machine.
type CalibrationProfile struct {
	// Hardware identification
	CPUModel    string   `json:"cpu_model"`
	CPUFeatures []string `json:"cpu_features"`
	NumCPU      int      `json:"num_cpu"`
	GOARCH      string   `json:"goarch"`
	GOOS        string   `json:"goos"`
	GoVersion   string   `json:"go_version"`
	WordSize    int      `json:"word_size"` // 32 or 64

	// Crossovers in words; zero means the measurement found none.
	KaratsubaThreshold int `json:"karatsuba_threshold"`
	Toom3Threshold     int `json:"toom3_threshold"`
	NewtonThreshold    int `json:"newton_threshold"`

	CalibratedAt    time.Time `json:"calibrated_at"`
	CalibrationTime string    `json:"calibration_time"`

	ProfileVersion int `json:"profile_version"`
}

const (
	// CurrentProfileVersion is bumped on incompatible format changes.
	CurrentProfileVersion = 1

	// DefaultProfileFileName is the profile name in the home directory.
	DefaultProfileFileName = ".bigcalc_calibration.json"
)

// GetDefaultProfilePath returns the profile path in the user's home
// directory, or in the current directory when there is none.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

func resolvePath(path string) string {
	if path == "" {
		return GetDefaultProfilePath()
	}
	return path
}

// NewProfile returns an empty profile describing the current hardware.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		CPUModel:       sysmon.HostInfo().CPUModel,
		CPUFeatures:    config.CPUFeatures(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       nat.WordBits,
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(resolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile CalibrationProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile writes the profile as canonical JSON (RFC 8785), so that
// equal profiles produce identical files. An empty path selects the
// default location.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := p.canonicalJSON()
	if err != nil {
		return err
	}
	path = resolvePath(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func (p *CalibrationProfile) canonicalJSON() ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	data, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize profile: %w", err)
	}
	return data, nil
}

// IsValid reports whether the profile was measured on hardware like the
// current one: same format version, CPU count, architecture, word size and
// CPU features.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == nat.WordBits &&
		slices.Equal(p.CPUFeatures, config.CPUFeatures())
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Thresholds returns the measured crossovers; zero fields select the
// defaults of package nat.
func (p *CalibrationProfile) Thresholds() nat.Thresholds {
	if p == nil {
		return nat.Thresholds{}
	}
	return nat.Thresholds{
		Karatsuba: p.KaratsubaThreshold,
		Toom3:     p.Toom3Threshold,
		Newton:    p.NewtonThreshold,
	}
}

func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	return fmt.Sprintf(
		"CalibrationProfile{CPU: %s, Karatsuba: %d words, Toom-3: %d words, Newton: %d words, Calibrated: %s}",
		p.CPUModel,
		p.KaratsubaThreshold,
		p.Toom3Threshold,
		p.NewtonThreshold,
		p.CalibratedAt.Format(time.RFC3339),
	)
}

// LoadOrCreateProfile loads the profile at path. It returns a fresh
// profile and false when the file is missing, unreadable or was measured
// on other hardware.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	profile, err := loadProfile(path)
	if err != nil || !profile.IsValid() {
		return NewProfile(), false
	}
	return profile, true
}

// ProfileExists reports whether a profile file exists at path.
func ProfileExists(path string) bool {
	_, err := os.Stat(resolvePath(path))
	return err == nil
}
