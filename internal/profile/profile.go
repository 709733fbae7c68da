// Package profile manages the traveller's persistent tripline profile.
// The profile is stored at ~/.config/tripline/profile.json and is created
// once via the interactive setup flow, then referenced on every command.
package profile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Profile holds user-level preferences set during first-run setup.
type Profile struct {
	Name          string   `json:"name"`           // first companion of new trips
	HomeCurrency  string   `json:"home_currency"`  // e.g. "TWD"
	DefaultFormat string   `json:"default_format"` // "markdown" | "json" | "ics"
	OutputDir     string   `json:"output_dir"`     // default export dir
	Companions    []string `json:"companions"`     // usual travel party, besides Name
}

// Party returns the companions a new trip starts with: the traveller
// first, then the usual party without duplicates.
func (p *Profile) Party() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	add(p.Name)
	for _, c := range p.Companions {
		add(c)
	}
	return out
}

// profilePath returns the path to the profile file.
func profilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.json"), nil
}

// ConfigDir returns the tripline config directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tripline"), nil
}

// Exists reports whether a profile file is present on disk.
func Exists() bool {
	p, err := profilePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Load reads the profile from disk. Returns an error if the file is missing or malformed.
func Load() (*Profile, error) {
	p, err := profilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("profile not found, run 'tripline setup' to configure: %w", err)
	}
	var prof Profile
	if err := json.Unmarshal(data, &prof); err != nil {
		return nil, fmt.Errorf("malformed profile at %s: %w", p, err)
	}
	return &prof, nil
}

// Save writes the profile to disk, creating the config directory if needed.
func Save(prof *Profile) error {
	p, err := profilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prof, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// RunSetup runs the interactive setup wizard, reading answers from in and
// writing prompts to out. If existing is non-nil, it is used as the default
// for each prompt (edit mode).
func RunSetup(in io.Reader, out io.Writer, existing *Profile) (*Profile, error) {
	r := bufio.NewReader(in)

	ask := func(prompt, defaultVal string) (string, error) {
		if defaultVal != "" {
			fmt.Fprintf(out, "%s [%s]: ", prompt, defaultVal)
		} else {
			fmt.Fprintf(out, "%s: ", prompt)
		}
		line, err := r.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultVal, nil
		}
		return line, nil
	}

	prof := &Profile{
		DefaultFormat: "markdown",
		OutputDir:     ".",
	}
	if existing != nil {
		*prof = *existing
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  ┌─────────────────────────────────┐")
	fmt.Fprintln(out, "  │   tripline · first-time setup   │")
	fmt.Fprintln(out, "  └─────────────────────────────────┘")
	fmt.Fprintln(out)

	var err error

	prof.Name, err = ask("  Your name (shown in the bill split)", prof.Name)
	if err != nil {
		return nil, err
	}

	prof.HomeCurrency, err = ask("  Home currency (e.g. TWD, USD)", prof.HomeCurrency)
	if err != nil {
		return nil, err
	}
	prof.HomeCurrency = strings.ToUpper(prof.HomeCurrency)

	format, err := ask("  Default export format (markdown/json/ics)", prof.DefaultFormat)
	if err != nil {
		return nil, err
	}
	switch format {
	case "json", "ics":
		prof.DefaultFormat = format
	default:
		prof.DefaultFormat = "markdown"
	}

	prof.OutputDir, err = ask("  Default export directory", prof.OutputDir)
	if err != nil {
		return nil, err
	}

	party, err := ask("  Usual travel companions (comma separated)", strings.Join(prof.Companions, ", "))
	if err != nil {
		return nil, err
	}
	prof.Companions = splitList(party)

	fmt.Fprintln(out)
	return prof, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
