// Package remedy holds the fixed catalog of local remediation actions and
// the interactive menu that offers them after an AI analysis. Actions are
// single shell commands run in order; there is no rollback.
package remedy

import (
	"strings"

	"github.com/systune/systune/pkg/model"
)

// Step is one command an action runs.
type Step struct {
	Name string
	Args []string
}

func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}

// Action is a recognized remediation the user can apply locally. Most
// actions need root; a permission failure is reported, never escalated.
type Action struct {
	ID          string
	Category    string
	Title       string
	Description string
	Steps       []Step
	keywords    []string
}

// catalog is ordered; keyword matching walks it top to bottom, so more
// specific entries (swappiness) come before broader ones (swap).
var catalog = []Action{
	{
		ID:          "lower-swappiness",
		Category:    "swappiness",
		Title:       "Lower vm.swappiness",
		Description: "Reduce the kernel's tendency to swap by setting vm.swappiness=10 and persisting it.",
		Steps: []Step{
			{"sysctl", []string{"-w", "vm.swappiness=10"}},
			{"sh", []string{"-c", "echo 'vm.swappiness=10' > /etc/sysctl.d/99-systune.conf"}},
		},
		keywords: []string{"swappiness"},
	},
	{
		ID:          "add-swap",
		Category:    "swap",
		Title:       "Add a 2G swap file",
		Description: "Create and activate /swapfile and persist it in /etc/fstab.",
		Steps: []Step{
			{"fallocate", []string{"-l", "2G", "/swapfile"}},
			{"chmod", []string{"600", "/swapfile"}},
			{"mkswap", []string{"/swapfile"}},
			{"swapon", []string{"/swapfile"}},
			{"sh", []string{"-c", "echo '/swapfile none swap sw 0 0' >> /etc/fstab"}},
		},
		keywords: []string{"swap"},
	},
	{
		ID:          "journal-vacuum",
		Category:    "journal",
		Title:       "Vacuum the systemd journal",
		Description: "Shrink persistent journal storage to 200M.",
		Steps: []Step{
			{"journalctl", []string{"--vacuum-size=200M"}},
		},
		keywords: []string{"journal", "vacuum", "log size"},
	},
	{
		ID:          "enable-fstrim",
		Category:    "trim",
		Title:       "Enable periodic TRIM",
		Description: "Enable and start the fstrim.timer unit for SSD maintenance.",
		Steps: []Step{
			{"systemctl", []string{"enable", "--now", "fstrim.timer"}},
		},
		keywords: []string{"fstrim", "trim"},
	},
}

// Catalog returns the full remediation catalog in menu order.
func Catalog() []Action {
	out := make([]Action, len(catalog))
	copy(out, catalog)
	return out
}

// Match finds the catalog action for a suggestion, first by its category
// field, then by keyword scan of the action text.
func Match(s model.Suggestion) (Action, bool) {
	if cat := strings.ToLower(strings.TrimSpace(s.Category)); cat != "" {
		for _, a := range catalog {
			if a.Category == cat {
				return a, true
			}
		}
	}

	text := strings.ToLower(s.Action + " " + s.Command)
	for _, a := range catalog {
		for _, kw := range a.keywords {
			if strings.Contains(text, kw) {
				return a, true
			}
		}
	}

	return Action{}, false
}
