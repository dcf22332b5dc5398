// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "NATIONAL_ID")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Patterns            []string // Patterns the check looks for
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays usage information and the registered checks
func (h *System) ShowGeneralHelp(detectorNames []string) {
	h.colors["title"].Println("logsift - PII scanner for compressed log archives")
	fmt.Println()
	fmt.Println("Usage: logsift [options] <folder_with_gz_files>")
	fmt.Println()

	h.colors["header"].Println("Options:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  --config FILE\tconfiguration file (YAML)")
	fmt.Fprintln(w, "  --output-dir DIR\toutput root for per-file reports")
	fmt.Fprintln(w, "  --workers N\tworker pool capacity (default 10)")
	fmt.Fprintln(w, "  --checks LIST\tcomma-separated detector names, or 'all'")
	fmt.Fprintln(w, "  --explain CHECK\tshow detailed help for one check")
	fmt.Fprintln(w, "  --no-color\tdisable colored output")
	fmt.Fprintln(w, "  --debug\tenable debug logging")
	fmt.Fprintln(w, "  --version\tprint version and exit")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("Detectors (registration order):")
	for _, name := range detectorNames {
		h.colors["item"].Printf("  %s\n", name)
	}
}

// ShowCheckHelp displays detailed help for a single check. Returns false
// when no provider is registered under that name.
func (h *System) ShowCheckHelp(name string) bool {
	provider, ok := h.providers[strings.ToLower(name)]
	if !ok {
		return false
	}

	info := provider.GetCheckInfo()
	h.colors["title"].Println(info.Name)
	h.colors["subtitle"].Println(info.ShortDescription)
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Patterns) > 0 {
		fmt.Println()
		h.colors["header"].Println("Patterns:")
		for _, p := range info.Patterns {
			fmt.Printf("  %s\n", p)
		}
	}
	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("Examples:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
	}
	return true
}
