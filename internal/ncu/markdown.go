package ncu

import (
	"fmt"
	"strings"
)

// noSectionsPlaceholder is emitted for a kernel that ended up with no
// retained sections.
const noSectionsPlaceholder = "*No sections found for this kernel.*\n"

// Markdown renders the section as a standalone Markdown fragment: a
// second-level heading, the metrics table if any metrics are present, and
// one paragraph per rule. The result is cached on the section, so repeated
// renders are cheap and idempotent.
func (s *Section) Markdown() string {
	if s.markdown != "" {
		return s.markdown
	}

	lines := []string{"## " + s.Name + "\n"}

	if len(s.metrics) > 0 {
		lines = append(lines,
			"| Metric Name | Metric Unit | Metric Value |",
			"|-------------|-------------|--------------|",
		)
		for _, m := range s.metrics {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", m.Name, m.Unit, m.Value))
		}
		lines = append(lines, "")
	}

	for _, r := range s.rules {
		lines = append(lines, FormatRuleType(r.Type)+": "+r.Description)
		if r.Speedup != "" && r.SpeedupType != "" {
			lines = append(lines, fmt.Sprintf("*Estimated Speedup (%s): %s%%*", r.SpeedupType, r.Speedup))
		}
		lines = append(lines, "")
	}

	s.markdown = strings.Join(lines, "\n")
	return s.markdown
}

// SummaryMarkdown collects every rule in the kernel into one fragment,
// grouped by section in display order. It returns the empty string when no
// section carries a rule.
func (k *Kernel) SummaryMarkdown() string {
	lines := []string{"## Summary\n"}

	found := false
	for _, s := range k.Sections() {
		if len(s.rules) == 0 {
			continue
		}
		found = true
		lines = append(lines, "### "+s.Name+"\n")
		for _, r := range s.rules {
			lines = append(lines, FormatRuleType(r.Type)+": "+r.Description)
			if r.Speedup != "" && r.SpeedupType != "" {
				lines = append(lines, fmt.Sprintf("*Estimated Speedup (%s): %s%%*", r.SpeedupType, r.Speedup))
			}
			lines = append(lines, "")
		}
	}
	if !found {
		return ""
	}
	return strings.Join(lines, "\n")
}

// Markdown renders the whole report as a flat Markdown document: a
// top-level heading per kernel in discovery order, each kernel's sections
// in display order, and a horizontal rule between kernels. No separator
// follows the final kernel.
func (r *Report) Markdown() string {
	var lines []string

	for i, k := range r.Kernels() {
		lines = append(lines, "# "+k.Name+"\n")

		sections := k.Sections()
		if len(sections) == 0 {
			lines = append(lines, noSectionsPlaceholder)
		}
		for _, s := range sections {
			lines = append(lines, s.Markdown())
		}

		if i < r.Len()-1 {
			lines = append(lines, "---\n")
		}
	}

	return strings.Join(lines, "\n")
}
