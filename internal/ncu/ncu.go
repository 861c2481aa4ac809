// Package ncu converts NVIDIA Nsight Compute (NCU) CSV exports into a
// structured model and a readable Markdown report.
//
// NCU CSV input can be captured by running:
//
//	ncu --set full -o MYREPORT ./MYBINARY
//	ncu --import MYREPORT.ncu-rep --csv > MYREPORT.csv
//
// The package is split into a parser/aggregator that builds a Report from
// CSV rows, a section canonicalizer that folds the raw NCU section label
// variations into stable display names, value formatters, and a Markdown
// renderer over the aggregated model.
package ncu

import "strings"

// Metric is a single named, unit-tagged measured value within a section.
// Value holds display-ready text produced by FormatNumericValue; the model
// never stores raw numbers.
type Metric struct {
	// Name identifies the metric, for example "DRAM Frequency".
	Name string `json:"name"`
	// Unit is the metric's unit label, such as "hz" or "%". May be empty.
	Unit string `json:"unit"`
	// Value is the formatted display text for the measured value.
	Value string `json:"value"`
}

// Rule is an advisory finding (optimization, warning, or info) attached to
// a section, with an optional estimated speedup.
type Rule struct {
	// Name identifies the rule, for example "SOLBottleneck".
	Name string `json:"name"`
	// Type is the rule kind: "OPT", "WRN", "INF", or a passthrough value.
	Type string `json:"type"`
	// Description is the advisory text shown to the user.
	Description string `json:"description"`
	// SpeedupType qualifies the estimate, e.g. "estimated" or "theoretical".
	SpeedupType string `json:"speedup_type"`
	// Speedup is the estimated speedup percentage as text. A speedup is
	// only reported when both SpeedupType and Speedup are non-empty.
	Speedup string `json:"speedup"`
}

// Section groups the metrics and rules reported under one canonical section
// name for a single kernel. Metrics keep first-insertion order with
// last-wins overwrites by name; rules keep input order and allow duplicates.
type Section struct {
	// Name is the canonical section name, see NormalizeSectionName.
	Name string

	metricIndex map[string]int
	metrics     []Metric
	rules       []Rule

	markdown string // cached render, see Markdown
}

// UpsertMetric inserts m keyed by its name. The first insertion fixes the
// metric's position in the section; a later metric with the same name
// replaces the earlier one in place.
func (s *Section) UpsertMetric(m Metric) {
	if s.metricIndex == nil {
		s.metricIndex = make(map[string]int)
	}
	if i, ok := s.metricIndex[m.Name]; ok {
		s.metrics[i] = m
		s.markdown = ""
		return
	}
	s.metricIndex[m.Name] = len(s.metrics)
	s.metrics = append(s.metrics, m)
	s.markdown = ""
}

// AddRule appends r to the section's rule sequence.
func (s *Section) AddRule(r Rule) {
	s.rules = append(s.rules, r)
	s.markdown = ""
}

// Metrics returns the section's metrics in first-insertion order.
func (s *Section) Metrics() []Metric {
	return s.metrics
}

// Metric returns the named metric and whether it is present.
func (s *Section) Metric(name string) (Metric, bool) {
	i, ok := s.metricIndex[name]
	if !ok {
		return Metric{}, false
	}
	return s.metrics[i], true
}

// Rules returns the section's rules in input order.
func (s *Section) Rules() []Rule {
	return s.rules
}

// Kernel holds all sections aggregated for one kernel base name.
type Kernel struct {
	// Name is the base kernel name, see ExtractKernelName.
	Name string

	sections map[string]*Section
	seen     []string // canonical section names in first-seen order
}

// section returns the named section, creating it on first use.
func (k *Kernel) section(name string) *Section {
	if s, ok := k.sections[name]; ok {
		return s
	}
	if k.sections == nil {
		k.sections = make(map[string]*Section)
	}
	s := &Section{Name: name}
	k.sections[name] = s
	k.seen = append(k.seen, name)
	return s
}

// Section returns the named section, or nil if the kernel has none by that
// name.
func (k *Kernel) Section(name string) *Section {
	return k.sections[name]
}

// Sections returns the kernel's sections in display order: sections named
// in the canonical order list come first, in that list's order, followed by
// any remaining sections in the order they were first seen. Plain
// alphabetical sorting would not match typical NCU report layout.
func (k *Kernel) Sections() []*Section {
	ordered := make([]*Section, 0, len(k.sections))
	known := make(map[string]struct{}, len(canonicalOrder))
	for _, name := range canonicalOrder {
		known[name] = struct{}{}
		if s, ok := k.sections[name]; ok {
			ordered = append(ordered, s)
		}
	}
	for _, name := range k.seen {
		if _, ok := known[name]; !ok {
			ordered = append(ordered, k.sections[name])
		}
	}
	return ordered
}

// Report is the aggregated model for one conversion: every kernel seen in
// the input, in discovery order. A Report is built once per conversion and
// is not mutated afterwards except for cached section renders.
type Report struct {
	kernels map[string]*Kernel
	order   []string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{kernels: make(map[string]*Kernel)}
}

// kernel returns the named kernel, creating it on first use.
func (r *Report) kernel(name string) *Kernel {
	if k, ok := r.kernels[name]; ok {
		return k
	}
	k := &Kernel{Name: name}
	r.kernels[name] = k
	r.order = append(r.order, name)
	return k
}

// Kernel returns the named kernel, or nil if the report has none by that
// name.
func (r *Report) Kernel(name string) *Kernel {
	return r.kernels[name]
}

// Kernels returns the report's kernels in the order their names were first
// seen in the input. This order governs output order across kernels.
func (r *Report) Kernels() []*Kernel {
	ordered := make([]*Kernel, len(r.order))
	for i, name := range r.order {
		ordered[i] = r.kernels[name]
	}
	return ordered
}

// Len returns the number of kernels in the report.
func (r *Report) Len() int {
	return len(r.order)
}

// ExtractKernelName derives the base kernel name from a full, possibly
// template-decorated invocation name: everything strictly before the first
// '[' or '(', trimmed of surrounding whitespace. Names without either
// character are trimmed and returned; names starting with one are returned
// unchanged.
func ExtractKernelName(fullName string) string {
	i := strings.IndexAny(fullName, "[(")
	switch {
	case i < 0:
		return strings.TrimSpace(fullName)
	case i == 0:
		return fullName
	default:
		return strings.TrimSpace(fullName[:i])
	}
}
