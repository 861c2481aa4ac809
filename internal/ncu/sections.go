package ncu

import "strings"

// sectionMapping pairs one raw NCU section label with its canonical display
// name.
type sectionMapping struct {
	raw       string
	canonical string
}

// sectionMappings folds the label variations NCU emits for the same logical
// section into one canonical name. Order matters twice over: canonical
// display order is derived from the first appearance of each canonical name,
// so every row mapping to the same canonical name must stay contiguous.
var sectionMappings = []sectionMapping{
	{"GPU Speed Of Light Throughput", "Speed Of Light"},
	{"SpeedOfLight", "Speed Of Light"},
	{"SpeedOfLight_RooflineChart", "Speed Of Light"},

	{"Memory Workload Analysis", "Memory Workload"},
	{"MemoryWorkloadAnalysis", "Memory Workload"},
	{"MemoryWorkloadAnalysis_Chart", "Memory Workload"},
	{"MemoryWorkloadAnalysis_Tables", "Memory Workload"},

	{"Compute Workload Analysis", "Compute Workload"},
	{"ComputeWorkloadAnalysis", "Compute Workload"},

	{"GPU and Memory Workload Distribution", "Compute & Memory Distribution"},

	{"Scheduler Statistics", "Scheduler"},
	{"SchedulerStats", "Scheduler"},

	{"Warp State Statistics", "Warp State"},
	{"WarpStateStats", "Warp State"},

	{"Instruction Statistics", "Instruction"},

	{"Launch Statistics", "Launch"},

	{"PM Sampling", "PM Sampling"},

	{"Occupancy", "Occupancy"},

	// The only metrics observed under Source Counters concern branching and
	// warp stalls; "Source Counters" reads as noise to most users.
	{"Source Counters", "Branching"},
	{"SourceCounters", "Branching"},
}

// sectionLookup and canonicalOrder are derived from sectionMappings once at
// startup and are read-only afterwards.
var (
	sectionLookup  = make(map[string]string, len(sectionMappings))
	canonicalOrder []string
)

func init() {
	seen := make(map[string]struct{}, len(sectionMappings))
	for _, m := range sectionMappings {
		sectionLookup[m.raw] = m.canonical
		if _, ok := seen[m.canonical]; !ok {
			seen[m.canonical] = struct{}{}
			canonicalOrder = append(canonicalOrder, m.canonical)
		}
	}
}

// NormalizeSectionName maps a raw section label to its canonical display
// name. Labels without a mapping are returned trimmed but otherwise
// unchanged, so sections added in future NCU releases still show up in the
// output.
func NormalizeSectionName(raw string) string {
	if raw == "" {
		return raw
	}
	section := strings.TrimSpace(raw)
	if canonical, ok := sectionLookup[section]; ok {
		return canonical
	}
	return section
}

// SectionOrder returns a copy of the canonical section display order.
func SectionOrder() []string {
	order := make([]string, len(canonicalOrder))
	copy(order, canonicalOrder)
	return order
}

// RawLabels returns the raw NCU labels that fold into the given canonical
// section name, in declaration order. It returns nil for names the mapping
// table does not produce.
func RawLabels(canonical string) []string {
	var labels []string
	for _, m := range sectionMappings {
		if m.canonical == canonical {
			labels = append(labels, m.raw)
		}
	}
	return labels
}
