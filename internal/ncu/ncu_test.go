package ncu

import "testing"

func TestExtractKernelName(t *testing.T) {
	longTemplate := "copy_blocked[v1,cw51cXTLSUwv1sDUaKthrqNgqqmjgOR3W3CwAkMXLaJtQYkOIgxJU0gCqOkEJoHkbttqdVhoqlspQGNFHSgJ5BnXagIA](Array<long long, 1, C, mutable, aligned>, Array<long long, 1, C, mutable, aligned>, long long)"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name unchanged", "simple_kernel", "simple_kernel"},
		{"plain name trimmed", "  padded_kernel  ", "padded_kernel"},
		{"parentheses", "kernel(int*, float*)", "kernel"},
		{"brackets before parentheses", "kernel[T=int](int*)", "kernel"},
		{"long mangled template", longTemplate, "copy_blocked"},
		{"inner spaces kept", "my kernel[T]", "my kernel"},
		{"surrounding spaces trimmed", "  spaced_name  [params]", "spaced_name"},
		{"leading bracket keeps full name", "[weird](x)", "[weird](x)"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractKernelName(tc.in); got != tc.want {
				t.Errorf("ExtractKernelName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSection_UpsertMetric_LastWinsKeepsPosition(t *testing.T) {
	s := &Section{Name: "Launch"}
	s.UpsertMetric(Metric{Name: "Grid Size", Value: "128"})
	s.UpsertMetric(Metric{Name: "Block Size", Value: "256"})
	s.UpsertMetric(Metric{Name: "Grid Size", Value: "64"})

	metrics := s.Metrics()
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(metrics))
	}
	if metrics[0].Name != "Grid Size" || metrics[0].Value != "64" {
		t.Errorf("expected Grid Size overwritten in place, got %+v", metrics[0])
	}
	if metrics[1].Name != "Block Size" {
		t.Errorf("expected Block Size second, got %+v", metrics[1])
	}

	if m, ok := s.Metric("Grid Size"); !ok || m.Value != "64" {
		t.Errorf("Metric lookup: got %+v, ok=%v", m, ok)
	}
	if _, ok := s.Metric("Missing"); ok {
		t.Error("lookup of absent metric reported ok")
	}
}

func TestSection_AddRule_KeepsInputOrderAndDuplicates(t *testing.T) {
	s := &Section{Name: "Occupancy"}
	s.AddRule(Rule{Name: "A", Type: "OPT"})
	s.AddRule(Rule{Name: "B", Type: "WRN"})
	s.AddRule(Rule{Name: "A", Type: "OPT"})

	rules := s.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	for i, want := range []string{"A", "B", "A"} {
		if rules[i].Name != want {
			t.Errorf("rule %d: got %q, want %q", i, rules[i].Name, want)
		}
	}
}

func TestKernel_Sections_TwoTierOrder(t *testing.T) {
	k := &Kernel{Name: "k"}
	// Deliberately scrambled insertion order with two unknown sections.
	k.section("Custom Late")
	k.section("Occupancy")
	k.section("Speed Of Light")
	k.section("Another Custom")
	k.section("Memory Workload")

	var got []string
	for _, s := range k.Sections() {
		got = append(got, s.Name)
	}
	want := []string{"Speed Of Light", "Memory Workload", "Occupancy", "Custom Late", "Another Custom"}
	if len(got) != len(want) {
		t.Fatalf("section count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReport_Kernels_DiscoveryOrder(t *testing.T) {
	r := NewReport()
	r.kernel("b")
	r.kernel("a")
	r.kernel("b")

	if r.Len() != 2 {
		t.Fatalf("expected 2 kernels, got %d", r.Len())
	}
	kernels := r.Kernels()
	if kernels[0].Name != "b" || kernels[1].Name != "a" {
		t.Errorf("unexpected kernel order: %q, %q", kernels[0].Name, kernels[1].Name)
	}
	if r.Kernel("a") == nil || r.Kernel("missing") != nil {
		t.Error("Kernel lookup misbehaved")
	}
}
