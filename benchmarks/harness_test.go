package benchmarks_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-plc/scanengine/benchmarks"
)

var _ = Describe("Harness", func() {
	var harness *benchmarks.Harness
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
		harness = benchmarks.NewHarness(benchmarks.Config{Output: out})
	})

	It("runs a single benchmark for the requested scan count", func() {
		harness.AddBenchmark(benchmarks.GetMicrobenchmarks()[0])
		results := harness.RunAll()

		Expect(results).To(HaveLen(1))
		Expect(results[0].Name).To(Equal("series-contacts"))
		Expect(results[0].ScansRun).To(Equal(uint64(100000)))
		Expect(results[0].RungsRun).To(BeNumerically(">", 0))
	})

	It("runs every registered microbenchmark", func() {
		harness.AddBenchmarks(benchmarks.GetMicrobenchmarks())
		results := harness.RunAll()

		Expect(results).To(HaveLen(5))
		names := make([]string, len(results))
		for i, r := range results {
			names[i] = r.Name
		}
		Expect(names).To(ConsistOf(
			"series-contacts", "parallel-branch", "arithmetic-chain",
			"timer-heavy", "counter-heavy",
		))
	})

	It("honors a benchmark's configured scan count", func() {
		b := benchmarks.GetMicrobenchmarks()[0]
		b.Scans = 3
		harness.AddBenchmark(b)
		results := harness.RunAll()

		Expect(results[0].ScansRun).To(Equal(uint64(3)))
	})
})

var _ = Describe("PrintHuman", func() {
	It("writes one line per result containing the benchmark name", func() {
		out := &bytes.Buffer{}
		results := []benchmarks.Result{
			{Name: "series-contacts", Description: "test", ScansRun: 10, RungsRun: 10, ScansPerSec: 1000},
		}
		benchmarks.PrintHuman(out, results)

		Expect(out.String()).To(ContainSubstring("series-contacts"))
	})
})

var _ = Describe("PrintCSV", func() {
	It("writes a header row followed by one row per result", func() {
		out := &bytes.Buffer{}
		results := []benchmarks.Result{
			{Name: "series-contacts", Description: "three series contacts", ScansRun: 10, RungsRun: 10, ScansPerSec: 1000},
			{Name: "parallel-branch", Description: "three-way branch", ScansRun: 5, RungsRun: 5, ScansPerSec: 500},
		}
		benchmarks.PrintCSV(out, results)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(Equal("name,description,scans_run,rungs_run,diagnostics,wall_time_ns,scans_per_sec"))
		Expect(lines[1]).To(ContainSubstring("series-contacts"))
		Expect(lines[2]).To(ContainSubstring("parallel-branch"))
	})
})
