package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-plc/scanengine/config"
)

var _ = Describe("Load", func() {
	It("returns defaults overlaid with whatever the file specifies", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "engine.json")
		Expect(os.WriteFile(path, []byte(`{"max_scans": 100, "trace_level": "verbose"}`), 0o644)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.MaxScans).To(Equal(uint64(100)))
		Expect(cfg.TraceLevel).To(Equal(config.TraceVerbose))
		Expect(cfg.ScanTimeFloorMicros).To(Equal(uint64(0)))
	})

	It("loads a non-zero scan-time floor", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "engine.json")
		Expect(os.WriteFile(path, []byte(`{"scan_time_floor_micros": 50}`), 0o644)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ScanTimeFloorMicros).To(Equal(uint64(50)))
	})

	It("fails on an unreadable path", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.json"))
		Expect(err).To(HaveOccurred())
	})
})
