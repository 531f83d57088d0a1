package loader_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-plc/scanengine/loader"
	"github.com/go-plc/scanengine/tagstore"
)

var _ = Describe("LoadTags", func() {
	It("loads bool/int/real tags regardless of order", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "tags.txt")
		content := "PRE int 1000\nEN bool 1\nRATIO real 3.5\n"
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		store, err := loader.LoadTags(path)
		Expect(err).NotTo(HaveOccurred())

		pre, err := store.GetInt("PRE")
		Expect(err).NotTo(HaveOccurred())
		Expect(pre).To(Equal(int64(1000)))

		en, err := store.GetBool("EN")
		Expect(err).NotTo(HaveOccurred())
		Expect(en).To(BeTrue())

		ratio, err := store.GetReal("RATIO")
		Expect(err).NotTo(HaveOccurred())
		Expect(ratio).To(Equal(3.5))
	})

	It("rejects an unknown type", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "tags.txt")
		Expect(os.WriteFile(path, []byte("X string foo\n"), 0o644)).To(Succeed())

		_, err := loader.LoadTags(path)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SaveTags", func() {
	It("round-trips through LoadTags", func() {
		store := tagstore.New()
		store.SetBool("EN", true)
		store.SetInt("PRE", 42)
		store.SetReal("RATIO", 1.5)

		var buf bytes.Buffer
		Expect(loader.SaveTags(&buf, store)).To(Succeed())

		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "roundtrip.txt")
		Expect(os.WriteFile(path, buf.Bytes(), 0o644)).To(Succeed())

		reloaded, err := loader.LoadTags(path)
		Expect(err).NotTo(HaveOccurred())

		en, _ := reloaded.GetBool("EN")
		pre, _ := reloaded.GetInt("PRE")
		ratio, _ := reloaded.GetReal("RATIO")
		Expect(en).To(BeTrue())
		Expect(pre).To(Equal(int64(42)))
		Expect(ratio).To(Equal(1.5))
	})
})
