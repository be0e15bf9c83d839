package notes

import (
	// Stdlib
	"os"
	"path/filepath"
	"testing"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	AfterEach  = ginkgo.AfterEach
	BeforeEach = ginkgo.BeforeEach
	Describe   = ginkgo.Describe
	It         = ginkgo.It

	BeFalse = gomega.BeFalse
	BeNil   = gomega.BeNil
	BeTrue  = gomega.BeTrue
	Equal   = gomega.Equal
	Expect  = gomega.Expect
)

func TestNotes(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Notes")
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "notes")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	write := func(content string) {
		err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0644)
		Expect(err).To(BeNil())
	}

	It("returns the trimmed notes content", func() {
		write("\n\n## 0.2.0\n\n- Stuff happened.\n\n")

		content, ok, err := Load(dir)
		Expect(err).To(BeNil())
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("## 0.2.0\n\n- Stuff happened."))
	})

	It("reports a missing file without an error", func() {
		content, ok, err := Load(dir)
		Expect(err).To(BeNil())
		Expect(ok).To(BeFalse())
		Expect(content).To(Equal(""))
	})

	It("treats a whitespace-only file as missing", func() {
		write("  \n\t\n")

		_, ok, err := Load(dir)
		Expect(err).To(BeNil())
		Expect(ok).To(BeFalse())
	})
})
