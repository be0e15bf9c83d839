package manifest

import (
	// Stdlib
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Internal
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/version"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	AfterEach  = ginkgo.AfterEach
	BeforeEach = ginkgo.BeforeEach
	Describe   = ginkgo.Describe
	It         = ginkgo.It

	BeNil  = gomega.BeNil
	Equal  = gomega.Equal
	Expect = gomega.Expect
)

func TestManifest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Manifest")
}

const sampleContent = `[package]
name = "demo-editor"
version = "0.1.0"
edition = "2021"

[dependencies]
libc = { version = "0.2" }

[workspace.package]
version = "9.9.9"
`

var _ = Describe("the manifest", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "manifest")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	write := func(content string) {
		err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0644)
		Expect(err).To(BeNil())
	}

	read := func() string {
		content, err := os.ReadFile(filepath.Join(dir, Filename))
		Expect(err).To(BeNil())
		return string(content)
	}

	It("exposes the version stored in the first version line", func() {
		write(sampleContent)

		m, err := Load(dir)
		Expect(err).To(BeNil())
		Expect(m.Version().String()).To(Equal("0.1.0"))
	})

	It("loads versions carrying a pre-release suffix", func() {
		write(`version = "1.2.3-rc1"` + "\n")

		m, err := Load(dir)
		Expect(err).To(BeNil())
		Expect(m.Version().String()).To(Equal("1.2.3-rc1"))
	})

	It("fails to load when the file does not exist", func() {
		_, err := Load(dir)
		Expect(err).NotTo(BeNil())
	})

	It("fails to load when the version line is missing", func() {
		write("[package]\nname = \"demo-editor\"\n")

		_, err := Load(dir)
		Expect(errs.RootCause(err)).To(Equal(ErrVersionNotFound))
	})

	It("fails to load when the version string is not a semver triple", func() {
		write(`version = "1.2"` + "\n")

		_, err := Load(dir)
		Expect(err).NotTo(BeNil())
	})

	Describe("Rewrite", func() {
		newVersion := func(versionString string) *version.Version {
			ver, err := version.Parse(versionString)
			Expect(err).To(BeNil())
			return ver
		}

		It("replaces the first version line and nothing else", func() {
			write(sampleContent)

			m, err := Load(dir)
			Expect(err).To(BeNil())
			Expect(m.Rewrite(newVersion("0.2.0"))).To(BeNil())

			expected := strings.Replace(sampleContent,
				`version = "0.1.0"`, `version = "0.2.0"`, 1)
			Expect(read()).To(Equal(expected))
		})

		It("keeps the manifest consistent across repeated rewrites", func() {
			write(sampleContent)

			m, err := Load(dir)
			Expect(err).To(BeNil())
			Expect(m.Rewrite(newVersion("0.2.0"))).To(BeNil())
			Expect(m.Rewrite(newVersion("10.20.30"))).To(BeNil())

			expected := strings.Replace(sampleContent,
				`version = "0.1.0"`, `version = "10.20.30"`, 1)
			Expect(read()).To(Equal(expected))
			Expect(m.Version().String()).To(Equal("10.20.30"))
		})

		It("drops the pre-release suffix when bumping", func() {
			write(`version = "1.2.3-rc1"` + "\n")

			m, err := Load(dir)
			Expect(err).To(BeNil())
			Expect(m.Rewrite(m.Version().Bump(version.BumpPatch))).To(BeNil())
			Expect(read()).To(Equal(`version = "1.2.4"` + "\n"))
		})
	})
})
