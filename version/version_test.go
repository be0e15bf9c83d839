package version

import (
	// Stdlib
	"testing"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	Describe = ginkgo.Describe
	It       = ginkgo.It

	BeNil  = gomega.BeNil
	Equal  = gomega.Equal
	Expect = gomega.Expect
)

func TestVersion(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Version")
}

var _ = Describe("Version.Bump", func() {
	bump := func(versionString string, class BumpClass) string {
		ver, err := Parse(versionString)
		Expect(err).To(BeNil())
		return ver.Bump(class).String()
	}

	It("increments the patch component for the patch class", func() {
		Expect(bump("0.1.0", BumpPatch)).To(Equal("0.1.1"))
		Expect(bump("2.9.9", BumpPatch)).To(Equal("2.9.10"))
	})

	It("increments minor and resets patch for the minor class", func() {
		Expect(bump("0.1.0", BumpMinor)).To(Equal("0.2.0"))
		Expect(bump("1.2.3", BumpMinor)).To(Equal("1.3.0"))
	})

	It("increments major and resets minor and patch for the major class", func() {
		Expect(bump("2.9.9", BumpMajor)).To(Equal("3.0.0"))
		Expect(bump("0.1.0", BumpMajor)).To(Equal("1.0.0"))
	})

	It("drops the pre-release suffix before doing the arithmetic", func() {
		Expect(bump("1.2.3-rc1", BumpPatch)).To(Equal("1.2.4"))
		Expect(bump("1.2.3-rc.1", BumpMinor)).To(Equal("1.3.0"))
	})
})

var _ = Describe("Parse", func() {
	It("accepts full semver version strings", func() {
		ver, err := Parse("1.2.3-rc1")
		Expect(err).To(BeNil())
		Expect(ver.String()).To(Equal("1.2.3-rc1"))
	})

	It("rejects incomplete or malformed version strings", func() {
		for _, versionString := range []string{"", "1", "1.2", "1.2.x", "bananas"} {
			_, err := Parse(versionString)
			Expect(err).NotTo(BeNil())
		}
	})
})

var _ = Describe("Version.ReleaseTagString", func() {
	It("prefixes the version string with v", func() {
		ver, err := Parse("0.2.0")
		Expect(err).To(BeNil())
		Expect(ver.ReleaseTagString()).To(Equal("v0.2.0"))
	})
})

var _ = Describe("ParseBumpClass", func() {
	It("accepts the three recognized classes", func() {
		for _, value := range []string{"patch", "minor", "major"} {
			class, err := ParseBumpClass(value)
			Expect(err).To(BeNil())
			Expect(string(class)).To(Equal(value))
		}
	})

	It("rejects anything else", func() {
		for _, value := range []string{"", "Patch", "micro", "release"} {
			_, err := ParseBumpClass(value)
			Expect(err).NotTo(BeNil())
		}
	})
})
