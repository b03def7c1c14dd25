package glob_test

import (
	"os"
	"syscall"

	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/glob"
	"github.com/rwx-research/xray-import/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver with a mocked file system", func() {
	var (
		fileSystem *mocks.FileSystem
		resolver   glob.Resolver
		listings   map[string][]os.DirEntry
		failing    map[string]error
	)

	BeforeEach(func() {
		listings = map[string][]os.DirEntry{
			"/results": {
				mocks.DirEntry{FileInfo: mocks.FileInfo{FileName: "a.xml"}},
				mocks.DirEntry{FileInfo: mocks.FileInfo{FileName: "sub", Dir: true, FileMode: os.ModeDir}},
			},
			"/results/sub": {
				mocks.DirEntry{FileInfo: mocks.FileInfo{FileName: "b.xml"}},
			},
		}
		failing = map[string]error{}

		fileSystem = &mocks.FileSystem{
			MockStat: func(name string) (os.FileInfo, error) {
				if err, ok := failing[name]; ok {
					return nil, err
				}
				if _, ok := listings[name]; ok {
					return mocks.FileInfo{FileName: name, Dir: true, FileMode: os.ModeDir}, nil
				}
				return nil, os.ErrNotExist
			},
			MockReadDir: func(name string) ([]os.DirEntry, error) {
				return listings[name], nil
			},
		}
		resolver = glob.Resolver{FileSystem: fileSystem}
	})

	It("walks the listed directories", func() {
		files, err := resolver.Resolve("", "/results/**/*.xml")
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(Equal([]string{"/results/a.xml", "/results/sub/b.xml"}))
	})

	It("reports directories that cannot be accessed", func() {
		failing["/results/sub"] = &os.PathError{Op: "stat", Path: "/results/sub", Err: syscall.EACCES}

		_, err := resolver.Resolve("", "/results/**/*.xml")
		_, ok := errors.AsSystemError(err)
		Expect(ok).To(BeTrue())
	})
})
