package errors_test

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/rwx-research/xray-import/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Utils", func() {
	Describe("WithStack", func() {
		It("wraps an error without a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.WithStack(err)
			Expect(wrapped.Error()).To(Equal("some error"))
			Expect(wrapped).NotTo(Equal(err))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))
			Expect(errors.Is(wrapped, err)).To(BeTrue())
		})
	})

	Describe("Wrap", func() {
		It("wraps an error with a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrap(err, "some prefix")
			Expect(wrapped.Error()).To(Equal("some prefix: some error"))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))
			Expect(errors.Is(wrapped, err)).To(BeTrue())
		})
	})

	Describe("Wrapf", func() {
		It("wraps an error with a formatted message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrapf(err, "some prefix %v", "formatted")
			Expect(wrapped.Error()).To(Equal("some prefix formatted: some error"))
			Expect(errors.Is(wrapped, err)).To(BeTrue())
		})
	})

	Describe("WithDecoration", func() {
		It("returns undecorated errors unchanged", func() {
			err := errors.NewSystemError("disk on fire")
			Expect(errors.WithDecoration(err)).To(Equal(err))
		})
	})
})
