package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestReimbursementHub(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ReimbursementHub Suite")
}
