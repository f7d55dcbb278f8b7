package puzzle

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPuzzle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Puzzle Suite")
}
