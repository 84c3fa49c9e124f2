package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/harvestlink/harvestlink/internal/auth"
)

var (
	ctx           context.Context
	cancel        context.CancelFunc
	restoreBcrypt func()
)

func TestStorefrontIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storefront Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx, cancel = context.WithCancel(context.TODO())
	restoreBcrypt = auth.SetBcryptCostForTesting(bcrypt.MinCost)
})

var _ = AfterSuite(func() {
	restoreBcrypt()
	cancel()
})

// createTempDir creates a temporary directory for test files
func createTempDir(prefix string) string {
	dir, err := os.MkdirTemp("", prefix)
	Expect(err).NotTo(HaveOccurred())
	return dir
}

// cleanupTempDir removes a temporary directory
func cleanupTempDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		By(fmt.Sprintf("Warning: failed to cleanup temp dir %s: %v", dir, err))
	}
}
