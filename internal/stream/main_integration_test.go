//go:build integration
// +build integration

package stream

import (
	"os"
	"testing"

	"cargodeploy-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m))
}
