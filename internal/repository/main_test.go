//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"cargodeploy-backend/internal/testutils"
)

// TestMain purges the shared Postgres container once every repository suite has run
func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m))
}
