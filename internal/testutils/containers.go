package testutils

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// container is a throwaway Docker service started on first use and shared by
// every test in the process.
type container struct {
	name     string
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

var (
	pgContainer    = &container{name: "postgres"}
	redisContainer = &container{name: "redis"}
)

// start runs the image once and retries ready against the mapped port until it passes
func (c *container) start(opts *dockertest.RunOptions, port string, maxWait time.Duration, ready func(hostPort string) error) error {
	c.once.Do(func() {
		pool, err := dockertest.NewPool("")
		if err != nil {
			c.err = fmt.Errorf("could not connect to docker: %w", err)
			return
		}
		resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
			hc.AutoRemove = true
			hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
		if err != nil {
			c.err = fmt.Errorf("could not start %s: %w", c.name, err)
			return
		}
		c.pool, c.resource = pool, resource

		hostPort := resource.GetPort(port)
		pool.MaxWait = maxWait
		if err := pool.Retry(func() error { return ready(hostPort) }); err != nil {
			c.err = fmt.Errorf("%s on port %s never became ready: %w", c.name, hostPort, err)
			return
		}
		log.Printf("Shared %s ready on %s", c.name, hostPort)
	})
	return c.err
}

func (c *container) purge() {
	if c.pool == nil || c.resource == nil {
		return
	}
	log.Printf("Purging %s container: %s", c.name, c.resource.Container.Name)
	if err := c.pool.Purge(c.resource); err != nil {
		log.Printf("WARN: could not purge %s: %v", c.name, err)
	}
	c.pool, c.resource = nil, nil
}

// CleanupContainers closes the shared database and purges every container this
// process started.
func CleanupContainers() {
	closeSharedDB()
	pgContainer.purge()
	redisContainer.purge()
}

// RunIntegration runs the package's tests and cleans up containers afterwards,
// also when the run is interrupted. Call it from TestMain.
func RunIntegration(m *testing.M) int {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-interrupted; ok {
			log.Println("Integration tests interrupted, cleaning up Docker containers...")
			CleanupContainers()
			os.Exit(1)
		}
	}()

	code := m.Run()
	signal.Stop(interrupted)
	close(interrupted)
	CleanupContainers()
	return code
}
