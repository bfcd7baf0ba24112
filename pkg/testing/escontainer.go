package testing

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"
	defaultESHeap  = "512m"
)

// ESContainer is a single node cluster reachable over plain http at Address.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

type esSettings struct {
	heap string
}

type ESOption func(*esSettings)

// WithESHeap sets the JVM heap, used for both -Xms and -Xmx.
func WithESHeap(heap string) ESOption {
	return func(s *esSettings) { s.heap = heap }
}

func NewESContainer(ctx context.Context, tb testing.TB, opts ...ESOption) *ESContainer {
	tb.Helper()

	settings := esSettings{heap: defaultESHeap}
	for _, opt := range opts {
		opt(&settings)
	}

	c, err := elasticsearch.Run(ctx,
		defaultESImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms" + settings.heap + " -Xmx" + settings.heap,
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("starting elasticsearch %s: %v", defaultESImage, err)
	}
	terminateOnCleanup(tb, "elasticsearch", c)

	return &ESContainer{
		Container: c,
		Address:   endpoint(ctx, tb, c, "http", "9200"),
	}
}
