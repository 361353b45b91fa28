package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("load_content", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("load_content", ResultSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.SetPosts(PostsPublished, 4)
	pr.SetPosts(PostsDraft, 1)
	pr.IncMigrationResult(true)
	pr.IncMigrationResult(false)
	pr.IncMigrationResult(true)

	assert.InDelta(t, 4, testutil.ToFloat64(pr.posts.WithLabelValues("published")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.migrationResults.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 6)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncBuildOutcome(OutcomeFailed)

	path := filepath.Join(t.TempDir(), "reverie.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `reverie_build_outcomes_total{outcome="failed"} 1`)
}

func TestTestRecorderCounts(t *testing.T) {
	r := newTestRecorder()
	r.IncStageResult("feed", ResultSuccess)
	r.IncStageResult("feed", ResultSuccess)
	r.SetPosts(PostsDraft, 3)
	assert.Equal(t, 2, r.stageResults["feed"][ResultSuccess])
	assert.Equal(t, 3, r.posts[PostsDraft])
}
