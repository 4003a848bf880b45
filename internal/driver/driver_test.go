package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsilva-dev/dckp-solver/internal/driver"
)

func writeInstance(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestSingle_ProducesSevenRecords(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "inst1.txt", "4 10 1\n6 6 10 1\n5 5 9 1\n3 4\n")

	records, err := driver.Single(filepath.Join(dir, "inst1.txt"), driver.DefaultOptions())
	require.NoError(t, err)
	// 4 greedy + GRASP + HC + VND = 7
	require.Len(t, records, 7)
	require.Equal(t, "inst1.txt", records[0].Instance)
}

func TestSingle_LoadFailureReturnsError(t *testing.T) {
	_, err := driver.Single("/nonexistent/path.txt", driver.DefaultOptions())
	require.Error(t, err)
}

func TestBatchEtapa1_SkipsMalformedInstancesButContinues(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "good.txt", "2 10 0\n5 4\n3 2\n")
	writeInstance(t, dir, "bad.txt", "0 10 0\n")
	writeInstance(t, dir, ".hidden", "2 10 0\n5 4\n3 2\n")
	writeInstance(t, dir, "results.csv", "junk")

	records, err := driver.BatchEtapa1(dir, driver.DefaultOptions())
	require.NoError(t, err)
	// good.txt -> 4 greedy records; bad.txt skipped; .hidden and .csv excluded from the walk.
	require.Len(t, records, 4)
	for _, r := range records {
		require.Equal(t, "good.txt", r.Instance)
	}
}

func TestBatchEtapa2_SameGRASPSeedsBothSearches(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "inst.txt", "4 10 1\n6 6 10 1\n5 5 9 1\n3 4\n")

	records, err := driver.BatchEtapa2(dir, driver.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, 3) // GRASP, HC, VND

	methods := map[string]bool{}
	for _, r := range records {
		methods[r.Method] = true
	}
	require.True(t, methods["HillClimbing"])
	require.True(t, methods["VND"])
}

func TestBatch_CombinesConstructiveAndLocalSearch(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "inst.txt", "3 5 0\n4 3 3\n3 2 2\n")

	records, err := driver.Batch(dir, driver.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, 7)
}

func TestBatch_EmptyDirYieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	records, err := driver.Batch(dir, driver.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, records)
}
