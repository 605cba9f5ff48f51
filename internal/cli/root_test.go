package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid-cli/internal/model"
	"lucid-cli/internal/store"
)

func timeNowPlusDay() time.Time {
	return time.Now().AddDate(0, 0, 1)
}

func runCmd(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--dir", dir))
	err := cmd.Execute()
	return out.String(), err
}

func TestCaptureAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, dir, "capture", "the", "demo", "crashes", "--in", "3d", "--category", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Captured ")

	out, err = runCmd(t, dir, "list", "--pending")
	require.NoError(t, err)
	assert.Contains(t, out, "the demo crashes")
	assert.Contains(t, out, "[Work]")
}

func TestCaptureRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, dir, "capture", "x", "--in", "1d", "--on", "2030-01-01")
	assert.Error(t, err)

	_, err = runCmd(t, dir, "capture", "x", "--category", "pets")
	assert.Error(t, err)
}

func TestResolveAndStats(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(dir, nil)
	require.NoError(t, err)
	w := s.Worries.Add("it goes wrong", timeNowPlusDay(), model.CategoryOther, nil)
	s.Close()

	out, err := runCmd(t, dir, "resolve", w.ID, "--did-not-happen", "--reflection", "it was fine")
	require.NoError(t, err)
	assert.Contains(t, out, "did_not_happen")

	_, err = runCmd(t, dir, "resolve", "no-such-id", "--happened")
	assert.ErrorContains(t, err, "not found")

	out, err = runCmd(t, dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "100%")
}

func TestResolveRequiresExactlyOneOutcome(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, dir, "resolve", "some-id")
	assert.Error(t, err)
	_, err = runCmd(t, dir, "resolve", "some-id", "--happened", "--did-not-happen")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, dir, "capture", "backup me", "--in", "1w")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err = runCmd(t, dir, "export", path)
	require.NoError(t, err)

	fresh := t.TempDir()
	out, err := runCmd(t, fresh, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1")

	out, err = runCmd(t, fresh, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "backup me")
}

func TestImportRejectsNonArray(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not": "an array"}`), 0o600))

	_, err := runCmd(t, dir, "import", bad)
	assert.ErrorIs(t, err, model.ErrNotWorryList)
}

func TestICSOutput(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(dir, nil)
	require.NoError(t, err)
	w := s.Worries.Add("flight cancelled", timeNowPlusDay(), model.CategoryOther, nil)
	s.Close()

	out, err := runCmd(t, dir, "ics", w.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "UID:"+w.ID+"@lucid")
}

func TestResetRequiresForce(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, dir, "capture", "x", "--in", "1d")
	require.NoError(t, err)

	_, err = runCmd(t, dir, "reset")
	assert.Error(t, err)

	_, err = runCmd(t, dir, "reset", "--force")
	require.NoError(t, err)

	out, err := runCmd(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No worries")
}
