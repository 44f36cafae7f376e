package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/logger"
)

const capitalsDeck = `name = "capitals"

[[cards]]
front = "France"
back = "Paris"

[[cards]]
front = "Peru"
back = "Lima"
hint = "two syllables"
`

type harness struct {
	t      *testing.T
	dbPath string
}

func newHarness(t *testing.T) *harness {
	prev := logger.Default()
	t.Cleanup(func() { logger.SetDefault(prev) })
	return &harness{t: t, dbPath: "file:" + filepath.Join(t.TempDir(), "cli.db")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", h.dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()

	out, err := h.run(args...)
	require.NoError(h.t, err, "leitner %v", args)
	return out
}

func TestCLI_ReviewCycle(t *testing.T) {
	h := newHarness(t)
	deckPath := filepath.Join(t.TempDir(), "capitals.toml")
	require.NoError(t, os.WriteFile(deckPath, []byte(capitalsDeck), 0o644))

	assert.Contains(t, h.mustRun("profile", "create", "ana"), "(id 1, day 0)")
	assert.Contains(t, h.mustRun("profile", "list"), "ana")
	assert.Contains(t, h.mustRun("import", "ana", deckPath), "imported 2 cards")

	assert.Contains(t, h.mustRun("due", "ana"), "0 due on day 0")
	assert.Contains(t, h.mustRun("day", "ana"), "is on day 1")

	out := h.mustRun("due", "1")
	assert.Contains(t, out, "2 due on day 1")
	assert.Contains(t, out, "France")

	assert.Contains(t, h.mustRun("review", "ana", "1", "easy"), "bucket 0 -> 1")
	assert.Contains(t, h.mustRun("due", "ana"), "1 due on day 1")
	assert.Contains(t, h.mustRun("due", "ana", "--day", "5"), "2 due on day 5")

	assert.Contains(t, h.mustRun("schedule", "ana"), "buckets 0..1")
	assert.Contains(t, h.mustRun("progress", "ana"), "50.00%")
	assert.Contains(t, h.mustRun("hint", "ana", "2"), "two syllables")
	assert.Contains(t, h.mustRun("hint", "ana", "1"), "no hint")

	assert.Contains(t, h.mustRun("day", "ana", "--set", "0"), "is on day 0")
}

func TestCLI_Errors(t *testing.T) {
	h := newHarness(t)
	h.mustRun("profile", "create", "ana")

	_, err := h.run("due", "nobody")
	require.Error(t, err)
	assert.Equal(t, "profile not found: nobody", describe(err))

	_, err = h.run("review", "ana", "1", "meh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "difficulty")

	_, err = h.run("review", "ana", "1", "easy")
	require.Error(t, err)
	assert.Equal(t, "card not found: 1", describe(err))

	_, err = h.run("day", "ana", "--set=-3")
	require.Error(t, err)

	_, err = h.run("import", "ana", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	out := h.mustRun("schedule", "ana")
	assert.Contains(t, out, "no cards")
}

func TestCLI_ImportFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(capitalsDeck))
	}))
	defer srv.Close()

	h := newHarness(t)
	h.mustRun("profile", "create", "ana")
	assert.Contains(t, h.mustRun("import", "ana", srv.URL+"/capitals.toml"), "imported 2 cards")
}
