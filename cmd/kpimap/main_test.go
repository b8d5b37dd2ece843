package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/config"
	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps a developer's .env and KPIMAP_* variables out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvServerName, config.EnvOnePagerMaxNotes} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kpimap vdev\n", out)
}

func TestRecommend_DefaultPresetMarkdown(t *testing.T) {
	isolate(t)
	out, err := run(t, "recommend", "--preset", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "# Recommended: Strategic Dashboard")
	assert.Contains(t, out, "**Confidence:** High (margin 10)")
}

func TestRecommend_FlagsOverridePreset(t *testing.T) {
	isolate(t)
	out, err := run(t, "recommend", "--preset", "default",
		"--intent", "operational", "--audience", "frontline", "--latency", "rt",
		"--maturity", "streaming", "--scope", "process", "--format", "json")
	require.NoError(t, err)

	var got tools.RecommendResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"operational"}, got.Selection.Intents)
	// Untouched preset fields survive.
	assert.Equal(t, "minimal", got.Selection.Interaction)
	assert.Equal(t, catalog.Operational, got.Recommendation.Primary.Archetype)
	assert.Equal(t, []string{engine.NoteProcessScope}, got.Recommendation.Notes)
}

func TestRecommend_ClearWithEmptyValue(t *testing.T) {
	isolate(t)
	out, err := run(t, "recommend", "--preset", "default", "--scope", "", "--format", "json")
	require.NoError(t, err)

	var got tools.RecommendResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Selection.Scope)
	assert.Equal(t, "daily", got.Selection.Maturity)
}

func TestRecommend_FromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("intents: [analytical]\naudiences: [analysts]\ninteraction: rich\n"), 0o644))

	out, err := run(t, "recommend", "--file", path, "--format", "onepager")
	require.NoError(t, err)
	assert.Contains(t, out, "# KPI Decision Map — One-Pager")
	assert.Contains(t, out, "**Analytical Dashboard**")
	assert.Contains(t, out, engine.NoteRichInteraction)
	assert.Contains(t, out, "- **Latency:** —")
}

func TestRecommend_OnePagerHonoursConfigCap(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvOnePagerMaxNotes, "1")

	out, err := run(t, "recommend", "--latency", "rt", "--interaction", "rich", "--format", "onepager")
	require.NoError(t, err)
	assert.Contains(t, out, engine.NoteRealTimeMismatch)
	assert.NotContains(t, out, engine.NoteRichInteraction)
	assert.Contains(t, out, "…and 1 more")
}

func TestRecommend_Pretty(t *testing.T) {
	isolate(t)
	raw, err := run(t, "recommend", "--preset", "default")
	require.NoError(t, err)
	out, err := run(t, "recommend", "--preset", "default", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "Strategic Dashboard")
	assert.NotEqual(t, raw, out)
}

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown id", []string{"--audience", "interns"}, `unknown audience "interns"`},
		{"unknown preset", []string{"--preset", "fancy"}, `unknown preset "fancy"`},
		{"unknown format", []string{"--format", "pdf"}, `unknown format "pdf"`},
		{"missing file", []string{"--file", "nope.yaml"}, "reading selection file"},
		{"preset and file", []string{"--preset", "default", "--file", "x.yaml"}, "none of the others can be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := run(t, append([]string{"recommend"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRecommend_BadConfig(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvLogLevel, "chatty")

	_, err := run(t, "recommend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestStaticCommands_IgnoreBadConfig(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvLogLevel, "chatty")

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kpimap vdev\n", out)

	out, err = run(t, "options", "--group", "scope")
	require.NoError(t, err)
	assert.Contains(t, out, "`enterprise`")
}

func TestOptions(t *testing.T) {
	isolate(t)

	out, err := run(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "## Core Questions (`intent`, pick any)")
	assert.Contains(t, out, "## Archetypes")

	out, err = run(t, "options", "--group", "latency", "--json")
	require.NoError(t, err)
	var opts []catalog.Option
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	assert.Equal(t, catalog.Options(catalog.GroupLatency), opts)

	_, err = run(t, "options", "--group", "colour")
	assert.ErrorContains(t, err, `unknown group "colour"`)
}

func TestServe_AnswersInitialize(t *testing.T) {
	isolate(t)

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	t.Cleanup(func() {
		inW.Close()
		outR.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := newRootCmd()
	root.SetIn(inR)
	root.SetOut(outW)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"serve"})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	_, err := io.WriteString(inW, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","clientInfo":{"name":"t","version":"1"},"capabilities":{}}}`+"\n")
	require.NoError(t, err)

	line, err := bufio.NewReader(outR).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.Contains(line, `"name":"kpimap"`), "unexpected initialize response: %s", line)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
