package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("RONFUN_ENV", "")
	t.Setenv("NODE_ENV", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmd(viper.New())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ronfun v"+version)
}

func TestAnalyticsShow(t *testing.T) {
	out, _, err := run(t, "analytics", "show")
	require.NoError(t, err)

	var got struct {
		GA struct {
			TrackingID string `json:"trackingId"`
			Debug      bool   `json:"debug"`
		} `json:"ga"`
		Events map[string]string `json:"events"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "UA-XXXXX-Y", got.GA.TrackingID)
	assert.True(t, got.GA.Debug)
	assert.Equal(t, "page_view", got.Events["PAGE_VIEW"])
}

func TestAnalyticsShowProduction(t *testing.T) {
	out, _, err := run(t, "--env", "production", "analytics", "show")
	require.NoError(t, err)

	var got struct {
		GA struct {
			Debug *bool `json:"debug"`
		} `json:"ga"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.GA.Debug)
	assert.False(t, *got.GA.Debug)
}

func TestAnalyticsEvent(t *testing.T) {
	out, _, err := run(t, "analytics", "event", "scroll_depth")
	require.NoError(t, err)
	assert.Equal(t, "scroll_depth\n", out)

	_, _, err = run(t, "analytics", "event", "CHECKOUT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BUTTON_CLICK, PAGE_VIEW, SCROLL_DEPTH, TIME_SPENT")
}

func TestStylePostCSSToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postcss.config.js")

	_, _, err := run(t, "style", "postcss", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	module := string(data)
	assert.True(t, strings.HasPrefix(module, "module.exports = {\n"), module)
	assert.Contains(t, module, `"postcss-px-to-viewport": {`)
	assert.Contains(t, module, "      include: /\\/src\\//,\n")
	assert.NotContains(t, module, `"/src/"`)
}

func TestStylePostCSSToStdout(t *testing.T) {
	out, _, err := run(t, "style", "postcss")
	require.NoError(t, err)
	assert.Contains(t, out, `selectorBlackList: [".ignore"],`)
}

func TestStyleInitRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylepipeline.yaml")

	_, _, err := run(t, "style", "init", "--out", path)
	require.NoError(t, err)

	out, _, err := run(t, "validate", "--style", path)
	require.NoError(t, err)
	assert.Contains(t, out, "stylepipeline: ok")

	_, _, err = run(t, "style", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"out" not set`)
}

func TestStyleShow(t *testing.T) {
	out, _, err := run(t, "style", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"viewportWidth": 375`)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "analytics: ok\nstylepipeline: ok\n", out)
}

func TestValidateReportsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewportWidth: 375\n"), 0o600))

	out, _, err := run(t, "validate", "--style", path)
	require.Error(t, err)
	assert.True(t, ronerrors.IsConfigLoad(err))
	assert.Contains(t, out, "analytics: ok")
	assert.True(t, strings.Contains(out, "stylepipeline: config_load"), out)
}

func TestMetricsDump(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "validate")
	require.NoError(t, err)
	assert.Contains(t, stderr, `ronfun_config_loads_total{config="analytics",outcome="success"}`)
}
