package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

const guardSample = `[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
`

// workspace writes the four sample inputs into dir/inputs and returns the
// base arguments pointing the CLI at them.
func workspace(t *testing.T) (string, []string) {
	t.Helper()
	t.Setenv("LVPUZZLE_INPUT_DIR", "")
	t.Setenv("LVPUZZLE_LOG_LEVEL", "")
	t.Setenv("LVPUZZLE_LOG_FORMAT", "")

	dir := t.TempDir()
	in := filepath.Join(dir, "inputs")
	require.NoError(t, os.Mkdir(in, 0o755))
	files := map[string]string{
		"day1.txt": "+1\n-2\n+3\n+1\n",
		"day2.txt": "abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\nabcdez\n",
		"day3.txt": "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n",
		"day4.txt": guardSample,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), []byte(body), 0o644))
	}

	return dir, []string{"--config", filepath.Join(dir, "none.yaml"), "--input-dir", in}
}

func invoke(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

//--------------------------------------------------------------------------//

func TestRun_Days(t *testing.T) {
	_, base := workspace(t)
	cases := []struct {
		cmd  string
		want string
	}{
		{"day1", "Final frequency: 3\nFirst doubled frequency: 2\n"},
		{"day2", "Checksum: 12\nCommon letters: abcde\n"},
		{"day3", "Overlapping square inches: 4\nIntact claim: 3\n"},
		{"day4", "Sleepiest guard: 10 (50 minutes)\nStrategy 1: 240\nStrategy 2: 4455\n"},
	}
	for _, tc := range cases {
		t.Run(tc.cmd, func(t *testing.T) {
			code, out, errOut := invoke(append(base, tc.cmd)...)
			require.Equal(t, puzzle.ExitOK, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_All(t *testing.T) {
	_, base := workspace(t)
	code, out, errOut := invoke(append(base, "all")...)
	require.Equal(t, puzzle.ExitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "Day 1: Chronal Calibration\nFinal frequency: 3\n"))
	assert.Contains(t, out, "\nDay 4: Repose Record\nSleepiest guard: 10 (50 minutes)\n")
}

func TestRun_List(t *testing.T) {
	dir, base := workspace(t)
	code, out, _ := invoke(append(base, "list")...)
	require.Equal(t, puzzle.ExitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "day3\tNo Matter How You Slice It\t"+filepath.Join(dir, "inputs", "day3.txt"), lines[2])
}

func TestRun_PositionalPath(t *testing.T) {
	dir, base := workspace(t)
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("+7\n-7\n"), 0o644))

	code, out, _ := invoke(append(base, "day1", other)...)
	require.Equal(t, puzzle.ExitOK, code)
	assert.Equal(t, "Final frequency: 0\nFirst doubled frequency: 0\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	dir, _ := workspace(t)
	cfg := filepath.Join(dir, "lvpuzzle.yaml")
	body := "inputs:\n  2: " + filepath.Join(dir, "inputs", "day3.txt") + "\ninput_dir: " + filepath.Join(dir, "inputs") + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))

	// day 2 pointed at a claims file fails to parse as box IDs
	code, out, errOut := invoke("--config", cfg, "day2")
	assert.Equal(t, puzzle.ExitParse, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "line 1")

	code, out, _ = invoke("--config", cfg, "day1")
	assert.Equal(t, puzzle.ExitOK, code)
	assert.Contains(t, out, "Final frequency: 3")
}

func TestRun_ExitCodes(t *testing.T) {
	dir, base := workspace(t)
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"missing file", []string{"day1", filepath.Join(dir, "nope.txt")}, puzzle.ExitFailure},
		{"bad delta", []string{"day1", write("bad1.txt", "+1\nseven\n")}, puzzle.ExitParse},
		{"bad claim", []string{"day3", write("bad3.txt", "#1 @ 1,3 4x4\n")}, puzzle.ExitParse},
		{"claim off the sheet", []string{"day3", write("far3.txt", "#1 @ 0,0: 1x1\n#2 @ 3000000000,3000000000: 1x1\n")}, puzzle.ExitParse},
		{"sleep before shift", []string{"day4", write("bad4.txt", "[1518-11-01 00:05] falls asleep\n")}, puzzle.ExitParse},
		{"empty input", []string{"day2", write("empty.txt", "")}, puzzle.ExitNotFound},
		{"no intact claim", []string{"day3", write("full.txt", "#1 @ 0,0: 2x2\n#2 @ 1,1: 2x2\n")}, puzzle.ExitNotFound},
		{"unknown command", []string{"day9"}, puzzle.ExitFailure},
		{"too many args", []string{"day1", "a", "b"}, puzzle.ExitFailure},
		{"bad log level", []string{"--log-level", "loud", "list"}, puzzle.ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := invoke(append(base, tc.args...)...)
			assert.Equal(t, tc.code, code, errOut)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "lvpuzzle: ")
		})
	}
}

func TestRun_AllFailsAsAWhole(t *testing.T) {
	dir, base := workspace(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "inputs", "day4.txt")))

	code, out, errOut := invoke(append(base, "all")...)
	assert.Equal(t, puzzle.ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "day 4")
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	_, base := workspace(t)
	code, out, errOut := invoke(append(base, "-v", "day1")...)
	require.Equal(t, puzzle.ExitOK, code)
	assert.NotContains(t, out, "run_id")
	assert.Contains(t, errOut, "run_id")
	assert.Contains(t, errOut, "solved")
}
