package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

func TestOrganizeCmd_MissingSource(t *testing.T) {
	_, err := executeCommand(t, "organize", "--dest", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitUsageError, sampleorg.ExitCodeForError(err))
}

func TestOrganizeCmd_UnknownFlag(t *testing.T) {
	_, err := executeCommand(t, "organize", "--bogus")
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitUsageError, sampleorg.ExitCodeForError(err))
}

func TestOrganizeCmd_MissingConfig(t *testing.T) {
	src := t.TempDir()
	_, err := executeCommand(t, "organize", "-s", src, "-d", t.TempDir(), "-c", filepath.Join(src, "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitConfigError, sampleorg.ExitCodeForError(err))
}

func TestOrganizeCmd_MissingSourceDir(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, testConfig)

	_, err := executeCommand(t, "organize", "-s", "/nonexistent/samples/abc123", "-d", t.TempDir(), "-c", cfgPath)
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitSourceNotFound, sampleorg.ExitCodeForError(err))
}

func TestOrganizeCmd_CopiesAndSummarizes(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, testConfig)
	writeFile(t, filepath.Join(src, "kick_01.wav"), "k")
	writeFile(t, filepath.Join(src, "nested", "Pad_Warm.WAV"), "p")
	writeFile(t, filepath.Join(src, "vocal.wav"), "v")
	writeFile(t, filepath.Join(src, "readme.txt"), "r")

	out, err := executeCommand(t, "organize", "-s", src, "-d", dest, "-c", cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "-\nOrganization complete.\nCopied 2 files.\n1 files were not categorized.\n", out)
	assert.FileExists(t, filepath.Join(dest, "drums", "kick_01.wav"))
	assert.FileExists(t, filepath.Join(dest, "synth", "Pad_Warm.WAV"))
	assert.NoDirExists(t, filepath.Join(dest, "vocal"))
}

func TestTreeCmd_PrintsTree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "file1.txt"), "")
	writeFile(t, filepath.Join(src, "subdir", "file2.txt"), "")

	out, err := executeCommand(t, "tree", "-s", src)
	require.NoError(t, err)
	assert.Equal(t, src+"\n├── file1.txt\n└── subdir\n    └── file2.txt\n", out)
}

func TestTreeCmd_FoldersOnly(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "file1.txt"), "")
	writeFile(t, filepath.Join(src, "subdir", "file2.txt"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--folders-only")
	require.NoError(t, err)
	assert.Equal(t, src+"\n└── subdir\n", out)
}

func TestTreeCmd_MissingSource(t *testing.T) {
	_, err := executeCommand(t, "tree", "-s", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitSourceNotFound, sampleorg.ExitCodeForError(err))
}

func TestTreeCmd_ListCategories(t *testing.T) {
	src := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, testConfig)
	writeFile(t, filepath.Join(src, "kick.wav"), "")
	writeFile(t, filepath.Join(src, "snare.wav"), "")
	writeFile(t, filepath.Join(src, "lead.wav"), "")
	writeFile(t, filepath.Join(src, "vox.wav"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--list-categories", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Matched sample categories:\n- drums: 2\n- synth: 1\n", out)
}

func TestTreeCmd_ListCategories_NoMatches(t *testing.T) {
	src := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, cfgPath, "patterns:\n  drums: [kick]\n")
	writeFile(t, filepath.Join(src, "vox.wav"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--list-categories", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "No matching samples found.\n", out)
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestTreeCmd_ListCategories_WriteError(t *testing.T) {
	src := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, testConfig)
	writeFile(t, filepath.Join(src, "kick.wav"), "")

	w := &failingWriter{}
	err := writeCategoryCounts(w, []sampleorg.CategoryCount{{Category: "drums", Count: 1}})
	require.Error(t, err)
	assert.Equal(t, 1, w.writes)

	resetTreeFlags()
	rootCmd.SetOut(w)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"tree", "-s", src, "--list-categories", "-c", cfgPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitWriteFailed, sampleorg.ExitCodeForError(err))
}

func TestTreeCmd_Discover(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "drums", "kick_hard_01.wav"), "")
	writeFile(t, filepath.Join(src, "drums", "kick_hard_02.wav"), "")
	writeFile(t, filepath.Join(src, "drums", "snare.wav"), "")
	writeFile(t, filepath.Join(src, "drums", "notes.txt"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--discover")
	require.NoError(t, err)

	expected := filepath.Join(src, "drums") + "\n" +
		"- pattern like 'kick_hard_0*': 2 files\n" +
		"- pattern like 'snare*': 1 files\n" +
		"\n"
	assert.Equal(t, expected, out)
}

func TestTreeCmd_DiscoverTakesPrecedence(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "loop_a.wav"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--run-discover", "--list-categories")
	require.NoError(t, err)
	assert.Equal(t, src+"\n- pattern like 'loop_a*': 1 files\n\n", out)
}

func TestTreeCmd_DiscoverCustomExtension(t *testing.T) {
	src := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgPath, "extension = \"aiff\"\n\n"+testConfig)
	writeFile(t, filepath.Join(src, "bass_01.aiff"), "")
	writeFile(t, filepath.Join(src, "bass_02.wav"), "")

	out, err := executeCommand(t, "tree", "-s", src, "--discover", "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, src+"\n- pattern like 'bass_01*': 1 files\n\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sampleorg "+version+" "), out)
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "version", "extra")
	require.Error(t, err)
	assert.Equal(t, sampleorg.ExitUsageError, sampleorg.ExitCodeForError(err))
}

func TestMain(m *testing.M) {
	// Keep a SAMPLEORG_CONFIG from the developer's shell out of the tests.
	os.Unsetenv(sampleorg.ConfigEnvVar)
	os.Exit(m.Run())
}
