package logic_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/encryption"
	"github.com/idelchi/gocaesar/internal/filter"
	"github.com/idelchi/gocaesar/internal/logic"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func tree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}

func baseConfig(mode config.Mode, files ...string) *config.Config {
	return &config.Config{
		Key:        "3",
		Parallel:   2,
		Mode:       mode,
		Extensions: []string{".txt"},
		Suffixes:   config.Suffixes{Encrypt: ".caesar"},
		Files:      files,
	}
}

func run(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	err := logic.Run(cfg, zap.NewNop(), encryption.Streams{Out: &out, Err: &errOut})

	return out.String(), errOut.String(), err
}

func TestRunEncryptDecryptDirectory(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"a.txt":        "abc\n",
		"notes/b.txt":  "Hello\n",
		"notes/c.md":   "skipped\n",
		"drafts/d.txt": "draft\n",
	})

	cfg := baseConfig(config.ModeEncrypt, root)
	cfg.Write = true
	cfg.Exclude = []string{"*/drafts/*"}
	cfg.Stats = true

	out, errOut, err := run(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "a.txt.caesar")
	assert.Contains(t, out, "b.txt.caesar")
	assert.NotContains(t, out, "c.md")
	assert.NotContains(t, out, "d.txt")
	assert.Contains(t, errOut, "Scanned:   4")
	assert.Contains(t, errOut, "Excluded:  2")
	assert.Contains(t, errOut, "Processed: 2")

	data, err := os.ReadFile(filepath.Join(root, "notes", "b.txt.caesar"))
	require.NoError(t, err)
	assert.Equal(t, "Khoor\n", string(data))

	// Decrypting the directory only picks up the encrypted files.
	cfg = baseConfig(config.ModeDecrypt, root)
	cfg.Write = true
	cfg.Suffixes.Decrypt = ".dec"

	_, _, err = run(t, cfg)
	require.NoError(t, err)

	data, err = os.ReadFile(filepath.Join(root, "notes", "b.txt.dec"))
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", string(data))
	assert.NoFileExists(t, filepath.Join(root, "drafts", "d.txt.dec"))
}

func TestRunStdout(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"msg.txt": "Hello, World! 123"})

	cfg := baseConfig(config.ModeEncrypt, filepath.Join(root, "msg.txt"))
	cfg.Key = "5"

	out, _, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Mjqqt, Btwqi! 123", out)
}

func TestRunRejectsWrongExtension(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"msg.md": "abc"})

	_, _, err := run(t, baseConfig(config.ModeEncrypt, filepath.Join(root, "msg.md")))
	require.ErrorIs(t, err, filter.ErrExtension)
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, baseConfig(config.ModeAnalyse, filepath.Join(t.TempDir(), "nope.txt")))
	require.ErrorIs(t, err, filter.ErrFileNotFound)
}

func TestRunBadKey(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"a.txt": "abc"})

	cfg := baseConfig(config.ModeEncrypt, root)
	cfg.Key = "3.5"

	_, _, err := run(t, cfg)
	require.ErrorIs(t, err, config.ErrKeyParse)
}

func TestRunDry(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"a.txt": "abc"})
	path := filepath.Join(root, "a.txt")

	cfg := baseConfig(config.ModeEncrypt, path)
	cfg.Write = true
	cfg.Dry = true
	cfg.Stats = true

	out, errOut, err := run(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, `Would process "`+path+`" -> "`+path+`.caesar"`)
	assert.Contains(t, errOut, "Size:      3 B")
	assert.NoFileExists(t, path+".caesar")
}

func TestRunIncludeFrom(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"keep/a.txt": "abc",
		"skip/b.txt": "abc",
	})

	patterns := filepath.Join(t.TempDir(), "include.jsonc")
	require.NoError(t, os.WriteFile(patterns, []byte(`["*/keep/*", // only this folder
]`), 0o600))

	cfg := baseConfig(config.ModeAnalyse, root)
	cfg.IncludeFrom = patterns

	out, _, err := run(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "a.txt")
	assert.NotContains(t, out, "b.txt")
	assert.Contains(t, out, "key  0: abc")
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"a.txt": "", "b.md": ""})

	cfg := baseConfig("", root)
	cfg.Include = []string{"*.txt", "./*"}
	cfg.Exclude = []string{"*.pdf", "[oops"}

	var errOut bytes.Buffer

	err := logic.RunCheck(cfg, encryption.Streams{Out: &bytes.Buffer{}, Err: &errOut})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "2 pattern(s)")
	assert.Contains(t, errOut.String(), "include: *.txt: 1 files")
	assert.Contains(t, errOut.String(), "include: *: 2 files")
	assert.Contains(t, errOut.String(), "exclude: *.pdf: 0 files (ERROR)")
	assert.Contains(t, errOut.String(), "invalid pattern")

	cfg.Include, cfg.Exclude = nil, nil
	require.ErrorIs(t, logic.RunCheck(cfg, encryption.Streams{Err: &errOut}), logic.ErrNoPatterns)
}
