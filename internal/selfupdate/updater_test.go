package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	known := map[[2]string]string{
		{"darwin", "amd64"}:  "quizrush_Darwin_all.tar.gz",
		{"darwin", "arm64"}:  "quizrush_Darwin_all.tar.gz",
		{"linux", "amd64"}:   "quizrush_Linux_x86_64.tar.gz",
		{"linux", "arm64"}:   "quizrush_Linux_arm64.tar.gz",
		{"linux", "386"}:     "quizrush_Linux_i386.tar.gz",
		{"windows", "amd64"}: "quizrush_Windows_x86_64.zip",
		{"windows", "arm64"}: "quizrush_Windows_arm64.zip",
	}
	for platform, want := range known {
		got, err := releaseAsset(platform[0], platform[1])
		require.NoError(t, err, "%v", platform)
		assert.Equal(t, want, got, "%v", platform)
	}

	for _, platform := range [][2]string{{"freebsd", "amd64"}, {"linux", "mips"}} {
		_, err := releaseAsset(platform[0], platform[1])
		assert.Error(t, err, "%v", platform)
	}
}

func TestParseChecksums(t *testing.T) {
	got := parseChecksums([]byte(
		"abc123  quizrush_Darwin_all.tar.gz\n" +
			"badline\n" +
			"  \n" +
			"foo  bar  baz\n" +
			"def456  quizrush_Linux_x86_64.tar.gz\n"))

	assert.Equal(t, map[string]string{
		"quizrush_Darwin_all.tar.gz":   "abc123",
		"quizrush_Linux_x86_64.tar.gz": "def456",
	}, got, "well-formed lines kept, the rest dropped")

	assert.Empty(t, parseChecksums(nil))
}

func TestSha256Hex(t *testing.T) {
	sum := sha256.Sum256([]byte("hello world"))
	assert.Equal(t, hex.EncodeToString(sum[:]), sha256Hex([]byte("hello world")))
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("#!/bin/sh\necho quizrush")

	got, err := extractBinary(tarGzWith(t, "quizrush", payload), "quizrush_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = extractBinary(tarGzWith(t, "README.md", payload), "quizrush_Darwin_all.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSwapBinary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quizrush")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, sum[:]))

	onDisk, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, onDisk)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "exec bit survives the swap")
}

// release is the fixture a fake GitHub serves: a tagged archive plus its
// checksums.txt. Corrupt lets a test publish a wrong checksum.
type release struct {
	tag     string
	asset   string
	archive []byte
	corrupt bool
}

func (rel release) serve(t *testing.T) *httptest.Server {
	t.Helper()
	sum := sha256Hex(rel.archive)
	if rel.corrupt {
		sum = sha256Hex([]byte("tampered"))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/nmoreno/quizrush/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"` + rel.tag + `","html_url":"https://example.com/` + rel.tag + `"}`))
	})
	if rel.archive != nil {
		prefix := "/nmoreno/quizrush/releases/download/" + rel.tag + "/"
		mux.HandleFunc(prefix+rel.asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(rel.archive)
		})
		mux.HandleFunc(prefix+"checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sum + "  " + rel.asset + "\n"))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	payload := []byte("new-quizrush-binary")
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	t.Run("replaces the binary and reports every stage", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizrush")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := release{tag: "v2.0.0", asset: asset, archive: tarGzWith(t, "quizrush", payload)}.serve(t)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		onDisk, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, payload, onDisk)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("refuses dev builds", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("no-op on latest", func(t *testing.T) {
		server := release{tag: "v1.0.0"}.serve(t)
		err := NewChecker(WithBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("rejects a bad checksum", func(t *testing.T) {
		server := release{tag: "v2.0.0", asset: asset, archive: tarGzWith(t, "quizrush", payload), corrupt: true}.serve(t)
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("surfaces a failed download", func(t *testing.T) {
		server := release{tag: "v2.0.0"}.serve(t) // release listed, asset missing
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
