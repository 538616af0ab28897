package actions

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsFile(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "notes.txt", []byte("hello"))

	result, err := load([]string{"notes.txt"}, env.deps)

	require.NoError(t, err)
	require.Equal(t, dispatchers.ResultContinue, result.Kind)
	require.Contains(t, env.out.String(), "Loading file: notes.txt\n")
	require.Contains(t, env.out.String(), "Loaded 5 bytes from ")
	require.Equal(t, progressCall{0, 5}, env.presenter.progress[0])
	require.Equal(t, progressCall{5, 5}, env.presenter.progress[len(env.presenter.progress)-1])
	require.Equal(t, 1, env.presenter.finished)
}

func TestLoad_EmptyFile(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "empty.txt", nil)

	_, err := load([]string{"empty.txt"}, env.deps)

	require.NoError(t, err)
	require.Contains(t, env.out.String(), "Loaded 0 bytes from ")
	require.Equal(t, []progressCall{{0, 0}}, env.presenter.progress)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind clierr.Kind
		printed  bool
	}{
		{name: "no args", args: nil, wantKind: clierr.KindTooFewArguments},
		{name: "two args", args: []string{"a", "b"}, wantKind: clierr.KindTooManyArguments},
		{name: "blank", args: []string{" "}, wantKind: clierr.KindInvalidInput},
		{name: "traversal", args: []string{"../secret"}, wantKind: clierr.KindInvalidInput, printed: true},
		{name: "missing", args: []string{"nope.txt"}, wantKind: clierr.KindFileNotFound, printed: true},
		{name: "outside", args: []string{"/etc/passwd"}, wantKind: clierr.KindPermissionDenied, printed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := load(tt.args, env.deps)
			require.True(t, clierr.IsKind(err, tt.wantKind), "got %v", err)
			require.Equal(t, tt.printed, env.out.Len() > 0)
			require.Empty(t, env.presenter.progress)
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Mkdir(env.dir+"/sub", 0700))

	_, err := load([]string{"sub"}, env.deps)
	require.EqualError(t, err, "Invalid input: Not a regular file: sub")
}

type sizedInfo struct {
	fs.FileInfo
	size int64
}

func (s sizedInfo) Size() int64 { return s.size }

func TestLoad_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "big.bin", []byte("x"))
	env.deps.Stat = func(path string) (fs.FileInfo, error) {
		info, err := os.Stat(path)
		return sizedInfo{FileInfo: info, size: 200 * 1024 * 1024}, err
	}

	_, err := load([]string{"big.bin"}, env.deps)
	require.True(t, clierr.IsKind(err, clierr.KindExecution))
	require.Contains(t, err.Error(), "File too large: 209715200 bytes")
}

func TestLoad_StatFailureIsMapped(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "a.txt", []byte("x"))
	env.deps.Stat = func(string) (fs.FileInfo, error) {
		return nil, fs.ErrPermission
	}

	_, err := load([]string{"a.txt"}, env.deps)
	require.True(t, clierr.IsKind(err, clierr.KindPermissionDenied))
	require.True(t, errors.Is(err, fs.ErrPermission))
}

func TestSave(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr clierr.Kind
	}{
		{name: "default name", args: nil, want: "Saving file: untitled.txt\n"},
		{name: "new file", args: []string{"out.txt"}, want: "Saving file: out.txt\n"},
		{name: "too many", args: []string{"a", "b"}, wantErr: clierr.KindTooManyArguments},
		{name: "blank", args: []string{"  "}, wantErr: clierr.KindInvalidInput},
		{name: "traversal", args: []string{"a/../../b"}, wantErr: clierr.KindInvalidInput},
		{name: "system directory", args: []string{"/etc/new.conf"}, wantErr: clierr.KindPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			result, err := save(tt.args, env.deps)
			if tt.want == "" {
				require.True(t, clierr.IsKind(err, tt.wantErr), "got %v", err)
				require.Empty(t, env.out.String())
				return
			}
			require.NoError(t, err)
			require.Equal(t, dispatchers.ResultContinue, result.Kind)
			require.Equal(t, tt.want, env.out.String())
		})
	}
}

func TestSave_ExistingFileWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeFile(t, "keep.txt", []byte("original"))

	_, err := save([]string{"keep.txt"}, env.deps)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}

func TestVers(t *testing.T) {
	env := newTestEnv(t)

	result, err := vers(nil, env.deps)
	require.NoError(t, err)
	require.Equal(t, dispatchers.ResultContinue, result.Kind)
	require.Equal(t, "sm-menu > version 1.2.3\n", env.out.String())

	_, err = vers([]string{"x"}, env.deps)
	require.True(t, clierr.IsKind(err, clierr.KindTooManyArguments))
}
