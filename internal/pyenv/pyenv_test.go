package pyenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	root := filepath.Join("proj", "venv")

	win := NewLayout(root, "windows")
	assert.Equal(t, filepath.Join(root, "Scripts", "python.exe"), win.Python())
	assert.Equal(t, filepath.Join(root, "Scripts", "activate.bat"), win.Marker())
	assert.Equal(t, []string{
		"VIRTUAL_ENV=" + root,
		"PATH=" + filepath.Join(root, "Scripts") + `;C:\Windows`,
	}, win.ActivationEnv(`C:\Windows`))

	posix := NewLayout(root, "linux")
	assert.Equal(t, filepath.Join(root, "bin", "python"), posix.Python())
	assert.Equal(t, filepath.Join(root, "bin", "activate"), posix.Marker())
	assert.Equal(t, []string{
		"VIRTUAL_ENV=" + root,
		"PATH=" + filepath.Join(root, "bin"),
	}, posix.ActivationEnv(""))
}

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		output    string
		want      string
		expectErr bool
	}{
		{output: "Python 3.11.4", want: "v3.11.4"},
		{output: "Python 3.13.0rc1\n", want: "v3.13.0"},
		{output: "3.10", want: "v3.10"},
		{output: "Python", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.output, func(t *testing.T) {
			got, err := ParseVersion(tc.output)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAtLeast(t *testing.T) {
	assert.True(t, AtLeast("v3.11.4", "3.10"))
	assert.True(t, AtLeast("v3.10.0", "3.10"))
	assert.False(t, AtLeast("v3.9.18", "3.10"))
	assert.False(t, AtLeast("v2.7.18", "3"))
}
