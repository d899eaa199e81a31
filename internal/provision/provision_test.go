package provision

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure_CreatesOnceThenReuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marker")
	calls := 0
	r := Resource{
		Name:   "marker",
		Exists: File(path),
		Create: func(context.Context) error {
			calls++
			return os.WriteFile(path, []byte("x"), 0o644)
		},
	}

	status, err := Ensure(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, status)

	status, err = Ensure(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, StatusExisting, status)
	assert.Equal(t, 1, calls)
}

func TestEnsure_CreateFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Ensure(context.Background(), Resource{
		Name:   "venv",
		Exists: func() (bool, error) { return false, nil },
		Create: func(context.Context) error { return boom },
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "creating venv")
}

func TestEnsure_StillMissing(t *testing.T) {
	_, err := Ensure(context.Background(), Resource{
		Name:   "icon",
		Exists: func() (bool, error) { return false, nil },
		Create: func(context.Context) error { return nil },
	})
	require.ErrorIs(t, err, ErrStillMissing)
}

func TestEnsure_ExistsCheckError(t *testing.T) {
	statErr := errors.New("permission denied")
	created := false
	_, err := Ensure(context.Background(), Resource{
		Name:   "venv",
		Exists: func() (bool, error) { return false, statErr },
		Create: func(context.Context) error { created = true; return nil },
	})
	require.ErrorIs(t, err, statErr)
	assert.False(t, created)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "existing", StatusExisting.String())
	assert.Equal(t, "created", StatusCreated.String())
	assert.Equal(t, "status(7)", Status(7).String())
}
