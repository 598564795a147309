package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

// failingFS fails every read of a file with the given base name.
type failingFS struct {
	*adapter.LocalTraitFSAdapter
	failOn string
	reads  atomic.Int32
}

var errInjected = errors.New("injected read failure")

func (f *failingFS) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	f.reads.Add(1)

	if filepath.Base(string(path)) == f.failOn {
		return nil, errInjected
	}

	return f.LocalTraitFSAdapter.ReadFile(ctx, path)
}

func newTestProcessor(fsAdapter adapter.TraitFSAdapter) Processor {
	return NewProcessor(fsAdapter, NewEncoder(fsAdapter))
}

func category(root, name string) m.Category {
	return m.Category{Name: name, Dir: m.Path(filepath.Join(root, name)), Order: CategoryOrder(name)}
}

func TestProcessor_Collect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "02_hats", "b_cap.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "02_hats", "a_fez.0.5.PNG"), "png")
	writeFile(t, filepath.Join(root, "02_hats", "notes.txt"), "skip")
	writeFile(t, filepath.Join(root, "02_hats", ".png"), "hidden")
	writeFile(t, filepath.Join(root, "02_hats", "nested", "beret.webp"), "webp")
	writeFile(t, filepath.Join(root, "02_hats", "nested", "crown.avif"), "avif")
	writeFile(t, filepath.Join(root, "02_hats", "z_helmet.gif"), "gif")

	files, err := newTestProcessor(adapter.NewLocalTraitFSAdapter()).
		Collect(context.Background(), m.Path(root), category(root, "02_hats"), nil)
	require.NoError(t, err)

	var names []string
	for _, file := range files {
		names = append(names, file.Filename)
		assert.Equal(t, uint32(2), file.Order)
		assert.Equal(t, "02_hats", file.Category)
	}

	assert.Equal(t, []string{"a_fez.0.5.PNG", "b_cap.svg", "beret.webp", "crown.avif", "z_helmet.gif"}, names)
	assert.Equal(t, "a_fez.0.5", files[0].Stem)
	assert.Equal(t, "png", files[0].Extension)
	assert.Equal(t, int64(3), files[0].Size)
}

func TestProcessor_CollectSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hats", "cap.svg"), "<svg/>")
	outside := filepath.Join(t.TempDir(), "outside.svg")
	writeFile(t, outside, "<svg/>")

	if err := os.Symlink(outside, filepath.Join(root, "hats", "link.svg")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := newTestProcessor(adapter.NewLocalTraitFSAdapter()).
		Collect(context.Background(), m.Path(root), category(root, "hats"), nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cap.svg", files[0].Filename)
}

func TestProcessor_CollectExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hats", "cap.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "hats", "cap.draft.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "hats", "drafts", "fez.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "eyes", "wide.svg"), "<svg/>")

	proc := newTestProcessor(adapter.NewLocalTraitFSAdapter())
	exclude := []string{"hats/drafts", "**/*.draft.svg"}

	files, err := proc.Collect(context.Background(), m.Path(root), category(root, "hats"), exclude)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cap.svg", files[0].Filename)

	files, err = proc.Collect(context.Background(), m.Path(root), category(root, "eyes"), []string{"eyes"})
	require.NoError(t, err)
	assert.Empty(t, files, "excluding a category folder skips it entirely")
}

func TestValidateExcludePatterns(t *testing.T) {
	require.NoError(t, ValidateExcludePatterns(nil))
	require.NoError(t, ValidateExcludePatterns([]string{"**/*.png", "hats/{a,b}.svg"}))
	require.Error(t, ValidateExcludePatterns([]string{"hats/[a-"}))
}

func TestProcessor_Build(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "05_hats", "Plain_Hat.svg"), "<svg>plain</svg>")
	writeFile(t, filepath.Join(root, "05_hats", "sword.2.5.png"), "png")

	proc := newTestProcessor(adapter.NewLocalTraitFSAdapter())
	files, err := proc.Collect(context.Background(), m.Path(root), category(root, "05_hats"), nil)
	require.NoError(t, err)

	traits, err := proc.Build(context.Background(), files, m.FormatRaw, 1)
	require.NoError(t, err)

	want := []m.Trait{
		{Name: "Plain Hat", Filename: "Plain_Hat.svg", MimeType: "image/svg", Data: "<svg>plain</svg>", Rarity: 1, Order: 5},
		{Name: "Sword.2", Filename: "sword.2.5.png", MimeType: "image/png", Data: "data:image/png;base64,cG5n", Rarity: 5, Order: 5},
	}
	assert.Equal(t, want, traits)
}

func TestProcessor_BuildParallelKeepsOrder(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 40; i++ {
		writeFile(t, filepath.Join(root, "hats", fmt.Sprintf("hat_%02d.%d.svg", i, i)), fmt.Sprintf("<svg id=%q/>", fmt.Sprint(i)))
	}

	proc := newTestProcessor(adapter.NewLocalTraitFSAdapter())
	files, err := proc.Collect(context.Background(), m.Path(root), category(root, "hats"), nil)
	require.NoError(t, err)

	sequential, err := proc.Build(context.Background(), files, m.FormatBase64, 1)
	require.NoError(t, err)

	parallel, err := proc.Build(context.Background(), files, m.FormatBase64, 8)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, "Hat 00", parallel[0].Name)
	assert.Equal(t, float64(39), parallel[39].Rarity)
}

func TestProcessor_BuildFailsFast(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, filepath.Join(root, "hats", fmt.Sprintf("hat_%02d.svg", i)), "<svg/>")
	}

	fsAdapter := &failingFS{LocalTraitFSAdapter: adapter.NewLocalTraitFSAdapter(), failOn: "hat_00.svg"}
	proc := newTestProcessor(fsAdapter)

	files, err := proc.Collect(context.Background(), m.Path(root), category(root, "hats"), nil)
	require.NoError(t, err)

	traits, err := proc.Build(context.Background(), files, m.FormatRaw, 1)
	require.ErrorIs(t, err, errInjected)
	assert.Nil(t, traits)
	assert.Equal(t, int32(1), fsAdapter.reads.Load(), "sequential build must stop at the first failure")

	_, err = proc.Build(context.Background(), files, m.FormatRaw, 4)
	require.ErrorIs(t, err, errInjected)
}
