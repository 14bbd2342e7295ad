package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

func testState() *models.GameState {
	state := models.NewGameState("Test Hero", "Rust")
	state.Character.Level = 3
	state.Character.XP = 120
	state.Character.MaxHP = models.MaxHPForLevel(3)
	state.Character.CurrentHP = 95
	state.Character.Stats.TotalCommits = 17
	state.Character.TakeItem(models.Item{
		Name:   "Iron Dagger",
		Type:   models.ItemWeapon,
		Rarity: models.RarityCommon,
		Source: models.SourceMobDrop,
		Power:  4,
	})
	state.Mob = models.SpawnMobForLevel(3)
	state.Mob.CurrentHP = 12
	state.LastSync.LastCommitAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return state
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	state := testState()

	require.NoError(t, store.Save(state))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, state.Character, loaded.Character)
	assert.Equal(t, state.Mob, loaded.Mob)
	assert.True(t, state.LastSync.LastCommitAt.Equal(loaded.LastSync.LastCommitAt))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStoreLoadWrongSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(testState()))

	// 篡改版本号后加载必须报损坏
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["schema_version"] = json.RawMessage("99")
	tampered, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0644))

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStoreLoadMissingCharacter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	record := map[string]interface{}{
		"schema_version": SchemaVersion,
		"saved_at":       time.Now().UTC(),
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStoreSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "save.json"))

	first := testState()
	require.NoError(t, store.Save(first))

	second := testState()
	second.Character.Level = 7
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Character.Level)

	// 不留下临时文件
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "save.json", entries[0].Name())
}
