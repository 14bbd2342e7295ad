package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackhua-dev/GitQuest-Server/internal/game"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/internal/storage"
)

func newTestMux(t *testing.T) (*http.ServeMux, *game.Session) {
	t.Helper()

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	session, err := game.LoadOrCreate(store, "Test Hero", "Python", game.NewRNG(1))
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewCharacterHandler(session).RegisterHandlers(mux)
	NewSyncHandler(session).RegisterHandlers(mux)
	return mux, session
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCharacterSheetEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/character", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	var sheet game.CharacterSheet
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &sheet))

	assert.Equal(t, "Test Hero", sheet.Name)
	assert.Equal(t, models.CharacterClass("Wizard"), sheet.Class)
	assert.Equal(t, 1, sheet.Level)
	assert.Equal(t, 100, sheet.XPForNextLevel)
}

func TestCharacterEndpointsRejectPost(t *testing.T) {
	mux, _ := newTestMux(t)

	for _, path := range []string{"/character", "/character/enemy", "/character/stats", "/character/inventory", "/mobs"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}

func TestCurrentEnemyEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/character/enemy", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	var mob models.Mob
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &mob))

	assert.Equal(t, "Goblin", mob.Name)
	assert.Equal(t, mob.MaxHP, mob.CurrentHP)
}

func TestMobTableEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mobs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	var table []models.MobArchetype
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &table))

	require.Len(t, table, 5)
	assert.Equal(t, "Goblin", table[0].Name)
	assert.Equal(t, 1, table[0].MinLevel)
	assert.Equal(t, "Dragon", table[4].Name)
	assert.Equal(t, 8, table[4].MinLevel)
}

func TestSyncEventsEndpoint(t *testing.T) {
	mux, session := newTestMux(t)

	req := SyncRequest{Events: []models.ActivityEvent{
		{
			Type:      models.EventCommit,
			Repo:      "team/service",
			SHA:       "a1b2c3d4",
			Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/events", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	var report game.SyncReport
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, session.GetStatistics().TotalCommits)
}

func TestSyncEventsRejectsBadJSON(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/events", bytes.NewReader([]byte("{bad"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncEventsRejectsGet(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sync/events", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
