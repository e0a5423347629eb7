package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition-center/app/models"
)

// memRepo is an in-memory Repository mirroring the SQL implementation's
// semantics: upsert keyed on Key, delete of a missing key is ErrNotFound.
type memRepo struct {
	rows      map[string]*models.Setting
	listCalls int
	failWith  error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*models.Setting)}
}

func (r *memRepo) List() ([]*models.Setting, error) {
	r.listCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	list := make([]*models.Setting, 0, len(r.rows))
	for _, s := range r.rows {
		list = append(list, s)
	}
	return list, nil
}

func (r *memRepo) Upsert(s *models.Setting) (*models.Setting, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if existing, ok := r.rows[s.Key]; ok {
		existing.Value = s.Value
		existing.Description = s.Description
		return existing, nil
	}
	row := &models.Setting{ID: s.Key + "-id", Key: s.Key, Value: s.Value, Description: s.Description}
	r.rows[s.Key] = row
	return row, nil
}

func (r *memRepo) Delete(key string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.rows[key]; !ok {
		return ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

func TestGetAbsentKey(t *testing.T) {
	store := NewStore(newMemRepo())
	value, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestUpsertThenGetReadsOwnWrite(t *testing.T) {
	store := NewStore(newMemRepo())

	_, err := store.Upsert("center_name", "HoeEdu", "")
	require.NoError(t, err)

	value, ok, err := store.Get("center_name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HoeEdu", value)

	_, err = store.Upsert("center_name", "HoeEdu 2", "")
	require.NoError(t, err)

	value, _, err = store.Get("center_name")
	require.NoError(t, err)
	assert.Equal(t, "HoeEdu 2", value, "read after update must see the new value")
}

func TestUpsertIsIdempotentByKey(t *testing.T) {
	repo := newMemRepo()
	store := NewStore(repo)

	require.NoError(t, store.SetFeeCalculationMethod(models.PerCycle))
	require.NoError(t, store.SetFeeCalculationMethod(models.PerCycle))

	assert.Len(t, repo.rows, 1, "repeated upserts must leave one row per key")
	assert.Equal(t, string(models.PerCycle), repo.rows[FeeMethodKey].Value)
}

func TestDeleteMissingKey(t *testing.T) {
	store := NewStore(newMemRepo())
	err := store.Delete("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeeCalculationMethodDefault(t *testing.T) {
	store := NewStore(newMemRepo())
	assert.Equal(t, models.PerSession, store.FeeCalculationMethod())
}

func TestFeeCalculationMethodRoundTrip(t *testing.T) {
	store := NewStore(newMemRepo())

	require.NoError(t, store.SetFeeCalculationMethod(models.PerCycle))
	assert.Equal(t, models.PerCycle, store.FeeCalculationMethod())

	require.NoError(t, store.SetFeeCalculationMethod(models.PerSession))
	assert.Equal(t, models.PerSession, store.FeeCalculationMethod())
}

func TestFeeCalculationMethodLegacyLowercase(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Upsert(&models.Setting{Key: FeeMethodKey, Value: "per_cycle"})
	require.NoError(t, err)

	store := NewStore(repo)
	assert.Equal(t, models.PerCycle, store.FeeCalculationMethod())
}

func TestFeeCalculationMethodGarbageValue(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Upsert(&models.Setting{Key: FeeMethodKey, Value: "BY_MOON_PHASE"})
	require.NoError(t, err)

	store := NewStore(repo)
	assert.Equal(t, models.PerSession, store.FeeCalculationMethod())
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	repo := newMemRepo()
	boom := errors.New("connection refused")
	repo.failWith = boom

	store := NewStore(repo)
	_, _, err := store.Get("any")
	assert.ErrorIs(t, err, boom)

	_, err = store.Upsert("k", "v", "")
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, models.PerSession, store.FeeCalculationMethod(),
		"fee method degrades to the default when persistence is down")
}

func TestCacheIsReusedBetweenReads(t *testing.T) {
	repo := newMemRepo()
	store := NewStore(repo)

	_, _, err := store.Get("a")
	require.NoError(t, err)
	_, _, err = store.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "reads without intervening writes should hit the cache")

	_, err = store.Upsert("a", "1", "")
	require.NoError(t, err)
	_, _, err = store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "a write must invalidate the cache")
}
