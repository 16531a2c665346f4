package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

type fakeRepo struct {
	barbers  []*domain.Barber
	services []*domain.Service
	err      error
}

func (f *fakeRepo) ListActiveBarbers(_ context.Context) ([]*domain.Barber, error) {
	return f.barbers, f.err
}

func (f *fakeRepo) ListActiveServices(_ context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListBarbers(t *testing.T) {
	repo := &fakeRepo{barbers: []*domain.Barber{
		{ID: uuid.New(), Name: "Alex", Active: true},
		{ID: uuid.New(), Name: "Bruno", Active: true},
	}}

	resp, err := NewService(repo, nopLogger{}).ListBarbers(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Barbers, 2)
	assert.Equal(t, "Alex", resp.Barbers[0].Name)
}

func TestListBarbers_Empty(t *testing.T) {
	resp, err := NewService(&fakeRepo{barbers: []*domain.Barber{}}, nopLogger{}).ListBarbers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Barbers)
	assert.Empty(t, resp.Barbers)
}

func TestListServices(t *testing.T) {
	repo := &fakeRepo{services: []*domain.Service{
		{ID: uuid.New(), Name: "Haircut", DurationMinutes: 30, PriceCents: 5000, Active: true},
		{ID: uuid.New(), Name: "Haircut + Beard", DurationMinutes: 60, PriceCents: 9000, Active: true},
	}}

	resp, err := NewService(repo, nopLogger{}).ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
	assert.Equal(t, int64(5000), resp.Services[0].PriceCents)
}

func TestListBarbers_RepoError(t *testing.T) {
	_, err := NewService(&fakeRepo{err: errors.New("db down")}, nopLogger{}).ListBarbers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
