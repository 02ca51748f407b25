package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/mock"
	"github.com/notasapp/go-notas/internal/validators"
	"github.com/notasapp/go-notas/models"
)

func newTestNotesStore(t *testing.T, ctrl *gomock.Controller) (NotesService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewNotesStore(mockAdapter, nil, logger.Nop()), mockAdapter
}

func userToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestNotesStore_Load_ReplacesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	fetched := []models.Note{
		{ID: 1, Titulo: "compra", Descripcion: "pan y leche"},
		{ID: 2, Titulo: "viaje", Descripcion: "reservar hotel"},
	}
	mockAdapter.EXPECT().ListNotes(ctx).Return(fetched, nil)

	require.NoError(t, svc.Load(ctx))

	snapshot := svc.Snapshot()
	assert.Equal(t, fetched, snapshot.Notes)
	assert.False(t, snapshot.Loading)
	assert.NoError(t, snapshot.Err)
}

func TestNotesStore_Load_FailureKeepsPreviousList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	existing := []models.Note{{ID: 1, Titulo: "compra"}}
	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).Return(existing, nil),
		mockAdapter.EXPECT().ListNotes(ctx).
			Return(nil, fmt.Errorf("%w: list request: connection refused", adapter.ErrNetwork)),
	)

	require.NoError(t, svc.Load(ctx))

	err := svc.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)

	snapshot := svc.Snapshot()
	assert.Equal(t, existing, snapshot.Notes, "failed reload keeps the previous list")
	assert.False(t, snapshot.Loading)
	assert.ErrorIs(t, snapshot.Err, ErrServerUnavailable)
}

func TestNotesStore_Load_ClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).
			Return(nil, fmt.Errorf("%w: list request: timeout", adapter.ErrNetwork)),
		mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{{ID: 3, Titulo: "ok"}}, nil),
	)

	require.Error(t, svc.Load(ctx))
	require.ErrorIs(t, svc.Snapshot().Err, ErrServerUnavailable)

	require.NoError(t, svc.Load(ctx))
	assert.NoError(t, svc.Snapshot().Err)
}

func TestNotesStore_Load_StaleResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	staleNotes := []models.Note{{ID: 1, Titulo: "vieja"}}
	freshNotes := []models.Note{{ID: 1, Titulo: "vieja"}, {ID: 2, Titulo: "nueva"}}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	first := mockAdapter.EXPECT().ListNotes(ctx).DoAndReturn(
		func(context.Context) ([]models.Note, error) {
			close(firstStarted)
			<-releaseFirst
			return staleNotes, nil
		},
	)
	mockAdapter.EXPECT().ListNotes(ctx).Return(freshNotes, nil).After(first)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// La primera carga queda colgada en la red hasta releaseFirst.
		_ = svc.Load(ctx)
	}()

	<-firstStarted
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, freshNotes, svc.Snapshot().Notes)

	close(releaseFirst)
	wg.Wait()

	snapshot := svc.Snapshot()
	assert.Equal(t, freshNotes, snapshot.Notes, "stale response must not overwrite the newer load")
	assert.False(t, snapshot.Loading)
	assert.NoError(t, snapshot.Err)
}

func TestNotesStore_Load_MutationBeatsStaleLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	loadStarted := make(chan struct{})
	releaseLoad := make(chan struct{})

	serverList := []models.Note{{ID: 1, Titulo: "del servidor"}}
	created := models.Note{ID: 2, Titulo: "nueva"}

	mockAdapter.EXPECT().ListNotes(ctx).DoAndReturn(
		func(context.Context) ([]models.Note, error) {
			close(loadStarted)
			<-releaseLoad
			return serverList, nil
		},
	)
	mockAdapter.EXPECT().CreateNote(ctx, models.NoteDraft{Titulo: "nueva"}).Return(created, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Load(ctx)
	}()

	<-loadStarted
	// La creación arranca después de la carga, así que su resultado gana.
	_, err := svc.Create(ctx, "nueva", "")
	require.NoError(t, err)

	close(releaseLoad)
	wg.Wait()

	snapshot := svc.Snapshot()
	assert.Equal(t, []models.Note{created}, snapshot.Notes,
		"a load response older than an applied mutation is discarded")
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestNotesStore_Create_AppendsServerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{{ID: 1, Titulo: "primera"}}, nil),
		mockAdapter.EXPECT().
			CreateNote(ctx, models.NoteDraft{Titulo: "segunda", Descripcion: "cuerpo"}).
			Return(models.Note{ID: 2, Titulo: "segunda", Descripcion: "cuerpo"}, nil),
	)

	require.NoError(t, svc.Load(ctx))

	note, err := svc.Create(ctx, "segunda", "cuerpo")
	require.NoError(t, err)
	assert.Equal(t, int64(2), note.ID)

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Notes, 2)
	assert.Equal(t, int64(2), snapshot.Notes[1].ID, "server record appended at the end")
}

func TestNotesStore_Create_EmptyTitle_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesStore(t, ctrl)

	_, err := svc.Create(context.Background(), "   ", "cuerpo")
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestNotesStore_Create_FailureLeavesListUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateNote(ctx, gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: create request: connection refused", adapter.ErrNetwork))

	_, err := svc.Create(ctx, "titulo", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Empty(t, svc.Snapshot().Notes)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestNotesStore_Update_ReplacesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{
			{ID: 1, Titulo: "primera"},
			{ID: 2, Titulo: "segunda"},
			{ID: 3, Titulo: "tercera"},
		}, nil),
		mockAdapter.EXPECT().
			UpdateNote(ctx, int64(2), models.NoteDraft{Titulo: "segunda v2", Descripcion: "editada"}).
			Return(models.Note{ID: 2, Titulo: "segunda v2", Descripcion: "editada"}, nil),
	)

	require.NoError(t, svc.Load(ctx))

	_, err := svc.Update(ctx, 2, "segunda v2", "editada")
	require.NoError(t, err)

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Notes, 3)
	assert.Equal(t, "segunda v2", snapshot.Notes[1].Titulo, "position preserved")
	assert.Equal(t, int64(1), snapshot.Notes[0].ID)
	assert.Equal(t, int64(3), snapshot.Notes[2].ID)
}

func TestNotesStore_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		UpdateNote(ctx, int64(99), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: note not found", adapter.ErrNotFound))

	_, err := svc.Update(ctx, 99, "titulo", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestNotesStore_Delete_RemovesAfterConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{
			{ID: 1, Titulo: "primera"},
			{ID: 2, Titulo: "segunda"},
		}, nil),
		mockAdapter.EXPECT().DeleteNote(ctx, int64(1)).Return(nil),
	)

	require.NoError(t, svc.Load(ctx))
	require.NoError(t, svc.Delete(ctx, 1))

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Notes, 1)
	assert.Equal(t, int64(2), snapshot.Notes[0].ID)
}

func TestNotesStore_Delete_FailurePreservesEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{{ID: 1, Titulo: "primera"}}, nil),
		mockAdapter.EXPECT().DeleteNote(ctx, int64(1)).
			Return(fmt.Errorf("%w: delete request: connection refused", adapter.ErrNetwork)),
	)

	require.NoError(t, svc.Load(ctx))

	err := svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Notes, 1, "pessimistic removal: the entry stays until the server confirms")
	assert.Equal(t, int64(1), snapshot.Notes[0].ID)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestNotesStore_Close_RejectsOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	svc.Close()

	assert.ErrorIs(t, svc.Load(ctx), ErrStoreClosed)
	_, err := svc.Create(ctx, "titulo", "")
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = svc.Update(ctx, 1, "titulo", "")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrStoreClosed)
}

func TestNotesStore_Close_DiscardsInFlightLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesStore(t, ctrl)
	ctx := context.Background()

	loadStarted := make(chan struct{})
	releaseLoad := make(chan struct{})

	mockAdapter.EXPECT().ListNotes(ctx).DoAndReturn(
		func(context.Context) ([]models.Note, error) {
			close(loadStarted)
			<-releaseLoad
			return []models.Note{{ID: 1, Titulo: "tardía"}}, nil
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Load(ctx)
	}()

	<-loadStarted
	svc.Close()
	close(releaseLoad)
	wg.Wait()

	assert.Empty(t, svc.Snapshot().Notes, "a result arriving after Close is dropped")
}

// ── Hydrate and offline cache ────────────────────────────────────────────────

func TestNotesStore_Hydrate_FillsEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockNotesCache(ctrl)
	svc := NewNotesStore(mockAdapter, mockCache, logger.Nop())
	ctx := context.Background()

	cached := []models.Note{{ID: 1, Titulo: "fuera de línea"}}

	mockAdapter.EXPECT().Token().Return(userToken(t, "42"))
	mockCache.EXPECT().LoadNotes(ctx, int64(42)).Return(cached, nil)

	require.NoError(t, svc.Hydrate(ctx))
	assert.Equal(t, cached, svc.Snapshot().Notes)
}

func TestNotesStore_Hydrate_NoTokenIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockNotesCache(ctrl)
	svc := NewNotesStore(mockAdapter, mockCache, logger.Nop())

	mockAdapter.EXPECT().Token().Return("")

	require.NoError(t, svc.Hydrate(context.Background()))
	assert.Empty(t, svc.Snapshot().Notes)
}

func TestNotesStore_Hydrate_NeverOverwritesLoadedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockNotesCache(ctrl)
	svc := NewNotesStore(mockAdapter, mockCache, logger.Nop())
	ctx := context.Background()

	loaded := []models.Note{{ID: 2, Titulo: "del servidor"}}
	token := userToken(t, "42")

	mockAdapter.EXPECT().ListNotes(ctx).Return(loaded, nil)
	mockAdapter.EXPECT().Token().Return(token).Times(2)
	mockCache.EXPECT().SaveNotes(ctx, int64(42), loaded).Return(nil)
	mockCache.EXPECT().LoadNotes(ctx, int64(42)).
		Return([]models.Note{{ID: 1, Titulo: "rancia"}}, nil)

	require.NoError(t, svc.Load(ctx))
	require.NoError(t, svc.Hydrate(ctx))

	assert.Equal(t, loaded, svc.Snapshot().Notes, "hydration must not clobber a completed load")
}

func TestNotesStore_Load_PersistsToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockNotesCache(ctrl)
	svc := NewNotesStore(mockAdapter, mockCache, logger.Nop())
	ctx := context.Background()

	fetched := []models.Note{{ID: 1, Titulo: "compra"}}

	mockAdapter.EXPECT().ListNotes(ctx).Return(fetched, nil)
	mockAdapter.EXPECT().Token().Return(userToken(t, "7"))
	mockCache.EXPECT().SaveNotes(ctx, int64(7), fetched).Return(nil)

	require.NoError(t, svc.Load(ctx))
}

func TestNotesStore_Load_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockNotesCache(ctrl)
	svc := NewNotesStore(mockAdapter, mockCache, logger.Nop())
	ctx := context.Background()

	fetched := []models.Note{{ID: 1, Titulo: "compra"}}

	mockAdapter.EXPECT().ListNotes(ctx).Return(fetched, nil)
	mockAdapter.EXPECT().Token().Return(userToken(t, "7"))
	mockCache.EXPECT().SaveNotes(ctx, int64(7), fetched).
		Return(fmt.Errorf("disk full"))

	require.NoError(t, svc.Load(ctx), "offline persistence is best effort")
	assert.Equal(t, fetched, svc.Snapshot().Notes)
}
