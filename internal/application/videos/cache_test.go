package videos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalmembros/portal-api/internal/application/ports"
	"github.com/portalmembros/portal-api/pkg/logger"
)

// fakeSource implementação em memória da fonte de vídeos.
type fakeSource struct {
	channelID  string
	resolveErr error

	videos  []ports.ChannelVideo
	listErr error

	details    map[string]ports.VideoDetails
	detailsErr error

	listCalls int
}

func (f *fakeSource) ResolveChannelID(_ context.Context, _ string) (string, error) {
	return f.channelID, f.resolveErr
}

func (f *fakeSource) RecentVideos(_ context.Context, _ string, _ int) ([]ports.ChannelVideo, error) {
	f.listCalls++
	return f.videos, f.listErr
}

func (f *fakeSource) VideoDetails(_ context.Context, _ []string) (map[string]ports.VideoDetails, error) {
	return f.details, f.detailsErr
}

func publishedDaysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func newTestCache(src ports.VideoSource, now time.Time) *Cache {
	c := NewCache(src, "@canal", logger.NewNop())
	c.now = func() time.Time { return now }
	return c
}

func TestCache_ComecaVazioComLastUpdatedNulo(t *testing.T) {
	c := newTestCache(&fakeSource{}, time.Now())
	env := c.Read()
	assert.Empty(t, env.Videos)
	assert.Nil(t, env.LastUpdated)
}

func TestCache_RefreshPublicaEnvelopeTransformado(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	src := &fakeSource{
		channelID: "UC123",
		videos: []ports.ChannelVideo{
			{ID: "v1", Title: "Aula 1", Description: "intro", ThumbnailURL: "https://i.ytimg.com/v1.jpg", PublishedAt: publishedDaysAgo(now, 2)},
			{ID: "v2", Title: "Aula 2", PublishedAt: publishedDaysAgo(now, 10)},
		},
		details: map[string]ports.VideoDetails{
			"v1": {Duration: "PT1H2M3S", PublishedAt: publishedDaysAgo(now, 2)},
			"v2": {Duration: "PT4M5S", PublishedAt: publishedDaysAgo(now, 10)},
		},
	}
	c := newTestCache(src, now)

	require.NoError(t, c.Refresh(context.Background()))

	env := c.Read()
	require.Len(t, env.Videos, 2)
	require.NotNil(t, env.LastUpdated)
	assert.Equal(t, now, *env.LastUpdated)

	v1 := env.Videos[0]
	assert.Equal(t, "v1", v1.ID)
	assert.Equal(t, "Aula 1", v1.Title)
	assert.Equal(t, "1:02:03", v1.DurationFormatted)
	assert.Equal(t, "há 2 dias", v1.PublishedAt)
	assert.Equal(t, "https://www.youtube.com/watch?v=v1", v1.SourceURL)

	v2 := env.Videos[1]
	assert.Equal(t, "4:05", v2.DurationFormatted)
	assert.Equal(t, "há 1 semana", v2.PublishedAt)
}

// Vídeo fora do lote de detalhes não derruba o ciclo: cai na data da listagem e "0:00".
func TestCache_DetalheAusenteUsaFallback(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	src := &fakeSource{
		channelID: "UC123",
		videos: []ports.ChannelVideo{
			{ID: "v1", Title: "Live", PublishedAt: publishedDaysAgo(now, 1)},
		},
		details: map[string]ports.VideoDetails{},
	}
	c := newTestCache(src, now)

	require.NoError(t, c.Refresh(context.Background()))

	env := c.Read()
	require.Len(t, env.Videos, 1)
	assert.Equal(t, "0:00", env.Videos[0].DurationFormatted)
	assert.Equal(t, "há 1 dia", env.Videos[0].PublishedAt)
}

// Falha no meio do ciclo é no-op: envelope e lastUpdated anteriores permanecem.
func TestCache_FalhaDeRefreshMantemEnvelopeAnterior(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	src := &fakeSource{
		channelID: "UC123",
		videos: []ports.ChannelVideo{
			{ID: "v1", Title: "Aula 1", PublishedAt: publishedDaysAgo(now, 2)},
		},
		details: map[string]ports.VideoDetails{
			"v1": {Duration: "PT10M", PublishedAt: publishedDaysAgo(now, 2)},
		},
	}
	c := newTestCache(src, now)
	require.NoError(t, c.Refresh(context.Background()))
	before := c.Read()

	src.detailsErr = errors.New("quota excedida")
	err := c.Refresh(context.Background())
	require.Error(t, err)

	after := c.Read()
	assert.Equal(t, before.Videos, after.Videos)
	assert.Equal(t, before.LastUpdated, after.LastUpdated)
}

func TestCache_ZeroItensNaoPublica(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	src := &fakeSource{
		channelID: "UC123",
		videos: []ports.ChannelVideo{
			{ID: "v1", Title: "Aula 1", PublishedAt: publishedDaysAgo(now, 2)},
		},
		details: map[string]ports.VideoDetails{
			"v1": {Duration: "PT10M", PublishedAt: publishedDaysAgo(now, 2)},
		},
	}
	c := newTestCache(src, now)
	require.NoError(t, c.Refresh(context.Background()))
	before := c.Read()

	src.videos = nil
	err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNoItems)

	after := c.Read()
	assert.Equal(t, before.Videos, after.Videos)
	assert.Equal(t, before.LastUpdated, after.LastUpdated)
}

func TestCache_HandleInexistenteDevolveErro(t *testing.T) {
	c := newTestCache(&fakeSource{channelID: ""}, time.Now())
	err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Nil(t, c.Read().LastUpdated)
}

// Read é só um load de ponteiro: não toca a fonte externa.
func TestCache_ReadNaoConsultaFonte(t *testing.T) {
	src := &fakeSource{channelID: "UC123"}
	c := newTestCache(src, time.Now())
	for i := 0; i < 50; i++ {
		_ = c.Read()
	}
	assert.Zero(t, src.listCalls)
}

// safeRefresh absorve panic da fonte sem derrubar nada.
func TestCache_SafeRefreshAbsorvePanic(t *testing.T) {
	c := newTestCache(panicSource{}, time.Now())
	assert.NotPanics(t, func() { c.safeRefresh() })
	assert.Nil(t, c.Read().LastUpdated)
}

type panicSource struct{}

func (panicSource) ResolveChannelID(context.Context, string) (string, error) {
	panic("boom")
}
func (panicSource) RecentVideos(context.Context, string, int) ([]ports.ChannelVideo, error) {
	panic("boom")
}
func (panicSource) VideoDetails(context.Context, []string) (map[string]ports.VideoDetails, error) {
	panic("boom")
}
