package videos

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/portalmembros/portal-api/internal/application/ports"
	"github.com/portalmembros/portal-api/pkg/logger"
)

// Horários fixos de refresh (fuso local do processo).
const (
	refreshHourMorning = 11
	refreshHourEvening = 20
)

// recentLimit quantos vídeos recentes entram no cache.
const recentLimit = 10

// callTimeout limite por chamada externa; estouro conta como falha do ciclo.
const callTimeout = 15 * time.Second

// Erros internos do refresh. Nunca chegam ao chamador de Read(): um ciclo que
// falha apenas mantém o envelope anterior.
var (
	ErrSourceNotFound = errors.New("canal não encontrado para o handle configurado")
	ErrNoItems        = errors.New("fonte externa devolveu zero itens aproveitáveis")
)

// Video item imutável do cache, já transformado para exibição.
type Video struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailURL      string `json:"thumbnailUrl"`
	PublishedAt       string `json:"publishedAt"` // rótulo relativo, ex. "há 2 dias"
	DurationFormatted string `json:"durationFormatted"`
	SourceURL         string `json:"sourceUrl"`
}

// Envelope conjunto publicado do cache. Só é substituído por inteiro: Read nunca
// observa um refresh pela metade.
type Envelope struct {
	Videos      []Video    `json:"videos"`
	LastUpdated *time.Time `json:"lastUpdated"`
}

// Cache snapshot em memória dos vídeos recentes do canal, atualizado em horários
// fixos. Falha de refresh mantém o último envelope bom (stale-but-available).
type Cache struct {
	source ports.VideoSource
	handle string
	log    *logger.Logger

	env   atomic.Pointer[Envelope]
	sched *Scheduler

	now func() time.Time // injetável em teste
}

// NewCache constrói o cache vazio (envelope sem itens, lastUpdated nulo).
func NewCache(source ports.VideoSource, handle string, log *logger.Logger) *Cache {
	c := &Cache{
		source: source,
		handle: handle,
		log:    log,
		sched:  NewScheduler(),
		now:    time.Now,
	}
	c.env.Store(&Envelope{Videos: []Video{}})
	return c
}

// Read devolve o envelope atual. Nunca consulta a fonte externa, nunca bloqueia:
// é um load atômico de ponteiro, O(1) no caminho quente.
func (c *Cache) Read() Envelope {
	return *c.env.Load()
}

// Start faz um refresh imediato (cache quente assim que o processo sobe) e arma
// os dois triggers diários. Disparos sobrepostos são seguros: cada refresh publica
// um snapshot completo e o último swap vence.
func (c *Cache) Start() {
	go c.safeRefresh()
	c.sched.DailyAt(refreshHourMorning, 0, c.safeRefresh)
	c.sched.DailyAt(refreshHourEvening, 0, c.safeRefresh)
}

// Stop desarma os triggers. Não limpa o envelope.
func (c *Cache) Stop() {
	c.sched.Stop()
}

// safeRefresh roda um ciclo absorvendo erro e panic: nada pode escapar para o
// scheduler nem derrubar o processo.
func (c *Cache) safeRefresh() {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("refresh de vídeos entrou em panic; envelope anterior mantido")
		}
	}()
	if err := c.Refresh(context.Background()); err != nil {
		c.log.Warn().Err(err).Msg("refresh de vídeos falhou; envelope anterior mantido")
	}
}

// Refresh executa o ciclo completo: resolver canal, listar recentes, buscar
// detalhes em lote, transformar e publicar. Qualquer falha (ou zero itens) é
// no-op sobre o estado publicado.
func (c *Cache) Refresh(ctx context.Context) error {
	channelID, err := c.resolveChannel(ctx)
	if err != nil {
		return err
	}

	listCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	recent, err := c.source.RecentVideos(listCtx, channelID, recentLimit)
	if err != nil {
		return fmt.Errorf("listar vídeos recentes: %w", err)
	}
	if len(recent) == 0 {
		return ErrNoItems
	}

	ids := make([]string, 0, len(recent))
	for _, v := range recent {
		ids = append(ids, v.ID)
	}
	detailsCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	details, err := c.source.VideoDetails(detailsCtx, ids)
	if err != nil {
		return fmt.Errorf("buscar detalhes em lote: %w", err)
	}

	now := c.now()
	items := make([]Video, 0, len(recent))
	for _, raw := range recent {
		items = append(items, c.transform(raw, details[raw.ID], now))
	}

	// Envelope novo montado por completo; uma única atribuição atômica publica.
	env := &Envelope{Videos: items, LastUpdated: &now}
	c.env.Store(env)
	c.log.Info().Int("videos", len(items)).Msg("cache de vídeos atualizado")
	return nil
}

func (c *Cache) resolveChannel(ctx context.Context) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	channelID, err := c.source.ResolveChannelID(callCtx, c.handle)
	if err != nil {
		return "", fmt.Errorf("resolver handle do canal: %w", err)
	}
	if channelID == "" {
		return "", ErrSourceNotFound
	}
	return channelID, nil
}

// transform monta o item imutável de exibição. Quando o lote de detalhes não
// trouxe o vídeo, cai na data da listagem e duração "0:00".
func (c *Cache) transform(raw ports.ChannelVideo, det ports.VideoDetails, now time.Time) Video {
	publishedAt := raw.PublishedAt
	if !det.PublishedAt.IsZero() {
		publishedAt = det.PublishedAt
	}
	return Video{
		ID:                raw.ID,
		Title:             raw.Title,
		Description:       raw.Description,
		ThumbnailURL:      raw.ThumbnailURL,
		PublishedAt:       RelativeLabel(publishedAt, now),
		DurationFormatted: FormatDuration(det.Duration),
		SourceURL:         "https://www.youtube.com/watch?v=" + raw.ID,
	}
}
