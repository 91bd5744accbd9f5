package ports

import (
	"context"
	"time"
)

// ChannelVideo item cru devolvido pela listagem de vídeos recentes de um canal.
type ChannelVideo struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
}

// VideoDetails metadados estendidos de um vídeo (busca em lote).
type VideoDetails struct {
	Duration    string // codificação compacta ISO-8601, ex. "PT1H2M3S"
	PublishedAt time.Time
}

// VideoSource porto para a plataforma externa de vídeos (YouTube Data API).
// Implementado em internal/infrastructure/youtube.
type VideoSource interface {
	// ResolveChannelID resolve o handle legível para o ID opaco do canal.
	// Devolve "" (sem erro) quando o handle não existe.
	ResolveChannelID(ctx context.Context, handle string) (string, error)
	// RecentVideos lista os vídeos mais recentes do canal, ordenados por data.
	RecentVideos(ctx context.Context, channelID string, limit int) ([]ChannelVideo, error)
	// VideoDetails busca duração e data de publicação confirmada em uma única
	// chamada em lote, indexada por ID de vídeo.
	VideoDetails(ctx context.Context, ids []string) (map[string]VideoDetails, error)
}
