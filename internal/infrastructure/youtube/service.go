package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/portalmembros/portal-api/internal/application/ports"
)

// Verificação em tempo de compilação de que Service implementa VideoSource.
var _ ports.VideoSource = (*Service)(nil)

const youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// Service adaptador que implementa VideoSource usando a YouTube Data API v3.
// Usa net/http direto com structs tipados; não requer o SDK do Google.
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewService constrói o adaptador.
// Se apiKey estiver vazio as chamadas devolvem erro descritivo em vez de panic;
// o cache trata isso como ciclo falho e mantém o envelope anterior.
func NewService(apiKey string) *Service {
	return &Service{
		apiKey:  apiKey,
		baseURL: youtubeAPIBaseURL,
		httpClient: &http.Client{
			// Timeout de rede abaixo do limite por chamada imposto pelo cache.
			Timeout: 12 * time.Second,
		},
	}
}

// ── Estruturas do protocolo da Data API v3 ────────────────────────────────────

type apiError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type channelListResponse struct {
	apiError
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type searchListResponse struct {
	apiError
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	apiError
	Items []struct {
		ID             string  `json:"id"`
		Snippet        snippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type snippet struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
	Thumbnails  struct {
		High struct {
			URL string `json:"url"`
		} `json:"high"`
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
	} `json:"thumbnails"`
}

func (s snippet) thumbnailURL() string {
	if s.Thumbnails.High.URL != "" {
		return s.Thumbnails.High.URL
	}
	return s.Thumbnails.Medium.URL
}

// ── Implementação do porto ────────────────────────────────────────────────────

// ResolveChannelID resolve o handle legível (ex. "@portalmembros") para o ID do canal.
// Handle inexistente devolve "" sem erro.
func (s *Service) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	var out channelListResponse
	err := s.get(ctx, "/channels", url.Values{
		"part":      {"id"},
		"forHandle": {strings.TrimPrefix(handle, "@")},
	}, &out)
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}
	return out.Items[0].ID, nil
}

// RecentVideos lista os vídeos mais recentes do canal, ordenados por data.
func (s *Service) RecentVideos(ctx context.Context, channelID string, limit int) ([]ports.ChannelVideo, error) {
	var out searchListResponse
	err := s.get(ctx, "/search", url.Values{
		"part":       {"snippet"},
		"channelId":  {channelID},
		"order":      {"date"},
		"type":       {"video"},
		"maxResults": {strconv.Itoa(limit)},
	}, &out)
	if err != nil {
		return nil, err
	}
	videos := make([]ports.ChannelVideo, 0, len(out.Items))
	for _, it := range out.Items {
		if it.ID.VideoID == "" {
			continue
		}
		videos = append(videos, ports.ChannelVideo{
			ID:           it.ID.VideoID,
			Title:        it.Snippet.Title,
			Description:  it.Snippet.Description,
			ThumbnailURL: it.Snippet.thumbnailURL(),
			PublishedAt:  it.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// VideoDetails busca duração e data de publicação confirmada de todos os IDs em
// uma única chamada (a API aceita a lista separada por vírgula).
func (s *Service) VideoDetails(ctx context.Context, ids []string) (map[string]ports.VideoDetails, error) {
	if len(ids) == 0 {
		return map[string]ports.VideoDetails{}, nil
	}
	var out videoListResponse
	err := s.get(ctx, "/videos", url.Values{
		"part": {"contentDetails,snippet"},
		"id":   {strings.Join(ids, ",")},
	}, &out)
	if err != nil {
		return nil, err
	}
	details := make(map[string]ports.VideoDetails, len(out.Items))
	for _, it := range out.Items {
		details[it.ID] = ports.VideoDetails{
			Duration:    it.ContentDetails.Duration,
			PublishedAt: it.Snippet.PublishedAt,
		}
	}
	return details, nil
}

// get executa uma chamada GET autenticada e decodifica a resposta em out.
// out deve embutir apiError para que erros da API virem erros Go.
func (s *Service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if s.apiKey == "" {
		return fmt.Errorf("youtube: YOUTUBE_API_KEY não configurada")
	}
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chamada à Data API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("ler resposta: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("resposta malformada (status %d): %w", resp.StatusCode, err)
	}
	if apiErr := extractAPIError(out); apiErr != nil {
		return apiErr
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status inesperado da Data API: %d", resp.StatusCode)
	}
	return nil
}

func extractAPIError(out interface{}) error {
	type errCarrier interface{ apiErr() *apiError }
	if c, ok := out.(errCarrier); ok {
		if ae := c.apiErr(); ae != nil && ae.Error != nil {
			return fmt.Errorf("erro da Data API (%d): %s", ae.Error.Code, ae.Error.Message)
		}
	}
	return nil
}

func (e *apiError) apiErr() *apiError { return e }
