package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// TicketUseCase tickets de suporte. Membros operam os próprios tickets;
// SUPORTE/ADM enxergam a fila inteira e respondem.
//
// Ciclo de status: OPEN -> ANSWERED (resposta do suporte) -> CLOSED.
// Resposta do dono sobre um ticket ANSWERED reabre (volta a OPEN).
type TicketUseCase struct {
	repo repository.TicketRepository
}

// NewTicketUseCase constrói o caso de uso.
func NewTicketUseCase(repo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

// Create abre um ticket com a primeira mensagem do dono.
func (uc *TicketUseCase) Create(userID string, userRole entity.Role, in dto.CreateTicketRequest) (*dto.TicketDetailResponse, error) {
	now := time.Now()
	t := &entity.Ticket{
		ID:        uuid.New().String(),
		UserID:    userID,
		Subject:   in.Subject,
		Status:    entity.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	m := &entity.TicketMessage{
		ID:         uuid.New().String(),
		TicketID:   t.ID,
		AuthorID:   userID,
		AuthorRole: userRole,
		Body:       in.Body,
		CreatedAt:  now,
	}
	if err := uc.repo.CreateMessage(m); err != nil {
		return nil, err
	}
	return &dto.TicketDetailResponse{
		Ticket:   *toTicketResponse(t),
		Messages: []dto.TicketMessageResponse{*toTicketMessageResponse(m)},
	}, nil
}

// Get devolve ticket + mensagens. Quem não é dono precisa ser SUPORTE ou acima.
func (uc *TicketUseCase) Get(requesterID string, requesterRole entity.Role, ticketID string) (*dto.TicketDetailResponse, error) {
	t, err := uc.visible(requesterID, requesterRole, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	msgs, err := uc.repo.ListMessages(t.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.TicketDetailResponse{Ticket: *toTicketResponse(t)}
	out.Messages = make([]dto.TicketMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out.Messages = append(out.Messages, *toTicketMessageResponse(m))
	}
	return out, nil
}

// List lista os tickets do próprio usuário.
func (uc *TicketUseCase) List(userID string, limit, offset int) (*dto.TicketListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTicketList(list, limit, offset), nil
}

// ListAll fila completa do suporte, com filtro opcional de status.
func (uc *TicketUseCase) ListAll(status string, limit, offset int) (*dto.TicketListResponse, error) {
	if status != "" && status != entity.TicketStatusOpen && status != entity.TicketStatusAnswered && status != entity.TicketStatusClosed {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListAll(status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTicketList(list, limit, offset), nil
}

// Reply acrescenta uma mensagem. Dono reabre ticket ANSWERED; suporte marca
// ANSWERED. Ticket CLOSED não aceita mensagem (ErrTicketClosed).
func (uc *TicketUseCase) Reply(authorID string, authorRole entity.Role, ticketID string, in dto.ReplyTicketRequest) (*dto.TicketDetailResponse, error) {
	t, err := uc.visible(authorID, authorRole, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if t.Status == entity.TicketStatusClosed {
		return nil, domain.ErrTicketClosed
	}

	now := time.Now()
	m := &entity.TicketMessage{
		ID:         uuid.New().String(),
		TicketID:   t.ID,
		AuthorID:   authorID,
		AuthorRole: authorRole,
		Body:       in.Body,
		CreatedAt:  now,
	}
	if err := uc.repo.CreateMessage(m); err != nil {
		return nil, err
	}

	if authorRole.AtLeast(entity.RoleSuporte) && authorID != t.UserID {
		t.Status = entity.TicketStatusAnswered
	} else {
		t.Status = entity.TicketStatusOpen
	}
	t.UpdatedAt = now
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return uc.Get(authorID, authorRole, ticketID)
}

// Close encerra o ticket. Dono ou SUPORTE+; já encerrado devolve ErrConflict.
func (uc *TicketUseCase) Close(requesterID string, requesterRole entity.Role, ticketID string) (*dto.TicketResponse, error) {
	t, err := uc.visible(requesterID, requesterRole, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if t.Status == entity.TicketStatusClosed {
		return nil, domain.ErrConflict
	}
	t.Status = entity.TicketStatusClosed
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// visible carrega o ticket e aplica a regra de visibilidade (dono ou SUPORTE+).
func (uc *TicketUseCase) visible(requesterID string, requesterRole entity.Role, ticketID string) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if t.UserID != requesterID && !requesterRole.AtLeast(entity.RoleSuporte) {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

func toTicketList(list []*entity.Ticket, limit, offset int) *dto.TicketListResponse {
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTicketMessageResponse(m *entity.TicketMessage) *dto.TicketMessageResponse {
	if m == nil {
		return nil
	}
	return &dto.TicketMessageResponse{
		ID:         m.ID,
		AuthorID:   m.AuthorID,
		AuthorRole: string(m.AuthorRole),
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}
