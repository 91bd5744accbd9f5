package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
)

// fakeTicketRepo persistência em memória para os testes de ciclo de vida.
type fakeTicketRepo struct {
	tickets  map[string]*entity.Ticket
	messages map[string][]*entity.TicketMessage
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets:  map[string]*entity.Ticket{},
		messages: map[string][]*entity.TicketMessage{},
	}
}

func (r *fakeTicketRepo) Create(t *entity.Ticket) error {
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}

func (r *fakeTicketRepo) GetByID(id string) (*entity.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTicketRepo) Update(t *entity.Ticket) error {
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}

func (r *fakeTicketRepo) ListByUser(userID string, _, _ int) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListAll(status string, _, _ int) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if status == "" || t.Status == status {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) CreateMessage(m *entity.TicketMessage) error {
	cp := *m
	r.messages[m.TicketID] = append(r.messages[m.TicketID], &cp)
	return nil
}

func (r *fakeTicketRepo) ListMessages(ticketID string) ([]*entity.TicketMessage, error) {
	return r.messages[ticketID], nil
}

const (
	ownerID   = "user-dono"
	supportID = "user-suporte"
	otherID   = "user-intruso"
)

func openTicket(t *testing.T, uc *TicketUseCase) string {
	t.Helper()
	out, err := uc.Create(ownerID, entity.RoleAluno, dto.CreateTicketRequest{
		Subject: "Dúvida sobre acesso",
		Body:    "Não consigo abrir os templates",
	})
	require.NoError(t, err)
	return out.Ticket.ID
}

func TestTicketUseCase_CreateAbreComPrimeiraMensagem(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	out, err := uc.Create(ownerID, entity.RoleAluno, dto.CreateTicketRequest{
		Subject: "Dúvida",
		Body:    "corpo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, out.Ticket.Status)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, ownerID, out.Messages[0].AuthorID)
	assert.Equal(t, string(entity.RoleAluno), out.Messages[0].AuthorRole)
}

// Resposta do suporte marca ANSWERED; resposta do dono reabre para OPEN.
func TestTicketUseCase_CicloDeStatus(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	id := openTicket(t, uc)

	answered, err := uc.Reply(supportID, entity.RoleSuporte, id, dto.ReplyTicketRequest{Body: "tente limpar o cache"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusAnswered, answered.Ticket.Status)
	assert.Len(t, answered.Messages, 2)

	reopened, err := uc.Reply(ownerID, entity.RoleAluno, id, dto.ReplyTicketRequest{Body: "não resolveu"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, reopened.Ticket.Status)
	assert.Len(t, reopened.Messages, 3)
}

func TestTicketUseCase_TicketEncerradoNaoAceitaResposta(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	id := openTicket(t, uc)

	_, err := uc.Close(ownerID, entity.RoleAluno, id)
	require.NoError(t, err)

	_, err = uc.Reply(ownerID, entity.RoleAluno, id, dto.ReplyTicketRequest{Body: "mais uma coisa"})
	assert.ErrorIs(t, err, domain.ErrTicketClosed)
}

func TestTicketUseCase_EncerrarDuasVezesDevolveConflito(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	id := openTicket(t, uc)

	_, err := uc.Close(ownerID, entity.RoleAluno, id)
	require.NoError(t, err)

	_, err = uc.Close(supportID, entity.RoleSuporte, id)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Membro comum não enxerga ticket alheio; SUPORTE e ADM enxergam.
func TestTicketUseCase_Visibilidade(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	id := openTicket(t, uc)

	_, err := uc.Get(otherID, entity.RoleAluno, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Get(supportID, entity.RoleSuporte, id)
	require.NoError(t, err)
	assert.Equal(t, id, out.Ticket.ID)

	out, err = uc.Get(ownerID, entity.RoleAluno, id)
	require.NoError(t, err)
	assert.Equal(t, id, out.Ticket.ID)
}

func TestTicketUseCase_GetInexistenteDevolveNil(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	out, err := uc.Get(ownerID, entity.RoleAluno, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestTicketUseCase_ListAllValidaStatus(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())
	_, err := uc.ListAll("PENDENTE", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListAll(entity.TicketStatusOpen, 20, 0)
	assert.NoError(t, err)
}
