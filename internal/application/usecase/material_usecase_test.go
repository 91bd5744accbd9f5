package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
)

// fakeMaterialRepo biblioteca em memória.
type fakeMaterialRepo struct {
	items map[string]*entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{items: map[string]*entity.Material{}}
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error { return r.Create(m) }

func (r *fakeMaterialRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMaterialRepo) List(includePremium bool, _, _ int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.items {
		if m.Premium && !includePremium {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func seedMaterials(t *testing.T, uc *MaterialUseCase) (freeID, premiumID string) {
	t.Helper()
	free, err := uc.Create(dto.CreateMaterialRequest{Title: "Aula aberta", Kind: entity.MaterialKindVideo})
	require.NoError(t, err)
	premium, err := uc.Create(dto.CreateMaterialRequest{Title: "Masterclass", Kind: entity.MaterialKindVideo, Premium: true})
	require.NoError(t, err)
	return free.ID, premium.ID
}

func TestMaterialUseCase_CreateValidaKind(t *testing.T) {
	uc := NewMaterialUseCase(newFakeMaterialRepo())
	_, err := uc.Create(dto.CreateMaterialRequest{Title: "x", Kind: "podcast"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Conteúdo premium só sai para ALUNO_PRO ou acima; abaixo disso a listagem nem
// devolve os itens e o detalhe responde proibido.
func TestMaterialUseCase_GatePremium(t *testing.T) {
	uc := NewMaterialUseCase(newFakeMaterialRepo())
	freeID, premiumID := seedMaterials(t, uc)

	list, err := uc.List(entity.RoleAluno, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, freeID, list.Items[0].ID)

	list, err = uc.List(entity.RoleAlunoPro, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	_, err = uc.GetByID(premiumID, entity.RoleAluno)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(premiumID, entity.RoleAlunoPro)
	require.NoError(t, err)
	assert.Equal(t, premiumID, out.ID)

	out, err = uc.GetByID(freeID, entity.RoleBasic)
	require.NoError(t, err)
	assert.Equal(t, freeID, out.ID)
}

func TestNormalizeSearch(t *testing.T) {
	cases := map[string]string{
		"Decoração":     "decoracao",
		"  FESTAS  ":    "festas",
		"São Paulo":     "sao paulo",
		"ação & reação": "acao & reacao",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeSearch(in), "entrada %q", in)
	}
}
