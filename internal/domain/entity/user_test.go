package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleBasic, RoleAluno, RoleAlunoPro, RoleSuporte, RoleAdm} {
		assert.True(t, r.Valid(), "%s deve ser válido", r)
	}
	assert.False(t, Role("").Valid())
	assert.False(t, Role("GERENTE").Valid())
	assert.False(t, Role("adm").Valid(), "papéis são case sensitive")
}

func TestRole_AtLeast(t *testing.T) {
	ordered := []Role{RoleBasic, RoleAluno, RoleAlunoPro, RoleSuporte, RoleAdm}
	for i, r := range ordered {
		for j, other := range ordered {
			got := r.AtLeast(other)
			assert.Equal(t, i >= j, got, "%s.AtLeast(%s)", r, other)
		}
	}
}

func TestRole_AtLeastPapelDesconhecidoNuncaPassa(t *testing.T) {
	assert.False(t, Role("GERENTE").AtLeast(RoleBasic))
	assert.False(t, RoleAdm.AtLeast(Role("GERENTE")))
}
