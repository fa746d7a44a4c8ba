package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Matricula
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByMatricula(_ context.Context, matricula string) (*model.User, error) {
	for _, u := range m.users {
		if u.Matricula == matricula {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateSenha(_ context.Context, id, senhaHash string, primeiroAcesso bool) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.SenhaHash = senhaHash
	u.PrimeiroAcesso = primeiroAcesso
	return nil
}

// ── Mock ColaboradorRepository ──

type mockColaboradorRepo struct {
	colaboradores map[string]*model.Colaborador
	idCounter     int
}

func newMockColaboradorRepo() *mockColaboradorRepo {
	return &mockColaboradorRepo{colaboradores: make(map[string]*model.Colaborador)}
}

func (m *mockColaboradorRepo) GetByID(_ context.Context, id string) (*model.Colaborador, error) {
	if c, ok := m.colaboradores[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockColaboradorRepo) GetByMatricula(_ context.Context, matricula string) (*model.Colaborador, error) {
	for _, c := range m.colaboradores {
		if c.Matricula == matricula {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockColaboradorRepo) Upsert(_ context.Context, colaborador *model.Colaborador) error {
	for _, c := range m.colaboradores {
		if c.Matricula == colaborador.Matricula {
			colaborador.ID = c.ID
			m.colaboradores[c.ID] = colaborador
			return nil
		}
	}
	if colaborador.ID == "" {
		m.idCounter++
		colaborador.ID = fmt.Sprintf("col-%d", m.idCounter)
	}
	m.colaboradores[colaborador.ID] = colaborador
	return nil
}

func (m *mockColaboradorRepo) Count(_ context.Context) (int64, error) {
	var total int64
	for _, c := range m.colaboradores {
		if c.Ativo {
			total++
		}
	}
	return total, nil
}

func (m *mockColaboradorRepo) Distinct(_ context.Context, coluna string) ([]string, error) {
	vistos := make(map[string]bool)
	var valores []string
	for _, c := range m.colaboradores {
		if !c.Ativo {
			continue
		}
		var v *string
		switch coluna {
		case "responsavel":
			v = c.Responsavel
		case "departamento":
			v = c.Departamento
		case "grupo":
			v = c.Grupo
		case "funcao":
			v = c.Funcao
		case "cod_escala":
			v = c.CodEscala
		}
		if v == nil || vistos[*v] {
			continue
		}
		vistos[*v] = true
		valores = append(valores, *v)
	}
	sort.Strings(valores)
	return valores, nil
}

// ── Mock EscalaRepository ──

type mockEscalaRepo struct {
	escalas   map[string]*model.Escala
	idCounter int
	// colaboradores para compor a listagem com associações
	colaboradorRepo *mockColaboradorRepo
	diaRepo         *mockEscalaDiaRepo
}

func newMockEscalaRepo() *mockEscalaRepo {
	return &mockEscalaRepo{escalas: make(map[string]*model.Escala)}
}

func (m *mockEscalaRepo) GetByColaboradorMesAno(_ context.Context, colaboradorID string, mes, ano int) (*model.Escala, error) {
	for _, e := range m.escalas {
		if e.ColaboradorID == colaboradorID && e.Mes == mes && e.Ano == ano {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEscalaRepo) Upsert(_ context.Context, escala *model.Escala) error {
	for _, e := range m.escalas {
		if e.ColaboradorID == escala.ColaboradorID && e.Mes == escala.Mes && e.Ano == escala.Ano {
			escala.ID = e.ID
			m.escalas[e.ID] = escala
			return nil
		}
	}
	if escala.ID == "" {
		m.idCounter++
		escala.ID = fmt.Sprintf("esc-%d", m.idCounter)
	}
	m.escalas[escala.ID] = escala
	return nil
}

func (m *mockEscalaRepo) ListMes(_ context.Context, mes, ano int, busca, responsavel, departamento string, offset, limit int) ([]*model.Escala, int64, error) {
	var result []*model.Escala
	for _, e := range m.escalas {
		if e.Mes != mes || e.Ano != ano {
			continue
		}
		if m.colaboradorRepo != nil {
			if c, ok := m.colaboradorRepo.colaboradores[e.ColaboradorID]; ok {
				cp := *e
				cp.Colaborador = c
				if m.diaRepo != nil {
					for _, d := range m.diaRepo.dias {
						if d.EscalaID == e.ID {
							cp.Dias = append(cp.Dias, *d)
						}
					}
				}
				if busca != "" && !strings.Contains(c.Nome, busca) && !strings.Contains(c.Matricula, busca) {
					continue
				}
				result = append(result, &cp)
				continue
			}
		}
		result = append(result, e)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockEscalaRepo) ListIDsByMesAno(_ context.Context, mes, ano int) ([]string, error) {
	var ids []string
	for id, e := range m.escalas {
		if e.Mes == mes && e.Ano == ano {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mockEscalaRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.escalas, id)
	}
	return nil
}

func (m *mockEscalaRepo) CountByMesAno(_ context.Context, mes, ano int) (int64, error) {
	var total int64
	for _, e := range m.escalas {
		if e.Mes == mes && e.Ano == ano {
			total++
		}
	}
	return total, nil
}

// ── Mock EscalaDiaRepository ──

type mockEscalaDiaRepo struct {
	dias      map[string]*model.EscalaDia
	idCounter int
}

func newMockEscalaDiaRepo() *mockEscalaDiaRepo {
	return &mockEscalaDiaRepo{dias: make(map[string]*model.EscalaDia)}
}

func (m *mockEscalaDiaRepo) GetByEscalaDia(_ context.Context, escalaID string, dia int) (*model.EscalaDia, error) {
	for _, d := range m.dias {
		if d.EscalaID == escalaID && d.Dia == dia {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEscalaDiaRepo) GetByID(_ context.Context, id string) (*model.EscalaDia, error) {
	if d, ok := m.dias[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEscalaDiaRepo) Upsert(_ context.Context, dia *model.EscalaDia) error {
	for _, d := range m.dias {
		if d.EscalaID == dia.EscalaID && d.Dia == dia.Dia {
			dia.ID = d.ID
			m.dias[d.ID] = dia
			return nil
		}
	}
	if dia.ID == "" {
		m.idCounter++
		dia.ID = fmt.Sprintf("dia-%d", m.idCounter)
	}
	m.dias[dia.ID] = dia
	return nil
}

func (m *mockEscalaDiaRepo) BatchUpsert(ctx context.Context, dias []model.EscalaDia) error {
	for i := range dias {
		d := dias[i]
		if err := m.Upsert(ctx, &d); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEscalaDiaRepo) ListByEscalaIDs(_ context.Context, escalaIDs []string) ([]string, error) {
	var ids []string
	for id, d := range m.dias {
		for _, eid := range escalaIDs {
			if d.EscalaID == eid {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

func (m *mockEscalaDiaRepo) DeleteByEscalaIDs(_ context.Context, escalaIDs []string) error {
	for id, d := range m.dias {
		for _, eid := range escalaIDs {
			if d.EscalaID == eid {
				delete(m.dias, id)
				break
			}
		}
	}
	return nil
}

// ── Mock SolicitacaoRepository ──

type mockSolicitacaoRepo struct {
	solicitacoes map[string]*model.SolicitacaoAlteracao
	idCounter    int
	failCreate   bool
	// executado antes de gravar a decisão, para simular um avaliador concorrente
	antesDoUpdate func()
}

func newMockSolicitacaoRepo() *mockSolicitacaoRepo {
	return &mockSolicitacaoRepo{solicitacoes: make(map[string]*model.SolicitacaoAlteracao)}
}

func (m *mockSolicitacaoRepo) Create(_ context.Context, sol *model.SolicitacaoAlteracao) error {
	if m.failCreate {
		return errors.New("insert falhou")
	}
	if sol.Status == model.SolicitacaoPendente {
		for _, s := range m.solicitacoes {
			if s.ColaboradorID == sol.ColaboradorID && s.DataEscala == sol.DataEscala && s.Status == model.SolicitacaoPendente {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if sol.ID == "" {
		m.idCounter++
		sol.ID = fmt.Sprintf("sol-%d", m.idCounter)
	}
	m.solicitacoes[sol.ID] = sol
	return nil
}

func (m *mockSolicitacaoRepo) GetByID(_ context.Context, id string) (*model.SolicitacaoAlteracao, error) {
	if s, ok := m.solicitacoes[id]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSolicitacaoRepo) UpdateSePendente(_ context.Context, sol *model.SolicitacaoAlteracao) (bool, error) {
	if m.antesDoUpdate != nil {
		m.antesDoUpdate()
	}
	atual, ok := m.solicitacoes[sol.ID]
	if !ok || atual.Status != model.SolicitacaoPendente {
		return false, nil
	}
	copia := *sol
	m.solicitacoes[sol.ID] = &copia
	return true, nil
}

func (m *mockSolicitacaoRepo) List(_ context.Context, filter repository.SolicitacaoFilter, offset, limit int) ([]*model.SolicitacaoAlteracao, int64, error) {
	var result []*model.SolicitacaoAlteracao
	for _, s := range m.solicitacoes {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.ColaboradorID != "" && s.ColaboradorID != filter.ColaboradorID {
			continue
		}
		if filter.SolicitanteID != "" && s.SolicitanteID != filter.SolicitanteID {
			continue
		}
		if filter.DataPrefix != "" && !strings.HasPrefix(s.DataEscala, filter.DataPrefix) {
			continue
		}
		result = append(result, s)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockSolicitacaoRepo) ExistsPendente(_ context.Context, colaboradorID, dataEscala string) (bool, error) {
	for _, s := range m.solicitacoes {
		if s.ColaboradorID == colaboradorID && s.DataEscala == dataEscala && s.Status == model.SolicitacaoPendente {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSolicitacaoRepo) CountPendentes(_ context.Context) (int64, error) {
	var total int64
	for _, s := range m.solicitacoes {
		if s.Status == model.SolicitacaoPendente {
			total++
		}
	}
	return total, nil
}

func (m *mockSolicitacaoRepo) DeleteByEscalaDiaIDs(_ context.Context, diaIDs []string) error {
	for id, s := range m.solicitacoes {
		if s.EscalaDiaID == nil {
			continue
		}
		for _, did := range diaIDs {
			if *s.EscalaDiaID == did {
				delete(m.solicitacoes, id)
				break
			}
		}
	}
	return nil
}

// ── Mock NotificacaoRepository ──

type mockNotificacaoRepo struct {
	notificacoes map[string]*model.Notificacao
	idCounter    int
}

func newMockNotificacaoRepo() *mockNotificacaoRepo {
	return &mockNotificacaoRepo{notificacoes: make(map[string]*model.Notificacao)}
}

func (m *mockNotificacaoRepo) Create(_ context.Context, n *model.Notificacao) error {
	if n.ID == "" {
		m.idCounter++
		n.ID = fmt.Sprintf("not-%d", m.idCounter)
	}
	m.notificacoes[n.ID] = n
	return nil
}

func (m *mockNotificacaoRepo) GetByID(_ context.Context, id string) (*model.Notificacao, error) {
	if n, ok := m.notificacoes[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificacaoRepo) ListByUsuario(_ context.Context, usuarioID string, apenasNaoLidas bool, offset, limit int) ([]*model.Notificacao, int64, error) {
	var result []*model.Notificacao
	for _, n := range m.notificacoes {
		if n.UsuarioID != usuarioID {
			continue
		}
		if apenasNaoLidas && n.Lida {
			continue
		}
		result = append(result, n)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockNotificacaoRepo) CountNaoLidas(_ context.Context, usuarioID string) (int64, error) {
	var total int64
	for _, n := range m.notificacoes {
		if n.UsuarioID == usuarioID && !n.Lida {
			total++
		}
	}
	return total, nil
}

func (m *mockNotificacaoRepo) MarcarLida(_ context.Context, id string) error {
	n, ok := m.notificacoes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.Lida = true
	return nil
}

// ── Mock UsuarioAlteracaoRepository ──

type mockUsuarioAlteracaoRepo struct {
	// "usuario:mes:ano" → total
	contadores map[string]int
}

func newMockUsuarioAlteracaoRepo() *mockUsuarioAlteracaoRepo {
	return &mockUsuarioAlteracaoRepo{contadores: make(map[string]int)}
}

func (m *mockUsuarioAlteracaoRepo) Incrementar(_ context.Context, usuarioID string, mes, ano int) error {
	m.contadores[fmt.Sprintf("%s:%d:%d", usuarioID, mes, ano)]++
	return nil
}

func (m *mockUsuarioAlteracaoRepo) SumByMesAno(_ context.Context, mes, ano int) (int64, error) {
	var total int64
	sufixo := fmt.Sprintf(":%d:%d", mes, ano)
	for k, v := range m.contadores {
		if strings.HasSuffix(k, sufixo) {
			total += int64(v)
		}
	}
	return total, nil
}

// ── Montagem do agregado para os testes de serviço ──

type testMocks struct {
	user        *mockUserRepo
	colaborador *mockColaboradorRepo
	escala      *mockEscalaRepo
	escalaDia   *mockEscalaDiaRepo
	solicitacao *mockSolicitacaoRepo
	notificacao *mockNotificacaoRepo
	alteracao   *mockUsuarioAlteracaoRepo
}

func newTestRepository() (*repository.Repository, *testMocks) {
	m := &testMocks{
		user:        newMockUserRepo(),
		colaborador: newMockColaboradorRepo(),
		escala:      newMockEscalaRepo(),
		escalaDia:   newMockEscalaDiaRepo(),
		solicitacao: newMockSolicitacaoRepo(),
		notificacao: newMockNotificacaoRepo(),
		alteracao:   newMockUsuarioAlteracaoRepo(),
	}
	m.escala.colaboradorRepo = m.colaborador
	m.escala.diaRepo = m.escalaDia
	repo := &repository.Repository{
		User:             m.user,
		Colaborador:      m.colaborador,
		Escala:           m.escala,
		EscalaDia:        m.escalaDia,
		Solicitacao:      m.solicitacao,
		Notificacao:      m.notificacao,
		UsuarioAlteracao: m.alteracao,
	}
	return repo, m
}

func strPtr(s string) *string { return &s }
