package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/config"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock Services ──

type mockAuthService struct {
	loginResult      *dto.LoginResponse
	loginErr         error
	logoutErr        error
	getCurrentResult *dto.UserInfo
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserInfo, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

type mockSolicitacaoService struct {
	criarResult   *model.SolicitacaoAlteracao
	criarErr      error
	avaliarResult *model.SolicitacaoAlteracao
	avaliarErr    error
	getResult     *model.SolicitacaoAlteracao
	getErr        error
	listResult    *dto.SolicitacaoListResponse
	listErr       error
}

func (m *mockSolicitacaoService) Criar(_ context.Context, _, _ string, _ *dto.CriarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error) {
	return m.criarResult, m.criarErr
}
func (m *mockSolicitacaoService) Avaliar(_ context.Context, _, _, _ string, _ *dto.AvaliarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error) {
	return m.avaliarResult, m.avaliarErr
}
func (m *mockSolicitacaoService) Get(_ context.Context, _, _, _ string) (*model.SolicitacaoAlteracao, error) {
	return m.getResult, m.getErr
}
func (m *mockSolicitacaoService) List(_ context.Context, _, _ string, _ *dto.ListSolicitacoesRequest) (*dto.SolicitacaoListResponse, error) {
	return m.listResult, m.listErr
}

type mockEscalaService struct {
	listResult    *dto.EscalaListResponse
	listErr       error
	filtrosResult *dto.FiltroOptions
	filtrosErr    error
	alterarResult *dto.AlterarEscalaResponse
	alterarErr    error
}

func (m *mockEscalaService) ListarMes(_ context.Context, _ *dto.ListEscalasRequest) (*dto.EscalaListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockEscalaService) OpcoesFiltro(_ context.Context) (*dto.FiltroOptions, error) {
	return m.filtrosResult, m.filtrosErr
}
func (m *mockEscalaService) AlterarDireto(_ context.Context, _, _ string, _ *dto.AlterarEscalaRequest) (*dto.AlterarEscalaResponse, error) {
	return m.alterarResult, m.alterarErr
}

type mockImportService struct {
	stats *dto.ImportStats
	err   error
}

func (m *mockImportService) Importar(_ context.Context, _, _ string, _, _ int, _ string, _ []byte) (*dto.ImportStats, error) {
	return m.stats, m.err
}

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportarMes(_ context.Context, _, _ int) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

type mockNotificacaoService struct {
	listResult    *dto.NotificacaoListResponse
	listErr       error
	marcarLidaErr error
}

func (m *mockNotificacaoService) Listar(_ context.Context, _ string, _ *dto.ListNotificacoesRequest) (*dto.NotificacaoListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockNotificacaoService) MarcarLida(_ context.Context, _, _ string) error {
	return m.marcarLidaErr
}

// ── Auxiliares ──

func autenticado(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "user-teste")
		c.Set("role", role)
		c.Set("token_jti", "jti-teste")
		c.Set("token_exp", time.Now().Add(time.Hour))
		c.Next()
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			Token: "token-teste",
			User:  &dto.UserInfo{ID: "user-1", Matricula: "1001", Role: model.RoleAnalista},
		},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{Matricula: "1001", Senha: "senha"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperado 200, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("esperado code 0, veio %d", resp.Code)
	}
}

func TestAuthHandler_Login_JSONInvalido(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("não é json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperado 400, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("esperado code 10001, veio %d", resp.Code)
	}
}

func TestAuthHandler_Login_CredenciaisInvalidas(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrCredenciaisInvalidas})

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{Matricula: "1001", Senha: "errada"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("esperado 401, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("esperado code 11001, veio %d", resp.Code)
	}
}

func TestAuthHandler_Me_SemContexto(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.GET("/auth/me", h.Me)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("requisição sem contexto de autenticação deveria dar 401, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10002 {
		t.Errorf("esperado code 10002, veio %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/logout", autenticado(model.RoleAnalista), h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperado 200, veio %d", w.Code)
	}
}

// ── SolicitacaoHandler ──

func TestSolicitacaoHandler_Criar_Success(t *testing.T) {
	mock := &mockSolicitacaoService{
		criarResult: &model.SolicitacaoAlteracao{ID: "sol-1", Status: model.SolicitacaoPendente},
	}
	h := NewSolicitacaoHandler(mock)

	r := gin.New()
	r.POST("/solicitacoes", autenticado(model.RoleSupervisor), h.Criar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/solicitacoes", jsonBody(dto.CriarSolicitacaoRequest{
		ColaboradorID: "5f7b9a31-44cc-4cf5-b1d0-0a4d0e3a9f11",
		DataEscala:    "2025-06-10",
		ValorNovo:     "FT",
		Motivo:        "Ajuste",
		Justificativa: "Solicitado pelo colaborador",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("esperado 201, veio %d", w.Code)
	}
}

func TestSolicitacaoHandler_Criar_Duplicada(t *testing.T) {
	h := NewSolicitacaoHandler(&mockSolicitacaoService{criarErr: service.ErrSolicitacaoDuplicada})

	r := gin.New()
	r.POST("/solicitacoes", autenticado(model.RoleSupervisor), h.Criar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/solicitacoes", jsonBody(dto.CriarSolicitacaoRequest{
		ColaboradorID: "5f7b9a31-44cc-4cf5-b1d0-0a4d0e3a9f11",
		DataEscala:    "2025-06-10",
		ValorNovo:     "FT",
		Motivo:        "Ajuste",
		Justificativa: "Solicitado pelo colaborador",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("esperado 409, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12005 {
		t.Errorf("esperado code 12005, veio %d", resp.Code)
	}
}

func TestSolicitacaoHandler_Avaliar_JaProcessada(t *testing.T) {
	h := NewSolicitacaoHandler(&mockSolicitacaoService{
		avaliarErr: &service.JaProcessadaError{Status: model.SolicitacaoAprovada},
	})

	r := gin.New()
	r.PUT("/solicitacoes/:id/avaliar", autenticado(model.RoleAnalista), h.Avaliar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/solicitacoes/sol-1/avaliar", jsonBody(dto.AvaliarSolicitacaoRequest{Acao: "aprovar"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("esperado 409, veio %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12006 {
		t.Errorf("esperado code 12006, veio %d", resp.Code)
	}
}

func TestSolicitacaoHandler_Avaliar_AcaoInvalida(t *testing.T) {
	h := NewSolicitacaoHandler(&mockSolicitacaoService{})

	r := gin.New()
	r.PUT("/solicitacoes/:id/avaliar", autenticado(model.RoleAnalista), h.Avaliar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/solicitacoes/sol-1/avaliar", jsonBody(gin.H{"acao": "cancelar"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ação fora de aprovar/rejeitar deveria dar 400, veio %d", w.Code)
	}
}

func TestSolicitacaoHandler_Get_SemPermissao(t *testing.T) {
	h := NewSolicitacaoHandler(&mockSolicitacaoService{getErr: service.ErrSemPermissao})

	r := gin.New()
	r.GET("/solicitacoes/:id", autenticado(model.RoleSupervisor), h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/solicitacoes/sol-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("esperado 403, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12002 {
		t.Errorf("esperado code 12002, veio %d", resp.Code)
	}
}

// ── EscalaHandler ──

func escalaHandlerComMocks(escala *mockEscalaService, importa *mockImportService, exporta *mockExportService) *EscalaHandler {
	cfg := &config.Config{Upload: config.UploadConfig{MaxBodyBytes: 1 << 20}}
	return NewEscalaHandler(cfg, escala, importa, exporta)
}

func TestEscalaHandler_Listar_ParametrosObrigatorios(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{}, &mockExportService{})

	r := gin.New()
	r.GET("/escalas", autenticado(model.RoleAnalista), h.Listar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/escalas", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("sem mes e ano deveria dar 400, veio %d", w.Code)
	}
}

func TestEscalaHandler_Filtros(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{
		filtrosResult: &dto.FiltroOptions{Grupos: []string{"Grupo A", "Grupo B"}},
	}, &mockImportService{}, &mockExportService{})

	r := gin.New()
	r.GET("/escalas/filtros", autenticado(model.RoleSupervisor), h.Filtros)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/escalas/filtros", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("esperado 200, veio %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data dto.FiltroOptions `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Data.Grupos) != 2 || body.Data.Grupos[0] != "Grupo A" {
		t.Errorf("esperados 2 grupos ordenados, veio %v", body.Data.Grupos)
	}
}

func TestEscalaHandler_Alterar_ComAviso(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{
		alterarResult: &dto.AlterarEscalaResponse{
			Dia:   &model.EscalaDia{ID: "dia-1", Dia: 10, Alterado: true},
			Aviso: "alteração aplicada, mas o registro de auditoria não pôde ser criado",
		},
	}, &mockImportService{}, &mockExportService{})

	r := gin.New()
	r.PUT("/escalas/alterar", autenticado(model.RoleAnalista), h.Alterar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/escalas/alterar", jsonBody(dto.AlterarEscalaRequest{
		ColaboradorID: "5f7b9a31-44cc-4cf5-b1d0-0a4d0e3a9f11",
		DataEscala:    "2025-06-10",
		ValorNovo:     "FR",
		Motivo:        "Correção",
		Justificativa: "Divergência de ponto",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("alteração com aviso continua sendo 200, veio %d", w.Code)
	}
	var body struct {
		Data dto.AlterarEscalaResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Data.Aviso == "" {
		t.Error("o aviso de auditoria deveria chegar na resposta")
	}
}

func TestEscalaHandler_Upload_Success(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{
		stats: &dto.ImportStats{Success: true, Colaboradores: 2, Dias: 4, ReplacedExisting: true, RemovedEscalas: 2},
	}, &mockExportService{})

	r := gin.New()
	r.POST("/escalas/upload", autenticado(model.RoleAnalista), h.Upload)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("mes", "6")
	mw.WriteField("ano", "2025")
	fw, _ := mw.CreateFormFile("file", "junho.csv")
	fw.Write([]byte("MATRICULA;NOME;RESPONSAVEL;DEPART;GRUPO;FUNÇÃO;COD_ESCALA;1\n001;Maria Silva;Carlos;Operações;A;Técnica;X1;FR\n"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/escalas/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperado 200, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("esperado code 0, veio %d", resp.Code)
	}
	corpo := w.Body.String()
	if !strings.Contains(corpo, `"replacedExisting":true`) || !strings.Contains(corpo, `"removedEscalas":2`) {
		t.Errorf("resumo deveria usar as chaves replacedExisting/removedEscalas, veio %s", corpo)
	}
}

func TestEscalaHandler_Upload_ColunasAusentes(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{
		err: &service.ColunasAusentesError{Colunas: []string{"MATRICULA", "DEPART"}},
	}, &mockExportService{})

	r := gin.New()
	r.POST("/escalas/upload", autenticado(model.RoleAnalista), h.Upload)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("mes", "6")
	mw.WriteField("ano", "2025")
	fw, _ := mw.CreateFormFile("file", "junho.csv")
	fw.Write([]byte("NOME;1\nMaria Silva;FR\n"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/escalas/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("cabeçalho incompleto deveria dar 400, veio %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13006 {
		t.Errorf("esperado code 13006, veio %d", resp.Code)
	}
	if !strings.Contains(resp.Message, "MATRICULA") || !strings.Contains(resp.Message, "DEPART") {
		t.Errorf("mensagem deveria listar as colunas ausentes, veio %q", resp.Message)
	}
}

func TestEscalaHandler_Upload_SemArquivo(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{}, &mockExportService{})

	r := gin.New()
	r.POST("/escalas/upload", autenticado(model.RoleAnalista), h.Upload)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("mes", "6")
	mw.WriteField("ano", "2025")
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/escalas/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("sem arquivo deveria dar 400, veio %d", w.Code)
	}
}

func TestEscalaHandler_Upload_MesInvalido(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{}, &mockExportService{})

	r := gin.New()
	r.POST("/escalas/upload", autenticado(model.RoleAnalista), h.Upload)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("mes", "13")
	mw.WriteField("ano", "2025")
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/escalas/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("mes 13 deveria dar 400, veio %d", w.Code)
	}
}

func TestEscalaHandler_Export_Success(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{}, &mockExportService{
		buf:      bytes.NewBufferString("conteudo-xlsx"),
		filename: "escala_2025_06.xlsx",
	})

	r := gin.New()
	r.GET("/escalas/export", autenticado(model.RoleAnalista), h.Export)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/escalas/export?mes=6&ano=2025", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperado 200, veio %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd != `attachment; filename="escala_2025_06.xlsx"` {
		t.Errorf("Content-Disposition incorreto: %q", cd)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type incorreto: %q", ct)
	}
}

func TestEscalaHandler_Export_SemEscalas(t *testing.T) {
	h := escalaHandlerComMocks(&mockEscalaService{}, &mockImportService{}, &mockExportService{
		err: service.ErrExportSemEscalas,
	})

	r := gin.New()
	r.GET("/escalas/export", autenticado(model.RoleAnalista), h.Export)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/escalas/export?mes=6&ano=2025", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("esperado 404, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 13005 {
		t.Errorf("esperado code 13005, veio %d", resp.Code)
	}
}

// ── NotificacaoHandler ──

func TestNotificacaoHandler_MarcarLida_NaoEncontrada(t *testing.T) {
	h := NewNotificacaoHandler(&mockNotificacaoService{marcarLidaErr: service.ErrNotificacaoNaoEncontrada})

	r := gin.New()
	r.PUT("/notificacoes/:id/lida", autenticado(model.RoleSupervisor), h.MarcarLida)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/notificacoes/not-x/lida", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("esperado 404, veio %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 14001 {
		t.Errorf("esperado code 14001, veio %d", resp.Code)
	}
}

// ── DashboardHandler ──

type mockDashboardService struct {
	stats *dto.DashboardStats
	err   error
}

func (m *mockDashboardService) Stats(_ context.Context, _ string, _, _ int) (*dto.DashboardStats, error) {
	return m.stats, m.err
}

func TestDashboardHandler_Stats(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{stats: &dto.DashboardStats{TotalColaboradores: 5}})

	r := gin.New()
	r.GET("/dashboard/stats", autenticado(model.RoleGerencia), h.Stats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard/stats?mes=6&ano=2025", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperado 200, veio %d", w.Code)
	}
}

func TestDashboardHandler_Stats_MesInvalido(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{})

	r := gin.New()
	r.GET("/dashboard/stats", autenticado(model.RoleGerencia), h.Stats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard/stats?mes=0", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperado 400, veio %d", w.Code)
	}
}
