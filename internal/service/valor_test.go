package service

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// ── ParseValor ──

func TestParseValor_DiaTrabalhado(t *testing.T) {
	casos := []string{"", "  ", "DT", "dt", "Dt", " DT "}
	for _, entrada := range casos {
		v, err := ParseValor(entrada)
		if err != nil {
			t.Fatalf("ParseValor(%q) deveria aceitar: %v", entrada, err)
		}
		if !v.IsDT() {
			t.Errorf("ParseValor(%q) deveria resultar em DT", entrada)
		}
		if v.StatusPtr() != nil || v.HorarioPtr() != nil {
			t.Errorf("DT deve persistir status e horário nulos (%q)", entrada)
		}
		if v.Audit() != "DT" {
			t.Errorf("auditoria de DT deve registrar o literal DT, veio %q", v.Audit())
		}
	}
}

func TestParseValor_Status(t *testing.T) {
	casos := map[string]string{
		"FR": "FR",
		"fr": "FR",
		"FT": "FT",
		"TR": "TR",
		"tr": "TR",
		"FC": "FC",
	}
	for entrada, esperado := range casos {
		v, err := ParseValor(entrada)
		if err != nil {
			t.Fatalf("ParseValor(%q) deveria aceitar: %v", entrada, err)
		}
		if !v.IsStatus() {
			t.Fatalf("ParseValor(%q) deveria resultar em status", entrada)
		}
		if got := *v.StatusPtr(); got != esperado {
			t.Errorf("ParseValor(%q): esperado status %s, veio %s", entrada, esperado, got)
		}
		if v.HorarioPtr() != nil {
			t.Errorf("status não pode conviver com horário (%q)", entrada)
		}
		if v.Audit() != esperado {
			t.Errorf("auditoria de status deve registrar %s, veio %s", esperado, v.Audit())
		}
	}
}

func TestParseValor_Horario(t *testing.T) {
	v, err := ParseValor("08:00-16:00")
	if err != nil {
		t.Fatalf("ParseValor deveria aceitar horário: %v", err)
	}
	if v.IsDT() || v.IsStatus() {
		t.Fatal("horário livre não é DT nem status")
	}
	if got := *v.HorarioPtr(); got != "08:00-16:00" {
		t.Errorf("esperado horário 08:00-16:00, veio %s", got)
	}
	if v.StatusPtr() != nil {
		t.Error("horário deve persistir status nulo")
	}
	if v.Audit() != "08:00-16:00" {
		t.Errorf("auditoria de horário deve registrar o texto, veio %s", v.Audit())
	}
}

func TestParseValor_HorarioLongo(t *testing.T) {
	_, err := ParseValor(strings.Repeat("x", 51))
	if !errors.Is(err, ErrValorInvalido) {
		t.Errorf("esperado ErrValorInvalido para texto acima de 50 caracteres, veio: %v", err)
	}
}

// ── ParseDataEscala ──

func TestParseDataEscala_Valida(t *testing.T) {
	ano, mes, dia, err := ParseDataEscala("2025-03-05")
	if err != nil {
		t.Fatalf("data válida rejeitada: %v", err)
	}
	if ano != 2025 || mes != 3 || dia != 5 {
		t.Errorf("esperado (2025, 3, 5), veio (%d, %d, %d)", ano, mes, dia)
	}
}

func TestParseDataEscala_Bissexto(t *testing.T) {
	if _, _, _, err := ParseDataEscala("2024-02-29"); err != nil {
		t.Errorf("29/02 em ano bissexto deveria ser aceito: %v", err)
	}
	if _, _, _, err := ParseDataEscala("2025-02-29"); !errors.Is(err, ErrDataInvalida) {
		t.Errorf("29/02 fora de ano bissexto deveria ser rejeitado, veio: %v", err)
	}
}

func TestParseDataEscala_Invalida(t *testing.T) {
	casos := []string{
		"2025-02-30",
		"2025-13-01",
		"2025-00-10",
		"2025-06-00",
		"2025-06-31",
		"1999-06-10",
		"2101-06-10",
		"2025/06/10",
		"10-06-2025",
		"2025-06",
		"abc",
		"",
	}
	for _, entrada := range casos {
		if _, _, _, err := ParseDataEscala(entrada); !errors.Is(err, ErrDataInvalida) {
			t.Errorf("ParseDataEscala(%q): esperado ErrDataInvalida, veio %v", entrada, err)
		}
	}
}

func TestParseDataEscala_IndependeDeFuso(t *testing.T) {
	// fuso com offset negativo era o cenário que deslocava o dia quando a
	// data passava por time.Parse
	original := time.Local
	time.Local = time.FixedZone("UTC-11", -11*3600)
	defer func() { time.Local = original }()

	ano, mes, dia, err := ParseDataEscala("2025-01-01")
	if err != nil {
		t.Fatalf("data válida rejeitada: %v", err)
	}
	if ano != 2025 || mes != 1 || dia != 1 {
		t.Errorf("o dia não pode deslocar com o fuso, veio (%d, %d, %d)", ano, mes, dia)
	}
}

// ── FormatDataEscala ──

func TestFormatDataEscala_ZerosEsquerda(t *testing.T) {
	if got := FormatDataEscala(2025, 3, 5); got != "2025-03-05" {
		t.Errorf("esperado 2025-03-05, veio %s", got)
	}
	if got := FormatDataEscala(2025, 12, 31); got != "2025-12-31" {
		t.Errorf("esperado 2025-12-31, veio %s", got)
	}
}

func TestFormatDataEscala_RoundTrip(t *testing.T) {
	ano, mes, dia, err := ParseDataEscala(FormatDataEscala(2026, 1, 9))
	if err != nil {
		t.Fatalf("forma canônica deveria ser aceita de volta: %v", err)
	}
	if ano != 2026 || mes != 1 || dia != 9 {
		t.Errorf("esperado (2026, 1, 9), veio (%d, %d, %d)", ano, mes, dia)
	}
}
