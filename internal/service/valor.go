package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

var (
	ErrValorInvalido = errors.New("valor de escala inválido")
	ErrDataInvalida  = errors.New("data de escala inválida, use o formato YYYY-MM-DD")
)

// statusValidos códigos aceitos como status de dia
var statusValidos = map[string]bool{
	model.StatusFolgaRemunerada:    true,
	model.StatusFalta:              true,
	model.StatusTreinamento:        true,
	model.StatusFolgaCompensatoria: true,
}

// Valor forma canônica de um valor de dia de escala. Três casos possíveis:
// dia trabalhado (DT), código de status ou faixa de horário.
type Valor struct {
	dt      bool
	status  string
	horario string
}

// ParseValor normaliza a entrada bruta. Vazio e "DT" (qualquer caixa)
// significam dia trabalhado; códigos conhecidos viram status; o restante
// é tratado como horário livre.
func ParseValor(raw string) (Valor, error) {
	limpo := strings.TrimSpace(raw)
	if limpo == "" || strings.EqualFold(limpo, "DT") {
		return Valor{dt: true}, nil
	}
	maiusculo := strings.ToUpper(limpo)
	if statusValidos[maiusculo] {
		return Valor{status: maiusculo}, nil
	}
	if len(limpo) > 50 {
		return Valor{}, ErrValorInvalido
	}
	return Valor{horario: limpo}, nil
}

// IsDT indica dia trabalhado
func (v Valor) IsDT() bool { return v.dt }

// IsStatus indica código de status
func (v Valor) IsStatus() bool { return v.status != "" }

// StatusPtr status a persistir no dia — nulo para DT e horário
func (v Valor) StatusPtr() *string {
	if v.status == "" {
		return nil
	}
	s := v.status
	return &s
}

// HorarioPtr horário a persistir no dia — nulo para DT e status
func (v Valor) HorarioPtr() *string {
	if v.horario == "" {
		return nil
	}
	h := v.horario
	return &h
}

// Audit representação textual gravada em trilhas de auditoria. DT é
// registrado com o literal "DT" mesmo quando o dia persiste nulo.
func (v Valor) Audit() string {
	switch {
	case v.dt:
		return "DT"
	case v.status != "":
		return v.status
	default:
		return v.horario
	}
}

// diasNoMes dias do mês considerando ano bissexto
func diasNoMes(mes, ano int) int {
	switch mes {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if (ano%4 == 0 && ano%100 != 0) || ano%400 == 0 {
			return 29
		}
		return 28
	}
}

// ParseDataEscala decompõe uma data YYYY-MM-DD por divisão literal do
// texto, sem envolver fuso horário. time.Parse deslocaria o dia em
// ambientes com offset negativo, o que já causou escalas aplicadas no
// dia errado.
func ParseDataEscala(data string) (ano, mes, dia int, err error) {
	partes := strings.Split(strings.TrimSpace(data), "-")
	if len(partes) != 3 {
		return 0, 0, 0, ErrDataInvalida
	}
	ano, errAno := strconv.Atoi(partes[0])
	mes, errMes := strconv.Atoi(partes[1])
	dia, errDia := strconv.Atoi(partes[2])
	if errAno != nil || errMes != nil || errDia != nil {
		return 0, 0, 0, ErrDataInvalida
	}
	if ano < 2000 || ano > 2100 || mes < 1 || mes > 12 || dia < 1 || dia > diasNoMes(mes, ano) {
		return 0, 0, 0, ErrDataInvalida
	}
	return ano, mes, dia, nil
}

// FormatDataEscala recompõe a forma canônica YYYY-MM-DD com zeros à esquerda
func FormatDataEscala(ano, mes, dia int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(ano))
	sb.WriteByte('-')
	if mes < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(mes))
	sb.WriteByte('-')
	if dia < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(dia))
	return sb.String()
}

// agora é substituível em teste
var agora = time.Now
