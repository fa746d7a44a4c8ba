package model

import "time"

// Estados da solicitação de alteração. pendente é o estado inicial;
// aprovado e rejeitado são terminais.
const (
	SolicitacaoPendente  = "pendente"
	SolicitacaoAprovada  = "aprovado"
	SolicitacaoRejeitada = "rejeitado"
)

// SolicitacaoAlteracao proposta de mutação de um dia de escala — tabela solicitacoes_alteracao
//
// data_escala guarda a data no formato literal YYYY-MM-DD; é a fonte de
// verdade calendárica da solicitação (escala_dia_id é apenas um snapshot
// que pode ser nulo se o dia ainda não existia ao criar).
type SolicitacaoAlteracao struct {
	ID                  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SolicitanteID       string     `gorm:"type:uuid;not null"                             json:"solicitante_id"`
	ColaboradorID       string     `gorm:"type:uuid;not null"                             json:"colaborador_id"`
	EscalaDiaID         *string    `gorm:"type:uuid"                                      json:"escala_dia_id,omitempty"`
	DataEscala          string     `gorm:"type:varchar(10);not null"                      json:"data_escala"`
	ValorAtual          *string    `gorm:"type:varchar(50)"                               json:"valor_atual,omitempty"`
	ValorNovo           string     `gorm:"type:varchar(50);not null"                      json:"valor_novo"`
	Motivo              string     `gorm:"type:varchar(100);not null"                     json:"motivo"`
	Justificativa       string     `gorm:"type:text;not null"                             json:"justificativa"`
	Status              string     `gorm:"type:varchar(20);not null;default:'pendente'"   json:"status"`
	AprovadoPor         *string    `gorm:"type:uuid"                                      json:"aprovado_por,omitempty"`
	AprovadoEm          *time.Time `json:"aprovado_em,omitempty"`
	ComentarioAprovador *string    `gorm:"type:text"                                      json:"comentario_aprovador,omitempty"`
	BaseModel

	// associações
	Solicitante *User        `gorm:"foreignKey:SolicitanteID" json:"solicitante,omitempty"`
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID" json:"colaborador,omitempty"`
	Aprovador   *User        `gorm:"foreignKey:AprovadoPor"   json:"aprovador,omitempty"`
}

// TableName define o nome da tabela
func (SolicitacaoAlteracao) TableName() string { return "solicitacoes_alteracao" }
