package model

import "time"

// Escala cabeçalho mensal de escala — tabela escalas
// Uma linha por (colaborador, mes, ano); criada sob demanda na primeira escrita do mês.
type Escala struct {
	ID             string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ColaboradorID  string  `gorm:"type:uuid;not null"                             json:"colaborador_id"`
	Mes            int     `gorm:"not null"                                       json:"mes"`
	Ano            int     `gorm:"not null"                                       json:"ano"`
	UploadFileName *string `gorm:"type:varchar(255)"                              json:"upload_file_name,omitempty"`
	UploadedBy     *string `gorm:"type:uuid"                                      json:"uploaded_by,omitempty"`
	BaseModel

	// associações
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID" json:"colaborador,omitempty"`
	Dias        []EscalaDia  `gorm:"foreignKey:EscalaID"      json:"dias,omitempty"`
}

// TableName define o nome da tabela
func (Escala) TableName() string { return "escalas" }

// Códigos de status de dia não trabalhado.
const (
	StatusFolgaRemunerada    = "FR"
	StatusFalta              = "FT"
	StatusTreinamento        = "TR"
	StatusFolgaCompensatoria = "FC"
	StatusDiaTrabalhado      = "DT"
)

// EscalaDia entrada de um dia dentro da escala mensal — tabela escala_dias
//
// Invariante: status e horario nunca são ambos não-nulos. Ambos nulos
// significa dia sem marcação (ou DT aplicado — ver serviço).
type EscalaDia struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EscalaID    string     `gorm:"type:uuid;not null"                             json:"escala_id"`
	Dia         int        `gorm:"not null"                                       json:"dia"`
	Status      *string    `gorm:"type:varchar(2)"                                json:"status"`
	Horario     *string    `gorm:"type:varchar(50)"                               json:"horario"`
	Alterado    bool       `gorm:"not null;default:false"                         json:"alterado"`
	AlteradoPor *string    `gorm:"type:uuid"                                      json:"alterado_por,omitempty"`
	AlteradoEm  *time.Time `json:"alterado_em,omitempty"`
	BaseModel
}

// TableName define o nome da tabela
func (EscalaDia) TableName() string { return "escala_dias" }
