package model

// Colaborador funcionário escalado — tabela colaboradores
// Nunca é removido fisicamente; importações desativam/reativam via campo ativo.
type Colaborador struct {
	ID               string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Matricula        string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"matricula"`
	Nome             string  `gorm:"type:varchar(255);not null"                     json:"nome"`
	Responsavel      *string `gorm:"type:varchar(255)"                              json:"responsavel,omitempty"`
	Departamento     *string `gorm:"type:varchar(100)"                              json:"departamento,omitempty"`
	Grupo            *string `gorm:"type:varchar(100)"                              json:"grupo,omitempty"`
	Funcao           *string `gorm:"type:varchar(100)"                              json:"funcao,omitempty"`
	CodEscala        *string `gorm:"type:varchar(50)"                               json:"cod_escala,omitempty"`
	HorarioTrabalho  *string `gorm:"type:varchar(50)"                               json:"horario_trabalho,omitempty"`
	Ativo            bool    `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName define o nome da tabela
func (Colaborador) TableName() string { return "colaboradores" }
