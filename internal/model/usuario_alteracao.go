package model

// UsuarioAlteracao contador mensal de alterações aplicadas por um usuário —
// tabela usuario_alteracoes, chave natural (usuario_id, mes, ano).
type UsuarioAlteracao struct {
	ID               string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID        string `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_mes_ano" json:"usuario_id"`
	Mes              int    `gorm:"not null;uniqueIndex:uq_usuario_mes_ano"           json:"mes"`
	Ano              int    `gorm:"not null;uniqueIndex:uq_usuario_mes_ano"           json:"ano"`
	TotalAlteracoes  int    `gorm:"not null;default:0"                                json:"total_alteracoes"`
	BaseModel
}

// TableName define o nome da tabela
func (UsuarioAlteracao) TableName() string { return "usuario_alteracoes" }
