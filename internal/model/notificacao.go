package model

// Tipos de notificação
const (
	NotificacaoAprovacao = "aprovacao"
	NotificacaoRejeicao  = "rejeicao"
	NotificacaoSistema   = "sistema"
)

// Notificacao aviso direcionado a um usuário — tabela notificacoes
type Notificacao struct {
	ID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UsuarioID     string  `gorm:"type:uuid;not null;index"                       json:"usuario_id"`
	Titulo        string  `gorm:"type:varchar(100);not null"                     json:"titulo"`
	Mensagem      string  `gorm:"type:text;not null"                             json:"mensagem"`
	Tipo          string  `gorm:"type:varchar(20);not null"                      json:"tipo"`
	Lida          bool    `gorm:"not null;default:false"                         json:"lida"`
	SolicitacaoID *string `gorm:"type:uuid"                                      json:"solicitacao_id,omitempty"`
	BaseModel
}

// TableName define o nome da tabela
func (Notificacao) TableName() string { return "notificacoes" }
