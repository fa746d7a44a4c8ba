package model

// Papéis de usuário reconhecidos pelo sistema.
const (
	RoleSupervisor  = "supervisor"
	RoleAnalista    = "analista"
	RoleGerencia    = "gerencia"
	RoleTreinamento = "treinamento"
	RoleRH          = "rh"
	RoleQHSE        = "qhse"
	RoleOCC         = "occ"
	RolePonto       = "ponto"
)

// User usuário do sistema — tabela users
type User struct {
	ID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Matricula      string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"matricula"`
	Nome           string `gorm:"type:varchar(255);not null"                     json:"nome"`
	Email          string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	SenhaHash      string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           string `gorm:"type:varchar(20);not null;default:'supervisor'" json:"role"`
	Ativo          bool   `gorm:"not null;default:true"                          json:"ativo"`
	PrimeiroAcesso bool   `gorm:"not null;default:true"                          json:"primeiro_acesso"`
	BaseModel
}

// TableName define o nome da tabela
func (User) TableName() string { return "users" }
