package domain

// UnknownStaffName é o nome exibido quando nenhuma das fontes de nome
// resolve para algo preenchido. Nunca deixamos o nome em branco.
const UnknownStaffName = "Desconhecido"

// StaffMapping é a linha crua da tabela que liga o profissional do PDV a
// um usuário da plataforma (quando existe)
type StaffMapping struct {
	ExternalStaffID   string  `json:"external_staff_id"`
	OrganizationID    string  `json:"organization_id"`
	InternalUserID    *int    `json:"internal_user_id"`
	ExternalStaffName *string `json:"external_staff_name"`
}

// Employee é a linha do diretório de colaboradores da plataforma
type Employee struct {
	UserID      int     `json:"user_id"`
	FullName    *string `json:"full_name"`
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
	Active      bool    `json:"active"`
}

// StaffIdentity é a identidade resolvida de um profissional, com o nome de
// exibição já decidido pela ordem de precedência do resolvedor
type StaffIdentity struct {
	ExternalID  string  `json:"external_id"`
	UserID      *int    `json:"user_id"`
	DisplayName string  `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
}

// StaffDirectory é o mapa bidirecional usado para atribuir cada registro
// bruto a uma pessoa. Reconstruído a cada agregação, nunca cacheado.
type StaffDirectory struct {
	ByExternalID map[string]*StaffIdentity
	ByUserID     map[int]string // user id -> external staff id
}

// NewStaffDirectory cria um diretório vazio
func NewStaffDirectory() *StaffDirectory {
	return &StaffDirectory{
		ByExternalID: make(map[string]*StaffIdentity),
		ByUserID:     make(map[int]string),
	}
}

// Add registra a identidade nos dois índices
func (d *StaffDirectory) Add(identity *StaffIdentity) {
	d.ByExternalID[identity.ExternalID] = identity
	if identity.UserID != nil {
		d.ByUserID[*identity.UserID] = identity.ExternalID
	}
}

// Resolve busca a identidade pelo ID externo do PDV
func (d *StaffDirectory) Resolve(externalID string) (*StaffIdentity, bool) {
	identity, ok := d.ByExternalID[externalID]
	return identity, ok
}

// ResolveUserID volta do ID de usuário da plataforma para o ID externo.
// Necessário porque respostas de feedback chegam chaveadas por usuário.
func (d *StaffDirectory) ResolveUserID(userID int) (string, bool) {
	externalID, ok := d.ByUserID[userID]
	return externalID, ok
}
