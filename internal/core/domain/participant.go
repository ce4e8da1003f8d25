package domain

import "time"

// Participant is an event registration identified by a human-readable
// yearly-sequential code of the form DI<year><NNNN>.
type Participant struct {
	Codigo          string
	Nome            string
	Email           string
	Nascimento      time.Time
	Idade           int
	IgrejaID        string
	DataInscricao   time.Time
	DataConfirmacao *time.Time
	UsuarioID       *string

	// IgrejaNome is resolved by a read-time join.
	IgrejaNome string
}
