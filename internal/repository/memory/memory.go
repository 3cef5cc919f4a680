package memory

import (
	"bank_teller/internal/repository"
)

var (
	_ repository.AccountRepository = (*AccountRepository)(nil)
)
