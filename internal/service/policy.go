package service

import (
	"bpump/fitness-backend/internal/domain"
)

// canMutateProgram reports whether the acting user may edit or delete the
// program. Only the owner may; there are no shared or ownerless programs
// reachable through the user-facing operations.
//
// Callers translate a failed check into the same not-found error as an
// absent program, so a caller probing with someone else's program id
// cannot learn whether it exists.
func canMutateProgram(acting string, program *domain.Program) bool {
	return program.Owner != "" && program.Owner == acting
}
