package service

import (
	"bpump/fitness-backend/internal/domain"
)

// DefaultPrograms returns the starter programs cloned for a newly
// registered user. They are created in the same transaction as the user
// itself, so an account either exists with its starters or not at all.
//
// The copy is French because the mobile client ships French-first.
func DefaultPrograms(owner string) []domain.Program {
	return []domain.Program{
		{
			ID:          "cardio-intense",
			Owner:       owner,
			Icon:        "icons/cardio-intense.png",
			Title:       "Cardio Intense",
			Description: "Un programme intense axé sur le renforcement cardiovasculaire.",
			Category:    "Cardio",
			Difficulty:  4,
			Hint: []string{
				"Restez hydraté pendant l'entraînement.",
				"Écoutez votre corps et ajustez l'intensité si nécessaire.",
			},
			Exercises: []string{"burpees", "jumpingjacks"},
			Rest:      []int{30, 30},
		},
		{
			ID:          "renfo-corps",
			Owner:       owner,
			Icon:        "icons/renfo-corps.png",
			Title:       "Renfo du corps",
			Description: "Un programme axé sur le renforcement des muscles du haut du corps.",
			Category:    "Haut du corps",
			Difficulty:  3,
			Hint: []string{
				"Assurez-vous de maintenir une bonne forme tout au long de l'exercice.",
				"Écoutez votre corps et ajustez l'intensité si nécessaire.",
			},
			Exercises: []string{"chinups", "dips"},
			Rest:      []int{45, 45},
		},
	}
}
