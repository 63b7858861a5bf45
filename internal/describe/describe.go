package describe

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// Describer genera la descripción de un ítem recomendado. Es un
// colaborador enchufable: el sistema funciona igual sin proveedor vivo,
// usando la plantilla estática.
type Describer interface {
	Describe(ctx context.Context, movie models.Movie) string
}

// Template es el Describer por defecto: arma una frase a partir del
// título, géneros y año, sin red ni dependencias.
type Template struct{}

func (Template) Describe(_ context.Context, m models.Movie) string {
	title := m.Title
	if m.Year != nil {
		title = strings.TrimSpace(strings.TrimSuffix(title, fmt.Sprintf("(%d)", *m.Year)))
	}

	switch {
	case len(m.Genres) == 0 && m.Year == nil:
		return fmt.Sprintf("%s is worth a watch.", title)
	case len(m.Genres) == 0:
		return fmt.Sprintf("%s (%d) is worth a watch.", title, *m.Year)
	case m.Year == nil:
		return fmt.Sprintf("%s is a solid pick if you enjoy %s.",
			title, strings.ToLower(strings.Join(m.Genres, ", ")))
	default:
		return fmt.Sprintf("%s, a %s film from %d.",
			title, strings.ToLower(strings.Join(m.Genres, "/")), *m.Year)
	}
}
