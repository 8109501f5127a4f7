package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies events. Names are bilingual (English / Kinyarwanda);
// reminder messages pick the variant matching the user's preferred language.
type Category struct {
	ID        uuid.UUID `json:"id"`
	NameEn    string    `json:"name_en"`
	NameRw    string    `json:"name_rw"`
	CreatedAt time.Time `json:"created_at"`
}

// NameFor returns the category name in the requested language, falling back
// to English for unknown language codes.
func (c *Category) NameFor(language string) string {
	if language == "rw" && c.NameRw != "" {
		return c.NameRw
	}

	return c.NameEn
}
