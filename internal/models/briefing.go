package models

import "time"

// PageType enumerates the three kinds of pages a briefing targets.
type PageType string

const (
	PageTypeLandingPage PageType = "landing_page"
	PageTypeOnePage     PageType = "one_page"
	PageTypeSalesPage   PageType = "sales_page"
)

// PageTypeLabels maps page types to their pt-BR display names.
var PageTypeLabels = map[PageType]string{
	PageTypeLandingPage: "Landing Page",
	PageTypeOnePage:     "One Page",
	PageTypeSalesPage:   "Página de Vendas",
}

// Valid reports whether pt is one of the three supported page types.
func (pt PageType) Valid() bool {
	_, ok := PageTypeLabels[pt]
	return ok
}

// Question is a statically defined briefing question. Declaration order is
// significant: it drives both form rendering and prompt compilation.
type Question struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Rows        int    `json:"rows,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

// ResponseEntry is one answered question. Entries are kept as an ordered
// slice, never a map, so prompt compilation order is stable.
type ResponseEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BriefingForm is a tokenized questionnaire shared with an end client.
type BriefingForm struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	ClientID      *string    `json:"client_id,omitempty"`
	Token         string     `json:"token"`
	PageType      PageType   `json:"page_type"`
	NicheSelected string     `json:"niche_selected"`
	Title         string     `json:"title,omitempty"`
	Responses     []byte     `json:"-"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Submitted reports whether the external party already filled the form.
func (b *BriefingForm) Submitted() bool {
	return b.SubmittedAt != nil
}
